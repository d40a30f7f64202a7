// Package prompt renders question records into the message sent to the
// assistant. The template wording is product copy; the structure — a
// context summary block followed by the verbatim question — is fixed and
// the rendered text is stored unmodified in the output for auditing.
package prompt

import (
	"fmt"
	"strings"

	"github.com/gustavdup/health-question-answer-generator/internal/topics"
)

const responseTemplate = `

The user has just installed the Dr Gabi app and entered the personal details as part of starting onboarding within the app.
They've selected a specific topic and question related to their health that we need to answer to show them what Dr Gabi can do.
This is the first message Dr Gabi sends after the user's first question — it should make them feel understood, supported, and confident in her help.
Write a short, calm, and reassuring message addressed to the person, as Dr Gabi.
Assume you already have a trusted relationship with them.

Your response should:
• Start with one brief empathetic sentence or two that acknowledges their situation.
• Follow with 2–3 short bullet points (each under one line) explaining how you can help in their context.
• End with one short reflective statement that leaves the user feeling hopeful and intrigued — as if there's more to uncover together. It should make them want to keep exploring or ask another question, without ever mentioning products, features, or trials. The tone should feel quietly confident and human — like a caring expert planting a seed of curiosity.
• Never ask the user a question as they can't respond at this stage.

Keep it under 150 words total, but lean towards 100 where possible.
Tone: warm, supportive, and conversational, never promotional or overly detailed.
Reference their role in the response when helpful (e.g., "as a mother", "for your family").

Users Question:
%s`

// Build renders the full message for one question. The question text is
// embedded verbatim — no trimming, truncation, or re-casing.
func Build(rec topics.QuestionRecord, role string) string {
	var sb strings.Builder
	sb.WriteString("Context:\n")
	fmt.Fprintf(&sb, "• Topic: %s\n", rec.Topic)
	fmt.Fprintf(&sb, "• Gender: %s\n", rec.Gender)
	fmt.Fprintf(&sb, "• Care focus: %s\n", rec.CareFocus)
	fmt.Fprintf(&sb, "• Has kids: %s\n", rec.HasKids)
	fmt.Fprintf(&sb, "• Inferred role: %s\n", role)
	fmt.Fprintf(&sb, responseTemplate, rec.Question)
	return sb.String()
}
