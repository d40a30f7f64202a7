package topics

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
)

type contextKey struct {
	gender    Gender
	careFocus CareFocus
	hasKids   HasKids
}

// GenerateSample builds a small synthetic topic file: one question drawn
// from each source file, preferring gender/context combinations not yet
// used so the sample exercises a spread of roles. The result parses back
// into exactly one record per source file.
func GenerateSample(files []string, rng *rand.Rand) (string, error) {
	parser := NewParser(nil)
	used := make(map[contextKey]bool)

	var sb strings.Builder
	picked := 0

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open %s: %w", path, err)
		}
		records, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		if len(records) == 0 {
			continue
		}

		rec := pickDiverse(records, used, rng)
		used[contextKey{rec.Gender, rec.CareFocus, rec.HasKids}] = true
		picked++

		fmt.Fprintf(&sb, "Topic %d: %s\n\n", picked, rec.Topic)
		sb.WriteString(genderHeader(rec.Gender) + "\n\n")
		sb.WriteString(contextHeader(rec) + "\n")
		sb.WriteString(rec.Question + "\n\n\n")
	}

	if picked == 0 {
		return "", fmt.Errorf("no questions found in %d input files", len(files))
	}
	return sb.String(), nil
}

// pickDiverse prefers a record whose gender/context combination has not
// been used yet, falling back to any random record after a bounded number
// of draws.
func pickDiverse(records []QuestionRecord, used map[contextKey]bool, rng *rand.Rand) QuestionRecord {
	rec := records[rng.Intn(len(records))]
	if len(used) < 3 {
		return rec
	}
	for attempts := 0; attempts < 50; attempts++ {
		if !used[contextKey{rec.Gender, rec.CareFocus, rec.HasKids}] {
			return rec
		}
		rec = records[rng.Intn(len(records))]
	}
	return rec
}

func genderHeader(g Gender) string {
	switch g {
	case GenderFemale:
		return "💗 Female"
	case GenderMale:
		return "🩵 Male"
	default:
		return "💚 Gender Neutral"
	}
}

func contextHeader(rec QuestionRecord) string {
	switch {
	case rec.CareFocus == CareMyself && rec.HasKids == KidsNo:
		return "🩺 Myself (No Kids)"
	case rec.CareFocus == CareMyself:
		switch rec.Gender {
		case GenderFemale:
			return "👩‍👧 Myself (With Kids)"
		case GenderMale:
			return "👨‍👧 Myself (With Kids)"
		default:
			return "💬 Myself (With Kids)"
		}
	case rec.CareFocus == CareMyKids:
		return "👶 My Kids"
	case rec.HasKids == KidsYes:
		return "💞 My Family (With Kids)"
	default:
		return "🏡 My Family (No Kids)"
	}
}
