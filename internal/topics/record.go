// Package topics parses annotated health-question topic files into
// structured question records.
package topics

// Gender is the audience gender a question section is written for.
type Gender string

const (
	GenderFemale  Gender = "Female"
	GenderMale    Gender = "Male"
	GenderNeutral Gender = "Gender Neutral"
)

// CareFocus is who the question is about.
type CareFocus string

const (
	CareMyself   CareFocus = "Myself"
	CareMyKids   CareFocus = "My Kids"
	CareMyFamily CareFocus = "My Family"
)

// HasKids records whether the asker has children.
type HasKids string

const (
	KidsYes HasKids = "Yes"
	KidsNo  HasKids = "No"
)

// QuestionRecord is a single question together with the section context
// it was parsed under. Records are immutable once emitted.
type QuestionRecord struct {
	Topic     string
	Gender    Gender
	CareFocus CareFocus
	HasKids   HasKids
	Question  string
}

// Role infers the asker's role label from gender and kids status.
// Anyone without kids is an "individual" regardless of gender.
func Role(g Gender, k HasKids) string {
	if k != KidsYes {
		return "individual"
	}
	switch g {
	case GenderFemale:
		return "mother"
	case GenderMale:
		return "father"
	default:
		return "parent"
	}
}
