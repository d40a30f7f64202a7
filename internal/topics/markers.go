package topics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Marker maps a header-line prefix to a parse-state update. A marker sets
// either the gender or the (care focus, has kids) pair, never both.
type Marker struct {
	Prefix    string    `yaml:"prefix"`
	Gender    Gender    `yaml:"gender,omitempty"`
	CareFocus CareFocus `yaml:"care_focus,omitempty"`
	HasKids   HasKids   `yaml:"has_kids,omitempty"`
}

// IsGender reports whether the marker sets the gender field.
func (m Marker) IsGender() bool {
	return m.Gender != ""
}

// DefaultMarkers is the built-in marker table used by the topic files.
// The woman-with-child and man-with-child emoji are alternates for the same
// "Myself (With Kids)" header; the speech balloon is the generic variant
// used in gender-neutral sections.
func DefaultMarkers() []Marker {
	return []Marker{
		{Prefix: "💗", Gender: GenderFemale},
		{Prefix: "🩵", Gender: GenderMale},
		{Prefix: "💚", Gender: GenderNeutral},
		{Prefix: "🩺", CareFocus: CareMyself, HasKids: KidsNo},
		{Prefix: "👩‍👧", CareFocus: CareMyself, HasKids: KidsYes},
		{Prefix: "👨‍👧", CareFocus: CareMyself, HasKids: KidsYes},
		{Prefix: "💬", CareFocus: CareMyself, HasKids: KidsYes},
		{Prefix: "👶", CareFocus: CareMyKids, HasKids: KidsYes},
		{Prefix: "🏡", CareFocus: CareMyFamily, HasKids: KidsNo},
		{Prefix: "💞", CareFocus: CareMyFamily, HasKids: KidsYes},
	}
}

// LoadMarkers reads a marker table from a YAML file. The file holds a list
// of marker entries; it replaces the built-in table entirely.
func LoadMarkers(path string) ([]Marker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read marker file: %w", err)
	}

	var markers []Marker
	if err := yaml.Unmarshal(data, &markers); err != nil {
		return nil, fmt.Errorf("parse marker file: %w", err)
	}

	for i, m := range markers {
		if m.Prefix == "" {
			return nil, fmt.Errorf("marker %d: missing prefix", i)
		}
		switch {
		case m.Gender != "" && (m.CareFocus != "" || m.HasKids != ""):
			return nil, fmt.Errorf("marker %q: sets both gender and context", m.Prefix)
		case m.Gender == "" && (m.CareFocus == "" || m.HasKids == ""):
			return nil, fmt.Errorf("marker %q: must set gender or care focus + kids", m.Prefix)
		}
	}

	return markers, nil
}
