package topics

import "testing"

func TestRole(t *testing.T) {
	tests := []struct {
		gender Gender
		kids   HasKids
		want   string
	}{
		{GenderFemale, KidsYes, "mother"},
		{GenderMale, KidsYes, "father"},
		{GenderNeutral, KidsYes, "parent"},
		{GenderFemale, KidsNo, "individual"},
		{GenderMale, KidsNo, "individual"},
		{GenderNeutral, KidsNo, "individual"},
	}

	for _, tt := range tests {
		if got := Role(tt.gender, tt.kids); got != tt.want {
			t.Errorf("Role(%s, %s) = %q, want %q", tt.gender, tt.kids, got, tt.want)
		}
	}
}
