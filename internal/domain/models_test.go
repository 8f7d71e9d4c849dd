package domain

import "testing"

func TestParseReadingType(t *testing.T) {
	tests := []struct {
		in      string
		want    ReadingType
		wantErr bool
	}{
		{"before_meal", BeforeMeal, false},
		{" Fasting ", Fasting, false},
		{"bedtime", Bedtime, false},
		{"lunch", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReadingType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReadingType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseReadingType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInsulinType(t *testing.T) {
	if got, err := ParseInsulinType(""); err != nil || got != NoInsulin {
		t.Errorf("ParseInsulinType(\"\") = %q, %v", got, err)
	}
	if got, err := ParseInsulinType("RAPID"); err != nil || got != Rapid {
		t.Errorf("ParseInsulinType(RAPID) = %q, %v", got, err)
	}
	if _, err := ParseInsulinType("intermediate"); err == nil {
		t.Error("ParseInsulinType(intermediate) should fail")
	}
}

func TestReadingTypeLabel(t *testing.T) {
	if got := AfterMeal.Label(); got != "after meal" {
		t.Errorf("Label() = %q, want %q", got, "after meal")
	}
}
