package insulin

import (
	"testing"

	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
)

func TestSuggestDose(t *testing.T) {
	tests := []struct {
		name        string
		bloodSugar  float64
		readingType domain.ReadingType
		expected    int
	}{
		{"high before meal", 220, domain.BeforeMeal, 5},
		{"normal fasting", 90, domain.Fasting, 0},
		{"at target before meal", 120, domain.BeforeMeal, 3},
		{"at target bedtime", 120, domain.Bedtime, 0},
		{"slightly high rounds down", 185, domain.AfterMeal, 1},
		{"half unit rounds up", 145, domain.Fasting, 1},
		{"just below half rounds down", 144, domain.Fasting, 0},
		{"very high before meal", 400, domain.BeforeMeal, 9},
		{"zero", 0, domain.BeforeMeal, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SuggestDose(tt.bloodSugar, tt.readingType)
			if result != tt.expected {
				t.Errorf("SuggestDose(%v, %s) = %d, want %d", tt.bloodSugar, tt.readingType, result, tt.expected)
			}
		})
	}
}

func TestCorrectionDoseNeverBelowTarget(t *testing.T) {
	for bs := 0.0; bs <= TargetBloodSugar; bs += 0.5 {
		if got := CorrectionDose(bs); got != 0 {
			t.Fatalf("CorrectionDose(%v) = %d, want 0", bs, got)
		}
	}
}

func TestMealDose(t *testing.T) {
	for _, rt := range domain.ReadingTypes {
		want := 0
		if rt == domain.BeforeMeal {
			want = 3
		}
		if got := MealDose(rt); got != want {
			t.Errorf("MealDose(%s) = %d, want %d", rt, got, want)
		}
	}
}

func TestSuggestDoseIsPure(t *testing.T) {
	first := SuggestDose(237.5, domain.BeforeMeal)
	for i := 0; i < 10; i++ {
		if got := SuggestDose(237.5, domain.BeforeMeal); got != first {
			t.Fatalf("SuggestDose changed between calls: %d then %d", first, got)
		}
	}
}

func TestLookup(t *testing.T) {
	ins, ok := Lookup(domain.Long, "Tresiba")
	if !ok || ins.Duration != "42+ hrs" {
		t.Errorf("Lookup(long, Tresiba) = %+v, %v", ins, ok)
	}
	if _, ok := Lookup(domain.Rapid, "Lantus"); ok {
		t.Error("Lantus must not be found among rapid insulins")
	}
	if got := Names(domain.Rapid); len(got) != 3 || got[0] != "Fiasp" {
		t.Errorf("Names(rapid) = %v", got)
	}
	if got := Names(domain.NoInsulin); len(got) != 0 {
		t.Errorf("Names(none) = %v, want empty", got)
	}
}
