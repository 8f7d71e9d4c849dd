package reading

import (
	"errors"
	"testing"

	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
	apperrors "github.com/vladimiradmaev/diabetes-tracker/internal/errors"
)

func TestNewInputDefaults(t *testing.T) {
	in := NewInput()
	if in.ReadingType != domain.BeforeMeal {
		t.Errorf("ReadingType = %q, want before_meal", in.ReadingType)
	}
	if in.BloodSugarLevel != "" || in.InsulinDose != "" || in.InsulinType != domain.NoInsulin {
		t.Errorf("NewInput() = %+v, want empty fields", in)
	}
}

func TestDoseRecomputedOnChange(t *testing.T) {
	tests := []struct {
		name     string
		apply    func(Input) Input
		wantDose string
	}{
		{
			name:     "blood sugar before meal",
			apply:    func(in Input) Input { return in.WithBloodSugar("220") },
			wantDose: "5",
		},
		{
			name:     "reading type change",
			apply:    func(in Input) Input { return in.WithBloodSugar("220").WithReadingType(domain.Fasting) },
			wantDose: "2",
		},
		{
			name:     "invalid blood sugar keeps previous dose",
			apply:    func(in Input) Input { return in.WithBloodSugar("220").WithBloodSugar("22o") },
			wantDose: "5",
		},
		{
			name:     "negative blood sugar is not suggested",
			apply:    func(in Input) Input { return in.WithBloodSugar("-5") },
			wantDose: "",
		},
		{
			name:     "empty blood sugar short-circuits",
			apply:    func(in Input) Input { return in.WithReadingType(domain.AfterMeal) },
			wantDose: "",
		},
		{
			name: "override survives until the next recompute",
			apply: func(in Input) Input {
				return in.WithBloodSugar("220").WithInsulinDose("4")
			},
			wantDose: "4",
		},
		{
			name: "recompute replaces override",
			apply: func(in Input) Input {
				return in.WithBloodSugar("220").WithInsulinDose("4").WithReadingType(domain.Bedtime)
			},
			wantDose: "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.apply(NewInput())
			if got.InsulinDose != tt.wantDose {
				t.Errorf("InsulinDose = %q, want %q", got.InsulinDose, tt.wantDose)
			}
		})
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	base := NewInput().WithBloodSugar("150")
	_ = base.WithBloodSugar("300")
	_ = base.WithInsulinType(domain.Long)
	if base.BloodSugarLevel != "150" || base.InsulinType != domain.NoInsulin {
		t.Errorf("receiver mutated: %+v", base)
	}
}

func TestWithInsulinTypeClearsName(t *testing.T) {
	in := NewInput().WithBloodSugar("180").WithInsulinType(domain.Rapid)
	in, err := in.WithInsulinName("Humalog")
	if err != nil {
		t.Fatalf("WithInsulinName() error = %v", err)
	}
	dose := in.InsulinDose

	in = in.WithInsulinType(domain.Long)
	if in.InsulinName != "" {
		t.Errorf("InsulinName = %q after type change, want empty", in.InsulinName)
	}
	if in.InsulinDose != dose {
		t.Errorf("InsulinDose = %q, want it preserved as %q", in.InsulinDose, dose)
	}
}

func TestWithInsulinName(t *testing.T) {
	tests := []struct {
		name      string
		insType   domain.InsulinType
		insName   string
		wantName  string
		wantError bool
	}{
		{"rapid insulin", domain.Rapid, "Fiasp", "Fiasp", false},
		{"long insulin", domain.Long, "Lantus", "Lantus", false},
		{"cross type", domain.Rapid, "Lantus", "", true},
		{"no type", domain.NoInsulin, "Fiasp", "", true},
		{"clear", domain.Long, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewInput().WithInsulinType(tt.insType).WithInsulinName(tt.insName)
			if (err != nil) != tt.wantError {
				t.Fatalf("error = %v, wantError %v", err, tt.wantError)
			}
			if err != nil && !errors.Is(err, apperrors.ErrInvalidField) {
				t.Errorf("error = %v, want INVALID_FIELD", err)
			}
			if got.InsulinName != tt.wantName {
				t.Errorf("InsulinName = %q, want %q", got.InsulinName, tt.wantName)
			}
		})
	}
}

func TestSuggestion(t *testing.T) {
	if _, ok := NewInput().Suggestion(); ok {
		t.Error("Suggestion() ok for empty input")
	}
	units, ok := NewInput().WithBloodSugar("185").WithReadingType(domain.AfterMeal).Suggestion()
	if !ok || units != 1 {
		t.Errorf("Suggestion() = %d, %v; want 1, true", units, ok)
	}
}
