// Package reading holds the state of the "add reading" form and turns it
// into a record ready to be persisted.
package reading

import (
	"math"
	"strconv"
	"strings"

	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
	apperrors "github.com/vladimiradmaev/diabetes-tracker/internal/errors"
	"github.com/vladimiradmaev/diabetes-tracker/internal/insulin"
)

// Input is the user-edited form state. Numeric fields are kept as typed so
// that an unfinished value survives until the user corrects it.
//
// Every With* method returns the next state and leaves the receiver as is.
type Input struct {
	BloodSugarLevel string             `json:"blood_sugar_level"`
	ReadingType     domain.ReadingType `json:"reading_type"`
	InsulinType     domain.InsulinType `json:"insulin_type"`
	InsulinName     string             `json:"insulin_name"`
	InsulinDose     string             `json:"insulin_dose"`
	Notes           string             `json:"notes"`
}

// NewInput returns an empty form
func NewInput() Input {
	return Input{ReadingType: domain.BeforeMeal}
}

// WithBloodSugar sets the blood sugar level and recomputes the dose
func (in Input) WithBloodSugar(value string) Input {
	in.BloodSugarLevel = strings.TrimSpace(value)
	return in.recomputeDose()
}

// WithReadingType sets the reading type and recomputes the dose
func (in Input) WithReadingType(t domain.ReadingType) Input {
	in.ReadingType = t
	return in.recomputeDose()
}

// WithInsulinType switches insulin type and clears the chosen insulin name
// so it can never belong to the other type. The dose is left untouched.
func (in Input) WithInsulinType(t domain.InsulinType) Input {
	in.InsulinType = t
	in.InsulinName = ""
	return in
}

// WithInsulinName picks an insulin from the catalog of the current type.
// An empty name clears the selection.
func (in Input) WithInsulinName(name string) (Input, error) {
	if name == "" {
		in.InsulinName = ""
		return in, nil
	}
	if !in.InsulinType.Valid() {
		return in, apperrors.NewInvalidFieldError("insulin_name", "requires an insulin type")
	}
	if _, ok := insulin.Lookup(in.InsulinType, name); !ok {
		return in, apperrors.NewInvalidFieldError("insulin_name", "is not a "+in.InsulinType.Label()+" insulin").
			WithContext("insulin_type", string(in.InsulinType))
	}
	in.InsulinName = name
	return in, nil
}

// WithInsulinDose overrides the suggested dose
func (in Input) WithInsulinDose(value string) Input {
	in.InsulinDose = strings.TrimSpace(value)
	return in
}

// WithNotes sets free-text notes
func (in Input) WithNotes(notes string) Input {
	in.Notes = notes
	return in
}

// Suggestion returns the advisory dose for the current blood sugar and
// reading type. ok is false while the blood sugar is missing or invalid.
func (in Input) Suggestion() (units int, ok bool) {
	bs, ok := parseBloodSugar(in.BloodSugarLevel)
	if !ok {
		return 0, false
	}
	return insulin.SuggestDose(bs, in.ReadingType), true
}

// Insulin returns catalog details for the selected insulin
func (in Input) Insulin() (insulin.Insulin, bool) {
	if in.InsulinName == "" {
		return insulin.Insulin{}, false
	}
	return insulin.Lookup(in.InsulinType, in.InsulinName)
}

func (in Input) recomputeDose() Input {
	if units, ok := in.Suggestion(); ok {
		in.InsulinDose = strconv.Itoa(units)
	}
	return in
}

func parseBloodSugar(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
