package reading

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
	apperrors "github.com/vladimiradmaev/diabetes-tracker/internal/errors"
	"github.com/vladimiradmaev/diabetes-tracker/internal/insulin"
)

// Record is a validated reading ready for the data access facade. Optional
// columns are nil rather than zero values.
type Record struct {
	BloodSugarLevel float64
	ReadingType     domain.ReadingType
	InsulinType     *domain.InsulinType
	InsulinName     *string
	InsulinDose     *float64
	Notes           *string
	ReadingTime     time.Time
}

// Build validates in and stamps it with now. Validation failures are
// AppErrors of type validation; MISSING_FIELD for the blood sugar level and
// INVALID_FIELD for everything else.
func Build(in Input, now time.Time) (Record, error) {
	bs, ok := parseBloodSugar(strings.TrimSpace(in.BloodSugarLevel))
	if !ok {
		return Record{}, apperrors.NewMissingFieldError("blood_sugar_level").
			WithContext("value", in.BloodSugarLevel)
	}

	if !in.ReadingType.Valid() {
		return Record{}, apperrors.NewInvalidFieldError("reading_type", "is not a known reading type").
			WithContext("value", string(in.ReadingType))
	}

	rec := Record{
		BloodSugarLevel: bs,
		ReadingType:     in.ReadingType,
		ReadingTime:     now,
	}

	switch {
	case in.InsulinType == domain.NoInsulin:
		if in.InsulinName != "" {
			return Record{}, apperrors.NewInvalidFieldError("insulin_name", "requires an insulin type")
		}
	case !in.InsulinType.Valid():
		return Record{}, apperrors.NewInvalidFieldError("insulin_type", "is not a known insulin type").
			WithContext("value", string(in.InsulinType))
	default:
		t := in.InsulinType
		rec.InsulinType = &t
		if in.InsulinName != "" {
			if _, ok := insulin.Lookup(t, in.InsulinName); !ok {
				return Record{}, apperrors.NewInvalidFieldError("insulin_name", "is not a "+t.Label()+" insulin")
			}
			name := in.InsulinName
			rec.InsulinName = &name
		}
	}

	if dose := strings.TrimSpace(in.InsulinDose); dose != "" {
		v, err := strconv.ParseFloat(dose, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Record{}, apperrors.NewInvalidFieldError("insulin_dose", "must be a non-negative number").
				WithContext("value", in.InsulinDose)
		}
		rec.InsulinDose = &v
	}

	if strings.TrimSpace(in.Notes) != "" {
		notes := in.Notes
		rec.Notes = &notes
	}

	return rec, nil
}
