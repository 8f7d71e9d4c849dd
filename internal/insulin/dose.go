// Package insulin suggests insulin doses and describes the insulins a user
// can pick when logging a reading.
package insulin

import (
	"math"

	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
)

const (
	// TargetBloodSugar is the level in mg/dL a correction dose aims for.
	TargetBloodSugar = 120.0
	// CorrectionFactor is how many mg/dL one unit lowers blood sugar by.
	CorrectionFactor = 50.0
	// CarbRatio is grams of carbohydrate covered by one unit.
	CarbRatio = 15.0
	// AssumedMealCarbs is the carbohydrate content of an average meal in grams.
	AssumedMealCarbs = 45.0
)

// CorrectionDose returns the units needed to bring bloodSugar down to the
// target. Levels at or below the target need no correction.
func CorrectionDose(bloodSugar float64) int {
	if bloodSugar <= TargetBloodSugar {
		return 0
	}
	return int(math.Round((bloodSugar - TargetBloodSugar) / CorrectionFactor))
}

// MealDose returns the units covering an average meal. Only readings taken
// before a meal get a meal dose.
func MealDose(readingType domain.ReadingType) int {
	if readingType != domain.BeforeMeal {
		return 0
	}
	return int(math.Round(AssumedMealCarbs / CarbRatio))
}

// SuggestDose returns an advisory insulin dose in whole units. The caller
// must pass a valid, non-negative blood sugar value.
func SuggestDose(bloodSugar float64, readingType domain.ReadingType) int {
	return CorrectionDose(bloodSugar) + MealDose(readingType)
}
