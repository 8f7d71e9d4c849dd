package domain

import (
	"fmt"
	"math"
	"strings"
)

// ReadingType is the meal context of a blood sugar measurement
type ReadingType string

const (
	BeforeMeal ReadingType = "before_meal"
	AfterMeal  ReadingType = "after_meal"
	Bedtime    ReadingType = "bedtime"
	Fasting    ReadingType = "fasting"
)

// ReadingTypes lists reading types in display order
var ReadingTypes = []ReadingType{BeforeMeal, AfterMeal, Bedtime, Fasting}

// Valid reports whether t is one of the known reading types
func (t ReadingType) Valid() bool {
	for _, rt := range ReadingTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// Label returns a human readable name, e.g. "before meal"
func (t ReadingType) Label() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

// ParseReadingType converts user or callback input into a ReadingType
func ParseReadingType(s string) (ReadingType, error) {
	t := ReadingType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown reading type %q", s)
	}
	return t, nil
}

// InsulinType is the action profile of an insulin. The zero value means
// no insulin was taken with the reading.
type InsulinType string

const (
	NoInsulin InsulinType = ""
	Rapid     InsulinType = "rapid"
	Long      InsulinType = "long"
)

// InsulinTypes lists the selectable insulin types
var InsulinTypes = []InsulinType{Rapid, Long}

// Valid reports whether t is a selectable insulin type
func (t InsulinType) Valid() bool {
	return t == Rapid || t == Long
}

// Label returns the display name
func (t InsulinType) Label() string {
	switch t {
	case Rapid:
		return "Rapid-Acting"
	case Long:
		return "Long-Acting"
	default:
		return "None"
	}
}

// ParseInsulinType accepts "rapid", "long" or an empty string
func ParseInsulinType(s string) (InsulinType, error) {
	t := InsulinType(strings.ToLower(strings.TrimSpace(s)))
	if t == NoInsulin || t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("unknown insulin type %q", s)
}

// Coordinates is a point on the map
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point lies within WGS84 bounds
func (c Coordinates) Valid() bool {
	return !math.IsNaN(c.Lat) && !math.IsNaN(c.Lng) &&
		c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
