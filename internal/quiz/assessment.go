// Package quiz runs the yes/no risk assessment questionnaire.
package quiz

import (
	apperrors "github.com/vladimiradmaev/diabetes-tracker/internal/errors"
)

// Risk is the coarse outcome of an assessment
type Risk string

const (
	RiskLow      Risk = "Low"
	RiskModerate Risk = "Moderate"
	RiskHigh     Risk = "High"
)

// Classify maps answers to a risk level by counting "yes" answers.
// Order does not matter.
func Classify(answers []bool) Risk {
	positive := 0
	for _, a := range answers {
		if a {
			positive++
		}
	}
	switch {
	case positive >= 4:
		return RiskHigh
	case positive >= 2:
		return RiskModerate
	default:
		return RiskLow
	}
}

// Session is one run through the questionnaire. It is either asking
// question Index, or terminal once every question has been answered.
//
// Fields are exported for serialization only; use the methods to move
// between states.
type Session struct {
	Total   int    `json:"total"`
	Index   int    `json:"index"`
	Answers []bool `json:"answers"`
	Done    bool   `json:"done"`
}

// ErrSessionComplete is returned when answering a terminal session
var ErrSessionComplete = apperrors.NewValidationError("assessment is already complete")

// NewSession starts a session over total questions
func NewSession(total int) Session {
	return Session{Total: total, Answers: []bool{}}
}

// Answer records a for the current question and advances. The last
// answer makes the session terminal.
func (s Session) Answer(a bool) (Session, error) {
	if s.Done {
		return s, ErrSessionComplete
	}

	answers := make([]bool, len(s.Answers), len(s.Answers)+1)
	copy(answers, s.Answers)
	s.Answers = append(answers, a)

	if s.Index+1 < s.Total {
		s.Index++
	} else {
		s.Done = true
	}
	return s, nil
}

// Reset returns the initial state for the same questionnaire
func (s Session) Reset() Session {
	return NewSession(s.Total)
}

// Terminal reports whether results are being shown
func (s Session) Terminal() bool {
	return s.Done
}

// Risk classifies a terminal session
func (s Session) Risk() (Risk, bool) {
	if !s.Done {
		return "", false
	}
	return Classify(s.Answers), true
}

// Valid checks the session invariants; used after loading a stored session
func (s Session) Valid() bool {
	if s.Total <= 0 || s.Index < 0 || s.Index >= s.Total {
		return false
	}
	if s.Done {
		return len(s.Answers) == s.Total && s.Index == s.Total-1
	}
	return len(s.Answers) == s.Index
}
