package state

import (
	"encoding/json"
	"fmt"
)

// User states
const (
	None                     = "none"
	WaitingForBloodSugar     = "waiting_for_blood_sugar"
	WaitingForInsulinDose    = "waiting_for_insulin_dose"
	WaitingForNotes          = "waiting_for_notes"
	WaitingForMedicineName   = "waiting_for_medicine_name"
	WaitingForMedicineDosage = "waiting_for_medicine_dosage"
	WaitingForDoctorLocation = "waiting_for_doctor_location"
)

// Temp data keys
const (
	KeyReadingInput    = "reading_input"
	KeyQuizSession     = "quiz_session"
	KeyLessonSelection = "lesson_selection"
	KeyVideoCarousel   = "video_carousel"
	KeyMedicineName    = "medicine_name"
)

// StateManager stores the conversation state and form data of each user
type StateManager interface {
	SetUserState(userID int64, state string)
	GetUserState(userID int64) string
	ClearUserState(userID int64)
	SetTempData(userID int64, key string, value interface{})
	GetTempData(userID int64, key string) (interface{}, bool)
	DeleteTempData(userID int64, key string)
	ClearTempData(userID int64)
}

// Save stores v under key as JSON so it survives both managers unchanged
func Save(m StateManager, userID int64, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	m.SetTempData(userID, key, string(data))
	return nil
}

// Load decodes the value stored under key into dst. It reports false when
// nothing is stored.
func Load(m StateManager, userID int64, key string, dst any) (bool, error) {
	raw, ok := m.GetTempData(userID, key)
	if !ok {
		return false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return false, fmt.Errorf("unexpected %T stored under %s", raw, key)
	}
	if err := json.Unmarshal([]byte(s), dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}
