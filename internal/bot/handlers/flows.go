package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/menus"
	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/state"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	apperrors "github.com/vladimiradmaev/diabetes-tracker/internal/errors"
	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
)

// User-facing failure messages. The user retries manually.
const (
	addReadingFailedText  = "Error adding reading. Please try again."
	addMedicineFailedText = "Error adding medicine. Please try again."
	loadFailedText        = "Error loading data. Please try again."
)

var fieldLabels = map[string]string{
	"blood_sugar_level": "Blood sugar level",
	"reading_type":      "Reading type",
	"insulin_type":      "Insulin type",
	"insulin_name":      "Insulin name",
	"insulin_dose":      "Insulin dose",
	"medicine_name":     "Medicine name",
	"dosage":            "Dosage",
}

// flows holds the multi-step conversations shared by the update handlers
type flows struct {
	api    API
	deps   Dependencies
	states state.StateManager
}

func newFlows(api API, deps Dependencies, states state.StateManager) *flows {
	return &flows{api: api, deps: deps, states: states}
}

// load restores a value saved for the user. Corrupt data is logged and
// treated as absent.
func (f *flows) load(ctx context.Context, user *database.User, key string, dst any) bool {
	ok, err := state.Load(f.states, user.TelegramID, key, dst)
	if err != nil {
		logger.WithContext(ctx).Warn("Discarding stored state", "key", key, "error", err)
		f.states.DeleteTempData(user.TelegramID, key)
		return false
	}
	return ok
}

func (f *flows) save(ctx context.Context, user *database.User, key string, v any) {
	if err := state.Save(f.states, user.TelegramID, key, v); err != nil {
		logger.WithContext(ctx).Error("Failed to save state", "key", key, "error", err)
	}
}

func (f *flows) mainMenu(chatID int64, user *database.User) error {
	f.states.SetUserState(user.TelegramID, state.None)
	return menus.SendMainMenu(f.api, chatID)
}

// sendError tells the user what went wrong. Validation problems name the
// field; anything else gets the generic text.
func (f *flows) sendError(ctx context.Context, chatID int64, err error, generic string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeValidation {
		logger.WithContext(ctx).Info("Rejected input", appErr.LogFields()...)
		return menus.SendText(f.api, chatID, "⚠️ "+validationText(appErr))
	}
	logger.WithContext(ctx).Error("Request failed", "error", err)
	return menus.SendText(f.api, chatID, generic)
}

func validationText(err *apperrors.AppError) string {
	field := err.Field()
	label, ok := fieldLabels[field]
	if !ok {
		return err.Message
	}
	return strings.Replace(err.Message, field, label, 1)
}
