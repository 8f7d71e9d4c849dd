package handlers

import (
	"context"
	"strings"

	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/menus"
	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/state"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
)

func (f *flows) showMedicine(ctx context.Context, chatID int64, user *database.User) error {
	logs, err := f.deps.MedicineSvc.RecentLogs(ctx, user.ID)
	if err != nil {
		return f.sendError(ctx, chatID, err, loadFailedText)
	}
	return menus.SendMedicineLogs(f.api, chatID, logs, f.deps.Location)
}

func (f *flows) askMedicine(chatID int64, user *database.User) error {
	f.states.SetUserState(user.TelegramID, state.WaitingForMedicineName)
	f.states.DeleteTempData(user.TelegramID, state.KeyMedicineName)
	return menus.SendPrompt(f.api, chatID, "💊 Enter the medicine name:")
}

func (f *flows) medicineNameEntered(chatID int64, user *database.User, text string) error {
	name := strings.TrimSpace(text)
	if name == "" {
		return menus.SendText(f.api, chatID, "Please enter the medicine name.")
	}
	f.states.SetTempData(user.TelegramID, state.KeyMedicineName, name)
	f.states.SetUserState(user.TelegramID, state.WaitingForMedicineDosage)
	return menus.SendPrompt(f.api, chatID, "Enter the dosage (for example: 500mg):")
}

func (f *flows) medicineDosageEntered(ctx context.Context, chatID int64, user *database.User, text string) error {
	raw, _ := f.states.GetTempData(user.TelegramID, state.KeyMedicineName)
	name, _ := raw.(string)

	if err := f.deps.MedicineSvc.AddLog(ctx, user.ID, name, text, ""); err != nil {
		return f.sendError(ctx, chatID, err, addMedicineFailedText)
	}

	f.states.DeleteTempData(user.TelegramID, state.KeyMedicineName)
	f.states.SetUserState(user.TelegramID, state.None)
	return f.showMedicine(ctx, chatID, user)
}

func (f *flows) askDoctorLocation(chatID int64, user *database.User) error {
	f.states.SetUserState(user.TelegramID, state.WaitingForDoctorLocation)
	return menus.SendDoctorPrompt(f.api, chatID)
}

// searchDoctors filters the directory by location text and centers the
// map on the user's position, or the default center when it is unknown
func (f *flows) searchDoctors(ctx context.Context, chatID int64, user *database.User, filter string, position *domain.Coordinates) error {
	doctors, err := f.deps.DoctorSvc.Search(ctx, filter)
	if err != nil {
		return f.sendError(ctx, chatID, err, loadFailedText)
	}
	center := f.deps.DoctorSvc.MapCenter(ctx, position)

	f.states.SetUserState(user.TelegramID, state.None)
	return menus.SendDoctors(f.api, chatID, doctors, center, strings.TrimSpace(filter))
}
