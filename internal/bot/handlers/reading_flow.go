package handlers

import (
	"context"

	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/keyboards"
	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/menus"
	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/state"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
	"github.com/vladimiradmaev/diabetes-tracker/internal/reading"
)

func (f *flows) input(ctx context.Context, user *database.User) reading.Input {
	var in reading.Input
	if !f.load(ctx, user, state.KeyReadingInput, &in) {
		return reading.NewInput()
	}
	return in
}

// startReading opens an empty form and asks for the blood sugar level
func (f *flows) startReading(ctx context.Context, chatID int64, user *database.User) error {
	f.save(ctx, user, state.KeyReadingInput, reading.NewInput())
	f.states.SetUserState(user.TelegramID, state.WaitingForBloodSugar)
	return menus.SendPrompt(f.api, chatID, "🩸 Enter your blood sugar level in mg/dL (for example: 145):")
}

// askBloodSugar re-enters the level on an open form. The other fields are
// kept and the dose is suggested again from the new level.
func (f *flows) askBloodSugar(chatID int64, user *database.User) error {
	f.states.SetUserState(user.TelegramID, state.WaitingForBloodSugar)
	return menus.SendPrompt(f.api, chatID, "🩸 Enter the corrected blood sugar level in mg/dL:")
}

func (f *flows) bloodSugarEntered(ctx context.Context, chatID int64, user *database.User, text string) error {
	in := f.input(ctx, user).WithBloodSugar(text)
	if _, ok := in.Suggestion(); !ok {
		return menus.SendText(f.api, chatID, "Please enter a valid blood sugar level in mg/dL (for example: 145).")
	}

	f.save(ctx, user, state.KeyReadingInput, in)
	f.states.SetUserState(user.TelegramID, state.None)
	return menus.SendReadingForm(f.api, chatID, in)
}

func (f *flows) setReadingType(ctx context.Context, chatID int64, user *database.User, value string) error {
	t, err := domain.ParseReadingType(value)
	if err != nil {
		return menus.SendText(f.api, chatID, "Unknown reading type.")
	}
	in := f.input(ctx, user).WithReadingType(t)
	f.save(ctx, user, state.KeyReadingInput, in)
	return menus.SendReadingForm(f.api, chatID, in)
}

func (f *flows) setInsulinType(ctx context.Context, chatID int64, user *database.User, value string) error {
	if value == keyboards.NoInsulinValue {
		value = ""
	}
	t, err := domain.ParseInsulinType(value)
	if err != nil {
		return menus.SendText(f.api, chatID, "Unknown insulin type.")
	}
	in := f.input(ctx, user).WithInsulinType(t)
	f.save(ctx, user, state.KeyReadingInput, in)
	return menus.SendReadingForm(f.api, chatID, in)
}

func (f *flows) setInsulinName(ctx context.Context, chatID int64, user *database.User, name string) error {
	in, err := f.input(ctx, user).WithInsulinName(name)
	if err != nil {
		return f.sendError(ctx, chatID, err, addReadingFailedText)
	}
	f.save(ctx, user, state.KeyReadingInput, in)
	return menus.SendReadingForm(f.api, chatID, in)
}

func (f *flows) askDose(chatID int64, user *database.User) error {
	f.states.SetUserState(user.TelegramID, state.WaitingForInsulinDose)
	return menus.SendPrompt(f.api, chatID, "💉 Enter the insulin dose in units:")
}

// doseEntered overrides the suggestion. The value is checked on save.
func (f *flows) doseEntered(ctx context.Context, chatID int64, user *database.User, text string) error {
	in := f.input(ctx, user).WithInsulinDose(text)
	f.save(ctx, user, state.KeyReadingInput, in)
	f.states.SetUserState(user.TelegramID, state.None)
	return menus.SendReadingForm(f.api, chatID, in)
}

func (f *flows) askNotes(chatID int64, user *database.User) error {
	f.states.SetUserState(user.TelegramID, state.WaitingForNotes)
	return menus.SendPrompt(f.api, chatID, "🗒 Enter notes for this reading:")
}

func (f *flows) notesEntered(ctx context.Context, chatID int64, user *database.User, text string) error {
	in := f.input(ctx, user).WithNotes(text)
	f.save(ctx, user, state.KeyReadingInput, in)
	f.states.SetUserState(user.TelegramID, state.None)
	return menus.SendReadingForm(f.api, chatID, in)
}

// submitReading stores the form. On failure the form is kept as it was so
// the user can fix it or retry.
func (f *flows) submitReading(ctx context.Context, chatID int64, user *database.User) error {
	in := f.input(ctx, user)
	next, stored, err := f.deps.ReadingSvc.Submit(ctx, user.ID, in)
	if err != nil {
		return f.sendError(ctx, chatID, err, addReadingFailedText)
	}

	f.save(ctx, user, state.KeyReadingInput, next)
	f.states.SetUserState(user.TelegramID, state.None)
	logger.WithContext(ctx).Info("Reading submitted", "reading_id", stored.ID)
	return menus.SendReadingSaved(f.api, chatID, stored)
}

func (f *flows) cancelReading(chatID int64, user *database.User) error {
	f.states.DeleteTempData(user.TelegramID, state.KeyReadingInput)
	return f.mainMenu(chatID, user)
}

func (f *flows) showReadings(ctx context.Context, chatID int64, user *database.User) error {
	readings, err := f.deps.ReadingSvc.RecentReadings(ctx, user.ID)
	if err != nil {
		return f.sendError(ctx, chatID, err, loadFailedText)
	}
	return menus.SendReadings(f.api, chatID, readings, f.deps.WindowDays, f.deps.Location)
}
