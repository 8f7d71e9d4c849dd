package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/menus"
	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/state"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
)

// TextHandler handles text messages
type TextHandler struct {
	api   API
	flows *flows
}

// NewTextHandler creates a new text handler
func NewTextHandler(api API, flows *flows) *TextHandler {
	return &TextHandler{
		api:   api,
		flows: flows,
	}
}

// Handle processes a text message according to what the user was asked
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	chatID, text := message.Chat.ID, message.Text

	switch h.flows.states.GetUserState(user.TelegramID) {
	case state.WaitingForBloodSugar:
		return h.flows.bloodSugarEntered(ctx, chatID, user, text)
	case state.WaitingForInsulinDose:
		return h.flows.doseEntered(ctx, chatID, user, text)
	case state.WaitingForNotes:
		return h.flows.notesEntered(ctx, chatID, user, text)
	case state.WaitingForMedicineName:
		return h.flows.medicineNameEntered(chatID, user, text)
	case state.WaitingForMedicineDosage:
		return h.flows.medicineDosageEntered(ctx, chatID, user, text)
	case state.WaitingForDoctorLocation:
		return h.flows.searchDoctors(ctx, chatID, user, text, nil)
	default:
		return h.handleDefaultText(chatID)
	}
}

// handleDefaultText handles text outside of any flow
func (h *TextHandler) handleDefaultText(chatID int64) error {
	if err := menus.SendText(h.api, chatID, "Please use the menu to choose an action."); err != nil {
		return err
	}
	return menus.SendMainMenu(h.api, chatID)
}
