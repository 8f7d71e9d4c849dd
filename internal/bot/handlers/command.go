package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/menus"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api   API
	flows *flows
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api API, flows *flows) *CommandHandler {
	return &CommandHandler{
		api:   api,
		flows: flows,
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	logger.WithContext(ctx).Info("Handling command", "command", message.Command(), "user_id", user.ID)
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		return h.flows.mainMenu(chatID, user)
	case "help":
		return menus.SendHelp(h.api, chatID)
	case "reading":
		return h.flows.startReading(ctx, chatID, user)
	case "readings":
		return h.flows.showReadings(ctx, chatID, user)
	case "quiz":
		return h.flows.startQuiz(ctx, chatID, user)
	case "learn":
		return h.flows.showEducation(ctx, chatID, user)
	case "doctors":
		return h.flows.askDoctorLocation(chatID, user)
	default:
		return menus.SendText(h.api, chatID, "Unknown command. Use /help to see the available commands.")
	}
}
