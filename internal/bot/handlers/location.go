package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
)

// LocationHandler answers a shared location with the doctor directory
// centered on it
type LocationHandler struct {
	flows *flows
}

func NewLocationHandler(flows *flows) *LocationHandler {
	return &LocationHandler{flows: flows}
}

func (h *LocationHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	position := &domain.Coordinates{
		Lat: message.Location.Latitude,
		Lng: message.Location.Longitude,
	}
	return h.flows.searchDoctors(ctx, message.Chat.ID, user, "", position)
}
