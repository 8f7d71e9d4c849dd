package handlers

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/diabetes-tracker/internal/interfaces"
)

// API is the subset of *tgbotapi.BotAPI the handlers call
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	UserService interfaces.UserServiceInterface
	ReadingSvc  interfaces.ReadingServiceInterface
	MedicineSvc interfaces.MedicineServiceInterface
	DoctorSvc   interfaces.DoctorServiceInterface
	WindowDays  int
	Location    *time.Location
}
