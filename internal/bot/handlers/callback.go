package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/keyboards"
	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/menus"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
)

// CallbackHandler handles callback query messages
type CallbackHandler struct {
	api   API
	flows *flows
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api API, flows *flows) *CallbackHandler {
	return &CallbackHandler{
		api:   api,
		flows: flows,
	}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery, user *database.User) error {
	// Answer the callback query first
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := h.api.Request(callback); err != nil {
		return err
	}
	if query.Message == nil {
		return nil
	}

	ctx = logger.IntoContext(ctx, logger.WithContext(ctx).With("callback", query.Data))
	chatID := query.Message.Chat.ID
	f := h.flows

	switch data := query.Data; data {
	case keyboards.MainMenuData:
		return f.mainMenu(chatID, user)
	case keyboards.HelpData:
		return menus.SendHelp(h.api, chatID)
	case keyboards.AddReadingData:
		return f.startReading(ctx, chatID, user)
	case keyboards.ReadingsData:
		return f.showReadings(ctx, chatID, user)
	case keyboards.BloodSugarData:
		return f.askBloodSugar(chatID, user)
	case keyboards.DoseOverrideData:
		return f.askDose(chatID, user)
	case keyboards.NotesData:
		return f.askNotes(chatID, user)
	case keyboards.SubmitData:
		return f.submitReading(ctx, chatID, user)
	case keyboards.CancelData:
		return f.cancelReading(chatID, user)
	case keyboards.MedicineData:
		return f.showMedicine(ctx, chatID, user)
	case keyboards.AddMedicineData:
		return f.askMedicine(chatID, user)
	case keyboards.QuizData:
		return f.startQuiz(ctx, chatID, user)
	case keyboards.QuizResetData:
		return f.resetQuiz(ctx, chatID, user)
	case keyboards.EducationData:
		return f.showEducation(ctx, chatID, user)
	case keyboards.AwarenessData:
		return f.showAwareness(ctx, chatID, user)
	case keyboards.NewsData:
		return menus.SendNews(h.api, chatID)
	case keyboards.ConditionsData:
		return menus.SendRelatedConditions(h.api, chatID)
	case keyboards.LifestyleData:
		return menus.SendLifestyleTips(h.api, chatID)
	case keyboards.DoctorsData:
		return f.askDoctorLocation(chatID, user)
	case keyboards.AllDoctorsData:
		return f.searchDoctors(ctx, chatID, user, "", nil)
	default:
		return h.handlePrefixed(ctx, chatID, user, data)
	}
}

func (h *CallbackHandler) handlePrefixed(ctx context.Context, chatID int64, user *database.User, data string) error {
	f := h.flows
	if v, ok := strings.CutPrefix(data, keyboards.ReadingTypePrefix); ok {
		return f.setReadingType(ctx, chatID, user, v)
	}
	if v, ok := strings.CutPrefix(data, keyboards.InsulinTypePrefix); ok {
		return f.setInsulinType(ctx, chatID, user, v)
	}
	if v, ok := strings.CutPrefix(data, keyboards.InsulinNamePrefix); ok {
		return f.setInsulinName(ctx, chatID, user, v)
	}
	if v, ok := strings.CutPrefix(data, keyboards.QuizAnswerPrefix); ok {
		return f.answerQuiz(ctx, chatID, user, v)
	}
	if v, ok := strings.CutPrefix(data, keyboards.ModulePrefix); ok {
		return f.selectModule(ctx, chatID, user, v)
	}
	if v, ok := strings.CutPrefix(data, keyboards.LessonPrefix); ok {
		return f.selectLesson(ctx, chatID, user, v)
	}
	if v, ok := strings.CutPrefix(data, keyboards.VideoPrefix); ok {
		return f.selectVideo(ctx, chatID, user, v)
	}
	return h.handleUnknownCallback(ctx, chatID, data)
}

// handleUnknownCallback handles unknown callback data
func (h *CallbackHandler) handleUnknownCallback(ctx context.Context, chatID int64, data string) error {
	logger.WithContext(ctx).Warn("Unknown callback", "data", data)
	return menus.SendText(h.api, chatID, "Unknown action. Use /start to open the main menu.")
}
