package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/menus"
	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/state"
	"github.com/vladimiradmaev/diabetes-tracker/internal/content"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/quiz"
)

func (f *flows) session(ctx context.Context, user *database.User) quiz.Session {
	var s quiz.Session
	if !f.load(ctx, user, state.KeyQuizSession, &s) || !s.Valid() || s.Total != len(quiz.Questions) {
		return quiz.NewSession(len(quiz.Questions))
	}
	return s
}

func (f *flows) startQuiz(ctx context.Context, chatID int64, user *database.User) error {
	s := quiz.NewSession(len(quiz.Questions))
	f.save(ctx, user, state.KeyQuizSession, s)
	return menus.SendQuizQuestion(f.api, chatID, s)
}

func (f *flows) answerQuiz(ctx context.Context, chatID int64, user *database.User, value string) error {
	s, err := f.session(ctx, user).Answer(value == "yes")
	if err != nil && !errors.Is(err, quiz.ErrSessionComplete) {
		return f.sendError(ctx, chatID, err, loadFailedText)
	}
	f.save(ctx, user, state.KeyQuizSession, s)

	if risk, done := s.Risk(); done {
		return menus.SendQuizResult(f.api, chatID, risk)
	}
	return menus.SendQuizQuestion(f.api, chatID, s)
}

func (f *flows) resetQuiz(ctx context.Context, chatID int64, user *database.User) error {
	s := f.session(ctx, user).Reset()
	f.save(ctx, user, state.KeyQuizSession, s)
	return menus.SendQuizQuestion(f.api, chatID, s)
}

func (f *flows) selection(ctx context.Context, user *database.User) content.Selection {
	var sel content.Selection
	f.load(ctx, user, state.KeyLessonSelection, &sel)
	return sel
}

func (f *flows) showEducation(ctx context.Context, chatID int64, user *database.User) error {
	return menus.SendEducation(f.api, chatID, f.selection(ctx, user))
}

func (f *flows) selectModule(ctx context.Context, chatID int64, user *database.User, value string) error {
	m, err := strconv.Atoi(value)
	if err != nil {
		return menus.SendText(f.api, chatID, "That module is not available.")
	}
	sel, err := f.selection(ctx, user).SelectModule(content.Modules, m)
	if err != nil {
		return menus.SendText(f.api, chatID, "That module is not available.")
	}
	f.save(ctx, user, state.KeyLessonSelection, sel)
	return menus.SendEducation(f.api, chatID, sel)
}

// selectLesson takes "module:lesson"
func (f *flows) selectLesson(ctx context.Context, chatID int64, user *database.User, value string) error {
	ms, ls, found := strings.Cut(value, ":")
	m, errM := strconv.Atoi(ms)
	l, errL := strconv.Atoi(ls)
	if !found || errM != nil || errL != nil {
		return menus.SendText(f.api, chatID, "That lesson is not available.")
	}
	sel, err := f.selection(ctx, user).SelectLesson(content.Modules, m, l)
	if err != nil {
		return menus.SendText(f.api, chatID, "That lesson is not available.")
	}
	f.save(ctx, user, state.KeyLessonSelection, sel)
	return menus.SendEducation(f.api, chatID, sel)
}

func (f *flows) carousel(ctx context.Context, user *database.User) content.Carousel {
	var c content.Carousel
	f.load(ctx, user, state.KeyVideoCarousel, &c)
	return c
}

func (f *flows) showAwareness(ctx context.Context, chatID int64, user *database.User) error {
	return menus.SendAwareness(f.api, chatID, f.carousel(ctx, user))
}

func (f *flows) selectVideo(ctx context.Context, chatID int64, user *database.User, value string) error {
	i, err := strconv.Atoi(value)
	if err != nil {
		return menus.SendText(f.api, chatID, "That video is not available.")
	}
	c, err := f.carousel(ctx, user).Select(content.Videos, i)
	if err != nil {
		return menus.SendText(f.api, chatID, "That video is not available.")
	}
	f.save(ctx, user, state.KeyVideoCarousel, c)
	return menus.SendAwareness(f.api, chatID, c)
}
