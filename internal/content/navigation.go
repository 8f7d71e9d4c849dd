package content

import (
	"fmt"

	apperrors "github.com/vladimiradmaev/diabetes-tracker/internal/errors"
)

// Selection tracks the expanded module and the open lesson. A nil index
// means nothing is selected at that level.
type Selection struct {
	Module *int `json:"module"`
	Lesson *int `json:"lesson"`
}

// SelectModule expands module m. The lesson index is left as it was, so a
// lesson view stays open until another lesson is picked.
func (s Selection) SelectModule(modules []Module, m int) (Selection, error) {
	if m < 0 || m >= len(modules) {
		return s, outOfRange("module", m, len(modules))
	}
	s.Module = &m
	return s, nil
}

// SelectLesson opens lesson l of module m, selecting the module as well
func (s Selection) SelectLesson(modules []Module, m, l int) (Selection, error) {
	if m < 0 || m >= len(modules) {
		return s, outOfRange("module", m, len(modules))
	}
	if l < 0 || l >= len(modules[m].Lessons) {
		return s, outOfRange("lesson", l, len(modules[m].Lessons))
	}
	s.Module = &m
	s.Lesson = &l
	return s, nil
}

// ExpandedModule returns the selected module
func (s Selection) ExpandedModule(modules []Module) (Module, bool) {
	if s.Module == nil || *s.Module < 0 || *s.Module >= len(modules) {
		return Module{}, false
	}
	return modules[*s.Module], true
}

// OpenLesson returns the lesson to show. Both indices must be set and valid
// for the current catalog.
func (s Selection) OpenLesson(modules []Module) (Lesson, bool) {
	mod, ok := s.ExpandedModule(modules)
	if !ok || s.Lesson == nil || *s.Lesson < 0 || *s.Lesson >= len(mod.Lessons) {
		return Lesson{}, false
	}
	return mod.Lessons[*s.Lesson], true
}

// IsOpen reports whether lesson l of module m is the one being shown
func (s Selection) IsOpen(m, l int) bool {
	return s.Module != nil && s.Lesson != nil && *s.Module == m && *s.Lesson == l
}

// Carousel is the awareness video picker
type Carousel struct {
	Index int `json:"index"`
}

// Select jumps to video i
func (c Carousel) Select(videos []Video, i int) (Carousel, error) {
	if i < 0 || i >= len(videos) {
		return c, outOfRange("video", i, len(videos))
	}
	c.Index = i
	return c, nil
}

// Current returns the video being shown
func (c Carousel) Current(videos []Video) (Video, bool) {
	if c.Index < 0 || c.Index >= len(videos) {
		return Video{}, false
	}
	return videos[c.Index], true
}

func outOfRange(field string, i, n int) error {
	return apperrors.NewInvalidFieldError(field, fmt.Sprintf("index %d is outside [0, %d)", i, n)).
		WithContext("index", i)
}
