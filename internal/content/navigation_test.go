package content

import (
	"errors"
	"testing"

	apperrors "github.com/vladimiradmaev/diabetes-tracker/internal/errors"
)

func TestSelectionStartsEmpty(t *testing.T) {
	var s Selection
	if _, ok := s.OpenLesson(Modules); ok {
		t.Error("empty selection should not show a lesson")
	}
	if _, ok := s.ExpandedModule(Modules); ok {
		t.Error("empty selection should not expand a module")
	}
}

func TestSelectModuleOnly(t *testing.T) {
	s, err := Selection{}.SelectModule(Modules, 1)
	if err != nil {
		t.Fatalf("SelectModule() error = %v", err)
	}
	mod, ok := s.ExpandedModule(Modules)
	if !ok || mod.Title != "Insulin Management" {
		t.Errorf("ExpandedModule() = %q, %v", mod.Title, ok)
	}
	if _, ok := s.OpenLesson(Modules); ok {
		t.Error("module click alone must not open a lesson")
	}
}

func TestSelectLessonSetsModule(t *testing.T) {
	s, err := Selection{}.SelectLesson(Modules, 2, 1)
	if err != nil {
		t.Fatalf("SelectLesson() error = %v", err)
	}
	if s.Module == nil || *s.Module != 2 {
		t.Fatalf("Module = %v, want 2", s.Module)
	}
	lesson, ok := s.OpenLesson(Modules)
	if !ok || lesson.Title != "Exercise Guidelines" {
		t.Errorf("OpenLesson() = %q, %v", lesson.Title, ok)
	}
	if !s.IsOpen(2, 1) || s.IsOpen(1, 1) {
		t.Error("IsOpen() reports the wrong lesson")
	}
}

func TestModuleClickKeepsLessonIndex(t *testing.T) {
	s, _ := Selection{}.SelectLesson(Modules, 0, 2)
	s, err := s.SelectModule(Modules, 1)
	if err != nil {
		t.Fatal(err)
	}
	lesson, ok := s.OpenLesson(Modules)
	if !ok || lesson.Title != "Injection Techniques" {
		t.Errorf("OpenLesson() = %q, %v; want module 1 lesson 2", lesson.Title, ok)
	}
}

func TestLessonHiddenWhenIndexInvalidForModule(t *testing.T) {
	catalog := []Module{
		{Title: "A", Lessons: []Lesson{{Title: "a1"}, {Title: "a2"}}},
		{Title: "B", Lessons: []Lesson{{Title: "b1"}}},
	}
	s, _ := Selection{}.SelectLesson(catalog, 0, 1)
	s, _ = s.SelectModule(catalog, 1)
	if _, ok := s.OpenLesson(catalog); ok {
		t.Error("lesson index 1 is invalid for module B and must not render")
	}
}

func TestSelectionOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		run  func() (Selection, error)
	}{
		{"module negative", func() (Selection, error) { return Selection{}.SelectModule(Modules, -1) }},
		{"module too large", func() (Selection, error) { return Selection{}.SelectModule(Modules, len(Modules)) }},
		{"lesson too large", func() (Selection, error) { return Selection{}.SelectLesson(Modules, 0, 3) }},
		{"lesson module too large", func() (Selection, error) { return Selection{}.SelectLesson(Modules, 9, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.run()
			if !errors.Is(err, apperrors.ErrInvalidField) {
				t.Fatalf("error = %v, want INVALID_FIELD", err)
			}
			if s.Module != nil || s.Lesson != nil {
				t.Errorf("selection changed on error: %+v", s)
			}
		})
	}
}

func TestCarousel(t *testing.T) {
	var c Carousel
	v, ok := c.Current(Videos)
	if !ok || v.Title != Videos[0].Title {
		t.Errorf("default video = %q, %v", v.Title, ok)
	}

	c, err := c.Select(Videos, 2)
	if err != nil || c.Index != 2 {
		t.Fatalf("Select(2) = %+v, %v", c, err)
	}

	next, err := c.Select(Videos, 3)
	if err == nil {
		t.Fatal("Select(3) should fail without wraparound")
	}
	if next.Index != 2 {
		t.Errorf("Index = %d after failed select, want 2", next.Index)
	}
}
