package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Okyu59/TubeLingo/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	s2 := &stubScreen{title: "analyzing"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "analyzing" {
		t.Errorf("expected active 'analyzing', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "analyzing"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "analyzing"})

	study := &stubScreen{title: "study"}
	r.Replace(study)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "study" {
		t.Errorf("expected active 'study', got %q", r.Active().Title())
	}
	if !study.initRan {
		t.Error("expected Init() to run on replacement screen")
	}

	// Popping skips the replaced screen entirely.
	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home' after pop, got %q", r.Active().Title())
	}
}

func TestPopToRoot(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "study"})
	r.Push(&stubScreen{title: "quiz_setup"})
	r.Push(&stubScreen{title: "quiz"})

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after PopToRoot, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	s2 := &stubScreen{title: "analyzing"}
	r.Update(PushScreenMsg{Screen: s2})
	if r.Active().Title() != "analyzing" {
		t.Errorf("expected active 'analyzing', got %q", r.Active().Title())
	}

	s3 := &stubScreen{title: "study"}
	r.Update(ReplaceScreenMsg{Screen: s3})
	if r.Active().Title() != "study" {
		t.Errorf("expected active 'study', got %q", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}
