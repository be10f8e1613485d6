package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyam/learnsphere/internal/screen"
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

	learn := &stubScreen{title: "learn"}
	r.Push(learn)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "learn" {
		t.Errorf("expected active 'learn', got %q", r.Active().Title())
	}
	if !learn.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "learn"})
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

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "learn"})

	replacement := &stubScreen{title: "learn2"}
	r.Replace(replacement)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "learn2" {
		t.Errorf("expected active 'learn2', got %q", r.Active().Title())
	}
	if !replacement.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "learn"}})
	if r.Active().Title() != "learn" {
		t.Fatalf("push message not handled, active %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Fatalf("pop message not handled, active %q", r.Active().Title())
	}
}
