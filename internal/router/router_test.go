package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/learnloop/learnloop/internal/screen"
)

// probe records lifecycle calls so tests can assert routing behavior.
type probe struct {
	name  string
	inits int
	got   []tea.Msg
}

func (p *probe) Init() tea.Cmd { p.inits++; return nil }
func (p *probe) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}
func (p *probe) View(int, int) string { return "[" + p.name + "]" }
func (p *probe) Title() string        { return p.name }

// swapper hands control to another screen on its first update.
type swapper struct {
	probe
	next screen.Screen
}

func (s *swapper) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s.next, nil }

type pingMsg struct{}

func TestPushRunsInitAndActivates(t *testing.T) {
	home := &probe{name: "home"}
	r := New(home)

	form := &probe{name: "form"}
	r.Push(form)

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if r.Active() != screen.Screen(form) {
		t.Errorf("Active() = %v, want the pushed screen", r.Active())
	}
	if form.inits != 1 {
		t.Errorf("pushed screen inits = %d, want 1", form.inits)
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	home := &probe{name: "home"}
	r := New(home)
	r.Push(&probe{name: "form"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
	if r.Active() != screen.Screen(home) {
		t.Errorf("Active() = %v, want home", r.Active())
	}
}

func TestPopKeepsLastScreen(t *testing.T) {
	home := &probe{name: "home"}
	r := New(home)

	r.Pop()

	if r.Depth() != 1 || r.Active() != screen.Screen(home) {
		t.Errorf("pop on a stack of one changed it: depth %d", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&probe{name: "welcome"})
	r.Push(&probe{name: "form"})

	next := &probe{name: "home"}
	r.Replace(next)

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if r.Active() != screen.Screen(next) {
		t.Errorf("Active() = %v, want replacement", r.Active())
	}
	if next.inits != 1 {
		t.Errorf("replacement inits = %d, want 1", next.inits)
	}
}

func TestNavigationMessages(t *testing.T) {
	home := &probe{name: "home"}
	r := New(home)

	form := &probe{name: "form"}
	r.Update(PushScreenMsg{Screen: form})
	if r.Active() != screen.Screen(form) {
		t.Fatal("PushScreenMsg did not activate the new screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != screen.Screen(home) {
		t.Fatal("PopScreenMsg did not restore the previous screen")
	}

	splash := &probe{name: "splash"}
	r.Update(ReplaceScreenMsg{Screen: splash})
	if r.Active() != screen.Screen(splash) || r.Depth() != 1 {
		t.Fatalf("ReplaceScreenMsg: active %v depth %d", r.Active(), r.Depth())
	}
}

func TestUpdateReachesOnlyActiveScreen(t *testing.T) {
	home := &probe{name: "home"}
	r := New(home)
	form := &probe{name: "form"}
	r.Push(form)

	r.Update(pingMsg{})

	if len(form.got) != 1 {
		t.Errorf("active screen saw %d messages, want 1", len(form.got))
	}
	if len(home.got) != 0 {
		t.Errorf("covered screen saw %d messages, want 0", len(home.got))
	}
}

func TestUpdateAdoptsReturnedScreen(t *testing.T) {
	home := &probe{name: "home"}
	r := New(&swapper{probe: probe{name: "splash"}, next: home})

	r.Update(pingMsg{})

	if r.Active() != screen.Screen(home) {
		t.Errorf("Active() = %v, want the screen returned by Update", r.Active())
	}
	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
}

func TestViewRendersActive(t *testing.T) {
	r := New(&probe{name: "home"})
	r.Push(&probe{name: "progress"})

	if got := r.View(80, 24); got != "[progress]" {
		t.Errorf("View() = %q, want %q", got, "[progress]")
	}
}
