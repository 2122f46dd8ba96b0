package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestReplModelSubmitLineInvokesEvaluator(t *testing.T) {
	var seen string
	eval := func(line string) (string, bool) {
		seen = line
		return "=> ok", false
	}
	m := NewReplModel("myst> ", eval).(*replModel)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1 + 1")})
	m = updated.(*replModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*replModel)

	if seen != "1 + 1" {
		t.Fatalf("evaluator saw %q, want %q", seen, "1 + 1")
	}
	if len(m.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(m.history))
	}
	if m.history[0].isError {
		t.Fatalf("expected a non-error entry")
	}
	if m.input.Value() != "" {
		t.Fatalf("expected the input to clear after submit, got %q", m.input.Value())
	}
}

func TestReplModelExitQuitsWithoutEvaluating(t *testing.T) {
	called := false
	eval := func(line string) (string, bool) {
		called = true
		return "", false
	}
	m := NewReplModel("myst> ", eval).(*replModel)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("exit")})
	m = updated.(*replModel)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*replModel)

	if called {
		t.Fatalf("exit must not reach the evaluator")
	}
	if !m.quitting {
		t.Fatalf("expected quitting to be set")
	}
	if cmd == nil {
		t.Fatalf("expected a tea.Quit command")
	}
}

func TestReplModelCtrlCQuits(t *testing.T) {
	m := NewReplModel("myst> ", func(string) (string, bool) { return "", false }).(*replModel)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(*replModel)
	if !m.quitting || cmd == nil {
		t.Fatalf("expected ctrl-c to set quitting and return tea.Quit")
	}
}
