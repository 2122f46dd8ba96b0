package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReplEvaluator runs one line of source against a persistent interpreter,
// returning its printed form (already run through rtfmt) or an error
// message to show instead. cmd/myst's repl command supplies the closure;
// internal/ui stays free of a dependency on internal/interp/internal/parse
// the way progress.go stays free of a dependency on the compiler it reports
// on.
type ReplEvaluator func(line string) (output string, isError bool)

// replModel is a single persistent-session line editor: each submitted
// line accumulates into the scrollback the way irb/pry echoes `=> value`
// beneath what was typed, bindings and types carrying over between lines.
type replModel struct {
	input    textinput.Model
	eval     ReplEvaluator
	history  []replEntry
	prompt   string
	width    int
	quitting bool
}

type replEntry struct {
	line    string
	output  string
	isError bool
}

// NewReplModel returns a Bubble Tea model for an interactive myst session.
func NewReplModel(prompt string, eval ReplEvaluator) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "expression"
	ti.Prompt = prompt
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 72

	return &replModel{input: ti, eval: eval, prompt: prompt, width: 80}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(m.prompt) - 2
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "exit" || line == "quit" {
				m.quitting = true
				return m, tea.Quit
			}
			output, isErr := m.eval(line)
			m.history = append(m.history, replEntry{line: line, output: output, isError: isErr})
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	if m.quitting {
		return ""
	}
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	var b strings.Builder
	for _, entry := range m.history {
		fmt.Fprintf(&b, "%s%s\n", m.prompt, entry.line)
		if entry.isError {
			b.WriteString(errStyle.Render(entry.output))
		} else {
			b.WriteString(okStyle.Render(entry.output))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}
