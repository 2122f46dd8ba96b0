package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"myst/internal/trace"
)

// progressModel renders live progress for `myst run --progress`: one row
// per top-level statement, driven by the ScopePass "stmt[i]" spans
// interp.Interpreter.Run emits when given a trace.ChanTracer.
type progressModel struct {
	title   string
	events  <-chan *trace.Event
	spinner spinner.Model
	prog    progress.Model
	items   []stmtItem
	width   int
	done    bool
}

type stmtItem struct {
	label  string
	status string
}

type eventMsg *trace.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model tracking stmtCount top-level
// statements as they execute, fed by events.
func NewProgressModel(title string, stmtCount int, events <-chan *trace.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]stmtItem, stmtCount)
	for i := range items {
		items[i] = stmtItem{label: fmt.Sprintf("stmt[%d]", i), status: "queued"}
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent((*trace.Event)(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 10
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.items {
		name := truncate(item.label, nameWidth)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%10s", item.status))
		b.WriteString(fmt.Sprintf("  %s %s\n", statusStyled, name))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

// stmtIndex extracts i from a "stmt[i]" span name, or -1 if ev isn't one.
func stmtIndex(name string) int {
	if !strings.HasPrefix(name, "stmt[") || !strings.HasSuffix(name, "]") {
		return -1
	}
	n, err := strconv.Atoi(name[len("stmt[") : len(name)-1])
	if err != nil {
		return -1
	}
	return n
}

func (m *progressModel) applyEvent(ev *trace.Event) tea.Cmd {
	idx := stmtIndex(ev.Name)
	if idx < 0 || idx >= len(m.items) {
		return nil
	}
	switch ev.Kind {
	case trace.KindSpanBegin:
		m.items[idx].status = "running"
	case trace.KindSpanEnd:
		if ev.Detail == "ok" {
			m.items[idx].status = "done"
		} else {
			m.items[idx].status = "error"
		}
	}

	done := 0
	for _, item := range m.items {
		if item.status == "done" || item.status == "error" {
			done++
		}
	}
	pct := float64(done) / float64(len(m.items))
	return m.prog.SetPercent(pct)
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "running":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
