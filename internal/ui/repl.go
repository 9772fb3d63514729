// Package ui holds the Bubble Tea model for the interactive session: a
// prompt line plus a scrollback of expression/result pairs.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"calcyard/pkg/calc"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	echoStyle   = lipgloss.NewStyle().Faint(true)
)

type historyEntry struct {
	expr   string
	output string
	ok     bool
}

// ReplModel drives one interactive session over a shared evaluator.
type ReplModel struct {
	eval    *calc.Evaluator
	prompt  string
	input   textinput.Model
	history []historyEntry
	width   int
	done    bool
}

// NewRepl returns a REPL model bound to the given evaluator.
func NewRepl(eval *calc.Evaluator, prompt string) *ReplModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "1 + 2 * 3"
	ti.Focus()
	return &ReplModel{
		eval:   eval,
		prompt: prompt,
		input:  ti,
		width:  80,
	}
}

// Init implements tea.Model.
func (m *ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			expr := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if expr == "" {
				return m, nil
			}
			if expr == ":q" || expr == ":quit" {
				m.done = true
				return m, tea.Quit
			}
			ok, out := m.eval.TryEvaluate(expr)
			m.history = append(m.history, historyEntry{expr: expr, output: out, ok: ok})
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *ReplModel) View() string {
	var b strings.Builder
	for _, h := range m.history {
		b.WriteString(clamp(echoStyle.Render(m.prompt+h.expr), m.width))
		b.WriteByte('\n')
		line := resultStyle.Render(h.output)
		if !h.ok {
			line = errorStyle.Render("error: " + h.output)
		}
		b.WriteString(clamp(line, m.width))
		b.WriteByte('\n')
	}
	if !m.done {
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}
	return b.String()
}

// clamp trims a rendered line to the window width by display cells.
func clamp(line string, width int) string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return line
	}
	if width <= 3 {
		return runewidth.Truncate(line, width, "")
	}
	return runewidth.Truncate(line, width-3, "...")
}
