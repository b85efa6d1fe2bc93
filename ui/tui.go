package ui

import (
	"strings"

	"github.com/LKW000/The-Saga-of-Eldoria/story"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxLogLines = 500

type Model struct {
	Driver   *story.Driver
	Input    textinput.Model
	Log      []string
	Quitting bool
	height   int
}

func NewModel(d *story.Driver) Model {
	ti := textinput.New()
	ti.Placeholder = "command"
	ti.CharLimit = 32
	ti.Width = 40
	ti.Focus()

	m := Model{Driver: d, Input: ti}
	m.Log = append(m.Log, d.Output()...)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Driver.Mode() == story.ModeEnded {
				m.Quitting = true
				return m, tea.Quit
			}
			tok := m.Input.Value()
			m.Input.Reset()
			m.Driver.Submit(tok)
			m.Log = append(m.Log, m.Driver.Output()...)
			if len(m.Log) > maxLogLines {
				m.Log = m.Log[len(m.Log)-maxLogLines:]
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Quitting {
		return "Farewell, adventurer.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("-- The Saga of Eldoria --"))
	b.WriteString("\n")

	for _, line := range m.visibleLog() {
		b.WriteString(logStyle.Render(line))
		b.WriteString("\n")
	}

	if m.Driver.InCombat() {
		b.WriteString(statusStyle.Render(m.Driver.StatusLine()))
		b.WriteString("\n")
	}

	if m.Driver.Mode() == story.ModeEnded {
		b.WriteString(promptStyle.Render("Press enter to leave."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(promptStyle.Render(m.Driver.Prompt()))
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

// visibleLog trims the scrollback to what fits above the prompt.
func (m Model) visibleLog() []string {
	keep := m.height - 5
	if keep <= 0 {
		keep = 20
	}
	if len(m.Log) > keep {
		return m.Log[len(m.Log)-keep:]
	}
	return m.Log
}
