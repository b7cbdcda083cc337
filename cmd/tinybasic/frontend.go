package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
)

// model is the full-screen frontend: a viewport with the session
// transcript above a single input line.
type model struct {
	sess     *session
	viewport viewport.Model
	input    textinput.Model
	lines    []string
	ready    bool
}

func newModel(sess *session) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()
	return model{
		sess:     sess,
		viewport: viewport.New(80, 20),
		input:    ti,
		lines: []string{
			"Tiny BASIC Interpreter",
			"Commands: LOAD, SAVE, RUN, LIST, NEW, QUIT",
			"",
		},
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		vh := msg.Height - 2
		if vh < 1 {
			vh = 1
		}
		m.viewport.Height = vh
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			input := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if input == "" {
				return m, nil
			}
			m.lines = append(m.lines, echoStyle.Render("> "+input))
			out, quit := m.sess.Execute(input)
			for _, line := range out {
				m.lines = append(m.lines, outputStyle.Render(line))
			}
			m.refresh()
			if quit {
				return m, tea.Quit
			}
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "initializing..."
	}
	return m.viewport.View() + "\n" + inputStyle.Render(m.input.View())
}

func (m *model) refresh() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}
