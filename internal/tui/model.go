// Package tui shows the controller state in a terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/itohio/rgbknob/dev"
	"github.com/itohio/rgbknob/internal/sim"
	"github.com/itohio/rgbknob/ui"
)

// console lines kept on screen
const maxLogLines = 10

// StateMsg carries a newly published state.
type StateMsg struct {
	State ui.State
}

// LogMsg carries one console line.
type LogMsg struct {
	Line string
}

// ErrMsg ends the program with an error shown.
type ErrMsg struct {
	Err error
}

// Model renders the state. With a simulated knob and buttons attached it
// also lets the user move them.
type Model struct {
	title string
	keys  KeyMap
	help  help.Model

	knob *sim.Knob
	a, b *sim.Button
	step int

	state ui.State
	log   []string
	err   error
}

// NewSimulation creates a model driving knob, a and b. Each arrow key turns
// the knob by step raw counts.
func NewSimulation(knob *sim.Knob, a, b *sim.Button, step int) Model {
	return Model{
		title: "rgbknob simulator",
		keys:  DefaultKeyMap(),
		help:  help.New(),
		knob:  knob,
		a:     a,
		b:     b,
		step:  step,
		state: ui.DefaultState(),
	}
}

// NewMonitor creates a read only model for a device on port.
func NewMonitor(port string) Model {
	return Model{
		title: "rgbknob monitor " + port,
		keys:  monitorKeyMap(),
		help:  help.New(),
		state: ui.DefaultState(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the last published state.
func (m Model) State() ui.State {
	return m.state
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case StateMsg:
		m.state = msg.State
	case LogMsg:
		m.log = append(m.log, msg.Line)
		if len(m.log) > maxLogLines {
			m.log = m.log[len(m.log)-maxLogLines:]
		}
	case ErrMsg:
		m.err = msg.Err
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.knob.Turn(-m.step)
	case key.Matches(msg, m.keys.Up):
		m.knob.Turn(m.step)
	case key.Matches(msg, m.keys.CoarseDown):
		m.knob.Turn(-10 * m.step)
	case key.Matches(msg, m.keys.CoarseUp):
		m.knob.Turn(10 * m.step)
	case key.Matches(msg, m.keys.ToggleA):
		m.a.Toggle()
	case key.Matches(msg, m.keys.ToggleB):
		m.b.Toggle()
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n\n")

	for i, level := range m.state.Levels {
		c := ui.Color(i)
		fmt.Fprintf(&sb, "%s %d %s\n",
			labelStyle.Render(fmt.Sprintf("%-10s", c.String())),
			level,
			colorStyles[c].Render(bar(level)))
	}
	fmt.Fprintf(&sb, "%s %d fps\n", labelStyle.Render(fmt.Sprintf("%-10s", "frame rate")), m.state.FrameRate)

	if m.knob != nil {
		raw := m.knob.Sample()
		pressed := ui.Classify(m.a.Pressed(), m.b.Pressed())
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%s raw %d, level %d\n", labelStyle.Render("knob"), raw, dev.LevelFromRaw(raw))
		fmt.Fprintf(&sb, "%s A %s  B %s  controls %s\n",
			labelStyle.Render("buttons"),
			mark(m.a.Pressed()), mark(m.b.Pressed()),
			pressed.Target())
	}

	sb.WriteString("\n")
	if len(m.log) == 0 {
		sb.WriteString(consoleStyle.Render(mutedStyle.Render("no console output yet")))
	} else {
		sb.WriteString(consoleStyle.Render(strings.Join(m.log, "\n")))
	}
	sb.WriteString("\n\n")

	if m.err != nil {
		sb.WriteString(errorStyle.Render("error: " + m.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

func bar(l dev.Level) string {
	return strings.Repeat("█", int(l)) + strings.Repeat("·", int(dev.MaxLevel-l))
}

func mark(pressed bool) string {
	if pressed {
		return "●"
	}
	return "○"
}
