package tui

import (
	"strings"

	"github.com/aretw0/pillars"
	"github.com/aretw0/pillars/internal/presentation/view"
	"github.com/aretw0/pillars/pkg/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Controller is the part of the widget the TUI drives.
type Controller interface {
	Activate() pillars.Action
	Reset()
	Close()
}

type stateMsg domain.RollState

type closedMsg struct{}

// Model is the bubbletea model of the dice screen.
type Model struct {
	widget  Controller
	updates <-chan domain.RollState
	state   domain.RollState
	keys    keyMap
	help    help.Model
	width   int
}

// NewModel creates a screen fed by the widget's snapshot stream.
func NewModel(widget Controller, updates <-chan domain.RollState) Model {
	m := Model{
		widget:  widget,
		updates: updates,
		state:   domain.NewRollState(),
		keys:    newKeyMap(),
		help:    help.New(),
	}
	m.syncKeys()
	return m
}

// State returns the last snapshot received.
func (m Model) State() domain.RollState {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return waitForState(m.updates)
}

func waitForState(updates <-chan domain.RollState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return closedMsg{}
		}
		return stateMsg(s)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.widget.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Activate):
			m.widget.Activate()
		case key.Matches(msg, m.keys.Reset):
			m.widget.Reset()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case stateMsg:
		m.state = domain.RollState(msg)
		m.syncKeys()
		return m, waitForState(m.updates)

	case closedMsg:
		return m, tea.Quit
	}
	return m, nil
}

// syncKeys mirrors the primary control: disabled while rolling, Start Over when done.
func (m *Model) syncKeys() {
	ctrl := view.Build(m.state).Control
	m.keys.Activate.SetEnabled(ctrl.Enabled)
	m.keys.Reset.SetEnabled(ctrl.Kind == view.ControlReset)
	if ctrl.Kind == view.ControlReset {
		m.keys.Activate.SetHelp("enter/space", "start over")
	} else {
		m.keys.Activate.SetHelp("enter/space", "roll")
	}
}

func (m Model) View() string {
	v := view.Build(m.state)

	sections := []string{
		titleStyle.Render(v.Title),
		statusStyle.Render(v.Status),
		"",
		renderDie(v),
		"",
		renderBanner(v),
		"",
		renderButton(v.Control),
	}
	if trail := renderTrail(v.Trail); trail != "" {
		sections = append(sections, "", trail)
	}
	sections = append(sections, "", m.help.View(m.keys))

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 {
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body + "\n"
}

func renderDie(v view.Model) string {
	grid := view.Grid(v.Face)
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for _, on := range row {
			if on {
				cells = append(cells, pipStyle.Render("●"))
			} else {
				cells = append(cells, " ")
			}
		}
		rows = append(rows, strings.Join(cells, "   "))
	}
	return dieStyle(v.DieAccent).Render(strings.Join(rows, "\n"))
}

func renderBanner(v view.Model) string {
	if v.Banner == nil {
		// Keep the layout stable while rolling.
		return "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		v.Banner.Glyph,
		bannerStyle(v.Banner.Accent).Render(v.Banner.Name),
	)
}

func renderButton(c view.Control) string {
	switch c.Kind {
	case view.ControlRolling:
		return busyButtonStyle.Render(c.Label)
	case view.ControlReset:
		return resetButtonStyle.Render(c.Label)
	}
	return buttonStyle.Render(c.Label)
}

func renderTrail(entries []view.TrailEntry) string {
	if len(entries) == 0 {
		return ""
	}
	chips := make([]string, 0, len(entries))
	for _, e := range entries {
		chips = append(chips, chipStyle.
			BorderForeground(lipgloss.Color(e.Accent)).
			Foreground(lipgloss.Color(e.Accent)).
			Render(e.Glyph+" "+e.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}
