package tui

import (
	"testing"

	"github.com/aretw0/pillars"
	"github.com/aretw0/pillars/pkg/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	activations int
	resets      int
	closed      bool
}

func (f *fakeController) Activate() pillars.Action {
	f.activations++
	return pillars.ActionRoll
}
func (f *fakeController) Reset() { f.resets++ }
func (f *fakeController) Close() { f.closed = true }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func allRevealed() domain.RollState {
	return domain.RollState{
		CurrentIndex:  3,
		DisplayedFace: 4,
		ResultVisible: true,
		History:       domain.CategoryNames(),
	}
}

func TestModel_ActivateKeys(t *testing.T) {
	ctrl := &fakeController{}
	m := NewModel(ctrl, make(chan domain.RollState))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, 2, ctrl.activations)

	m, _ = update(t, m, keyRunes("r"))
	assert.Equal(t, 0, ctrl.resets, "reset key disabled until every pillar is revealed")
}

func TestModel_DisabledWhileRolling(t *testing.T) {
	ctrl := &fakeController{}
	m := NewModel(ctrl, make(chan domain.RollState))

	m, _ = update(t, m, stateMsg(domain.RollState{CurrentIndex: -1, IsAnimating: true, DisplayedFace: 3}))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, ctrl.activations)
	assert.Contains(t, m.View(), "Rolling...")
}

func TestModel_StartOver(t *testing.T) {
	ctrl := &fakeController{}
	m := NewModel(ctrl, make(chan domain.RollState))

	m, cmd := update(t, m, stateMsg(allRevealed()))
	assert.NotNil(t, cmd, "keeps listening for updates")

	view := m.View()
	assert.Contains(t, view, "Start Over")
	assert.Contains(t, view, "All pillars revealed!")
	assert.Contains(t, view, "Roll 4: Situation & Context")
	assert.Contains(t, view, "SITUATION & CONTEXT")

	m, _ = update(t, m, keyRunes("r"))
	assert.Equal(t, 1, ctrl.resets)
}

func TestModel_Quit(t *testing.T) {
	ctrl := &fakeController{}
	m := NewModel(ctrl, make(chan domain.RollState))

	_, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.True(t, ctrl.closed, "quitting tears the widget down")
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_StreamClosed(t *testing.T) {
	updates := make(chan domain.RollState)
	close(updates)
	m := NewModel(&fakeController{}, updates)

	msg := m.Init()()
	assert.Equal(t, closedMsg{}, msg)

	_, cmd := update(t, m, msg)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ReceivesState(t *testing.T) {
	updates := make(chan domain.RollState, 1)
	m := NewModel(&fakeController{}, updates)

	updates <- domain.RollState{CurrentIndex: 0, DisplayedFace: 1, ResultVisible: true, History: []string{"Government"}}
	msg := m.Init()()
	m, _ = update(t, m, msg)

	assert.Equal(t, []string{"Government"}, m.State().History)
	view := m.View()
	assert.Contains(t, view, "GOVERNMENT")
	assert.Contains(t, view, "Roll Again")
	assert.Contains(t, view, "Roll 2 of 4")
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(&fakeController{}, make(chan domain.RollState))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.NotEmpty(t, m.View())
}
