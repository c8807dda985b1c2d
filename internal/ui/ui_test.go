package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustpress/adminterm/internal/config"
	"github.com/rustpress/adminterm/internal/shell"
	"github.com/rustpress/adminterm/internal/vfs"
)

func newTestModel() Model {
	cfg := config.DefaultConfig()
	cfg.Terminal.Locked = false
	interp := shell.New(cfg)
	sess := shell.NewSession(cfg, vfs.DefaultTree())
	return NewModel(interp, sess, nil)
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestSubmitAppendsToLog(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("whoami")

	next, _ := m.Update(keyMsg(tea.KeyEnter))
	m = next.(Model)

	require.NotEmpty(t, m.log)
	last := m.log[len(m.log)-1]
	assert.Equal(t, shell.LineOutput, last.Kind)
	assert.Equal(t, "admin", last.Text)
	assert.Empty(t, m.input.Value())
}

func TestExitCommandQuits(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("exit")

	_, cmd := m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestClearCommandEmptiesLog(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("clear")

	next, _ := m.Update(keyMsg(tea.KeyEnter))
	m = next.(Model)
	assert.Empty(t, m.log)
}

func TestCtrlLEmptiesLog(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(keyMsg(tea.KeyCtrlL))
	m = next.(Model)
	assert.Empty(t, m.log)
}

func TestTabCompletion(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("wh")

	next, _ := m.Update(keyMsg(tea.KeyTab))
	m = next.(Model)
	assert.Equal(t, "whoami", m.input.Value())

	// No match leaves the input alone.
	m.input.SetValue("zz")
	next, _ = m.Update(keyMsg(tea.KeyTab))
	m = next.(Model)
	assert.Equal(t, "zz", m.input.Value())
}

func TestHistoryKeys(t *testing.T) {
	m := newTestModel()

	for _, cmdline := range []string{"pwd", "whoami"} {
		m.input.SetValue(cmdline)
		next, _ := m.Update(keyMsg(tea.KeyEnter))
		m = next.(Model)
	}

	next, _ := m.Update(keyMsg(tea.KeyUp))
	m = next.(Model)
	assert.Equal(t, "whoami", m.input.Value())

	next, _ = m.Update(keyMsg(tea.KeyUp))
	m = next.(Model)
	assert.Equal(t, "pwd", m.input.Value())

	// Stepping forward past the newest entry clears the input.
	next, _ = m.Update(keyMsg(tea.KeyDown))
	m = next.(Model)
	assert.Equal(t, "whoami", m.input.Value())

	next, _ = m.Update(keyMsg(tea.KeyDown))
	m = next.(Model)
	assert.Empty(t, m.input.Value())
}

func TestHelpOverlayToggle(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(keyMsg(tea.KeyF1))
	m = next.(Model)
	assert.True(t, m.showHelp)
	// With no renderer the raw markdown is used.
	assert.Equal(t, helpMarkdown, m.helpView)

	next, _ = m.Update(keyMsg(tea.KeyF1))
	m = next.(Model)
	assert.False(t, m.showHelp)
}
