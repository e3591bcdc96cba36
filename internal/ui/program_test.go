package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortcuts/internal/screen"
)

func TestModel_ResizeAndView(t *testing.T) {
	st, _, _ := newTestState(t, counted("ctrl+c", "copy", 1))
	m := newModel(NewNavigator(st))
	assert.Nil(t, m.Init())

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 50, Height: 12})
	assert.Nil(t, cmd)
	w, h := m.canvas.Size()
	assert.Equal(t, 50, w)
	assert.Equal(t, 12, h)

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 12)
	assert.Contains(t, view, "Shortcuts (1)")
}

func TestModel_KeysDriveNavigator(t *testing.T) {
	st, _, _ := newTestState(t)
	m := newModel(NewNavigator(st))

	_, cmd := m.Update(keyMsg("?"))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.nav.Depth())
	assert.Contains(t, m.View(), "Keys")

	m.Update(keyMsg("esc"))
	assert.Equal(t, 1, m.nav.Depth())

	_, cmd = m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.nav.Running())
	assert.Empty(t, m.View())
}

func TestModel_CtrlCQuitsFromAddForm(t *testing.T) {
	st, _, _ := newTestState(t)
	m := newModel(NewNavigator(st))

	m.Update(keyMsg("n"))
	require.Equal(t, 2, m.nav.Depth())

	_, cmd := m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.nav.Running())
}

func TestNewProgram(t *testing.T) {
	st, _, _ := newTestState(t)
	assert.NotNil(t, NewProgram(st, ProgramOptions{AltScreen: true}))
	assert.NotNil(t, NewProgram(st, ProgramOptions{Extra: []tea.ProgramOption{tea.WithInput(nil)}}))
}

func TestNavigatorRun_Script(t *testing.T) {
	st, _, _ := newTestState(t, counted("ctrl+c", "copy", 1))
	script := strings.Join([]string{
		"# add a shortcut, then look it up",
		"n",
		"type ctrl+t",
		"tab",
		"type new tab",
		"enter",
		"release enter",
		"j",
		"enter",
		"q",
	}, "\n")

	var frames bytes.Buffer
	nav := NewNavigator(st)
	err := nav.Run(context.Background(), screen.NewScriptSource(strings.NewReader(script)),
		&screen.WriterRenderer{W: &frames, Width: 70, Height: 20})
	require.NoError(t, err)
	assert.False(t, nav.Running())

	saved := reload(t, st)
	require.Len(t, saved, 2)
	assert.Equal(t, "ctrl+t", saved[1].KeyCombo)
	assert.Equal(t, "new tab", saved[1].Description)
	assert.Equal(t, uint(DefaultIncrement), saved[1].LookupCount)
	assert.Contains(t, frames.String(), "New shortcut")
}

func TestNavigatorRun_EndOfScript(t *testing.T) {
	st, _, _ := newTestState(t)
	nav := NewNavigator(st)
	err := nav.Run(context.Background(), screen.NewScriptSource(strings.NewReader("j\n")),
		&screen.WriterRenderer{W: io.Discard})
	assert.True(t, errors.Is(err, io.EOF))
	assert.True(t, nav.Running())
}
