package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shortcuts/internal/screen"
)

func TestHelpScreen_Keys(t *testing.T) {
	st, _, _ := newTestState(t)

	for _, k := range []string{"esc", "?", "q"} {
		cmd := NewHelpScreen().HandleEvent(press(k), st)
		assert.Equal(t, screen.CmdClose, cmd.Kind, k)
	}

	cmd := NewHelpScreen().HandleEvent(press("n"), st)
	assert.Equal(t, screen.CmdSwap, cmd.Kind)
	assert.IsType(t, &AddScreen{}, cmd.Screen)

	cmd = NewHelpScreen().HandleEvent(press("ctrl+c"), st)
	assert.Equal(t, screen.CmdQuit, cmd.Kind)

	cmd = NewHelpScreen().HandleEvent(press("j"), st)
	assert.Equal(t, screen.CmdNone, cmd.Kind)
}

func TestHelpScreen_DrawListsAllBindings(t *testing.T) {
	st, _, _ := newTestState(t)
	c := screen.NewCanvas(0, 0)
	NewHelpScreen().Draw(c, st)
	out := c.String()
	for _, desc := range []string{"look up", "copy combo", "new", "delete", "quit"} {
		assert.Contains(t, out, desc)
	}
}
