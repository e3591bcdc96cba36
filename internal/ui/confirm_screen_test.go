package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortcuts/internal/screen"
)

func TestConfirmRemoveScreen(t *testing.T) {
	tests := []struct {
		key        string
		wantKind   screen.CommandKind
		wantLen    int
		wantStatus string
	}{
		{"y", screen.CmdClose, 1, "Removed ctrl+c"},
		{"enter", screen.CmdClose, 1, "Removed ctrl+c"},
		{"n", screen.CmdClose, 2, ""},
		{"esc", screen.CmdClose, 2, ""},
		{"x", screen.CmdNone, 2, ""},
		{"ctrl+c", screen.CmdQuit, 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			st, _, _ := newTestState(t, counted("ctrl+c", "copy", 1), counted("ctrl+v", "paste", 2))
			sc, _ := st.Store.At(0)
			m := NewConfirmRemoveScreen(0, sc)

			cmd := m.HandleEvent(press(tt.key), st)
			assert.Equal(t, tt.wantKind, cmd.Kind)
			assert.Equal(t, tt.wantLen, st.Store.Len())
			assert.Equal(t, tt.wantStatus, st.Status)
		})
	}
}

func TestConfirmRemoveScreen_PersistsRemoval(t *testing.T) {
	st, _, _ := newTestState(t, counted("ctrl+c", "copy", 1), counted("ctrl+v", "paste", 2))
	sc, _ := st.Store.At(1)
	NewConfirmRemoveScreen(1, sc).HandleEvent(press("y"), st)

	saved := reload(t, st)
	require.Len(t, saved, 1)
	assert.Equal(t, "ctrl+c", saved[0].KeyCombo)
}

func TestConfirmRemoveScreen_StaleIndexIsNoop(t *testing.T) {
	st, _, _ := newTestState(t, counted("ctrl+c", "copy", 1))
	cmd := NewConfirmRemoveScreen(5, counted("gone", "", 0)).HandleEvent(press("y"), st)
	assert.Equal(t, screen.CmdClose, cmd.Kind)
	assert.Equal(t, 1, st.Store.Len())
	assert.Empty(t, st.Status)
}

func TestConfirmRemoveScreen_Draw(t *testing.T) {
	st, _, _ := newTestState(t)
	c := screen.NewCanvas(0, 0)
	NewConfirmRemoveScreen(0, counted("ctrl+c", "copy", 3)).Draw(c, st)
	out := c.String()
	assert.Contains(t, out, "Remove shortcut?")
	assert.Contains(t, out, "ctrl+c")
	assert.Contains(t, out, "Looked up 3 times")
}
