package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest/observer"

	"shortcuts/internal/logger"
	"shortcuts/internal/screen"
	"shortcuts/internal/shortcut"
)

// keyMsg builds a key message from bubbletea key notation.
func keyMsg(s string) tea.KeyMsg {
	k, err := screen.ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func press(s string) screen.Event {
	return screen.Press(keyMsg(s))
}

// newTestState returns a state backed by a store in a temp dir, a recording
// clipboard and a capturing logger.
func newTestState(t *testing.T, shortcuts ...shortcut.Shortcut) (*State, *[]string, *observer.ObservedLogs) {
	t.Helper()
	ctx, logs := logger.TestContext()
	store := shortcut.NewStore(filepath.Join(t.TempDir(), "shortcuts.json"))
	for _, sc := range shortcuts {
		store.Add(sc)
	}
	st := NewState(ctx, store)
	var copied []string
	st.Clipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	return st, &copied, logs
}

// reload reads the state's store back from disk.
func reload(t *testing.T, st *State) []shortcut.Shortcut {
	t.Helper()
	s, err := shortcut.Load(context.Background(), st.Store.Path())
	require.NoError(t, err)
	return s.All()
}

// breakStore points the store at a path that cannot be written.
func breakStore(t *testing.T, st *State) {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	moved := shortcut.NewStore(filepath.Join(blocker, "shortcuts.json"))
	for _, sc := range st.Store.All() {
		moved.Add(sc)
	}
	st.Store = moved
}

func counted(combo, desc string, count uint) shortcut.Shortcut {
	sc := shortcut.New(combo, desc)
	sc.LookupCount = count
	return sc
}

var errClipboard = errors.New("no clipboard")
