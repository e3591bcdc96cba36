package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"shortcuts/internal/screen"
	"shortcuts/internal/shortcut"
)

// ConfirmRemoveScreen asks before deleting one shortcut.
// Enter or y confirms; n or Esc cancels.
type ConfirmRemoveScreen struct {
	index    int
	shortcut shortcut.Shortcut
}

// Ensure ConfirmRemoveScreen implements Screen.
var _ Screen = (*ConfirmRemoveScreen)(nil)

// NewConfirmRemoveScreen asks about the shortcut at storage index.
func NewConfirmRemoveScreen(index int, sc shortcut.Shortcut) *ConfirmRemoveScreen {
	return &ConfirmRemoveScreen{index: index, shortcut: sc}
}

// HandleEvent implements Screen.
func (m *ConfirmRemoveScreen) HandleEvent(ev screen.Event, st *State) Command {
	switch {
	case key.Matches(ev.Key, dialogKeys.Quit):
		return screen.Quit[State](false)
	case key.Matches(ev.Key, dialogKeys.Confirm):
		if removed, ok := st.Store.RemoveAt(m.index); ok {
			st.save(fmt.Sprintf("Removed %s", removed.KeyCombo))
		}
		return screen.Close[State]()
	case key.Matches(ev.Key, dialogKeys.Cancel):
		return screen.Close[State]()
	}
	return screen.None[State]()
}

// Draw implements Screen.
func (m *ConfirmRemoveScreen) Draw(s screen.Surface, _ *State) {
	content := Styles.TitleWarning.Render("Remove shortcut?") + "\n\n"
	content += Styles.Label.Render(m.shortcut.KeyCombo) + "  " + m.shortcut.Description + "\n"
	content += Styles.Hint.Render(fmt.Sprintf("Looked up %d times", m.shortcut.LookupCount)) + "\n\n"
	content += newHelp().ShortHelpView([]key.Binding{dialogKeys.Confirm, dialogKeys.Cancel})
	s.DrawOverlay(Styles.BoxDanger.Render(content))
}
