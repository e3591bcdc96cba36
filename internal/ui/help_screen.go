package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"shortcuts/internal/screen"
)

// HelpScreen lists every main screen binding.
type HelpScreen struct{}

// Ensure HelpScreen implements Screen.
var _ Screen = (*HelpScreen)(nil)

// NewHelpScreen creates the help overlay.
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{}
}

// HandleEvent implements Screen.
func (m *HelpScreen) HandleEvent(ev screen.Event, _ *State) Command {
	switch {
	case key.Matches(ev.Key, dialogKeys.Quit):
		return screen.Quit[State](false)
	case key.Matches(ev.Key, dialogKeys.Close):
		return screen.Close[State]()
	case key.Matches(ev.Key, dialogKeys.Add):
		return screen.Swap[State](NewAddScreen())
	}
	return screen.None[State]()
}

// Draw implements Screen.
func (m *HelpScreen) Draw(s screen.Surface, _ *State) {
	h := newHelp()
	h.ShowAll = true
	content := Styles.Title.Render("Keys") + "\n\n"
	content += h.View(Keys) + "\n\n"
	content += h.ShortHelpView([]key.Binding{dialogKeys.Add, dialogKeys.Close})
	s.DrawOverlay(Styles.Box.Render(content))
}
