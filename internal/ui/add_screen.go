package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"shortcuts/internal/screen"
	"shortcuts/internal/shortcut"
)

const (
	fieldCombo       = "combo"
	fieldDescription = "description"
)

// AddScreen is an overlay form for entering a new shortcut.
type AddScreen struct {
	combo       textinput.Model
	description textinput.Model
	focus       *FocusManager
	err         string
}

// Ensure AddScreen implements Screen.
var _ Screen = (*AddScreen)(nil)

// NewAddScreen creates the form with the shortcut field focused.
func NewAddScreen() *AddScreen {
	combo := textinput.New()
	combo.Placeholder = "ctrl+shift+t"
	combo.Width = 30
	combo.Prompt = "> "
	combo.Focus()

	desc := textinput.New()
	desc.Placeholder = "reopen closed tab"
	desc.Width = 30
	desc.Prompt = "> "

	m := &AddScreen{combo: combo, description: desc}
	m.focus = &FocusManager{
		Current: fieldCombo,
		Order:   []string{fieldCombo, fieldDescription},
		OnChange: func(from, to string) {
			m.input(from).Blur()
			m.input(to).Focus()
		},
	}
	return m
}

func (m *AddScreen) input(id string) *textinput.Model {
	if id == fieldDescription {
		return &m.description
	}
	return &m.combo
}

// Values returns the trimmed form contents.
func (m *AddScreen) Values() (combo, description string) {
	return strings.TrimSpace(m.combo.Value()), strings.TrimSpace(m.description.Value())
}

// HandleEvent implements Screen.
func (m *AddScreen) HandleEvent(ev screen.Event, st *State) Command {
	k := ev.Key
	switch {
	case key.Matches(k, formKeys.Quit):
		return screen.Quit[State](false)
	case key.Matches(k, formKeys.Cancel):
		return screen.Close[State]()
	case key.Matches(k, formKeys.Next):
		m.focus.Next()
		return screen.None[State]()
	case key.Matches(k, formKeys.Prev):
		m.focus.Prev()
		return screen.None[State]()
	case key.Matches(k, formKeys.Submit):
		return m.submit(st)
	}

	in := m.input(m.focus.Current)
	*in, _ = in.Update(k)
	m.err = ""
	return screen.None[State]()
}

func (m *AddScreen) submit(st *State) Command {
	combo, desc := m.Values()
	switch {
	case combo == "":
		m.err = "Shortcut must not be empty"
		m.focus.SetFocus(fieldCombo)
		return screen.None[State]()
	case desc == "":
		m.err = "Description must not be empty"
		m.focus.SetFocus(fieldDescription)
		return screen.None[State]()
	}
	st.Store.Add(shortcut.New(combo, desc))
	st.save(fmt.Sprintf("Added %s", combo))
	return screen.Close[State]()
}

// Draw implements Screen.
func (m *AddScreen) Draw(s screen.Surface, _ *State) {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("New shortcut") + "\n\n")
	b.WriteString(Styles.Label.Render("Shortcut") + "\n")
	b.WriteString(m.combo.View() + "\n\n")
	b.WriteString(Styles.Label.Render("Description") + "\n")
	b.WriteString(m.description.View() + "\n")
	if m.err != "" {
		b.WriteString("\n" + Styles.Error.Render(m.err) + "\n")
	}
	h := newHelp()
	b.WriteString("\n" + h.ShortHelpView([]key.Binding{formKeys.Next, formKeys.Submit, formKeys.Cancel}))
	s.DrawOverlay(Styles.Box.Render(b.String()))
}
