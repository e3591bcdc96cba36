package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the main screen's bindings. It implements help.KeyMap.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Lookup key.Binding
	Copy   key.Binding
	Add    key.Binding
	Remove key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Lookup: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "look up"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy combo"),
	),
	Add: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Lookup, k.Add, k.Remove, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Lookup, k.Copy},
		{k.Add, k.Remove, k.Help, k.Quit},
	}
}

// formKeys are shown in the add form.
var formKeys = struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}{
	Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// dialogKeys are shown in the confirm and help overlays.
var dialogKeys = struct {
	Confirm key.Binding
	Cancel  key.Binding
	Close   key.Binding
	Add     key.Binding
	Quit    key.Binding
}{
	Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y/enter", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
	Close:   key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("esc", "close")),
	Add:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new shortcut")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}
