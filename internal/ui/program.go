package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shortcuts/internal/screen"
)

// NewNavigator creates a navigator over st with the main screen at the bottom.
func NewNavigator(st *State) *screen.Navigator[State] {
	return screen.NewNavigator(st, Screen(NewMainScreen()), screen.WithLogger[State](st.log()))
}

// ProgramOptions configures NewProgram.
type ProgramOptions struct {
	AltScreen bool
	// Extra is appended to the bubbletea options, e.g. custom input or output in tests.
	Extra []tea.ProgramOption
}

// Ensure model implements tea.Model.
var _ tea.Model = (*model)(nil)

// model adapts a Navigator to bubbletea. bubbletea supplies key events and
// terminal size; the navigator decides what is on screen.
type model struct {
	nav    *screen.Navigator[State]
	canvas *screen.Canvas
}

func newModel(nav *screen.Navigator[State]) *model {
	return &model{nav: nav, canvas: screen.NewCanvas(0, 0)}
}

// NewProgram builds a bubbletea program that runs the shortcut screens over st.
func NewProgram(st *State, opts ProgramOptions) *tea.Program {
	var teaOpts []tea.ProgramOption
	if opts.AltScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}
	teaOpts = append(teaOpts, opts.Extra...)
	return tea.NewProgram(newModel(NewNavigator(st)), teaOpts...)
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !m.nav.Dispatch(screen.Press(msg)) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *model) View() string {
	if !m.nav.Running() {
		return ""
	}
	m.canvas.Reset()
	m.nav.Render(m.canvas)
	return m.canvas.String()
}
