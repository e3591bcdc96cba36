package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"shortcuts/internal/screen"
)

// MainScreen shows every shortcut ranked by lookup count.
// Selection is a display rank, not a storage index.
type MainScreen struct {
	selected int
}

// Ensure MainScreen implements Screen.
var _ Screen = (*MainScreen)(nil)

// NewMainScreen creates the main screen with the top row selected.
func NewMainScreen() *MainScreen {
	return &MainScreen{}
}

// Selected returns the selected display rank (0-based).
func (m *MainScreen) Selected() int {
	return m.selected
}

// HandleEvent implements Screen.
func (m *MainScreen) HandleEvent(ev screen.Event, st *State) Command {
	m.clamp(st)
	k := ev.Key
	switch {
	case key.Matches(k, Keys.Quit):
		return screen.Quit[State](false)
	case key.Matches(k, Keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(k, Keys.Down):
		if m.selected < st.Store.Len()-1 {
			m.selected++
		}
	case key.Matches(k, Keys.Lookup):
		m.lookup(st)
	case key.Matches(k, Keys.Copy):
		m.copyCombo(st)
	case key.Matches(k, Keys.Add):
		return screen.Push[State](NewAddScreen())
	case key.Matches(k, Keys.Remove):
		if sc, idx, ok := st.ranked(m.selected); ok {
			return screen.Push[State](NewConfirmRemoveScreen(idx, sc))
		}
	case key.Matches(k, Keys.Help):
		return screen.Push[State](NewHelpScreen())
	}
	return screen.None[State]()
}

func (m *MainScreen) lookup(st *State) {
	_, idx, ok := st.ranked(m.selected)
	if !ok {
		return
	}
	st.Store.IncrementLookupCount(idx, st.increment())
	sc, _ := st.Store.At(idx)
	st.save(fmt.Sprintf("Looked up %s (%d)", sc.KeyCombo, sc.LookupCount))
}

func (m *MainScreen) copyCombo(st *State) {
	sc, _, ok := st.ranked(m.selected)
	if !ok || st.Clipboard == nil {
		return
	}
	if err := st.Clipboard(sc.KeyCombo); err != nil {
		st.log().Warn("copy to clipboard", zap.Error(err))
		st.Status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	st.Status = fmt.Sprintf("Copied %s", sc.KeyCombo)
}

// clamp keeps the selection inside the table after the store changed.
func (m *MainScreen) clamp(st *State) {
	m.selected = min(m.selected, st.Store.Len()-1)
	m.selected = max(m.selected, 0)
}

// Draw implements Screen.
func (m *MainScreen) Draw(s screen.Surface, st *State) {
	m.clamp(st)
	width, _ := s.Size()

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Shortcuts (%d)", st.Store.Len())))
	b.WriteString("\n\n")
	if st.Store.Len() == 0 {
		b.WriteString(Styles.Empty.Render("No shortcuts yet. Press n to add one."))
	} else {
		b.WriteString(m.renderTable(st, width))
	}
	b.WriteString("\n")
	if st.Status != "" {
		b.WriteString(Styles.Status.Render(st.Status))
	}
	b.WriteString("\n")

	h := newHelp()
	if width > 0 {
		h.Width = width
	}
	b.WriteString(h.View(Keys))
	s.Draw(b.String())
}

func (m *MainScreen) renderTable(st *State, width int) string {
	order := st.Store.SortedIndexes()
	rows := make([][]string, 0, len(order))
	for rank, idx := range order {
		sc, _ := st.Store.At(idx)
		rows = append(rows, []string{
			strconv.Itoa(rank + 1),
			sc.KeyCombo,
			sc.Description,
			strconv.FormatUint(uint64(sc.LookupCount), 10),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Styles.Border).
		Headers("#", "SHORTCUT", "DESCRIPTION", "COUNT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Styles.Header
			case row == m.selected:
				return Styles.Selected
			case col == 3:
				return Styles.Count
			default:
				return Styles.Normal
			}
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}
