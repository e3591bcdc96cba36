package screen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// EventKind distinguishes key presses from auto-repeats and releases.
type EventKind int

const (
	KeyPress EventKind = iota
	KeyRepeat
	KeyRelease
)

func (k EventKind) String() string {
	switch k {
	case KeyPress:
		return "press"
	case KeyRepeat:
		return "repeat"
	case KeyRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Event is one input event. Release events never reach a screen.
type Event struct {
	Kind EventKind
	Key  tea.KeyMsg
}

// Press wraps a key message as a press event.
func Press(k tea.KeyMsg) Event {
	return Event{Kind: KeyPress, Key: k}
}

// String returns the key in bubbletea notation, e.g. "enter" or "ctrl+c".
func (e Event) String() string {
	return e.Key.String()
}

// EventSource blocks until the next input event is available.
// An error means the source is gone.
type EventSource interface {
	Next(ctx context.Context) (Event, error)
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"esc":       tea.KeyEsc,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+d":    tea.KeyCtrlD,
}

// ParseKey converts a key name in bubbletea notation ("q", "enter", "alt+x", "space")
// into a key message.
func ParseKey(name string) (tea.KeyMsg, error) {
	if name == "" {
		return tea.KeyMsg{}, fmt.Errorf("empty key name")
	}
	if name == "space" || name == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, nil
	}
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}, nil
	}
	alt := false
	if rest, ok := strings.CutPrefix(name, "alt+"); ok && rest != "" {
		alt = true
		name = rest
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return tea.KeyMsg{}, fmt.Errorf("unknown key %q", name)
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: runes, Alt: alt}, nil
}

// ScriptSource reads events from a line-oriented script:
//
//	# comment
//	n                 press n
//	enter             press a named key
//	repeat j          auto-repeat event
//	release j         release event
//	type ctrl+shift+t one press per character
//
// The source returns io.EOF when the script is exhausted.
type ScriptSource struct {
	scanner *bufio.Scanner
	pending []Event
	line    int
}

// NewScriptSource returns a source reading from r.
func NewScriptSource(r io.Reader) *ScriptSource {
	return &ScriptSource{scanner: bufio.NewScanner(r)}
}

// Next implements EventSource.
func (s *ScriptSource) Next(ctx context.Context) (Event, error) {
	for len(s.pending) == 0 {
		if err := ctx.Err(); err != nil {
			return Event{}, err
		}
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return Event{}, err
			}
			return Event{}, io.EOF
		}
		s.line++
		evs, err := parseScriptLine(s.scanner.Text())
		if err != nil {
			return Event{}, fmt.Errorf("script line %d: %w", s.line, err)
		}
		s.pending = evs
	}
	ev := s.pending[0]
	s.pending = s.pending[1:]
	return ev, nil
}

func parseScriptLine(line string) ([]Event, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	if text, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), "type "); ok {
		evs := make([]Event, 0, len(text))
		for _, r := range text {
			if r == ' ' {
				evs = append(evs, Press(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
				continue
			}
			evs = append(evs, Press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}))
		}
		return evs, nil
	}

	kind := KeyPress
	name := trimmed
	if fields := strings.Fields(trimmed); len(fields) == 2 {
		switch fields[0] {
		case "repeat":
			kind, name = KeyRepeat, fields[1]
		case "release":
			kind, name = KeyRelease, fields[1]
		default:
			return nil, fmt.Errorf("unknown directive %q", fields[0])
		}
	}
	key, err := ParseKey(name)
	if err != nil {
		return nil, err
	}
	return []Event{{Kind: kind, Key: key}}, nil
}
