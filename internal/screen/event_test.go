package screen

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"q", "q"},
		{"N", "N"},
		{"?", "?"},
		{"enter", "enter"},
		{"esc", "esc"},
		{"tab", "tab"},
		{"shift+tab", "shift+tab"},
		{"backspace", "backspace"},
		{"ctrl+c", "ctrl+c"},
		{"up", "up"},
		{"space", " "},
		{"alt+x", "alt+x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k.String())
		})
	}
}

func TestParseKey_Invalid(t *testing.T) {
	for _, name := range []string{"", "nope", "alt+"} {
		_, err := ParseKey(name)
		assert.Error(t, err, "name %q", name)
	}
}

func TestScriptSource(t *testing.T) {
	script := `# open the add form
n

type a b
repeat j
release j
enter
`
	src := NewScriptSource(strings.NewReader(script))
	ctx := context.Background()

	var got []Event
	for {
		ev, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, ev)
	}

	require.Len(t, got, 7)
	assert.Equal(t, "n", got[0].String())
	assert.Equal(t, "a", got[1].String())
	assert.Equal(t, tea.KeySpace, got[2].Key.Type)
	assert.Equal(t, "b", got[3].String())
	assert.Equal(t, KeyRepeat, got[4].Kind)
	assert.Equal(t, KeyRelease, got[5].Kind)
	assert.Equal(t, "j", got[5].String())
	assert.Equal(t, KeyPress, got[6].Kind)
	assert.Equal(t, "enter", got[6].String())
}

func TestScriptSource_BadLine(t *testing.T) {
	src := NewScriptSource(strings.NewReader("q\nbogus key\n"))
	ctx := context.Background()

	_, err := src.Next(ctx)
	require.NoError(t, err)
	_, err = src.Next(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "script line 2")
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "press", KeyPress.String())
	assert.Equal(t, "repeat", KeyRepeat.String())
	assert.Equal(t, "release", KeyRelease.String())
}
