package logger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_NoFileIsNop(t *testing.T) {
	l, closeFn, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.NoError(t, closeFn())
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shortcuts.log")
	l, closeFn, err := New(Options{File: path, Level: "info"})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("saved", zap.String("path", "/tmp/x"))
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "saved", entry["msg"])
	assert.Equal(t, "/tmp/x", entry["path"])
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l, closeFn, err := New(Options{File: path, Level: "error", Verbose: true})
	require.NoError(t, err)
	l.Debug("visible")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	ctx, logs := TestContext()
	FromContext(ctx).Info("hello")
	assert.Equal(t, 1, logs.FilterMessage("hello").Len())
}
