package shortcut

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStore_Spans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "shortcuts.json")

	store := NewStore(path)
	store.Add(New("ctrl+t", "open tab"))
	require.NoError(t, store.Save(ctx))
	_, err := Load(ctx, path)
	require.NoError(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(ctx, bad)
	require.Error(t, err)

	spans := exp.GetSpans()
	require.Len(t, spans, 3)
	assert.Equal(t, "shortcut.Save", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.Int("shortcuts.count", 1))
	assert.Equal(t, "shortcut.Load", spans[1].Name)
	assert.Contains(t, spans[1].Attributes, attribute.String("shortcuts.path", path))
	assert.Equal(t, codes.Unset, spans[1].Status.Code)
	assert.Equal(t, codes.Error, spans[2].Status.Code)
}
