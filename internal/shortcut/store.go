package shortcut

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// FileEnv overrides the store location.
	FileEnv = "SHORTCUTS_FILE"
	// DefaultFileName is the store file created in the working directory.
	DefaultFileName = "shortcuts.json"
)

var tracer = otel.Tracer("shortcuts/store")

// Store is a List bound to the JSON file it is loaded from and saved to.
// The path is fixed at construction.
type Store struct {
	List
	path string
}

// document is the on-disk shape. The bound path is never part of it.
type document struct {
	Shortcuts []Shortcut `json:"shortcuts"`
}

func (d *document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Shortcuts *[]Shortcut `json:"shortcuts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Shortcuts == nil {
		return errors.New("missing field shortcuts")
	}
	d.Shortcuts = *raw.Shortcuts
	return nil
}

// NewStore returns an empty store bound to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns shortcuts.json in the current working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// Path returns the file the store saves to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the store at path. A missing file yields an empty store bound to path.
// A file that exists but cannot be read or decoded is an error; nothing is partially loaded.
func Load(ctx context.Context, path string) (*Store, error) {
	_, span := tracer.Start(ctx, "shortcut.Load",
		trace.WithAttributes(attribute.String("shortcuts.path", path)))
	defer span.End()

	store := NewStore(path)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		span.SetAttributes(attribute.Bool("shortcuts.created", true))
		return store, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	store.shortcuts = doc.Shortcuts
	span.SetAttributes(attribute.Int("shortcuts.count", len(doc.Shortcuts)))
	return store, nil
}

// Save replaces the contents of the file at the bound path with the current
// shortcuts. The write goes to a temp file next to the real file (after
// following symlinks) and is renamed into place with the old file's mode.
func (s *Store) Save(ctx context.Context) error {
	_, span := tracer.Start(ctx, "shortcut.Save", trace.WithAttributes(
		attribute.String("shortcuts.path", s.path),
		attribute.Int("shortcuts.count", len(s.shortcuts)),
	))
	defer span.End()

	if s.path == "" {
		err := errors.New("store has no path")
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return err
	}
	if err := s.write(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return err
	}
	return nil
}

func (s *Store) write() error {
	doc := document{Shortcuts: s.shortcuts}
	if doc.Shortcuts == nil {
		doc.Shortcuts = []Shortcut{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode shortcuts: %w", err)
	}

	target, mode, err := saveTarget(s.path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", filepath.Dir(target), err)
	}
	tmpPath := target + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	// WriteFile's mode is filtered by the umask.
	if err := os.Chmod(tmpPath, mode); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", tmpPath, err)
	}
	return nil
}

// saveTarget follows symlinks so the link survives and its target gets the
// update, and returns the mode of the existing file (0644 for a new one).
func saveTarget(path string) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, 0o644, nil
	}
	if err != nil {
		return "", 0, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", target, err)
	}
	return target, info.Mode().Perm(), nil
}
