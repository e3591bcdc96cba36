package ui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"shortcuts/internal/logger"
	"shortcuts/internal/screen"
	"shortcuts/internal/shortcut"
)

// DefaultIncrement is the lookup increment used when State.Increment is zero.
const DefaultIncrement = 5

// State is shared by every screen. Only Store touches the disk.
type State struct {
	Store *shortcut.Store
	// Status is a one-line message shown under the table until replaced.
	Status string
	// Increment is added to a shortcut's count on lookup.
	Increment int
	// Clipboard receives copied key combos.
	Clipboard func(string) error
	Logger    *zap.Logger

	ctx context.Context
}

// Screen and Command specialise the navigation engine to State.
type (
	Screen  = screen.Screen[State]
	Command = screen.Command[State]
)

// NewState creates the shared state for store. The logger is taken from ctx.
func NewState(ctx context.Context, store *shortcut.Store) *State {
	return &State{
		Store:     store,
		Increment: DefaultIncrement,
		Clipboard: clipboard.WriteAll,
		Logger:    logger.FromContext(ctx),
		ctx:       ctx,
	}
}

func (s *State) context() context.Context {
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

func (s *State) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *State) increment() int {
	if s.Increment == 0 {
		return DefaultIncrement
	}
	return s.Increment
}

// save persists the store and reports the outcome in Status.
// A failed save leaves the in-memory change in place.
func (s *State) save(done string) bool {
	if err := s.Store.Save(s.context()); err != nil {
		s.log().Error("save shortcuts", zap.String("path", s.Store.Path()), zap.Error(err))
		s.Status = fmt.Sprintf("Save failed: %v", err)
		return false
	}
	s.log().Debug("saved shortcuts", zap.String("path", s.Store.Path()), zap.Int("count", s.Store.Len()))
	s.Status = done
	return true
}

// ranked returns the shortcut at display rank r (0-based) with its storage index.
func (s *State) ranked(r int) (shortcut.Shortcut, int, bool) {
	order := s.Store.SortedIndexes()
	if r < 0 || r >= len(order) {
		return shortcut.Shortcut{}, 0, false
	}
	sc, ok := s.Store.At(order[r])
	return sc, order[r], ok
}
