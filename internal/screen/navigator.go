package screen

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Navigator owns the screen stack and the state lent to the active screen.
// It is single-threaded: one Dispatch or Render at a time.
type Navigator[S any] struct {
	stack  Stack[S]
	state  *S
	logger *zap.Logger
}

// Option configures a Navigator.
type Option[S any] func(*Navigator[S])

// WithLogger sets the logger used for navigation and render diagnostics.
func WithLogger[S any](l *zap.Logger) Option[S] {
	return func(n *Navigator[S]) {
		if l != nil {
			n.logger = l
		}
	}
}

// NewNavigator creates a navigator with initial as the only screen.
func NewNavigator[S any](state *S, initial Screen[S], opts ...Option[S]) *Navigator[S] {
	n := &Navigator[S]{state: state, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(n)
	}
	if initial != nil {
		n.stack.Push(initial)
	}
	return n
}

// Running reports whether any screen is open.
func (n *Navigator[S]) Running() bool {
	return n.stack.Len() > 0
}

// Depth returns the number of open screens.
func (n *Navigator[S]) Depth() int {
	return n.stack.Len()
}

// Top returns the active screen, or nil once the navigator has stopped.
func (n *Navigator[S]) Top() Screen[S] {
	return n.stack.Peek()
}

// State returns the shared state.
func (n *Navigator[S]) State() *S {
	return n.state
}

// Render draws every screen from bottom to top on surface.
func (n *Navigator[S]) Render(surface Surface) {
	n.stack.each(func(sc Screen[S]) {
		sc.Draw(surface, n.state)
	})
}

// Dispatch hands ev to the top screen and applies the command it returns.
// Release events are dropped. Reports whether the navigator is still running.
func (n *Navigator[S]) Dispatch(ev Event) bool {
	top := n.stack.Peek()
	if top == nil {
		return false
	}
	if ev.Kind == KeyRelease {
		return true
	}

	cmd := top.HandleEvent(ev, n.state)
	if cmd.Kind != CmdNone {
		fields := []zap.Field{
			zap.Stringer("command", cmd.Kind),
			zap.String("key", ev.String()),
			zap.Int("depth", n.stack.Len()),
		}
		if cmd.Screen != nil {
			fields = append(fields, zap.String("screen", fmt.Sprintf("%T", cmd.Screen)))
		}
		if cmd.Kind == CmdQuit {
			fields = append(fields, zap.Bool("flag", cmd.Flag))
		}
		n.logger.Debug("navigate", fields...)
	}
	n.stack.Apply(cmd)
	return n.Running()
}

// Run drives the loop: render every screen, wait for one event, dispatch it,
// and repeat until the stack is empty.
// Render failures are logged and ignored. A failing event source ends the loop with its error.
func (n *Navigator[S]) Run(ctx context.Context, src EventSource, out Renderer) error {
	canvas := NewCanvas(out.Size())
	for n.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}
		canvas.Resize(out.Size())
		n.Render(canvas)
		if err := out.Render(canvas.String()); err != nil {
			n.logger.Debug("render failed", zap.Error(err))
		}

		ev, err := src.Next(ctx)
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}
		n.Dispatch(ev)
	}
	return nil
}
