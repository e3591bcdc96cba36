// Package logger builds the application's zap logger and carries it on a context.
// The TUI owns the terminal, so logs only go to a file when one is configured.
package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how much to log.
type Options struct {
	// File receives JSON log lines. Empty disables logging.
	File string
	// Level is a zap level name ("debug", "info", "warn", "error").
	Level string
	// Verbose forces debug level.
	Verbose bool
}

// New builds a logger from opts. The returned close function flushes and
// closes the log file and is safe to call when logging is disabled.
func New(opts Options) (*zap.Logger, func() error, error) {
	if opts.File == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level)
	l := zap.New(core)

	closeFn := func() error {
		_ = l.Sync()
		return f.Close()
	}
	return l, closeFn, nil
}

type ctxLoggerKey struct{}

// ContextWithLogger attaches a logger to the context.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, l)
}

// FromContext retrieves the logger from context, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
