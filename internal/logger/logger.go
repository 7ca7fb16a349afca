// Package logger holds the process-wide structured logger. It wraps
// log/slog so the CLI, batch runner, and web form share one handler
// configured once from the command-line flags.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	active = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
)

// Options configures the process logger.
type Options struct {
	// Debug lowers the level to debug.
	Debug bool

	// Quiet raises the level to error. Wins over Debug.
	Quiet bool

	// JSON selects the JSON handler instead of text.
	JSON bool

	// Output overrides the destination (default stderr).
	Output io.Writer

	// Logger replaces the handler entirely; when set, every other
	// option is ignored. Lets an embedding application route descape
	// logs through its own slog setup.
	Logger *slog.Logger
}

// Init replaces the process logger according to opts.
func Init(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	if opts.Logger != nil {
		active = opts.Logger
		return
	}
	active = slog.New(newHandler(opts))
}

func newHandler(opts Options) slog.Handler {
	level := slog.LevelInfo
	switch {
	case opts.Quiet:
		level = slog.LevelError
	case opts.Debug:
		level = slog.LevelDebug
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.JSON {
		return slog.NewJSONHandler(out, handlerOpts)
	}
	return slog.NewTextHandler(out, handlerOpts)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { current().Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { current().Info(msg, args...) }

// Warn logs at warning level.
func Warn(msg string, args ...any) { current().Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { current().Error(msg, args...) }
