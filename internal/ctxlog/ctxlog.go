// Package ctxlog carries a structured slog logger in a context.Context.
//
// The default level is read from OLLAMA_LINK_LOG_LEVEL and may be
// "DEBUG", "INFO", "WARN" or "ERROR". Any other value means "WARN".
package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ollama/ollama-link/internal/branding"
)

type loggerKey struct{}

// LevelVar is shared by every logger built by this package.
var LevelVar = &slog.LevelVar{}

// DefaultLogger writes text records to stderr.
var DefaultLogger = NewText(os.Stderr)

func init() {
	LevelVar.Set(ParseLevel(os.Getenv(branding.EnvVar("LOG_LEVEL"))))
}

// NewText returns a text logger writing to w at the shared level.
func NewText(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: LevelVar}))
}

// NewJSON returns a JSON logger writing to w at the shared level.
func NewJSON(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: LevelVar}))
}

// New returns a copy of ctx carrying logger. A nil logger means DefaultLogger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from ctx, or DefaultLogger if none is set.
func Logger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return DefaultLogger
	}
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}
	return logger
}

// Debug logs at debug level.
func Debug(ctx context.Context, msg string, args ...any) { Logger(ctx).DebugContext(ctx, msg, args...) }

// Info logs at info level.
func Info(ctx context.Context, msg string, args ...any) { Logger(ctx).InfoContext(ctx, msg, args...) }

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, args ...any) { Logger(ctx).WarnContext(ctx, msg, args...) }

// Error logs at error level.
func Error(ctx context.Context, msg string, args ...any) { Logger(ctx).ErrorContext(ctx, msg, args...) }

// ParseLevel maps a level name to a slog.Level, defaulting to warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
