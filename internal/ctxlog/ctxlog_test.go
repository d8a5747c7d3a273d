package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		" WARN ":  slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))

	var buf bytes.Buffer
	logger := NewText(&buf)
	ctx := New(context.Background(), logger)
	assert.Same(t, logger, Logger(ctx))

	ctx = New(context.Background(), nil)
	assert.Same(t, DefaultLogger, Logger(ctx))
}

func TestErrorWritesRecord(t *testing.T) {
	var buf bytes.Buffer
	ctx := New(context.Background(), NewText(&buf))

	Error(ctx, "cli: failed to install cli", "error", "exit status 1")

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "cli: failed to install cli")
	assert.Contains(t, buf.String(), "exit status 1")
}
