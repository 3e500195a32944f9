package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/AdrianaGRO/PyArch.dev/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf, "info", "json"))

	logger.Info("post created",
		slog.Int("post_id", 42),
		slog.String("category", "python"),
	)

	output := buf.String()
	assert.Contains(t, output, "post created")
	assert.Contains(t, output, "post_id")
	assert.Contains(t, output, "42")
	assert.Contains(t, output, "python")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf, "error", "json"))

	logger.Info("should be dropped")
	logger.Warn("also dropped")
	logger.Error("storage failure", slog.String("error", "disk full"))

	output := buf.String()
	assert.NotContains(t, output, "should be dropped")
	assert.NotContains(t, output, "also dropped")
	assert.Contains(t, output, "storage failure")
	assert.Contains(t, output, "disk full")
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf, "debug", "text"))

	logger.Debug("rendering template", slog.String("template", "index.html"))

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG")
	assert.Contains(t, output, "template=index.html")
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf, "info", "json"))

	reqLogger := logger.WithRequestID("req-123")
	reqLogger.Info("processing request")

	output := buf.String()
	assert.Contains(t, output, "processing request")
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_WithDocument(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf, "info", "json"))

	logger.WithDocument("projects").Warn("falling back to empty collection")

	output := buf.String()
	assert.Contains(t, output, `"document":"projects"`)
	assert.Contains(t, output, "falling back")
}

func TestLogger_WarnContext(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf, "info", "json"))

	logger.WarnContext(context.Background(), "context message",
		slog.String("key", "value"),
	)

	output := buf.String()
	assert.Contains(t, output, "context message")
	assert.Contains(t, output, "value")
}

func TestLogger_GetLogger(t *testing.T) {
	require.NotNil(t, logger.GetLogger())
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New(&buf, "info", "json"))

	fieldsLogger := logger.WithFields(
		slog.String("component", "upload"),
		slog.Int("max_bytes", 16777216),
	)
	fieldsLogger.Info("upload accepted")

	output := buf.String()
	assert.Contains(t, output, "upload accepted")
	assert.Contains(t, output, "component")
	assert.Contains(t, output, "16777216")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}
