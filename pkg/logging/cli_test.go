package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func TestCLIHandler_InfoMessage(t *testing.T) {
	withColor(t, true)

	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Info("test info message")

	output := buf.String()
	assert.Contains(t, output, "test info message")
	assert.NotContains(t, output, colorRed)
}

func TestCLIHandler_ErrorMessage(t *testing.T) {
	withColor(t, true)

	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo))

	logger.Error("test error message")

	output := buf.String()
	assert.Contains(t, output, "test error message")
	assert.Contains(t, output, colorRed)
	assert.Contains(t, output, colorReset)
}

func TestCLIHandler_NoColor(t *testing.T) {
	withColor(t, false)

	var buf bytes.Buffer
	slog.New(NewCLIHandler(&buf, slog.LevelInfo)).Error("plain")

	assert.Equal(t, "plain\n", buf.String())
}

func TestCLIHandler_LevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		logFunc      func(*slog.Logger)
		shouldLog    bool
	}{
		{"warn handler logs warn", slog.LevelWarn, func(l *slog.Logger) { l.Warn("test") }, true},
		{"warn handler filters info", slog.LevelWarn, func(l *slog.Logger) { l.Info("test") }, false},
		{"info handler filters debug", slog.LevelInfo, func(l *slog.Logger) { l.Debug("test") }, false},
		{"debug handler logs debug", slog.LevelDebug, func(l *slog.Logger) { l.Debug("test") }, true},
		{"error handler filters warn", slog.LevelError, func(l *slog.Logger) { l.Warn("test") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewCLIHandler(&buf, tt.handlerLevel))

			tt.logFunc(logger)

			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestCLIHandler_Attributes(t *testing.T) {
	withColor(t, false)

	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelDebug))

	logger.Debug("image scored", "file", "logo.png", "overall", 7.4)

	assert.Equal(t, "image scored: file=logo.png overall=7.4\n", buf.String())
}

func TestCLIHandler_WithGroup(t *testing.T) {
	withColor(t, false)

	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelInfo).WithGroup("vision"))

	logger.Info("ready")

	assert.True(t, strings.HasPrefix(buf.String(), "[vision] ready"))
}

func TestSetDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetDefault(&buf, "debug")
	slog.Debug("visible")
	require.Contains(t, buf.String(), "visible")

	buf.Reset()
	SetDefault(&buf, "warn")
	slog.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.input), tt.input)
	}
}
