package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/liner/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	lg.Info("Resolving 3 packages")
	lg.Warn("Configuration already exists, overwriting")

	g := goldie.New(t)
	g.Assert(t, "levels_info", buf.Bytes())
}

func TestLogger_SetLevelAboveError(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetLevel(slog.LevelError + 4)

	lg.Warn("overwriting")
	lg.Error(errors.New("boom"))

	assert.Empty(t, buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		goldenName string
	}{
		{name: "debug", level: slog.LevelDebug, goldenName: "levels_debug"},
		{name: "warn", level: slog.LevelWarn, goldenName: "levels_warn"},
		{name: "error", level: slog.LevelError, goldenName: "levels_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetLevel(tt.level)

			lg.Debug("bat is up to date")
			lg.Info("Done.")
			lg.Warn("overwriting")
			lg.Error(errors.New("boom"))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)

	inner := zerr.With(zerr.New("package not found in registry"), "status", 404)
	err := zerr.With(zerr.Wrap(inner, "failed to resolve package versions"), "package", "nope")
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg := logger.New()
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}
