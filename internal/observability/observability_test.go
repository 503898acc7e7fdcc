package observability

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		env, level string
		want       string
	}{
		{"", "", "info"},
		{"dev", "", "debug"},
		{"production", "warn", "warn"},
		{"dev", "ERROR", "error"},
		{"", "chatty", "info"},
	}
	for _, tt := range tests {
		t.Setenv("ENV", tt.env)
		t.Setenv("LOG_LEVEL", tt.level)
		assert.Equal(t, tt.want, getLogLevel().String(), "ENV=%q LOG_LEVEL=%q", tt.env, tt.level)
	}
}

func TestInitLoggerWithLevelNamesLogger(t *testing.T) {
	logger, err := InitLoggerWithLevel(zap.WarnLevel, "drills-test")
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	assert.Equal(t, "drills-test", logger.Name())
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestNewConsoleLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "INFO")
	var buf bytes.Buffer
	logger := NewConsoleLogger(zapcore.AddSync(&buf))

	logger.Debug("hidden")
	logger.Error("command failed", zap.Error(errors.New("cannot divide by zero")))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "command failed")
	assert.Contains(t, out, "cannot divide by zero")
	assert.NotContains(t, out, "{\"level\"")
}

func TestSamplerFor(t *testing.T) {
	assert.Equal(t, "AlwaysOnSampler", samplerFor(1).Description())
	assert.Equal(t, "AlwaysOffSampler", samplerFor(0).Description())
	assert.Contains(t, samplerFor(0.5).Description(), "TraceIDRatioBased")
}

func TestRecordingRegistry(t *testing.T) {
	r := NewRecordingRegistry()
	var m MetricsRegistry = r

	m.IncrementRequests("fixture", "GET", "200")
	m.IncrementRequests("fixture", "GET", "200")
	m.IncrementFixtureServed("branching")
	m.IncrementFixtureMisses()

	assert.Equal(t, 2, r.RequestCount("fixture", "GET", "200"))
	assert.Equal(t, 1, r.Served["branching"])
	assert.Equal(t, 1, r.Misses)
}
