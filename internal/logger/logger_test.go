package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.NotEmpty(t, cfg.TimeFormat)

	assert.Equal(t, "debug", VerboseConfig().Level)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"default config", DefaultConfig()},
		{"verbose config", VerboseConfig()},
		{"json to stdout", &Config{Level: "warn", Format: "json", Output: "stdout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestVerbosity(t *testing.T) {
	quiet, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.DebugLevel))

	verbose, err := New(VerboseConfig())
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.log")

	logger, err := New(&Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	logger.Info("written")
	require.NoError(t, logger.Sync())

	assert.FileExists(t, path)
}

func TestFileOutput_Unwritable(t *testing.T) {
	_, err := New(&Config{Output: filepath.Join(t.TempDir(), "missing", "labels.log")})
	assert.Error(t, err)
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&Config{Level: "info", Format: "json", Writer: &buf})
	require.NoError(t, err)

	logger.Info("sheet written", zap.String("path", "out.pdf"))
	logger.Debug("hidden")

	var output map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "sheet written", output["msg"])
	assert.Equal(t, "info", output["level"])
	assert.Equal(t, "out.pdf", output["path"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&Config{Level: "debug", Format: "console", Writer: &buf})
	require.NoError(t, err)

	logger.Debug("reading records")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "reading records")
}
