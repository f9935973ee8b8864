package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
	assert.Equal(t, "logs", cfg.Dir)
}

func TestProductionConfig(t *testing.T) {
	cfg := ProductionConfig()

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "file", cfg.Output)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_Stdout(t *testing.T) {
	l, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_FileOutputWritesCombinedAndErrorLogs(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Output = "file"
	cfg.Dir = dir
	cfg.Level = "info"

	l, err := New(cfg)
	require.NoError(t, err)

	l.Info("commande reçue")
	l.Error("échec base de données")
	_ = l.Sync()

	combined, err := os.ReadFile(filepath.Join(dir, CombinedLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(combined), "commande reçue")
	assert.Contains(t, string(combined), "échec base de données")

	errorsLog, err := os.ReadFile(filepath.Join(dir, ErrorLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(errorsLog), "échec base de données")
	assert.False(t, strings.Contains(string(errorsLog), "commande reçue"))
}

func TestNewForEnvironment(t *testing.T) {
	l, err := NewForEnvironment("development")
	require.NoError(t, err)
	assert.NotNil(t, l)
}
