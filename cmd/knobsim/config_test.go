package main

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "knobsim.log", config.LogFile)
	assert.Equal(t, 115200, config.Baud)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KNOBSIM_LOG_LEVEL", "debug")
	t.Setenv("KNOBSIM_BAUD", "9600")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 9600, config.Baud)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KNOBSIM_BAUD", "fast")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "failed to process environment variables")
}

func TestSetupLogger(t *testing.T) {
	config := &Config{LogLevel: "debug", LogFile: filepath.Join(t.TempDir(), "knobsim.log")}

	logger, closer, err := SetupLogger(config)
	require.NoError(t, err)
	t.Cleanup(func() { closer.Close() })

	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
	assert.FileExists(t, config.LogFile)
}
