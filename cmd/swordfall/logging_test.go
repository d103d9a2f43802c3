package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swordfall/config"
)

func TestSetupLoggingDisabledWithoutFile(t *testing.T) {
	logger, closer, err := setupLogging(config.Log{Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swordfall.log")

	logger, closer, err := setupLogging(config.Log{Level: "warn", File: path})
	require.NoError(t, err)

	logger.Info().Msg("filtered out")
	logger.Warn().Msg("kept line")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept line")
	assert.NotContains(t, string(data), "filtered out")
}

func TestSetupLoggingRejectsLevel(t *testing.T) {
	_, _, err := setupLogging(config.Log{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}
