package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "brb", "config.yml")

	status, err := InitConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, InitCreated, status)

	// The template must load cleanly on its own.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"desktop"}, cfg.DefaultChannels)

	status, err = InitConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, InitAlreadyExists, status)
}

func TestInitConfig_ForceOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("version: 9\n"), 0o600))

	status, err := InitConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, InitAlreadyExists, status)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: 9\n", string(data))

	status, err = InitConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, InitOverwritten, status)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigYAML(), data)
}
