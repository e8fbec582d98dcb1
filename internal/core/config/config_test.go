package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.API.URL)
	assert.Equal(t, 151, cfg.API.Limit)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  limit: 50
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.API.Limit)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.API.URL)
	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
}

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  url: http://localhost:8080/api/v2
  limit: 20
  timeout: 2s
tui:
  theme: gruvbox
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v2", cfg.API.URL)
	assert.Equal(t, 20, cfg.API.Limit)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	in := DefaultConfig()
	in.TUI.Theme = "gruvbox"
	require.NoError(t, Write(in, path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}
