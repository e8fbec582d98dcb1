package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return DefaultConfig()
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_URL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{name: "empty", url: "", wantErr: "cannot be empty"},
		{name: "trailing slash", url: "https://pokeapi.co/api/v2/", wantErr: "must not end with a slash"},
		{name: "bad scheme", url: "ftp://pokeapi.co/api/v2", wantErr: "scheme must be http or https"},
		{name: "no host", url: "https://", wantErr: "missing host"},
		{name: "plain http ok", url: "http://localhost:9999"},
		{name: "https ok", url: "https://pokeapi.co/api/v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.API.URL = tt.url

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "api.url")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		ok    bool
	}{
		{name: "zero", limit: 0, ok: false},
		{name: "negative", limit: -1, ok: false},
		{name: "one", limit: 1, ok: true},
		{name: "classic 151", limit: 151, ok: true},
		{name: "too large", limit: 10001, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.API.Limit = tt.limit

			err := cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "api.limit")
			}
		})
	}
}

func TestValidate_Timeout(t *testing.T) {
	cfg := validConfig()
	cfg.API.Timeout = -1 * time.Second

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.timeout")
}

func TestValidate_Theme(t *testing.T) {
	cfg := validConfig()
	cfg.TUI.Theme = "solarized-disco"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tui.theme")

	cfg.TUI.Theme = "gruvbox"
	require.NoError(t, cfg.Validate())
}
