package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/pokedex/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("api.url", c.API.URL, isHTTPBaseURL),
		criterio.Run("api.limit", c.API.Limit, isSaneLimit),
		c.validateTimeout(),
		criterio.Run("tui.theme", c.TUI.Theme, isKnownTheme),
	)
}

func isHTTPBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("cannot be empty")
	}
	if strings.HasSuffix(raw, "/") {
		return fmt.Errorf("must not end with a slash")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func isSaneLimit(limit int) error {
	if limit < 1 {
		return fmt.Errorf("must be at least 1")
	}
	if limit > 10000 {
		return fmt.Errorf("must be at most 10000")
	}
	return nil
}

func (c *Config) validateTimeout() error {
	if c.API.Timeout <= 0 {
		return criterio.NewFieldErrors("api.timeout", fmt.Errorf("must be positive"))
	}
	return nil
}

func isKnownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, valid themes: %s", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
