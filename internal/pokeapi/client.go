package pokeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/pokedex/internal/core/logging"
)

// Fixed user-facing messages. The state machine stores these verbatim;
// structural detail stays in the logs.
const (
	msgCatalogFailed = "could not load the Pokédex"
	msgDetailFailed  = "could not load Pokémon details"
)

// TransportError is the single coarse failure the rest of the application
// sees. Network failures and decode failures fold into it alike; callers do
// not distinguish them.
type TransportError struct {
	msg   string
	cause error
}

func (e *TransportError) Error() string { return e.msg }

func (e *TransportError) Unwrap() error { return e.cause }

// Client issues the two read operations against the API. One outbound call
// per invocation; no retries, no caching.
type Client struct {
	baseURL string
	limit   int
	http    *http.Client
	ids     *ResourceParser
	log     zerolog.Logger
}

// NewClient creates a gateway for the given API base URL (no trailing
// slash). limit caps the catalog request; timeout bounds each request.
func NewClient(baseURL string, limit int, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		limit:   limit,
		http:    &http.Client{Timeout: timeout},
		ids:     NewResourceParser(baseURL),
		log:     logging.Component("pokeapi"),
	}
}

// Catalog fetches and decodes the full catalog.
func (c *Client) Catalog(ctx context.Context) ([]ListItem, error) {
	url := fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, c.limit)

	body, err := c.getJSON(ctx, url)
	if err != nil {
		c.log.Error().Err(err).Str("url", url).Msg("catalog fetch failed")
		return nil, &TransportError{msg: msgCatalogFailed, cause: err}
	}

	items, err := DecodeListResponse(body, c.ids)
	if err != nil {
		c.log.Error().Err(err).Str("url", url).Msg("catalog decode failed")
		return nil, &TransportError{msg: msgCatalogFailed, cause: err}
	}

	c.log.Debug().Int("count", len(items)).Msg("catalog loaded")
	return items, nil
}

// Detail fetches and decodes one entry by id.
func (c *Client) Detail(ctx context.Context, id int) (DetailRecord, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)

	body, err := c.getJSON(ctx, url)
	if err != nil {
		c.log.Error().Err(err).Str("url", url).Msg("detail fetch failed")
		return DetailRecord{}, &TransportError{msg: msgDetailFailed, cause: err}
	}

	rec, err := DecodeDetail(body)
	if err != nil {
		c.log.Error().Err(err).Str("url", url).Msg("detail decode failed")
		return DetailRecord{}, &TransportError{msg: msgDetailFailed, cause: err}
	}

	c.log.Debug().Int("id", rec.ID).Str("name", rec.Name).Msg("detail loaded")
	return rec, nil
}

func (c *Client) getJSON(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "pokedex")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Debug().Err(err).Msg("close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
