// Package pokeapi fetches and decodes data from the read-only PokéAPI.
//
// The decoders are strict and all-or-nothing: a response either produces a
// fully populated record or fails with a DecodeError describing the first
// mismatch. No partial records are ever returned.
package pokeapi

import "encoding/json"

// ListItem is one catalog entry. Immutable once decoded.
type ListItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DetailRecord holds full information for one selected entry, including the
// verbatim response body for ad-hoc inspection. Replaced wholesale on each
// new selection.
type DetailRecord struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	BaseExperience int      `json:"base_experience"`
	Types          []string `json:"types"`
	// Raw is the unmodified response body, including any fields the
	// decoder does not know about.
	Raw json.RawMessage `json:"-"`
}
