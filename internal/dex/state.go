// Package dex owns the application state machine: the top-level phase, the
// session of a running browse, and the pure transition function that is the
// only way state advances. The presentation layer holds a read-only copy and
// submits events; it never mutates state directly.
package dex

import (
	"strings"

	"github.com/colonyops/pokedex/internal/jsontree"
	"github.com/colonyops/pokedex/internal/pokeapi"
)

// Phase is the top-level application mode.
type Phase int

const (
	// PhaseBootstrapping covers process start until the catalog resolves.
	PhaseBootstrapping Phase = iota
	// PhaseReady holds a live session for the remainder of the run.
	PhaseReady
	// PhaseFatal is terminal; no event leaves it.
	PhaseFatal
)

// StatusKind is the lifecycle stage of one asynchronous fetch.
type StatusKind int

const (
	StatusNotRequested StatusKind = iota
	StatusInFlight
	StatusReady
	StatusFailed
)

// RemoteStatus tracks one fetch result. Exactly one variant is active, and a
// new fetch attempt always passes through StatusInFlight.
type RemoteStatus[T any] struct {
	kind    StatusKind
	value   T
	failure string
}

// NotRequested returns the initial status.
func NotRequested[T any]() RemoteStatus[T] {
	return RemoteStatus[T]{kind: StatusNotRequested}
}

// InFlight returns the status of a started fetch.
func InFlight[T any]() RemoteStatus[T] {
	return RemoteStatus[T]{kind: StatusInFlight}
}

// Ready wraps a successful result.
func Ready[T any](v T) RemoteStatus[T] {
	return RemoteStatus[T]{kind: StatusReady, value: v}
}

// Failed wraps a failure message.
func Failed[T any](msg string) RemoteStatus[T] {
	return RemoteStatus[T]{kind: StatusFailed, failure: msg}
}

// Kind returns the active variant.
func (s RemoteStatus[T]) Kind() StatusKind { return s.kind }

// Value returns the result and whether the status is StatusReady.
func (s RemoteStatus[T]) Value() (T, bool) {
	return s.value, s.kind == StatusReady
}

// Failure returns the failure message for StatusFailed, empty otherwise.
func (s RemoteStatus[T]) Failure() string { return s.failure }

// Session is the state of a running browse. Catalog is populated exactly
// once and never mutated afterwards; Selection is replaced wholesale per
// fetch; Inspector is reset whenever Selection becomes ready.
type Session struct {
	Catalog   []pokeapi.ListItem
	Selection RemoteStatus[pokeapi.DetailRecord]
	Inspector jsontree.ViewState
	Filter    string
}

// Visible returns the catalog entries whose name contains the filter text,
// case-folded. An empty filter matches everything. The catalog itself is
// never modified.
func (s Session) Visible() []pokeapi.ListItem {
	if s.Filter == "" {
		return s.Catalog
	}

	needle := strings.ToLower(s.Filter)
	var out []pokeapi.ListItem
	for _, item := range s.Catalog {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}

// State is the whole application state. Only Transition produces new values.
type State struct {
	Phase Phase
	// Fatal carries the error message while Phase is PhaseFatal.
	Fatal string
	// Session is meaningful only while Phase is PhaseReady.
	Session Session
}

// Bootstrapping returns the initial state.
func Bootstrapping() State {
	return State{Phase: PhaseBootstrapping}
}
