package dex

import (
	"github.com/colonyops/pokedex/internal/jsontree"
	"github.com/colonyops/pokedex/internal/pokeapi"
)

// Event is a closed set of inputs fed to Transition. The marker method keeps
// the set closed to this package.
type Event interface {
	isEvent()
}

// CatalogLoaded carries the outcome of the bootstrap catalog fetch. Exactly
// one of Items and Err is set.
type CatalogLoaded struct {
	Items []pokeapi.ListItem
	Err   error
}

// EntitySelected is raised when the user picks a catalog entry.
type EntitySelected struct {
	ID int
}

// DetailLoaded carries the outcome of a detail fetch. Exactly one of Record
// and Err is set.
type DetailLoaded struct {
	Record pokeapi.DetailRecord
	Err    error
}

// InspectorChanged replaces the inspector view state, typically after the
// user toggles a node.
type InspectorChanged struct {
	View jsontree.ViewState
}

// FilterChanged replaces the catalog filter text.
type FilterChanged struct {
	Text string
}

func (CatalogLoaded) isEvent()    {}
func (EntitySelected) isEvent()   {}
func (DetailLoaded) isEvent()     {}
func (InspectorChanged) isEvent() {}
func (FilterChanged) isEvent()    {}

// Effect is a fetch the caller must start after applying a transition. A nil
// effect means nothing to do.
type Effect struct {
	FetchDetailID int
}
