package dex

import (
	"github.com/colonyops/pokedex/internal/jsontree"
	"github.com/colonyops/pokedex/internal/pokeapi"
)

// Transition applies one event to the current state and returns the next
// state plus an optional fetch effect. It is pure: no I/O, no mutation of
// its arguments. Events that make no sense in the current phase are dropped
// and the state returned unchanged.
func Transition(ev Event, st State) (State, *Effect) {
	if st.Phase == PhaseFatal {
		return st, nil
	}

	switch e := ev.(type) {
	case CatalogLoaded:
		if st.Phase != PhaseBootstrapping {
			return st, nil
		}
		if e.Err != nil {
			return State{Phase: PhaseFatal, Fatal: e.Err.Error()}, nil
		}
		return State{
			Phase: PhaseReady,
			Session: Session{
				Catalog:   e.Items,
				Selection: NotRequested[pokeapi.DetailRecord](),
				Inspector: jsontree.EmptyView(),
			},
		}, nil

	case EntitySelected:
		if st.Phase != PhaseReady {
			return st, nil
		}
		next := st.Session
		next.Selection = InFlight[pokeapi.DetailRecord]()
		return State{Phase: PhaseReady, Session: next}, &Effect{FetchDetailID: e.ID}

	case DetailLoaded:
		if st.Phase != PhaseReady {
			return st, nil
		}
		next := st.Session
		if e.Err != nil {
			next.Selection = Failed[pokeapi.DetailRecord](e.Err.Error())
		} else {
			next.Selection = Ready(e.Record)
			next.Inspector = jsontree.InitialView(e.Record.Raw)
		}
		return State{Phase: PhaseReady, Session: next}, nil

	case InspectorChanged:
		if st.Phase != PhaseReady {
			return st, nil
		}
		next := st.Session
		next.Inspector = e.View
		return State{Phase: PhaseReady, Session: next}, nil

	case FilterChanged:
		if st.Phase != PhaseReady {
			return st, nil
		}
		next := st.Session
		next.Filter = e.Text
		return State{Phase: PhaseReady, Session: next}, nil
	}

	return st, nil
}
