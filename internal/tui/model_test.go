package tui

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pokedex/internal/dex"
	"github.com/colonyops/pokedex/internal/pokeapi"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	client := pokeapi.NewClient("http://pokeapi.invalid", 151, time.Second)
	m := New(client)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func loadedModel(t *testing.T) Model {
	t.Helper()

	m := newTestModel(t)
	next, _ := m.Update(catalogLoadedMsg{items: []pokeapi.ListItem{
		{ID: 1, Name: "bulbasaur"},
		{ID: 4, Name: "charmander"},
		{ID: 7, Name: "squirtle"},
	}})
	m = next.(Model)
	require.Equal(t, dex.PhaseReady, m.st.Phase)
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func squirtleDetail() pokeapi.DetailRecord {
	raw := `{"id":7,"name":"squirtle","base_experience":63,"types":[{"slot":1,"type":{"name":"water"}}]}`
	return pokeapi.DetailRecord{
		ID:             7,
		Name:           "squirtle",
		BaseExperience: 63,
		Types:          []string{"water"},
		Raw:            json.RawMessage(raw),
	}
}

func TestModelBootstrap(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, dex.PhaseBootstrapping, m.st.Phase)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "loading the Pokédex")
}

func TestModelCatalogFailureIsFatal(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(catalogLoadedMsg{err: errors.New("could not load the Pokédex")})
	m = next.(Model)

	assert.Equal(t, dex.PhaseFatal, m.st.Phase)
	assert.Contains(t, m.View(), "could not load the Pokédex")

	// quit still works from the fatal screen
	_, cmd := press(t, m, runeKey('q'))
	assert.NotNil(t, cmd)
}

func TestModelCatalogRenders(t *testing.T) {
	m := loadedModel(t)

	view := m.View()
	assert.Contains(t, view, "bulbasaur")
	assert.Contains(t, view, "charmander")
	assert.Contains(t, view, "squirtle")
	assert.Contains(t, view, "3/3 Pokémon")
}

func TestModelSelection(t *testing.T) {
	m := loadedModel(t)

	// move to squirtle and select
	m, _ = press(t, m, runeKey('j'))
	m, _ = press(t, m, runeKey('j'))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, dex.StatusInFlight, m.st.Session.Selection.Kind())

	next, _ := m.Update(detailLoadedMsg{record: squirtleDetail()})
	m = next.(Model)

	assert.Equal(t, dex.StatusReady, m.st.Session.Selection.Kind())
	require.NotNil(t, m.treeRoot)

	view := m.View()
	assert.Contains(t, view, "#7 squirtle")
	assert.Contains(t, view, "base experience 63")
	// the types array starts collapsed
	assert.True(t, m.st.Session.Inspector.IsCollapsed("$.types"))
}

func TestModelDetailFailureKeepsSession(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Update(detailLoadedMsg{err: errors.New("could not load Pokémon details")})
	m = next.(Model)

	assert.Equal(t, dex.PhaseReady, m.st.Phase)
	assert.Contains(t, m.View(), "could not load Pokémon details")
	assert.Contains(t, m.View(), "bulbasaur")
}

func TestModelFilter(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(t, m, runeKey('/'))
	require.True(t, m.filtering)

	for _, r := range "CHAR" {
		m, _ = press(t, m, runeKey(r))
	}

	assert.Equal(t, []pokeapi.ListItem{{ID: 4, Name: "charmander"}}, m.st.Session.Visible())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.filtering)
	assert.Contains(t, m.View(), "1/3 Pokémon")
}

func TestModelFilterClampsCursor(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(t, m, runeKey('j'))
	m, _ = press(t, m, runeKey('j'))
	require.Equal(t, 2, m.cursor)

	m, _ = press(t, m, runeKey('/'))
	m, _ = press(t, m, runeKey('b'))

	assert.Equal(t, 0, m.cursor)
}

func TestModelInspectorToggle(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Update(detailLoadedMsg{record: squirtleDetail()})
	m = next.(Model)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, paneInspector, m.focus)

	// rows: $, $.id, $.name, $.base_experience, $.types
	for range 4 {
		m, _ = press(t, m, runeKey('j'))
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.st.Session.Inspector.IsCollapsed("$.types"))

	// the first element is itself a collapsed container
	m, _ = press(t, m, runeKey('j'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "slot")

	m, _ = press(t, m, runeKey('c'))
	assert.True(t, m.st.Session.Inspector.IsCollapsed("$.types"))
}

func TestModelRawToggle(t *testing.T) {
	m := loadedModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Update(detailLoadedMsg{record: squirtleDetail()})
	m = next.(Model)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runeKey('r'))

	assert.True(t, m.showRaw)
	assert.Contains(t, m.View(), "base_experience")

	m, _ = press(t, m, runeKey('r'))
	assert.False(t, m.showRaw)
}
