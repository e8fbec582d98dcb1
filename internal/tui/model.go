// Package tui implements the Bubble Tea terminal interface for browsing the
// Pokédex.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/pokedex/internal/core/logging"
	"github.com/colonyops/pokedex/internal/core/styles"
	"github.com/colonyops/pokedex/internal/dex"
	"github.com/colonyops/pokedex/internal/jsontree"
	"github.com/colonyops/pokedex/internal/pokeapi"
)

type pane int

const (
	paneList pane = iota
	paneInspector
)

// Model is the top-level Bubble Tea model. All domain state lives in st and
// advances only through dex.Transition; the remaining fields are presentation
// concerns such as cursors, focus, and widget models.
type Model struct {
	client *pokeapi.Client
	log    zerolog.Logger

	st dex.State

	// Catalog pane
	cursor      int
	filterInput textinput.Model
	filtering   bool

	// Inspector pane
	treeRoot   *jsontree.Node
	treeBroken bool
	inspCursor int
	inspScroll int
	showRaw    bool

	focus    pane
	spin     spinner.Model
	help     help.Model
	showHelp bool

	width  int
	height int
}

// New creates the model. The catalog fetch starts from Init.
func New(client *pokeapi.Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.TextPrimaryStyle

	fi := textinput.New()
	fi.Prompt = "/"
	fi.PromptStyle = styles.TextPrimaryStyle
	fi.Placeholder = "name contains..."

	return Model{
		client:      client,
		log:         logging.Component("tui"),
		st:          dex.Bootstrapping(),
		filterInput: fi,
		spin:        sp,
		help:        help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, fetchCatalogCmd(m.client))
}

// apply feeds one event through the transition function and starts any fetch
// the transition requested.
func (m *Model) apply(ev dex.Event) tea.Cmd {
	next, eff := dex.Transition(ev, m.st)
	m.st = next

	if eff == nil {
		return nil
	}
	m.log.Debug().Int("id", eff.FetchDetailID).Msg("fetching detail")
	return fetchDetailCmd(m.client, eff.FetchDetailID)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		cmd := m.apply(dex.CatalogLoaded{Items: msg.items, Err: msg.err})
		return m, cmd

	case detailLoadedMsg:
		cmd := m.apply(dex.DetailLoaded{Record: msg.record, Err: msg.err})
		m.resetInspector()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) busy() bool {
	if m.st.Phase == dex.PhaseBootstrapping {
		return true
	}
	return m.st.Phase == dex.PhaseReady && m.st.Session.Selection.Kind() == dex.StatusInFlight
}

// resetInspector rebuilds the cached tree after a selection change.
func (m *Model) resetInspector() {
	m.treeRoot = nil
	m.treeBroken = false
	m.inspCursor = 0
	m.inspScroll = 0
	m.showRaw = false

	rec, ok := m.st.Session.Selection.Value()
	if !ok {
		return
	}

	root, err := jsontree.Parse(rec.Raw)
	if err != nil {
		m.log.Warn().Err(err).Int("id", rec.ID).Msg("detail payload is not valid json")
		m.treeBroken = true
		return
	}
	m.treeRoot = root
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) && !m.filtering {
		return m, tea.Quit
	}

	if m.st.Phase != dex.PhaseReady {
		return m, nil
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, keys.Filter):
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Focus):
		if m.focus == paneList {
			m.focus = paneInspector
		} else {
			m.focus = paneList
		}
		return m, nil
	}

	if m.focus == paneInspector {
		return m.handleInspectorKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	applyCmd := m.apply(dex.FilterChanged{Text: m.filterInput.Value()})
	m.clampCursor()
	return m, tea.Batch(cmd, applyCmd)
}

func (m *Model) clampCursor() {
	visible := m.st.Session.Visible()
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.st.Session.Visible()

	switch {
	case key.Matches(msg, keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Select):
		if m.cursor < len(visible) {
			cmd := m.apply(dex.EntitySelected{ID: visible[m.cursor].ID})
			return m, tea.Batch(cmd, m.spin.Tick)
		}
	}

	return m, nil
}

func (m Model) handleInspectorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showRaw {
		return m.handleRawKey(msg)
	}

	rows := m.inspectorRows()

	switch {
	case key.Matches(msg, keys.Down):
		if m.inspCursor < len(rows)-1 {
			m.inspCursor++
		}

	case key.Matches(msg, keys.Up):
		if m.inspCursor > 0 {
			m.inspCursor--
		}

	case key.Matches(msg, keys.Select), key.Matches(msg, keys.Toggle):
		if m.inspCursor < len(rows) && rows[m.inspCursor].Node.IsContainer() {
			view := m.st.Session.Inspector.WithToggled(rows[m.inspCursor].Node.Path)
			return m, m.apply(dex.InspectorChanged{View: view})
		}

	case key.Matches(msg, keys.Expand):
		return m, m.apply(dex.InspectorChanged{View: jsontree.EmptyView()})

	case key.Matches(msg, keys.Collapse):
		if m.treeRoot != nil {
			m.inspCursor = 0
			return m, m.apply(dex.InspectorChanged{View: jsontree.CollapseBelow(m.treeRoot, 1)})
		}

	case key.Matches(msg, keys.Raw):
		m.showRaw = true
		m.inspScroll = 0
	}

	return m, nil
}

func (m Model) handleRawKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Down):
		m.inspScroll++

	case key.Matches(msg, keys.Up):
		if m.inspScroll > 0 {
			m.inspScroll--
		}

	case key.Matches(msg, keys.Raw):
		m.showRaw = false
		m.inspScroll = 0
	}

	return m, nil
}

func (m Model) inspectorRows() []jsontree.Row {
	if m.treeRoot == nil {
		return nil
	}
	return jsontree.Flatten(m.treeRoot, m.st.Session.Inspector)
}

// Run starts the browse TUI against the given API client.
func Run(client *pokeapi.Client) error {
	p := tea.NewProgram(New(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
