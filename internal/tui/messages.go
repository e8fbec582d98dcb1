package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/pokedex/internal/pokeapi"
)

type catalogLoadedMsg struct {
	items []pokeapi.ListItem
	err   error
}

type detailLoadedMsg struct {
	record pokeapi.DetailRecord
	err    error
}

func fetchCatalogCmd(client *pokeapi.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := client.Catalog(context.Background())
		return catalogLoadedMsg{items: items, err: err}
	}
}

func fetchDetailCmd(client *pokeapi.Client, id int) tea.Cmd {
	return func() tea.Msg {
		rec, err := client.Detail(context.Background(), id)
		return detailLoadedMsg{record: rec, err: err}
	}
}
