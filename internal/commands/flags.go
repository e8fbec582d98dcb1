package commands

import (
	"github.com/colonyops/pokedex/internal/core/config"
	"github.com/colonyops/pokedex/internal/pokeapi"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// Client builds an API client from the loaded config.
func (f *Flags) Client() *pokeapi.Client {
	return pokeapi.NewClient(f.Config.API.URL, f.Config.API.Limit, f.Config.API.Timeout)
}
