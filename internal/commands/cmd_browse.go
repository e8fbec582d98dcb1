package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pokedex/internal/tui"
)

type BrowseCmd struct {
	flags *Flags
}

func NewBrowseCmd(flags *Flags) *BrowseCmd {
	return &BrowseCmd{flags: flags}
}

// Register adds the browse command to the application.
func (cmd *BrowseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "browse",
		Usage:     "Open the interactive Pokédex browser",
		UsageText: "pokedex browse",
		Description: `Opens the full-screen browser: a filterable catalog on the left and a
detail inspector on the right.

This is also the default action when pokedex is run with no arguments.`,
		Action: cmd.Run,
	})
	return app
}

// Run starts the browser. Exposed so main can use it as the default action.
func (cmd *BrowseCmd) Run(ctx context.Context, c *cli.Command) error {
	return tui.Run(cmd.flags.Client())
}
