package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
)

const apiGuide = `# PokéAPI

pokedex reads from the public PokéAPI (https://pokeapi.co). Two endpoints
are used:

## Catalog

` + "`GET {base}/pokemon?limit={n}`" + `

Returns the paginated resource list. Each entry carries a name and a
resource URL; the numeric id is taken from the URL's final path segment.

## Detail

` + "`GET {base}/pokemon/{id}`" + `

Returns the full record for one Pokémon. pokedex validates the fields it
displays (id, name, base_experience, types) and keeps the remainder of the
payload available in the inspector and in ` + "`pokedex get`" + `.

## Configuration

The base URL, catalog size, and request timeout live in the config file:

    api:
      url: https://pokeapi.co/api/v2
      limit: 151
      timeout: 10s

Run ` + "`pokedex init`" + ` to generate a config interactively.
`

type DocCmd struct {
	flags *Flags
}

func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Documentation",
		Description: `Access documentation for pokedex.

Use 'pokedex doc api' to see how the upstream API is consumed.`,
		Commands: []*cli.Command{
			cmd.apiCmd(),
		},
	})
	return app
}

func (cmd *DocCmd) apiCmd() *cli.Command {
	return &cli.Command{
		Name:   "api",
		Usage:  "Show the upstream API guide",
		Action: cmd.runAPI,
	}
}

func (cmd *DocCmd) runAPI(_ context.Context, c *cli.Command) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(apiGuide)
	if err != nil {
		return fmt.Errorf("render guide: %w", err)
	}

	_, err = fmt.Fprint(c.Root().Writer, out)
	return err
}
