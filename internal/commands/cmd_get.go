package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pokedex/internal/tui/jsoncolor"
	"github.com/colonyops/pokedex/pkg/iojson"
)

type GetCmd struct {
	flags *Flags

	// flags
	raw bool
}

func NewGetCmd(flags *Flags) *GetCmd {
	return &GetCmd{flags: flags}
}

// Register adds the get command to the application
func (cmd *GetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "get",
		Usage:     "Fetch one Pokémon's details",
		UsageText: "pokedex get <id-or-name> [--raw]",
		Description: `Fetches one Pokémon by numeric id or by name and prints the full API
payload. Output is syntax-colored when stdout is a terminal; use --raw to
force plain JSON.

Names are resolved through the catalog, so only catalog entries can be
looked up by name.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print plain JSON without colors",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *GetCmd) run(ctx context.Context, c *cli.Command) error {
	arg := c.Args().First()
	if arg == "" {
		return fmt.Errorf("missing argument. Run 'pokedex get --help' for usage")
	}

	client := cmd.flags.Client()

	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		id, err = cmd.resolveName(ctx, arg)
		if err != nil {
			return err
		}
	}

	rec, err := client.Detail(ctx, id)
	if err != nil {
		return err
	}

	if cmd.raw || !iojson.IsTerminal(os.Stdout) {
		_, err = fmt.Fprintln(c.Root().Writer, string(rec.Raw))
		return err
	}

	_, err = fmt.Fprintln(c.Root().Writer, jsoncolor.Colorize(rec.Raw))
	return err
}

func (cmd *GetCmd) resolveName(ctx context.Context, name string) (int, error) {
	items, err := cmd.flags.Client().Catalog(ctx)
	if err != nil {
		return 0, err
	}

	needle := strings.ToLower(name)
	for _, item := range items {
		if strings.ToLower(item.Name) == needle {
			return item.ID, nil
		}
	}
	return 0, fmt.Errorf("no Pokémon named %q in the catalog", name)
}
