package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pokedex/internal/core/config"
	"github.com/colonyops/pokedex/internal/core/styles"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a config file with an interactive wizard",
		UsageText: "pokedex init [options]",
		Description: `Generates the config file, prompting for the API base URL, catalog size,
and color theme.

Use --yes to accept all defaults without prompts.
Use --force to overwrite an existing config.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(_ context.Context, c *cli.Command) error {
	path := cmd.flags.ConfigPath
	out := c.Root().Writer

	if configExists(path) && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", path)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(path + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !cmd.yes {
		var err error
		cfg, err = cmd.promptUser()
		if err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if configExists(path) {
		backup, err := backupConfig(path)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		fmt.Fprintf(out, "backed up config to %s\n", backup)
	}

	if err := config.Write(cfg, path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(out, "created config: %s\n", path)
	fmt.Fprintln(out, "run 'pokedex' to start browsing")
	return nil
}

func (cmd *InitCmd) promptUser() (config.Config, error) {
	cfg := config.DefaultConfig()
	limitStr := strconv.Itoa(cfg.API.Limit)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("API base URL").
			Description("Root of the PokéAPI instance to read from").
			Value(&cfg.API.URL),
		huh.NewInput().
			Title("Catalog size").
			Description("How many Pokémon to load at startup").
			Value(&limitStr).
			Validate(func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil || n < 1 {
					return fmt.Errorf("must be a positive number")
				}
				return nil
			}),
		huh.NewSelect[string]().
			Title("Color theme").
			Options(huh.NewOptions(styles.ThemeNames()...)...).
			Value(&cfg.TUI.Theme),
	))

	if err := form.Run(); err != nil {
		return cfg, err
	}

	cfg.API.Limit, _ = strconv.Atoi(limitStr)
	return cfg, nil
}

func configExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// backupConfig copies the existing config aside before an overwrite.
func backupConfig(path string) (string, error) {
	backup := fmt.Sprintf("%s.bak.%s", path, time.Now().Format("20060102-150405"))

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(backup, data, 0o644); err != nil {
		return "", err
	}
	return backup, nil
}
