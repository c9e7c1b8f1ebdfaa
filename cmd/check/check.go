package check

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/paularlott/cli"

	"github.com/martinsuchenak/hcloud-inventory/internal/config"
)

// Command validates the configuration file without contacting the API
func Command() *cli.Command {
	return &cli.Command{
		Name:        "check",
		Usage:       "Validate the configuration",
		Description: "Load the ini configuration and print the filters and groups it defines",
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.GetString("config"))
			if err != nil {
				return err
			}
			printSummary(os.Stdout, cfg)
			return nil
		},
	}
}

func printSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Config: %s\n", cfg.Path)
	if cfg.Endpoint != "" {
		fmt.Fprintf(w, "Endpoint: %s\n", cfg.Endpoint)
	}

	if len(cfg.Filters) == 0 {
		fmt.Fprintln(w, "Filters: none (all servers)")
	} else {
		fmt.Fprintf(w, "Filters: %s\n", cfg.Filters)
	}

	fmt.Fprintf(w, "Groups: %d\n", len(cfg.Groups))
	for _, g := range cfg.Groups {
		fmt.Fprintf(w, "  %s: %s\n", g.Name, g.Selectors)
	}
}
