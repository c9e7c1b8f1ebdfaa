package main

import (
	"context"
	"os"

	"github.com/paularlott/cli"
	"github.com/paularlott/cli/env"

	"github.com/martinsuchenak/hcloud-inventory/cmd/check"
	"github.com/martinsuchenak/hcloud-inventory/cmd/list"
	"github.com/martinsuchenak/hcloud-inventory/internal/config"
	"github.com/martinsuchenak/hcloud-inventory/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Load .env file if it exists
	env.Load()

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:         "log-level",
			Usage:        "Log level (trace, debug, info, warn, error)",
			DefaultValue: "warn",
			EnvVars:      []string{"HCLOUD_INVENTORY_LOG_LEVEL"},
			Global:       true,
		},
		&cli.StringFlag{
			Name:         "log-format",
			Usage:        "Log format (console, json)",
			DefaultValue: "console",
			EnvVars:      []string{"HCLOUD_INVENTORY_LOG_FORMAT"},
			Global:       true,
		},
	}
	flags = append(flags, config.GetFlags()...)
	flags = append(flags, list.Flags()...)

	rootCmd := &cli.Command{
		Name:        "hcloud-inventory",
		Version:     version,
		Usage:       "Ansible dynamic inventory for Hetzner Cloud",
		Description: "Lists Hetzner Cloud servers, filters and groups them by label and prints an Ansible inventory",
		Flags:       flags,
		PreRun: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log.Configure(cmd.GetString("log-level"), cmd.GetString("log-format"))
			log.Debug("Starting", "version", version, "commit", commit, "date", date)
			return ctx, nil
		},
		Run: list.Run(version),
		Commands: []*cli.Command{
			check.Command(),
		},
	}

	if err := rootCmd.Execute(context.Background()); err != nil {
		log.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
