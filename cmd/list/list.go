package list

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"github.com/paularlott/cli"

	"github.com/martinsuchenak/hcloud-inventory/internal/config"
	"github.com/martinsuchenak/hcloud-inventory/internal/directory"
	"github.com/martinsuchenak/hcloud-inventory/internal/inventory"
	"github.com/martinsuchenak/hcloud-inventory/internal/log"
	"github.com/martinsuchenak/hcloud-inventory/internal/output"
)

// Options controls a single inventory run
type Options struct {
	ConfigPath        string
	Host              string // when set, only this host's variables are written
	Format            output.Format
	Pretty            bool
	ResidualUngrouped bool
	Timeout           time.Duration
	Version           string
}

// DirectoryFactory creates the server directory for a loaded configuration
type DirectoryFactory func(cfg *config.Config, version string) directory.Directory

// NewHCloudDirectory is the production DirectoryFactory
func NewHCloudDirectory(cfg *config.Config, version string) directory.Directory {
	return directory.NewHCloud(cfg.Token, cfg.Endpoint, version)
}

// Flags returns the flags of the inventory run. --list is accepted because
// Ansible passes it to inventory scripts.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "list",
			Usage: "Print the full inventory (default)",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "Print the variables of a single host",
		},
		&cli.StringFlag{
			Name:         "format",
			Usage:        "Output format (json, yaml)",
			DefaultValue: "json",
			EnvVars:      []string{"HCLOUD_INVENTORY_FORMAT"},
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Indent JSON output (automatic on a terminal)",
		},
		&cli.BoolFlag{
			Name:    "residual-ungrouped",
			Usage:   "List only hosts without a configured group under ungrouped",
			EnvVars: []string{"HCLOUD_INVENTORY_RESIDUAL_UNGROUPED"},
		},
		&cli.IntFlag{
			Name:         "timeout",
			Usage:        "API timeout in seconds (0 disables)",
			DefaultValue: 60,
			EnvVars:      []string{"HCLOUD_INVENTORY_TIMEOUT"},
		},
	}
}

// Run builds the inventory from the command line flags and writes it to stdout
func Run(version string) func(ctx context.Context, cmd *cli.Command) error {
	return func(ctx context.Context, cmd *cli.Command) error {
		format, err := output.ParseFormat(cmd.GetString("format"))
		if err != nil {
			return err
		}

		opts := Options{
			ConfigPath:        cmd.GetString("config"),
			Host:              cmd.GetString("host"),
			Format:            format,
			Pretty:            cmd.GetBool("pretty") || output.IsTerminal(os.Stdout),
			ResidualUngrouped: cmd.GetBool("residual-ungrouped"),
			Timeout:           time.Duration(cmd.GetInt("timeout")) * time.Second,
			Version:           version,
		}

		return Generate(ctx, opts, NewHCloudDirectory, os.Stdout)
	}
}

// Generate loads the configuration, fetches the servers and writes the
// inventory to w. Nothing is written unless every step succeeds.
func Generate(ctx context.Context, opts Options, newDirectory DirectoryFactory, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	log.Info("Configuration loaded", "config", cfg.String())

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	servers, err := newDirectory(cfg, opts.Version).Servers(ctx)
	if err != nil {
		return err
	}
	log.Info("Servers fetched", "count", len(servers))

	var builderOpts []inventory.Option
	if opts.ResidualUngrouped {
		builderOpts = append(builderOpts, inventory.WithResidualUngrouped())
	}

	inv, err := inventory.NewBuilder(builderOpts...).Build(servers, cfg.Filters, cfg.Groups)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if opts.Host != "" {
		err = output.WriteHost(&buf, inv, opts.Host, opts.Pretty)
	} else {
		err = output.Write(&buf, inv, opts.Format, opts.Pretty)
	}
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(w)
	return err
}
