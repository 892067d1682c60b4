package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/collabd/collabd/config"
	"github.com/collabd/collabd/storage"
	"github.com/collabd/collabd/telemetry"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	DB         string
	ConfigFile string
	Verbose    bool

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "collabd",
		Short: "Administer a collabd store file",
		Long: `Offline administration of a collabd store: schema creation, listing of
groups, projects and databases, event history queries and project renames.

The server process uses the same storage layer; this tool operates on the
store file directly and must not run against a file the server has open.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "path to the store file (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newInitCommand(opts),
		newGroupsCommand(opts),
		newProjectsCommand(opts),
		newDatabasesCommand(opts),
		newEventsCommand(opts),
		newLastTickCommand(opts),
		newRenameProjectCommand(opts),
	)
	return cmd
}

func (o *rootOptions) load() error {
	if o.ConfigFile != "" {
		cfg, err := config.LoadFile(o.ConfigFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
	} else {
		o.cfg = config.Load()
	}
	if o.DB != "" {
		o.cfg.StorePath = o.DB
	}
	level := o.cfg.LogLevel
	if o.Verbose {
		level = "debug"
	}
	o.logger = telemetry.NewLogger(level, o.cfg.LogFormat)
	return nil
}

// openStore opens the configured store file. The caller closes it.
func (o *rootOptions) openStore() (*storage.Store, error) {
	if o.cfg.StorePath == "" {
		return nil, fmt.Errorf("no store path configured; pass --db or set COLLABD_STORE")
	}
	return storage.Open(o.cfg.StorePath, o.logger)
}
