// Package cli holds the sitenav command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Silverados/sitenav/internal/config"
	"github.com/Silverados/sitenav/internal/logger"
)

// rootFlags override the matching SITENAV_* variables when set.
type rootFlags struct {
	listen    string
	siteFile  string
	logLevel  string
	prettyLog bool
}

// NewCommand creates the root command. Without a subcommand it serves.
func NewCommand(ctx context.Context) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "sitenav",
		Short: "Build, validate, export and serve the blog navigation",
		Long: "sitenav owns the navigation tree of the blog: the top nav bar, the sidebar\n" +
			"sections and the rest of the site configuration. It can print the document in\n" +
			"the formats the static-site framework reads, or serve it over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(ctx, cmd, flags)
		},
	}

	flags.Configure(cmd)

	cmd.AddCommand(
		newServeCmd(ctx, flags),
		newExportCmd(flags),
		newValidateCmd(flags),
		newSchemaCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Configure registers the persistent flags on command.
func (flags *rootFlags) Configure(command *cobra.Command) {
	command.PersistentFlags().StringVar(&flags.listen, "listen", "",
		"Listen address, overrides SITENAV_LISTEN_PORT (e.g. :8080).")
	command.PersistentFlags().StringVar(&flags.siteFile, "site-file", "",
		"YAML site file layered over the built-in document, overrides SITENAV_SITE_FILE.")
	command.PersistentFlags().StringVar(&flags.logLevel, "log-level", "",
		"Log level: debug, info, warn or error. Overrides SITENAV_LOG_LEVEL.")
	command.PersistentFlags().BoolVar(&flags.prettyLog, "pretty-log", true,
		"Human readable console logs instead of JSON. Overrides SITENAV_PRETTY_LOG.")
}

// load reads the environment and applies the flags the user set.
func (flags *rootFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("listen") {
		cfg.ListenPort = flags.listen
	}
	if pf.Changed("site-file") {
		cfg.SiteFile = flags.siteFile
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if pf.Changed("pretty-log") {
		cfg.PrettyLog = flags.prettyLog
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(cfg.LogLevel, cfg.PrettyLog)
}
