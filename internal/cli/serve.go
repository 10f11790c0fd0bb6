package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Silverados/sitenav/internal/app"
	"github.com/Silverados/sitenav/internal/logger"
)

func newServeCmd(ctx context.Context, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the navigation over HTTP and keep it reloaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(ctx, cmd, flags)
		},
	}
}

func runServe(ctx context.Context, cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := flags.load(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := newLogger(cfg)
	defer func() { _ = log.Sync() }()

	redacted := cfg.Redacted()
	log.Debug("configuration loaded",
		logger.String("listen", redacted.ListenPort),
		logger.String("site_file", redacted.SiteFile),
		logger.String("export_file", redacted.ExportFile),
		logger.Bool("redis", redacted.RedisEnabled()))

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}
