package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Silverados/sitenav/internal/app"
	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/export"
)

type exportFlags struct {
	format string
	output string
}

func newExportCmd(root *rootFlags) *cobra.Command {
	flags := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the document for the static-site framework",
		Example: "  sitenav export -o docs/.vitepress/config.mts\n" +
			"  sitenav export -f yaml --site-file site.yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			raw := cfg.ExportFormat
			if cmd.Flags().Changed("format") {
				raw = flags.format
			}
			format, err := export.ParseFormat(raw)
			if err != nil {
				return err
			}

			source := app.NewSource(cfg.SiteFile)
			s, err := source.Load()
			if err != nil {
				return err
			}
			if err := domain.Validate(s); err != nil {
				return fmt.Errorf("refusing to export an invalid document (run validate): %w", err)
			}

			if flags.output == "" {
				data, err := export.Encode(s, format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := export.WriteFile(flags.output, s, format); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s)\n", flags.output, format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "",
		"Output format: ts, json or yaml (default SITENAV_EXPORT_FORMAT, then ts).")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output path. The document is printed to stdout when empty.")

	return cmd
}
