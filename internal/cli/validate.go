package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Silverados/sitenav/internal/app"
	"github.com/Silverados/sitenav/internal/domain"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the document and print a summary",
		Long: "Loads the document (the built-in one, or --site-file layered over it), reports\n" +
			"every problem with its location and exits non-zero when there is any.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			source := app.NewSource(cfg.SiteFile)
			s, err := source.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := domain.Validate(s); err != nil {
				problems := domain.Problems(err)
				for _, p := range problems {
					fmt.Fprintf(out, "%s: %s\n", p.Path, p.Message)
				}
				return fmt.Errorf("%s: %d problem(s)", source.Name(), len(problems))
			}

			digest, err := domain.Digest(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: ok (%d nav items, %d sidebar sections, %d links, digest %s)\n",
				source.Name(),
				len(s.ThemeConfig.Nav),
				len(s.ThemeConfig.Sidebar),
				len(s.AllLinks()),
				digest)
			return nil
		},
	}
}
