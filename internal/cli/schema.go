package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Silverados/sitenav/internal/sources/sitefile"
)

func newSchemaCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the site file",
		Long: "Prints the JSON Schema describing --site-file documents. Point your editor's\n" +
			"YAML language server at it for completion and inline validation.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sitefile.Schema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}
			data = append(data, '\n')

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path. The schema is printed to stdout when empty.")
	return cmd
}
