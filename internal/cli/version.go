package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Silverados/sitenav/internal/version"
)

// NewVersionCmd creates a version command printing the build information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
