package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roomplan/pkg/buildinfo"
)

// versionCommand creates the version command printing build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(buildinfo.String())
			return nil
		},
	}
}
