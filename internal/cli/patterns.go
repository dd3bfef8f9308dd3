package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roomplan/pkg/score"
	"github.com/matzehuels/roomplan/pkg/solve"
)

// patternsCommand creates the patterns command listing placement patterns
// and scoring presets.
func (c *CLI) patternsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List placement patterns and scoring presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Placement patterns"))
			for _, name := range solve.PatternNames() {
				printDetail("%s", name)
			}
			printNewline()
			fmt.Println(StyleTitle.Render("Scoring presets"))
			for _, name := range score.PresetNames() {
				printDetail("%s", name)
			}
			return nil
		},
	}
}
