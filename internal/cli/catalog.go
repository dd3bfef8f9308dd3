package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// catalogCommand creates the catalog command for browsing furniture specs.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [key]",
		Short: "List the furniture catalog",
		Long: `List the furniture catalog, or show one entry in detail.

Without arguments the whole catalog is printed. With a key only that
entry is shown:

  roomplan catalog
  roomplan catalog ws_1200x600
  roomplan catalog --catalog office.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				spec, err := cat.Lookup(args[0])
				if err != nil {
					return err
				}
				printKeyValue("key", args[0])
				printKeyValue("kind", string(spec.Kind))
				printKeyValue("width", fmt.Sprintf("%d mm", spec.W))
				printKeyValue("depth", fmt.Sprintf("%d mm", spec.D))
				if spec.ClearFront > 0 {
					printKeyValue("clear front", fmt.Sprintf("%d mm", spec.ClearFront))
				}
				return nil
			}

			rows := [][]string{}
			for _, key := range cat.Keys() {
				spec, err := cat.Lookup(key)
				if err != nil {
					return err
				}
				clear := "—"
				if spec.ClearFront > 0 {
					clear = strconv.Itoa(spec.ClearFront)
				}
				rows = append(rows, []string{
					key,
					string(spec.Kind),
					strconv.Itoa(spec.W),
					strconv.Itoa(spec.D),
					clear,
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Key", "Kind", "W (mm)", "D (mm)", "Clear").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 0 {
						return StyleHighlight
					}
					return StyleValue
				})

			fmt.Println(t.Render())
			return nil
		},
	}

	return cmd
}
