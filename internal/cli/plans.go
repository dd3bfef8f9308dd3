package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roomplan/pkg/io"
	"github.com/matzehuels/roomplan/pkg/store"
)

// plansCommand creates the plans command for managing saved plans.
func (c *CLI) plansCommand() *cobra.Command {
	var (
		storeDir string
		mongoURI string
	)

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage saved plans",
		Long: `Manage saved plans.

Plans are stored as JSON files under ~/.config/roomplan/plans/ by
default. --store selects a different directory; --mongo switches to a
MongoDB backend (shared with 'serve').`,
	}

	cmd.PersistentFlags().StringVar(&storeDir, "store", "", "plan store directory (default: ~/.config/roomplan/plans)")
	cmd.PersistentFlags().StringVar(&mongoURI, "mongo", "", "MongoDB connection string, e.g. mongodb://localhost:27017")

	openStore := func(ctx context.Context) (store.Store, error) {
		return newStore(ctx, storeDir, mongoURI)
	}

	cmd.AddCommand(c.plansSaveCommand(openStore))
	cmd.AddCommand(c.plansListCommand(openStore))
	cmd.AddCommand(c.plansShowCommand(openStore))
	cmd.AddCommand(c.plansRenameCommand(openStore))
	cmd.AddCommand(c.plansDeleteCommand(openStore))

	return cmd
}

// storeOpener defers backend selection until a subcommand runs, so flag
// values are resolved first.
type storeOpener func(ctx context.Context) (store.Store, error)

// newStore selects the plan storage backend. A Mongo URI wins over a
// directory.
func newStore(ctx context.Context, dir, mongoURI string) (store.Store, error) {
	if mongoURI != "" {
		return store.NewMongoStore(ctx, store.MongoConfig{URI: mongoURI})
	}
	return store.NewFileStore(dir)
}

func (c *CLI) plansSaveCommand(open storeOpener) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save [solution.json]",
		Short: "Save a solved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := loadSolution(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				return fmt.Errorf("missing --name")
			}

			st, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			saved, err := st.Save(cmd.Context(), name, sol)
			if err != nil {
				return err
			}

			printSuccess("Saved %q", saved.Name)
			printDetail("id: %s", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "plan name (required)")

	return cmd
}

func (c *CLI) plansListCommand(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			plans, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				printInfo("No saved plans")
				return nil
			}

			rows := [][]string{}
			for _, p := range plans {
				status := iconSuccess
				if !p.OK {
					status = iconWarning
				}
				rows = append(rows, []string{
					p.ID,
					p.Name,
					p.Pattern,
					strconv.Itoa(p.SeatsPlaced),
					fmt.Sprintf("%.2f", p.Score),
					status,
					p.CreatedAt.Format("2006-01-02 15:04"),
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("ID", "Name", "Pattern", "Seats", "Score", "", "Created").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 1 {
						return StyleHighlight
					}
					return StyleValue
				})

			fmt.Println(t.Render())
			return nil
		},
	}
}

func (c *CLI) plansShowCommand(open storeOpener) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a saved plan, optionally exporting its solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			saved, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			best := &saved.Solution.Best
			printKeyValue("name", saved.Name)
			printKeyValue("id", saved.ID)
			printKeyValue("pattern", best.Pattern)
			printKeyValue("seats", fmt.Sprintf("%d/%d", best.SeatsPlaced, best.SeatsRequired))
			printKeyValue("score", fmt.Sprintf("%.2f", saved.Solution.BestScore))
			printKeyValue("created", saved.CreatedAt.Format("2006-01-02 15:04"))

			if output != "" {
				if err := io.ExportSolution(saved.Solution, output); err != nil {
					return fmt.Errorf("write solution %s: %w", output, err)
				}
				printNewline()
				printFile(output)
				printNextStep("Render", "roomplan render "+output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "export the solution to this file")

	return cmd
}

func (c *CLI) plansRenameCommand(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [id] [name]",
		Short: "Rename a saved plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			if err := st.Rename(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			printSuccess("Renamed %s to %q", args[0], args[1])
			return nil
		},
	}
}

func (c *CLI) plansDeleteCommand(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}
