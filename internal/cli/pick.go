package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roomplan/pkg/io"
	"github.com/matzehuels/roomplan/pkg/score"
	"github.com/matzehuels/roomplan/pkg/solve"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickCommand creates the pick command for interactively choosing among
// ranked layout candidates.
func (c *CLI) pickCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pick [solution.json]",
		Short: "Interactively choose among ranked layout candidates",
		Long: `Interactively choose among ranked layout candidates.

The solver keeps every candidate layout it tried, not just the winner.
The pick command shows the full ranking with a score preview pane;
selecting a candidate writes a new solution file with that candidate
promoted to the best layout.

  roomplan pick plan.solution.json
  roomplan pick plan.solution.json -o alternative.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := loadSolution(args[0])
			if err != nil {
				return err
			}
			if len(sol.Ranking) == 0 {
				return fmt.Errorf("solution %s carries no candidate ranking", args[0])
			}

			model := newCandidatePicker(sol)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("run picker: %w", err)
			}

			picked, ok := final.(candidatePickerModel)
			if !ok || picked.selected < 0 {
				printInfo("No candidate selected")
				return nil
			}

			chosen := sol.Ranking[picked.selected]
			sol.Best = sol.Candidates[chosen.Index]
			sol.BestScore = chosen.Score
			sol.Breakdown = chosen.Breakdown

			path := output
			if path == "" {
				base := strings.TrimSuffix(args[0], ".json")
				base = strings.TrimSuffix(base, ".solution")
				path = base + ".picked.json"
			}
			if err := io.ExportSolution(sol, path); err != nil {
				return fmt.Errorf("write solution %s: %w", path, err)
			}

			cand := &sol.Best
			printSuccess("Selected rank %d: %s (%.2f)", picked.selected+1, cand.Pattern, chosen.Score)
			printFile(path)
			printNewline()
			printNextStep("Render", "roomplan render "+path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.picked.json)")

	return cmd
}

// =============================================================================
// candidatePickerModel - Interactive candidate selection
// =============================================================================

// candidatePickerModel is the bubbletea model for the candidate picker. The
// left pane lists the ranking; the right pane previews the breakdown of the
// candidate under the cursor.
type candidatePickerModel struct {
	sol      *solve.Solution
	cursor   int
	selected int
	height   int
	offset   int
}

// newCandidatePicker creates a picker over the solution's ranking.
func newCandidatePicker(sol *solve.Solution) candidatePickerModel {
	return candidatePickerModel{
		sol:      sol,
		selected: -1,
		height:   12,
	}
}

func (m candidatePickerModel) Init() tea.Cmd {
	return nil
}

func (m candidatePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.sol.Ranking)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.cursor
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m candidatePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layout Candidate"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.sol.Ranking) {
		end = len(m.sol.Ranking)
	}

	var rows []string
	for i := m.offset; i < end; i++ {
		r := m.sol.Ranking[i]
		cand := &m.sol.Candidates[r.Index]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		status := iconSuccess
		if !cand.OK {
			status = iconWarning
		}

		line := fmt.Sprintf("%s%s %5.2f  %-28s %d/%d seats",
			cursor, status, r.Score, cand.Pattern, cand.SeatsPlaced, cand.SeatsRequired)

		switch {
		case i == m.cursor:
			rows = append(rows, listSelectedStyle.Render(line))
		case !cand.OK:
			rows = append(rows, listDimStyle.Render(line))
		default:
			rows = append(rows, listNormalStyle.Render(line))
		}
	}
	list := strings.Join(rows, "\n")

	preview := m.previewPane()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "   ", preview))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.sol.Ranking))))

	return b.String()
}

// previewPane renders the breakdown of the candidate under the cursor.
func (m candidatePickerModel) previewPane() string {
	r := m.sol.Ranking[m.cursor]
	cand := &m.sol.Candidates[r.Index]

	var b strings.Builder
	b.WriteString(StyleHighlight.Render(cand.Pattern))
	b.WriteString("\n")
	if cand.WSType != "" {
		b.WriteString(listDimStyle.Render("desk " + cand.WSType))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, row := range breakdownRows(r.Breakdown) {
		b.WriteString(fmt.Sprintf("%-12s %s\n", row.name, scoreBar(row.value)))
	}
	b.WriteString("\n")
	b.WriteString(StyleValue.Render(fmt.Sprintf("total %.2f", r.Score)))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		Padding(0, 1).
		Render(b.String())
}

// breakdownRow pairs a display name with a normalized criterion value.
type breakdownRow struct {
	name  string
	value float64
}

// breakdownRows flattens a Breakdown into display order.
func breakdownRows(b score.Breakdown) []breakdownRow {
	return []breakdownRow{
		{"seats", b.SeatCount},
		{"passage", b.PassageWidth},
		{"light", b.NaturalLight},
		{"traffic", b.TrafficFlow},
		{"face-to-face", b.FaceToFaceBonus},
		{"efficiency", b.SpaceEfficiency},
		{"spacing", b.DeskSpacing},
		{"area/person", b.AreaPerPerson},
	}
}
