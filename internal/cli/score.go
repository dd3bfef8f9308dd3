package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roomplan/pkg/pipeline"
	"github.com/matzehuels/roomplan/pkg/score"
)

// scoreCommand creates the score command for grading a solved layout.
func (c *CLI) scoreCommand() *cobra.Command {
	var (
		preset  string
		weights string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "score [solution.json]",
		Short: "Grade a solved layout and print the criterion breakdown",
		Long: `Grade a solved layout and print the criterion breakdown.

The score command re-scores a solution (produced by 'solve') under a
named preset or explicit criterion weights, prints the normalized
breakdown, and suggests improvements.

  roomplan score plan.solution.json
  roomplan score plan.solution.json --preset max_seats
  roomplan score plan.solution.json --weights seat_count=2,natural_light=0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := loadSolution(args[0])
			if err != nil {
				return err
			}

			w, err := parseWeights(weights)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			report, err := runner.Analyze(cmd.Context(), sol, pipeline.Options{
				Request: sol.Request,
				Preset:  preset,
				Weights: w,
				Logger:  c.Logger,
			})
			if err != nil {
				return err
			}

			printReport(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "scoring preset: "+strings.Join(score.PresetNames(), ", "))
	cmd.Flags().StringVar(&weights, "weights", "", "explicit criterion weights, e.g. seat_count=2,traffic_flow=1.5")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// printReport prints the graded report with per-criterion bars.
func printReport(r score.Report) {
	fmt.Println(StyleTitle.Render("Layout Score"))
	printNewline()

	b := r.Breakdown
	printCriterion("seat count", b.SeatCount)
	printCriterion("passage width", b.PassageWidth)
	printCriterion("natural light", b.NaturalLight)
	printCriterion("traffic flow", b.TrafficFlow)
	printCriterion("face-to-face", b.FaceToFaceBonus)
	printCriterion("space efficiency", b.SpaceEfficiency)
	printCriterion("desk spacing", b.DeskSpacing)
	printCriterion("area per person", b.AreaPerPerson)
	printNewline()

	printKeyValue("total", fmt.Sprintf("%.2f", r.TotalScore))
	printKeyValue("seats", strconv.Itoa(r.SeatsPlaced))
	printKeyValue("room area", fmt.Sprintf("%.1f m²", r.RoomAreaM2))
	if r.SeatsPlaced > 0 {
		printKeyValue("per person", fmt.Sprintf("%.1f m²", r.AreaPerPersonM2))
	}
	printGrade(r.Grade)

	if len(r.Suggestions) > 0 {
		printNewline()
		fmt.Println(StyleDim.Render("Suggestions:"))
		for _, s := range r.Suggestions {
			printDetail("- %s", s)
		}
	}
}

// parseWeights parses "name=value,..." pairs into a weight map.
func parseWeights(s string) (map[string]float64, error) {
	if s == "" {
		return nil, nil
	}
	out := make(map[string]float64)
	for _, pair := range parseList(s) {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid weight %q: want name=value", pair)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight value %q", value)
		}
		out[strings.TrimSpace(name)] = f
	}
	return out, nil
}
