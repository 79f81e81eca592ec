package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/turnforge/hexengine/feature"
	"github.com/turnforge/hexengine/hex"
	"github.com/turnforge/hexengine/traversal"
)

// stepCmd represents the step command.
var stepCmd = &cobra.Command{
	Use:   "step Q,R DIR",
	Short: "Print the move cost and conditions for one evaluator step",
	Long: `Build and fill the map per the shared flags, then evaluate the single
step from hex Q,R in direction DIR (a compass abbreviation like NE, or a
digit 0..5). Prints the resulting cost and any terrain condition strings.`,
	Args: cobra.ExactArgs(2),
	RunE: runStep,
}

func init() {
	rootCmd.AddCommand(stepCmd)
}

func runStep(cmd *cobra.Command, args []string) error {
	h, err := hex.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex %q: %w", args[0], err)
	}
	d, err := hex.ParseDirection(args[1])
	if err != nil {
		return fmt.Errorf("invalid direction %q: %w", args[1], err)
	}

	s, err := newFilledSession()
	if err != nil {
		return err
	}
	if !s.hexMap.Exists(h) {
		return fmt.Errorf("hex %v is not on the map", h)
	}
	if !s.hexMap.Exists(hex.Neighbour(h, d)) {
		return fmt.Errorf("direction %v from %v leaves the map", d, h)
	}

	eval := traversal.New(s.hexMap, s.edgeMap)
	cost := eval.Cost(h, d)
	conditions := eval.Conditions(h, d)

	if cost >= feature.LARGE {
		fmt.Printf("cost: %s (impassable)\n", humanize.Comma(int64(cost)))
	} else {
		fmt.Printf("cost: %d\n", cost)
	}
	if len(conditions) == 0 {
		fmt.Println("conditions: none")
	} else {
		fmt.Printf("conditions: %s\n", strings.Join(conditions, ", "))
	}
	return nil
}
