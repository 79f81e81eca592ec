package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turnforge/hexengine/feature"
	"github.com/turnforge/hexengine/hex"
	"github.com/turnforge/hexengine/traversal"
)

var reachLimit int

// reachCmd represents the reach command.
var reachCmd = &cobra.Command{
	Use:   "reach Q,R",
	Short: "Print every hex reachable from Q,R within --limit total move cost",
	Long: `Build and fill the map per the shared flags, then run Dijkstra from
hex Q,R bounded by --limit, printing every hex within that bound and its
distance. Distances
are colorized by band: the source, near (<=2), mid (<=5), and far.`,
	Args: cobra.ExactArgs(1),
	RunE: runReach,
}

func init() {
	reachCmd.Flags().IntVar(&reachLimit, "limit", traversal.DefaultCostLimit, "maximum total move cost to explore")
	rootCmd.AddCommand(reachCmd)
}

func runReach(cmd *cobra.Command, args []string) error {
	source, err := hex.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex %q: %w", args[0], err)
	}

	s, err := newFilledSession()
	if err != nil {
		return err
	}
	if !s.hexMap.Exists(source) {
		return fmt.Errorf("hex %v is not on the map", source)
	}

	eval := traversal.New(s.hexMap, s.edgeMap)
	reach := traversal.NewReachability(eval)
	dist := reach.Dijkstra(source, reachLimit)

	hexes := make([]hex.Hex, 0, len(dist))
	for h := range dist {
		hexes = append(hexes, h)
	}
	sort.Slice(hexes, func(i, j int) bool {
		if hexes[i].Q != hexes[j].Q {
			return hexes[i].Q < hexes[j].Q
		}
		return hexes[i].R < hexes[j].R
	})

	for _, h := range hexes {
		d := dist[h]
		if d >= feature.LARGE || d > reachLimit {
			continue
		}
		line := fmt.Sprintf("%v: %d", h, d)
		switch {
		case h == source:
			color.New(color.FgCyan, color.Bold).Println(line)
		case d <= 2:
			color.New(color.FgGreen).Println(line)
		case d <= 5:
			color.New(color.FgYellow).Println(line)
		default:
			color.New(color.FgRed).Println(line)
		}
	}
	return nil
}
