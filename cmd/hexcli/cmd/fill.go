package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// fillCmd represents the fill command.
var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill every hex with a random terrain kind",
	Long: `Build the map per the shared bounds flags, then fill every hex with a
terrain kind drawn uniformly at random (via --seed) from the loaded catalog's
hex-fillable terrain kinds. Prints how many hexes received each kind.`,
	RunE: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)
}

func runFill(cmd *cobra.Command, args []string) error {
	s, err := newBareSession()
	if err != nil {
		return err
	}
	if err := s.fill(); err != nil {
		return err
	}

	counts := map[string]int{}
	for _, hc := range s.hexMap.IterContents() {
		for _, f := range hc.Contents {
			counts[f.Type]++
		}
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("%s: %d\n", k, counts[k])
	}
	return nil
}
