package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Construct a hex map and its edge map, and print the hex count",
	Long: `Construct a rhombus-trimmed hex map from --left/--right/--top/--bottom,
derive its edge map, and print how many hexes and internal edges resulted.
No terrain is placed; use "hexcli fill" for that.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	s, err := newBareSession()
	if err != nil {
		return err
	}
	fmt.Printf("hexes: %d\n", s.hexMap.Len())
	fmt.Printf("edges: %d\n", s.edgeMap.Len())
	return nil
}
