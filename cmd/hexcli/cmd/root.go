// Package cmd is the Cobra command tree for hexcli, the composition root
// where the id generator (A1), catalog loader (A2), logging (A3), and the
// C1-C7 core packages are wired together. It mirrors the persistent-flag and
// Viper-binding pattern of the teacher's cmd/cli/cmd/root.go.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/turnforge/hexengine/feature"
	"github.com/turnforge/hexengine/hexmap"
	"github.com/turnforge/hexengine/internal/applog"
	"github.com/turnforge/hexengine/internal/catalogio"
	"github.com/turnforge/hexengine/internal/idgen"
)

var (
	cfgFile    string
	catalog    string
	left       int
	right      int
	top        int
	bottom     int
	seed       int64
	verboseOut bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:          "hexcli",
	Short:        "hexcli - command-line interface for the hex tactical map engine",
	SilenceUsage: true,
	Long: `hexcli builds a hex map, fills it with terrain, and answers move-cost
and reachability questions against it.

Every invocation rebuilds the map from the bounds and seed flags; the core
has no persisted format, so there is nothing to load between commands.

Examples:
  hexcli build --left -2 --right 2 --top -2 --bottom 2
  hexcli fill --seed 42
  hexcli step 0,0 E
  hexcli reach 0,0 --limit 5`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hexcli.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalog, "catalog", "", "path to a catalog JSON file (default: embedded catalog)")
	rootCmd.PersistentFlags().IntVar(&left, "left", 0, "left bound of the hex map")
	rootCmd.PersistentFlags().IntVar(&right, "right", 4, "right bound of the hex map")
	rootCmd.PersistentFlags().IntVar(&top, "top", 0, "top bound of the hex map")
	rootCmd.PersistentFlags().IntVar(&bottom, "bottom", 4, "bottom bound of the hex map")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "rng seed used to fill terrain (env: HEXCLI_SEED)")
	rootCmd.PersistentFlags().BoolVar(&verboseOut, "verbose", false, "show info-level log output")

	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("left", rootCmd.PersistentFlags().Lookup("left"))
	viper.BindPFlag("right", rootCmd.PersistentFlags().Lookup("right"))
	viper.BindPFlag("top", rootCmd.PersistentFlags().Lookup("top"))
	viper.BindPFlag("bottom", rootCmd.PersistentFlags().Lookup("bottom"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig loads an optional .env file (mirroring the teacher's
// godotenv.Load call in cmd/indexer/main.go) and reads in config file and
// ENV variables if set. A missing .env file is not an error; it is the
// common case outside of local development.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hexcli")
	}

	viper.SetEnvPrefix("HEXCLI")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && isVerbose() {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func logLevel() slog.Level {
	if isVerbose() {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

// session bundles the map state every subcommand rebuilds from the shared
// bounds/seed/catalog flags: there is no persisted format to load between
// invocations, so each command starts from the catalog, and the commands
// that need terrain (fill, step, reach) lay down the same deterministic
// terrain fill before doing their own work; build does not fill.
type session struct {
	hexMap  *hexmap.HexMap
	edgeMap *hexmap.EdgeMap
	catalog *feature.Catalog
	logger  *slog.Logger
}

// newBareSession builds the hex map and edge map from the shared bounds
// flags and loads the catalog, without filling any terrain.
func newBareSession() (*session, error) {
	logger := applog.New(logLevel())

	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", "terrainKinds", len(cat.HexTerrainKinds()))

	hm := hexmap.New()
	hm.Initialize(viper.GetInt("left"), viper.GetInt("right"), viper.GetInt("top"), viper.GetInt("bottom"))
	logger.Info("map initialized", "hexes", hm.Len())

	em := hexmap.NewEdgeMap()
	em.Initialize(hm)

	return &session{hexMap: hm, edgeMap: em, catalog: cat, logger: logger}, nil
}

// fill runs FillWithTerrain against s using the shared seed flag.
func (s *session) fill() error {
	if err := s.hexMap.FillWithTerrain(s.catalog, rngFromSeed(viper.GetInt64("seed")), idgen.New()); err != nil {
		return fmt.Errorf("hexcli: fill terrain: %w", err)
	}
	s.logger.Info("fill completed", "seed", viper.GetInt64("seed"))
	return nil
}

// newFilledSession builds a bare session and fills it with terrain, for
// commands that need actual move costs (step, reach).
func newFilledSession() (*session, error) {
	s, err := newBareSession()
	if err != nil {
		return nil, err
	}
	if err := s.fill(); err != nil {
		return nil, err
	}
	return s, nil
}

func loadCatalog() (*feature.Catalog, error) {
	path := viper.GetString("catalog")
	if path == "" {
		cat, err := catalogio.LoadDefault()
		if err != nil {
			return nil, fmt.Errorf("hexcli: load embedded catalog: %w", err)
		}
		return cat, nil
	}
	cat, err := catalogio.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hexcli: load catalog %s: %w", path, err)
	}
	return cat, nil
}
