// game is the PBJ board demo: move the avatar around a board whose edges hold the peanut
// butter, bread, jelly and serving counter.
//
// Usage:
//
//	game                       - Play
//	game inspect [blob]        - List the meshes in a mesh blob
//	game pack <in> <out>       - Compress a mesh blob with zstd
//
// Global flags:
//
//	--config <path>     - YAML config (default: config/game.yaml, then built-in)
//	--assets <path>     - Mesh blob, overrides assets.meshes
//	--seed <n>          - Level seed, 0 picks one from the clock
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log file, empty disables it
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pbj/internal/config"
)

var (
	flagConfig   string
	flagAssets   string
	flagSeed     uint64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "PBJ - make a sandwich on a tiny board",
	Long: `Walk the avatar around the board. Four keys sit on the board's edges:
peanut butter, bread, jelly and the serving counter.

Controls:
  W/A/S/D  - Move (rebindable in the config)
  Esc      - Open or close the console (/help lists commands)

Examples:
  game
  game --seed 42
  game --config ./my-game.yaml --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Path to the mesh blob")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Level seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file path")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(packCmd)
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("assets") {
		cfg.Assets.Meshes = flagAssets
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	return cfg, cfg.Validate()
}
