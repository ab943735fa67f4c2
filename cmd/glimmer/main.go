// glimmer is a wrapped-grid collecting game for the terminal.
//
// Usage:
//
//	glimmer list              - List available game variants
//	glimmer play [game]       - Play a game (default: glimmer)
//	glimmer menu              - Start menu to pick a variant interactively
//	glimmer serve             - Start SSH server for remote play
//	glimmer scores <game>     - Show the best runs for a game
//
// Global flags:
//
//	--fps <rate>      - Tick rate when level pacing is disabled (default: 10)
//	--seed <value>    - Initial RNG offset (0 = canonical layout)
//	--db <path>       - Set database path (default: ~/.glimmer/runs.db)
//	--config <path>   - Custom glimmer.yaml
//	--preset <name>   - Rule preset: standard, classic, relaxed
//	--debug           - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/glimmer/internal/config"
	"github.com/vovakirdan/glimmer/internal/core"
	"github.com/vovakirdan/glimmer/internal/games/glimmer"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagPreset string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "glimmer",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glimmer",
	Short: "Glimmer - collect the glow, dodge the dark",
	Long: `Glimmer is a terminal game on a wrapped grid. Steer the marker with the
arrow keys, pick up the highlighted glyphs to advance levels and avoid the
dark cells, including the HUD row and the side borders.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive variant picker with scoreboard
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  glimmer play
  glimmer play glimmer_classic
  glimmer play --backend tcell --seed 42
  glimmer serve --ssh :2222
  glimmer scores glimmer`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		glimmer.SetConfigPath(flagConfig)
		glimmer.SetPreset(flagPreset)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Tick rate when level pacing is disabled")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Initial RNG offset (0 = canonical layout)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glimmer/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom glimmer.yaml")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Rule preset: standard, classic, relaxed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadSettings resolves the config file and preset into the grid runtime
// config and the level pacer shared by every host.
func loadSettings() (core.RuntimeConfig, *config.Pacer, config.GlimmerConfig, error) {
	cfg, err := config.LoadGlimmer(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, nil, cfg, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return core.RuntimeConfig{}, nil, cfg, err
	}
	config.ApplyGlimmerPreset(&cfg, preset)

	rt := core.RuntimeConfig{
		ScreenW:  cfg.Grid.Width,
		ScreenH:  cfg.Grid.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return rt, config.NewPacer(cfg.Pacing, flagFPS), cfg, nil
}
