package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/glimmer/internal/config"
	"github.com/vovakirdan/glimmer/internal/core"
	"github.com/vovakirdan/glimmer/internal/platform/tcellhost"
	"github.com/vovakirdan/glimmer/internal/platform/tui"
	"github.com/vovakirdan/glimmer/internal/registry"
	"github.com/vovakirdan/glimmer/internal/storage"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified variant (default: glimmer).

Controls:
  Arrows     - Move (presses within one tick add up)
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot (tui backend)
  Q/Ctrl+C   - Quit

Backends:
  tui    - Bubble Tea renderer (default)
  tcell  - Draws straight into a tcell screen

Presets:
  standard - Level up every 3 collections, level-paced ticks
  classic  - Level up every 10 collections
  relaxed  - Level up every 3 collections, fixed tick rate

Examples:
  glimmer play
  glimmer play glimmer_classic
  glimmer play --preset relaxed --fps 6
  glimmer play --backend tcell
  glimmer play --config ./my-glimmer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Display backend: tui or tcell")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "glimmer"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'glimmer list' to see available games.")
		os.Exit(1)
	}

	rt, pacer, _, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	checkTerminalSize(rt)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if err := registry.ConfigError(game); err != nil {
		logger.Warn("config not applied", "game", gameID, "error", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		store = nil // Continue without storage - game still works
	}

	var runErr error
	switch flagBackend {
	case "tui":
		runErr = tui.Run(game, store, pacer, rt)
	case "tcell":
		runErr = runTcell(game, store, pacer, rt)
	default:
		runErr = fmt.Errorf("unknown backend %q (want tui or tcell)", flagBackend)
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// checkTerminalSize warns when the terminal cannot show the whole grid.
func checkTerminalSize(rt core.RuntimeConfig) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Debug("cannot read terminal size", "error", err)
		return
	}
	if w < rt.ScreenW || h < rt.ScreenH+1 {
		logger.Warn("terminal is smaller than the grid",
			"terminal", fmt.Sprintf("%dx%d", w, h),
			"grid", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH),
		)
	}
}

func runTcell(game registry.Game, store *storage.Store, pacer *config.Pacer, rt core.RuntimeConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: cannot init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := tcellhost.New(screen, game, tcellhost.Options{
		Runtime: rt,
		Pacer:   pacer,
		Store:   store,
		Logger:  logger,
	})
	return host.Run(ctx)
}
