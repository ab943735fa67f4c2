// Package glimmer implements a wrapped-grid collecting game.
// The player steers a marker over a procedurally painted grid, picks up
// collectibles to advance levels and loses on touching a hazard cell.
// The display is the source of truth: collisions are resolved by reading
// back what is currently drawn. The left and right columns are painted as
// hazards like the HUD row, so wrapping horizontally always ends the session.
package glimmer

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/glimmer/internal/config"
	"github.com/vovakirdan/glimmer/internal/core"
	"github.com/vovakirdan/glimmer/internal/registry"
)

const (
	minWidth  = 8
	minHeight = 3
)

// Events reports what happened during one tick.
type Events uint8

const (
	EventCollected Events = 1 << iota
	EventLevelUp
	EventGameOver
)

// Has reports whether all bits of e2 are set.
func (e Events) Has(e2 Events) bool {
	return e&e2 == e2
}

// Game implements the glimmer state machine.
type Game struct {
	classic    bool
	configured bool
	cfgErr     error // why the defaults replaced the requested config
	cfg        config.GlimmerConfig
	runtime    core.RuntimeConfig
	display    core.Display
	reserved   Reserved

	width  int
	height int
	tick   uint64

	pos       core.Point
	dx, dy    int  // pending wrapped step per axis
	score     int  // all-time collected items
	progress  int  // collected since the last level-up
	level     int
	rngOffset uint // perturbation folded into every seed
	palette   Palette

	active bool
	paused bool

	// Counters reached before the last game-over reset.
	lastScore int
	lastLevel int
}

// Package-level settings applied when a game is created through the registry.
var (
	configPath string
	presetName string
)

// SetConfigPath sets the config file path used by New and NewClassic.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the rule preset used by New ("standard", "classic", "relaxed").
func SetPreset(preset string) {
	presetName = preset
}

// New creates a glimmer game whose config is loaded on first Reset.
func New() *Game {
	return &Game{}
}

// NewClassic creates the variant that levels up every 10 collections.
func NewClassic() *Game {
	return &Game{classic: true}
}

// NewWithConfig creates a game with an explicit config, skipping file lookup.
func NewWithConfig(cfg config.GlimmerConfig) *Game {
	return &Game{cfg: cfg, configured: true}
}

func init() {
	registry.Register("glimmer", func() registry.Game {
		return New()
	})
	registry.Register("glimmer_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.classic {
		return "glimmer_classic"
	}
	return "glimmer"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.classic {
		return "Glimmer (Classic)"
	}
	return "Glimmer"
}

// Config returns the active configuration, loading it if needed.
func (g *Game) Config() config.GlimmerConfig {
	g.ensureConfig()
	return g.cfg
}

// ConfigError reports why the configured file or preset could not be used.
// The game still runs, on the defaults; hosts log the error.
func (g *Game) ConfigError() error {
	g.ensureConfig()
	return g.cfgErr
}

func (g *Game) ensureConfig() {
	if g.configured {
		return
	}
	cfg, err := config.LoadGlimmer(configPath)
	if err != nil {
		cfg = config.DefaultGlimmerConfig()
		g.cfgErr = fmt.Errorf("glimmer: using default config: %w", err)
	}
	preset, err := config.ParsePreset(presetName)
	if err != nil {
		preset = config.PresetStandard
		g.cfgErr = errors.Join(g.cfgErr, fmt.Errorf("glimmer: using standard preset: %w", err))
	}
	if g.classic {
		preset = config.PresetClassic
	}
	config.ApplyGlimmerPreset(&cfg, preset)
	g.cfg = cfg
	g.configured = true
}

// Reset starts a fresh session drawing into dst. A nil dst gets an
// in-memory screen sized to the grid.
func (g *Game) Reset(cfg core.RuntimeConfig, dst core.Display) {
	g.ensureConfig()
	g.runtime = cfg

	g.width, g.height = cfg.ScreenW, cfg.ScreenH
	if g.width < minWidth || g.height < minHeight {
		g.width, g.height = g.cfg.Grid.Width, g.cfg.Grid.Height
	}
	if dst == nil {
		dst = core.NewScreen(g.width, g.height)
	}
	g.display = dst

	g.reserved = Reserved{
		Collectible: g.cfg.Colors.Collectible.Color(),
		Hazard:      g.cfg.Colors.Hazard.Color(),
	}

	g.tick = 0
	g.score = 0
	g.progress = 0
	g.level = 0
	g.dx, g.dy = 0, 0
	g.rngOffset = uint(cfg.Seed)
	g.active = true
	g.paused = false

	g.generate()
}

// Display returns the sink the game draws into.
func (g *Game) Display() core.Display {
	return g.display
}

// Size returns the grid dimensions.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

func (g *Game) center() core.Point {
	x, y := core.NewRect(0, 0, g.width, g.height).Center()
	return core.Point{X: x, Y: y}
}

// OnKey records one decoded key. Arrow keys apply one wrapped unit step to
// the pending delta of their axis; events accumulate until the next tick.
// Printable characters are accepted and ignored.
func (g *Game) OnKey(k core.Key) {
	if !g.active {
		return
	}
	switch k.Code {
	case core.KeyArrowLeft:
		g.dx = Sub1(g.dx, g.width)
	case core.KeyArrowRight:
		g.dx = Add1(g.dx, g.width)
	case core.KeyArrowUp:
		g.dy = Sub1(g.dy, g.height)
	case core.KeyArrowDown:
		g.dy = Add1(g.dy, g.height)
	case core.KeyRune:
		if !core.IsDrawable(k.Rune) {
			return
		}
		// Printable input is accepted but has no effect yet.
	}
}

// OnTick advances one frame: level-up check, background repaint and HUD,
// marker, then movement resolution. A finished session ignores ticks.
func (g *Game) OnTick() Events {
	if !g.active {
		return 0
	}
	g.tick++

	var ev Events
	if g.progress >= g.cfg.Rules.LevelUpThreshold {
		g.levelUp()
		ev |= EventLevelUp
	}

	g.repaint()
	g.drawHUD()
	g.drawMarker()

	return ev | g.resolveMove()
}

// levelUp grows the offset, advances the level and regenerates the grid.
func (g *Game) levelUp() {
	g.rngOffset += uint(Next(uint(g.pos.X*g.level+g.score), 100))
	g.progress = 0
	g.level++
	g.generate()
}

// resolveMove applies the pending delta against the cell currently shown at
// the destination, then clears the delta.
func (g *Game) resolveMove() Events {
	dest := core.Point{
		X: WrappedAdd(g.pos.X, g.dx, g.width),
		Y: WrappedAdd(g.pos.Y, g.dy, g.height),
	}
	g.dx, g.dy = 0, 0

	var ev Events
	switch g.classifyAt(dest) {
	case KindCollectible:
		g.score++
		g.progress++
		ev |= EventCollected
	case KindHazard:
		g.endSession()
		return ev | EventGameOver
	}

	g.pos = dest
	return ev
}

// endSession zeroes the counters, re-centers and freezes the session.
func (g *Game) endSession() {
	g.lastScore = g.score
	g.lastLevel = g.level

	g.pos = g.center()
	g.score = 0
	g.progress = 0
	g.level = 0
	g.active = false

	g.drawHUD()
	g.drawBanner("GAME OVER", "press R to restart")
}

func (g *Game) classifyAt(p core.Point) CellKind {
	return g.reserved.Classify(g.display.ReadCell(p.X, p.Y))
}

// Step adapts host input to the two entry points: queued keys go to OnKey,
// then one OnTick runs. Pause and restart are handled here.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && !g.active {
		g.Reset(g.runtime, g.display)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.active {
		g.paused = !g.paused
	}
	if g.paused || !g.active {
		return core.StepResult{State: g.State()}
	}

	for _, k := range in.Keys {
		g.OnKey(k)
	}
	ev := g.OnTick()

	res := core.StepResult{
		State:     g.State(),
		LeveledUp: ev.Has(EventLevelUp),
		Ended:     ev.Has(EventGameOver),
	}
	if res.Ended {
		res.FinalScore = g.lastScore
		res.FinalLevel = g.lastLevel
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: !g.active,
		Paused:   g.paused,
	}
}
