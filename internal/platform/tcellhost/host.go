package tcellhost

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/glimmer/internal/config"
	"github.com/vovakirdan/glimmer/internal/core"
	"github.com/vovakirdan/glimmer/internal/registry"
	"github.com/vovakirdan/glimmer/internal/storage"
)

// Options configures a Host.
type Options struct {
	Runtime core.RuntimeConfig
	Pacer   *config.Pacer
	Store   *storage.Store // optional run history
	Logger  *log.Logger
}

// Host drives one game on a tcell screen: it decodes key events into the
// input frame and steps the game on a level-paced timer.
type Host struct {
	screen  tcell.Screen
	display *Display
	game    registry.Game
	opts    Options
	logger  *log.Logger
	frame   core.InputFrame
	state   core.GameState
}

// New creates a host. The screen must already be initialized; the caller
// owns it and calls Fini.
func New(screen tcell.Screen, game registry.Game, opts Options) *Host {
	if opts.Pacer == nil {
		opts.Pacer = config.NewPacer(config.PacingConfig{}, opts.Runtime.TickRate)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Host{
		screen:  screen,
		display: NewDisplay(screen),
		game:    game,
		opts:    opts,
		logger:  logger.With("game", game.ID()),
		frame:   core.NewInputFrame(),
	}
}

// Display returns the adapter the game draws into.
func (h *Host) Display() *Display {
	return h.display
}

// Start resets the game onto the screen.
func (h *Host) Start() error {
	w, hgt := h.display.Size()
	if w < h.opts.Runtime.ScreenW || hgt < h.opts.Runtime.ScreenH {
		return fmt.Errorf("tcellhost: screen %dx%d is smaller than the %dx%d grid",
			w, hgt, h.opts.Runtime.ScreenW, h.opts.Runtime.ScreenH)
	}

	h.screen.HideCursor()
	h.screen.Clear()
	h.game.Reset(h.opts.Runtime, h.display)
	h.state = h.game.State()
	h.screen.Show()
	h.logger.Debug("session started", "seed", h.opts.Runtime.Seed)
	return nil
}

// HandleEvent queues a key event for the next tick. Returns true when the
// event asks to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func (h *Host) handleKey(key tcell.Key, r rune) bool {
	k, action, quit := mapKey(key, r)
	if quit {
		return true
	}
	if action != core.ActionNone {
		h.frame.Set(action)
	}
	if k.Code != core.KeyNone {
		h.frame.Push(k)
	}
	return false
}

// mapKey decodes a tcell key into a game key and host action.
func mapKey(key tcell.Key, r rune) (core.Key, core.Action, bool) {
	switch key {
	case tcell.KeyCtrlC:
		return core.Key{}, core.ActionQuit, true
	case tcell.KeyUp:
		return core.RawKey(core.KeyArrowUp), core.ActionNone, false
	case tcell.KeyDown:
		return core.RawKey(core.KeyArrowDown), core.ActionNone, false
	case tcell.KeyLeft:
		return core.RawKey(core.KeyArrowLeft), core.ActionNone, false
	case tcell.KeyRight:
		return core.RawKey(core.KeyArrowRight), core.ActionNone, false
	case tcell.KeyEnter:
		return core.RawKey(core.KeyEnter), core.ActionConfirm, false
	case tcell.KeyEscape:
		return core.RawKey(core.KeyEscape), core.ActionBack, false
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return core.Key{}, core.ActionQuit, true
		case 'p', 'P':
			return core.RuneKey(r), core.ActionPause, false
		case 'r', 'R':
			return core.RuneKey(r), core.ActionRestart, false
		}
		return core.RuneKey(r), core.ActionNone, false
	}
	return core.RawKey(core.KeyOther), core.ActionNone, false
}

// Tick steps the game once with the queued input and flushes the screen.
func (h *Host) Tick() core.StepResult {
	res := h.game.Step(h.frame)
	h.frame.Clear()
	h.state = res.State
	h.screen.Show()

	if res.LeveledUp {
		h.logger.Debug("level up", "level", res.State.Level, "score", res.State.Score)
	}
	if res.Ended {
		h.recordRun(res.FinalScore, res.FinalLevel)
	}
	return res
}

func (h *Host) recordRun(score, level int) {
	h.logger.Info("run finished", "score", score, "level", level)
	if h.opts.Store == nil || score == 0 {
		return
	}
	if _, err := h.opts.Store.SaveRun(h.game.ID(), score, level); err != nil {
		h.logger.Warn("could not save run", "error", err)
	}
}

// Interval returns the delay before the next tick at the current level.
func (h *Host) Interval() time.Duration {
	return h.opts.Pacer.Interval(h.state.Level)
}

// Run starts the game and loops until a quit key or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	if err := h.Start(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	timer := time.NewTimer(h.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if h.HandleEvent(ev) {
				return nil
			}
		case <-timer.C:
			h.Tick()
			timer.Reset(h.Interval())
		}
	}
}
