package config

import (
	"time"

	"github.com/vovakirdan/glimmer/internal/core"
)

// Pacer calculates the host tick rate for a level.
type Pacer struct {
	cfg      PacingConfig
	fallback int
}

// NewPacer creates a pacer. fallback is the tick rate used when pacing is disabled.
func NewPacer(cfg PacingConfig, fallback int) *Pacer {
	if fallback < 1 {
		fallback = 1
	}
	return &Pacer{cfg: cfg, fallback: fallback}
}

// IsEnabled returns whether the tick rate follows the level.
func (p *Pacer) IsEnabled() bool {
	return p.cfg.Enabled && p.cfg.BaseTickRate > 0
}

// TickRate returns ticks per second for the given level, interpolating
// linearly from BaseTickRate at level 0 to MaxTickRate at MaxAtLevel.
func (p *Pacer) TickRate(level int) int {
	if !p.IsEnabled() {
		return p.fallback
	}

	maxAt := max(p.cfg.MaxAtLevel, 1)
	level = core.Clamp(level, 0, maxAt)

	span := p.cfg.MaxTickRate - p.cfg.BaseTickRate
	return p.cfg.BaseTickRate + span*level/maxAt
}

// Interval returns the tick interval for the given level.
func (p *Pacer) Interval(level int) time.Duration {
	return time.Second / time.Duration(p.TickRate(level))
}
