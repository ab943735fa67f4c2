package config

import (
	_ "embed"

	"github.com/vovakirdan/glimmer/internal/core"
)

//go:embed defaults/glimmer.yaml
var defaultGlimmerYAML []byte

// DefaultGlimmerConfig returns the default glimmer configuration.
func DefaultGlimmerConfig() GlimmerConfig {
	return GlimmerConfig{
		Grid: GridConfig{
			Width:  80,
			Height: 25,
		},
		Colors: ColorConfig{
			Collectible: ColorValue(core.ColorPink),
			Hazard:      ColorValue(core.ColorBlack),
			Marker:      ColorValue(core.ColorRed),
			Bonus:       ColorValue(core.ColorYellow),
			HUD:         ColorValue(core.ColorWhite),
		},
		Rules: RulesConfig{
			LevelUpThreshold:     3,
			CollectiblesPerLevel: 10,
		},
		Pacing: PacingConfig{
			Enabled:      true,
			BaseTickRate: 8,
			MaxTickRate:  20,
			MaxAtLevel:   12,
		},
	}
}
