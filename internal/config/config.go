// Package config provides YAML-based configuration loading and preset
// management for glimmer.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/glimmer/internal/core"
)

// GlimmerConfig contains all configuration for a glimmer session.
type GlimmerConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Colors ColorConfig  `yaml:"colors"`
	Rules  RulesConfig  `yaml:"rules"`
	Pacing PacingConfig `yaml:"pacing"`
}

// GridConfig defines the fixed display dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ColorConfig defines the colors that carry meaning on the grid.
type ColorConfig struct {
	Collectible ColorValue `yaml:"collectible"` // Foreground marking a collectible cell
	Hazard      ColorValue `yaml:"hazard"`      // Background marking a hazard cell
	Marker      ColorValue `yaml:"marker"`      // Player marker
	Bonus       ColorValue `yaml:"bonus"`       // Background of the rare bonus collectible
	HUD         ColorValue `yaml:"hud"`         // HUD digits foreground
}

// RulesConfig defines level progression.
type RulesConfig struct {
	LevelUpThreshold     int `yaml:"level_up_threshold"`     // Collections needed per level
	CollectiblesPerLevel int `yaml:"collectibles_per_level"` // Collectibles seeded per level
}

// PacingConfig defines how the host tick rate grows with the level.
type PacingConfig struct {
	Enabled      bool `yaml:"enabled"`
	BaseTickRate int  `yaml:"base_tick_rate"` // Ticks per second at level 0
	MaxTickRate  int  `yaml:"max_tick_rate"`  // Ticks per second at MaxAtLevel and beyond
	MaxAtLevel   int  `yaml:"max_at_level"`
}

// ColorValue is a core.Color that unmarshals from either a name ("pink")
// or a VGA index (13).
type ColorValue core.Color

// Color returns the underlying core color.
func (c ColorValue) Color() core.Color {
	return core.Color(c)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	var idx int
	if err := node.Decode(&idx); err == nil {
		if idx < 0 || idx >= int(core.ColorCount) {
			return fmt.Errorf("color index %d out of range 0-15", idx)
		}
		*c = ColorValue(idx)
		return nil
	}

	var name string
	if err := node.Decode(&name); err != nil {
		return fmt.Errorf("color must be a name or an index: %w", err)
	}
	parsed, ok := core.ParseColor(name)
	if !ok {
		return fmt.Errorf("unknown color %q", name)
	}
	*c = ColorValue(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c ColorValue) MarshalYAML() (any, error) {
	return core.Color(c).String(), nil
}

// Preset represents a named rule set.
type Preset string

const (
	PresetStandard Preset = "standard" // Rules as loaded (level up every 3 by default)
	PresetClassic  Preset = "classic"  // Level up every 10 collections
	PresetRelaxed  Preset = "relaxed"  // Rules as loaded, constant tick rate
)

// ParsePreset converts a string to a Preset. An empty string selects the standard preset.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", PresetStandard:
		return PresetStandard, nil
	case PresetClassic, PresetRelaxed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown preset %q (want standard, classic or relaxed)", s)
	}
}

// ApplyGlimmerPreset modifies the config based on a preset. Only the fields
// a preset is about change; standard keeps the loaded config as is.
func ApplyGlimmerPreset(cfg *GlimmerConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Rules.LevelUpThreshold = 10
	case PresetRelaxed:
		cfg.Pacing.Enabled = false
	}
}

// Validate checks that every modulus derived from the config is positive and
// that the reserved colors stay distinguishable.
func (c GlimmerConfig) Validate() error {
	if c.Grid.Width < 8 {
		return fmt.Errorf("grid width %d too small (min 8)", c.Grid.Width)
	}
	if c.Grid.Height < 3 {
		return fmt.Errorf("grid height %d too small (min 3)", c.Grid.Height)
	}
	for name, v := range map[string]ColorValue{
		"collectible": c.Colors.Collectible,
		"hazard":      c.Colors.Hazard,
		"marker":      c.Colors.Marker,
		"bonus":       c.Colors.Bonus,
		"hud":         c.Colors.HUD,
	} {
		if !v.Color().Valid() {
			return fmt.Errorf("%s color %d out of range 0-15", name, v)
		}
	}
	if c.Colors.Collectible == c.Colors.Hazard {
		return fmt.Errorf("collectible and hazard colors must differ")
	}
	if c.Colors.Marker == c.Colors.Collectible || c.Colors.Marker == c.Colors.Hazard {
		return fmt.Errorf("marker color must differ from the reserved colors")
	}
	if c.Colors.HUD == c.Colors.Collectible {
		return fmt.Errorf("hud color must differ from the collectible color")
	}
	if c.Colors.Bonus == c.Colors.Hazard {
		return fmt.Errorf("bonus color must differ from the hazard color")
	}
	if c.Rules.LevelUpThreshold < 1 {
		return fmt.Errorf("level_up_threshold must be at least 1")
	}
	if c.Rules.CollectiblesPerLevel < 0 {
		return fmt.Errorf("collectibles_per_level must not be negative")
	}
	if c.Pacing.Enabled && (c.Pacing.BaseTickRate < 1 || c.Pacing.MaxTickRate < c.Pacing.BaseTickRate) {
		return fmt.Errorf("pacing needs 1 <= base_tick_rate <= max_tick_rate")
	}
	return nil
}
