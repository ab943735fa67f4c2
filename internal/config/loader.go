package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGlimmer loads glimmer configuration.
// Search order: customPath -> ~/.glimmer/configs/glimmer.yaml -> ./configs/glimmer.yaml -> embedded default
func LoadGlimmer(customPath string) (GlimmerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GlimmerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseGlimmer(data)
		if err != nil {
			return GlimmerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("glimmer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseGlimmer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/glimmer.yaml"); err == nil {
		if cfg, err := parseGlimmer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseGlimmer(defaultGlimmerYAML)
	if err != nil {
		return DefaultGlimmerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseGlimmer decodes YAML over the defaults, so a partial file only
// overrides the keys it names, then validates the result.
func parseGlimmer(data []byte) (GlimmerConfig, error) {
	cfg := DefaultGlimmerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GlimmerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GlimmerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glimmer", "configs", filename)
}
