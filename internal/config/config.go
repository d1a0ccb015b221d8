// Package config loads the tool configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const configFileName = "config.toml"

// Defaults used when no config file exists.
const (
	DefaultTimezoneOffsetHours = 3
	DefaultCanOverride         = true
	DefaultMatchThreshold      = 0.85
	DefaultStrictComparison    = false
)

// Config is the resolved application configuration.
type Config struct {
	TimezoneOffsetHours int
	CanOverride         bool
	ExactMatchThreshold float64
	StrictComparison    bool
}

// file mirrors the on-disk layout: everything lives under an [app] table.
type file struct {
	App appTable `toml:"app"`
}

type appTable struct {
	TimezoneOffsetHours int     `toml:"timezone_offset_hours"`
	CanOverride         bool    `toml:"can_override"`
	ExactMatchThreshold float64 `toml:"exact_match_threshold"`
	StrictComparison    bool    `toml:"strict_comparison"`
}

// DefaultPath returns the XDG config location, ~/.config/ttd/config.toml on
// most systems.
func DefaultPath() (string, error) {
	p, err := xdg.ConfigFile(filepath.Join("ttd", configFileName))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return p, nil
}

// Load reads the config at path. A missing file yields the defaults. A file
// that exists must define timezone_offset_hours and can_override; only the
// threshold and strictness keys have fallbacks.
func Load(path string) (Config, error) {
	cfg := Config{
		TimezoneOffsetHours: DefaultTimezoneOffsetHours,
		CanOverride:         DefaultCanOverride,
		ExactMatchThreshold: DefaultMatchThreshold,
		StrictComparison:    DefaultStrictComparison,
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}

	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if !md.IsDefined("app", "timezone_offset_hours") {
		return Config{}, fmt.Errorf("parse config: missing required key app.timezone_offset_hours")
	}
	if !md.IsDefined("app", "can_override") {
		return Config{}, fmt.Errorf("parse config: missing required key app.can_override")
	}

	cfg.TimezoneOffsetHours = f.App.TimezoneOffsetHours
	cfg.CanOverride = f.App.CanOverride
	if md.IsDefined("app", "exact_match_threshold") {
		cfg.ExactMatchThreshold = f.App.ExactMatchThreshold
	}
	if md.IsDefined("app", "strict_comparison") {
		cfg.StrictComparison = f.App.StrictComparison
	}
	return cfg, nil
}
