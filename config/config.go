// Package config loads namesprout settings from a TOML file in the XDG
// config directory. A missing file yields defaults; flags override fields.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable settings.
type Config struct {
	Month  string  `toml:"month"`
	Sound  bool    `toml:"sound"`
	Volume float64 `toml:"volume"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{Volume: 0.6}
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "namesprout", "config.toml")
}

// Load reads the config at path. A missing file is not an error and
// returns defaults. Field values are clamped to usable ranges.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}

	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = Default().Volume
	}
	return cfg, nil
}
