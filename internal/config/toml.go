// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Store StoreConfig `toml:"store"`
	Drill DrillConfig `toml:"drill"`
	Log   LogConfig   `toml:"log"`
}

// StoreConfig maps phrase store settings.
type StoreConfig struct {
	URI *string `toml:"uri"`
}

// DrillConfig maps round and layout settings.
type DrillConfig struct {
	PhrasesPerRound *int `toml:"phrases-per-round"`
	InputBoxWidth   *int `toml:"input-box-width"`
}

// LogConfig maps diagnostics settings.
type LogConfig struct {
	Level *string `toml:"level"`
	Dir   *string `toml:"dir"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
