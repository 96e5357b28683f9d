// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	UI UIConfig `toml:"ui"`
}

// UIConfig maps interface settings. Nil means unset.
type UIConfig struct {
	TypingSpeed     *int     `toml:"typing-speed"`
	ScrollThreshold *int     `toml:"scroll-threshold"`
	RevealThreshold *float64 `toml:"reveal-threshold"`
	Mouse           *bool    `toml:"mouse"`
	Avatar          *string  `toml:"avatar"`
	Content         *string  `toml:"content"`
	LogLevel        *string  `toml:"log-level"`
	LogFile         *string  `toml:"log-file"`
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
