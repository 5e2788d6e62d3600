// Package config handles configuration loading for the tracker.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultLibrary is the library file used when neither the config file
// nor the --library flag names one.
const DefaultLibrary = "papers.json"

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Config is the root configuration.
type Config struct {
	Library  string       `yaml:"library"`
	LogLevel string       `yaml:"log_level"`
	Window   WindowConfig `yaml:"window"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Library:  DefaultLibrary,
		LogLevel: "info",
		Window: WindowConfig{
			Width:  800,
			Height: 500,
		},
	}
}

// Load reads a config file from path. If the file does not exist it
// returns Default() with no error; keys the file omits keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Library == "" {
		cfg.Library = DefaultLibrary
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = 800
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = 500
	}
	return cfg, nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "openpages", "config.yaml"), nil
}
