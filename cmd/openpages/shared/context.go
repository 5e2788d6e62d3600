// Package shared holds the context passed to all CLI commands.
package shared

import (
	"openpages/internal/config"
	"openpages/internal/logger"
	"openpages/internal/store"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// ConfigPath overrides the config file location. When empty the
	// per-user default (~/.config/openpages/config.yaml) is used.
	ConfigPath string
	// Library overrides the JSON library file from config.
	Library string
	// LogLevel overrides the log level from config.
	LogLevel string
}

// Open resolves configuration, builds the logger, and loads the paper
// store. Every command goes through here so flag precedence is applied
// in one place: flag over config file over default.
func (c *Context) Open() (*store.Store, *config.Config, logger.Logger, error) {
	path := c.ConfigPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	if c.Library != "" {
		cfg.Library = c.Library
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}

	log := logger.NewConsole(logger.ParseLevel(cfg.LogLevel))

	st, err := store.Open(cfg.Library, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return st, cfg, log, nil
}
