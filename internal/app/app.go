// Package app provides high-level application logic behind the CLI commands.
package app

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/vityhq/vity/internal/ai"
	"github.com/vityhq/vity/internal/config"
	"github.com/vityhq/vity/internal/logger"
)

// NewProvider builds the configured AI provider.
func NewProvider(cfg *config.Config) (ai.Provider, error) {
	return ai.NewProvider(&ai.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.APIKey(),
		BaseURL:  cfg.LLM.BaseURL,
		Model:    cfg.LLM.Model,
		Tag:      cfg.History.Tag,
	})
}

// debugLogger returns the debug channel: enabled via config or VITY_DEBUG,
// a no-op otherwise.
func debugLogger(cfg *config.Config) zerolog.Logger {
	if cfg.Debug.Enabled {
		return logger.New(os.Stderr)
	}
	return logger.FromEnv()
}
