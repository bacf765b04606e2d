// Package config provides configuration management for vity.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. ~/.config/vity/config.toml
//
// Returns empty string if no config file is found (caller should use defaults).
func DetectConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "vity", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Read file contents
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Parse TOML
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		// No config file found, return defaults
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)

		// Note: We don't validate here because defaults have intentionally
		// empty fields (llm.base_url, llm.model) that users must set via
		// the config wizard. The caller should validate when appropriate.
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: VITY_<SECTION>_<FIELD>
//
// Examples:
// - VITY_LLM_BASE_URL overrides [llm].base_url
// - VITY_LLM_MODEL overrides [llm].model
// - VITY_TERMINAL_HISTORY_LIMIT overrides [context].terminal_history_limit
//
// Boolean fields: use "true"/"false" strings
func applyEnvOverrides(c *Config) {
	// Helper to lookup and apply string override
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	// Helper to lookup and apply bool override
	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	// Helper to lookup and apply int override
	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				*target = i
			}
		}
	}

	// LLM section
	applyString("VITY_LLM_PROVIDER", &c.LLM.Provider)
	applyString("VITY_LLM_BASE_URL", &c.LLM.BaseURL)
	applyString("VITY_LLM_MODEL", &c.LLM.Model)
	applyString("VITY_LLM_API_KEY_ENV", &c.LLM.APIKeyEnv)
	applyInt("VITY_LLM_TIMEOUT_SECONDS", &c.LLM.TimeoutSeconds)
	applyBool("VITY_LLM_CONFIRM_SEND", &c.LLM.ConfirmSend)
	applyString("VITY_LLM_REDACT", &c.LLM.Redact)

	// Context section
	applyInt("VITY_TERMINAL_HISTORY_LIMIT", &c.Context.TerminalHistoryLimit)

	// History section
	applyString("VITY_HISTORY_FLUSH_POLICY", &c.History.FlushPolicy)
	applyString("VITY_HISTORY_TAG", &c.History.Tag)

	// Debug section
	applyBool("VITY_DEBUG", &c.Debug.Enabled)
}
