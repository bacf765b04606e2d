// Package config provides configuration management for vity.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the top-level configuration struct for vity.
// It contains all configuration sections as embedded structs.
type Config struct {
	LLM     LLMConfig     `toml:"llm"`
	Context ContextConfig `toml:"context"`
	History HistoryConfig `toml:"history"`
	Debug   DebugConfig   `toml:"debug"`
}

// LLMConfig contains AI provider settings.
type LLMConfig struct {
	// Provider is the AI provider name (default: "openai").
	Provider string `toml:"provider"`

	// BaseURL is the base URL for API requests. Required; any
	// OpenAI-compatible endpoint works.
	BaseURL string `toml:"base_url"`

	// Model is the model identifier sent to the provider.
	Model string `toml:"model"`

	// APIKeyEnv is the environment variable name containing the API key.
	// When empty, VITY_LLM_API_KEY is consulted directly.
	APIKeyEnv string `toml:"api_key_env"`

	// TimeoutSeconds bounds a single provider request (default: 60).
	TimeoutSeconds int `toml:"timeout_seconds"`

	// ConfirmSend prompts for confirmation before sending terminal
	// context to the provider.
	ConfirmSend bool `toml:"confirm_send"`

	// Redact controls the level of redaction applied to context before
	// it is sent. Valid values: "none", "basic", "strict".
	Redact string `toml:"redact"`
}

// ContextConfig controls how much terminal context is sent with a request.
type ContextConfig struct {
	// TerminalHistoryLimit is the maximum number of terminal log lines
	// included as context (default: 1000).
	TerminalHistoryLimit int `toml:"terminal_history_limit"`
}

// HistoryConfig contains history injection settings.
type HistoryConfig struct {
	// FlushPolicy determines when injected entries are appended to the
	// history file. Valid values:
	//   "auto"   - append only when the dialect lacks incremental persistence
	//   "always" - append on every injection
	//   "never"  - rely entirely on the shell's own persistence
	FlushPolicy string `toml:"flush_policy"`

	// Tag is the comment suffix appended to generated commands so that
	// uninstall can find and remove them later.
	Tag string `toml:"tag"`
}

// DebugConfig contains debug output settings.
type DebugConfig struct {
	// Enabled turns on the debug log channel (stderr). The VITY_DEBUG
	// environment variable has the same effect.
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:       "openai",
			BaseURL:        "",
			Model:          "",
			APIKeyEnv:      "VITY_LLM_API_KEY",
			TimeoutSeconds: 60,
			ConfirmSend:    false,
			Redact:         "basic",
		},
		Context: ContextConfig{
			TerminalHistoryLimit: 1000,
		},
		History: HistoryConfig{
			FlushPolicy: "auto",
			Tag:         "# vity generated",
		},
		Debug: DebugConfig{
			Enabled: false,
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	if c.LLM.Provider == "" {
		return fmt.Errorf("llm.provider cannot be empty")
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("llm.base_url cannot be empty")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model cannot be empty")
	}
	if c.LLM.TimeoutSeconds <= 0 {
		return fmt.Errorf("llm.timeout_seconds must be > 0; got %d", c.LLM.TimeoutSeconds)
	}
	validRedactLevels := map[string]bool{
		"none":   true,
		"basic":  true,
		"strict": true,
	}
	if !validRedactLevels[c.LLM.Redact] {
		return fmt.Errorf("llm.redact must be one of: none, basic, strict; got %q", c.LLM.Redact)
	}

	if c.Context.TerminalHistoryLimit < 0 {
		return fmt.Errorf("context.terminal_history_limit must be >= 0; got %d", c.Context.TerminalHistoryLimit)
	}

	validFlushPolicies := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validFlushPolicies[c.History.FlushPolicy] {
		return fmt.Errorf("history.flush_policy must be one of: auto, always, never; got %q", c.History.FlushPolicy)
	}
	if c.History.Tag == "" {
		return fmt.Errorf("history.tag cannot be empty")
	}

	return nil
}

// APIKey resolves the provider API key from the configured environment
// variable. Returns an empty string when unset.
func (c *Config) APIKey() string {
	env := c.LLM.APIKeyEnv
	if env == "" {
		env = "VITY_LLM_API_KEY"
	}
	return os.Getenv(env)
}

// DataDir returns the vity data directory (~/.local/share/vity).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "vity"), nil
}

// ConfigDir returns the vity config directory (~/.config/vity).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vity"), nil
}
