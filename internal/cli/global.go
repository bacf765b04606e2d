// Package cli provides Cobra command definitions for vity.
package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vityhq/vity/internal/config"
)

var (
	// NoTUI indicates that TUI/interactive mode should be disabled.
	// This is set by the global --no-tui flag.
	NoTUI bool

	// noTUIMutex protects NoTUI for concurrent access.
	noTUIMutex sync.RWMutex
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&NoTUI, "no-tui", false,
		"disable TUI/interactive mode; use plain text output")
}

// IsNoTUI returns true if TUI mode is disabled.
func IsNoTUI() bool {
	noTUIMutex.RLock()
	defer noTUIMutex.RUnlock()
	return NoTUI
}

// Interactive reports whether TUI models may be used: the flag allows it
// and stdout is a terminal. The shell wrapper captures vity's output, so
// spinners must stay out of piped output.
func Interactive() bool {
	return !IsNoTUI() && isatty.IsTerminal(os.Stdout.Fd())
}

// loadConfig loads the config from an explicit path or the default
// location.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadWithDefaults()
}

// requireLLM verifies the provider settings needed for an AI call.
func requireLLM(cfg *config.Config) error {
	if cfg.LLM.BaseURL == "" || cfg.LLM.Model == "" {
		return fmt.Errorf("AI provider not configured. Run 'vity config' to set llm.base_url and llm.model")
	}
	return nil
}
