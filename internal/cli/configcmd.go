package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vityhq/vity/internal/config"
)

// ConfigOptions contains the options for the config command.
type ConfigOptions struct {
	ConfigPath string
	Show       bool
	Reset      bool
}

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	opts := &ConfigOptions{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configure vity",
		Long: `Configure the AI provider and behavior settings.

Without flags, runs an interactive setup wizard. Use --show to print the
current configuration and --reset to restore defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&opts.Show, "show", false, "print the current configuration")
	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "restore default configuration")

	return cmd
}

func runConfig(opts *ConfigOptions) error {
	path := opts.ConfigPath
	if path == "" {
		configDir, err := config.ConfigDir()
		if err != nil {
			return err
		}
		path = filepath.Join(configDir, "config.toml")
	}

	switch {
	case opts.Show:
		return showConfig(path)
	case opts.Reset:
		if err := config.Reset(path); err != nil {
			return err
		}
		fmt.Printf("Configuration reset to defaults: %s\n", path)
		return nil
	default:
		return configWizard(path)
	}
}

func showConfig(path string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	fmt.Printf("# %s\n", path)
	return toml.NewEncoder(os.Stdout).Encode(cfg)
}

// configWizard walks through the provider and behavior settings, seeded
// with the current values.
func configWizard(path string) error {
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API base URL").
				Description("Any OpenAI-compatible endpoint").
				Placeholder("https://api.openai.com/v1").
				Value(&cfg.LLM.BaseURL),
			huh.NewInput().
				Title("Model").
				Placeholder("gpt-4o-mini").
				Value(&cfg.LLM.Model),
			huh.NewInput().
				Title("API key environment variable").
				Description("The key itself stays out of the config file").
				Value(&cfg.LLM.APIKeyEnv),
		),
	).Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Context redaction").
				Description("Applied to terminal output before it is sent").
				Options(
					huh.NewOption("Basic - mask keys, tokens, and passwords", "basic"),
					huh.NewOption("Strict - also mask emails", "strict"),
					huh.NewOption("None", "none"),
				).
				Value(&cfg.LLM.Redact),
			huh.NewSelect[string]().
				Title("History flush policy").
				Description("When to append generated commands to the history file").
				Options(
					huh.NewOption("Auto - skip when the shell persists incrementally", "auto"),
					huh.NewOption("Always", "always"),
					huh.NewOption("Never", "never"),
				).
				Value(&cfg.History.FlushPolicy),
			huh.NewConfirm().
				Title("Confirm before sending terminal context?").
				Value(&cfg.LLM.ConfirmSend),
		),
	).Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if err := config.Write(path, cfg); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration written: %s\n", path)
	if cfg.APIKey() == "" {
		fmt.Printf("Note: %s is not set in your environment.\n", cfg.LLM.APIKeyEnv)
	}
	return nil
}
