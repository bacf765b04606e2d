package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vityhq/vity/internal/app"
)

// UninstallOptions contains the options for the uninstall command.
type UninstallOptions struct {
	ConfigPath  string
	Yes         bool
	KeepConfig  bool
	KeepData    bool
	KeepHistory bool
}

// NewUninstallCommand creates the uninstall command.
func NewUninstallCommand() *cobra.Command {
	opts := &UninstallOptions{}

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove vity from your shell",
		Long: `Remove the shell integration, vity-generated history entries, the
configuration directory, and recorded session data.

Generated commands carry a tag comment; only history entries ending in
that tag are removed. Everything else in your history is untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.KeepConfig, "keep-config", false, "preserve ~/.config/vity")
	cmd.Flags().BoolVar(&opts.KeepData, "keep-data", false, "preserve recorded sessions")
	cmd.Flags().BoolVar(&opts.KeepHistory, "keep-history", false, "leave tagged history entries in place")

	return cmd
}

func runUninstall(opts *UninstallOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !opts.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Remove vity?").
					Description("Shell integration, tagged history entries, config, and session data will be removed.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Canceled.")
			return nil
		}
	}

	result, err := app.Uninstall(cfg, &app.UninstallOptions{
		KeepConfig:  opts.KeepConfig,
		KeepData:    opts.KeepData,
		KeepHistory: opts.KeepHistory,
	})
	if err != nil {
		return err
	}

	for _, rc := range result.SnippetsRemoved {
		fmt.Printf("Removed shell integration from %s\n", rc)
	}
	if result.HistoryEntriesRemoved > 0 {
		fmt.Printf("Removed %d generated history entries\n", result.HistoryEntriesRemoved)
	}
	if result.ConfigRemoved {
		fmt.Println("Removed configuration")
	}
	if result.DataRemoved {
		fmt.Println("Removed recorded sessions")
	}
	fmt.Println("\nvity uninstalled. Restart your shell to drop the wrapper function.")
	return nil
}
