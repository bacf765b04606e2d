package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vityhq/vity/internal/app"
	vityerrors "github.com/vityhq/vity/internal/errors"
	"github.com/vityhq/vity/internal/tui"
)

// DoOptions contains the options for the do command.
type DoOptions struct {
	ConfigPath  string
	LogPath     string
	ChatPath    string
	FromHistory int
}

// NewDoCommand creates the do command.
func NewDoCommand() *cobra.Command {
	opts := &DoOptions{}

	cmd := &cobra.Command{
		Use:   "do <prompt>...",
		Short: "Generate a shell command from natural language",
		Long: `Generate a shell command from a natural language description.

The generated command is printed and placed into your shell history, so
the next up-arrow recalls it for editing and execution. Inside a recorded
session ('vity record') the terminal transcript is sent along as context.

Examples:
  vity do list the five largest files here
  vity do undo the last commit but keep the changes
  vity do --from-history 20 turn what I just did into one command`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDo(opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.LogPath, "log", "", "terminal session log to use as context")
	cmd.Flags().StringVar(&opts.ChatPath, "chat", "", "chat transcript file")
	cmd.Flags().IntVar(&opts.FromHistory, "from-history", 0, "include the last N shell history commands as context")

	return cmd
}

func runDo(opts *DoOptions, prompt string) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := requireLLM(cfg); err != nil {
		return err
	}

	appOpts := &app.DoOptions{
		Prompt:      prompt,
		LogPath:     opts.LogPath,
		ChatPath:    opts.ChatPath,
		FromHistory: opts.FromHistory,
	}
	if Interactive() {
		appOpts.Confirm = tui.ConfirmSend
		appOpts.Run = tui.RunThinking
	}

	_, err = app.Do(context.Background(), cfg, appOpts)
	if errors.Is(err, vityerrors.ErrCanceled) {
		fmt.Println("Canceled.")
		return nil
	}
	return err
}
