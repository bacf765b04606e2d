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

// ChatOptions contains the options for the chat command.
type ChatOptions struct {
	ConfigPath string
	LogPath    string
	ChatPath   string
}

// NewChatCommand creates the chat command.
func NewChatCommand() *cobra.Command {
	opts := &ChatOptions{}

	cmd := &cobra.Command{
		Use:   "chat <prompt>...",
		Short: "Chat about your terminal session",
		Long: `Ask a free-form question. Inside a recorded session the terminal
transcript is sent along as context, so you can ask about errors and
output you are looking at.

Examples:
  vity chat why did that build fail
  vity chat what does this stack trace mean`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.LogPath, "log", "", "terminal session log to use as context")
	cmd.Flags().StringVar(&opts.ChatPath, "chat", "", "chat transcript file")

	return cmd
}

func runChat(opts *ChatOptions, prompt string) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := requireLLM(cfg); err != nil {
		return err
	}

	appOpts := &app.ChatOptions{
		Prompt:   prompt,
		LogPath:  opts.LogPath,
		ChatPath: opts.ChatPath,
	}
	if Interactive() {
		appOpts.Confirm = tui.ConfirmSend
		appOpts.Run = tui.RunThinking
	}

	answer, err := app.Chat(context.Background(), cfg, appOpts)
	if errors.Is(err, vityerrors.ErrCanceled) {
		fmt.Println("Canceled.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}
