package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vityhq/vity/internal/ai"
	"github.com/vityhq/vity/internal/chat"
	"github.com/vityhq/vity/internal/config"
	vityerrors "github.com/vityhq/vity/internal/errors"
	"github.com/vityhq/vity/internal/history"
)

// ChatOptions contains options for the chat command.
type ChatOptions struct {
	// Prompt is the user's question.
	Prompt string

	// LogPath overrides the terminal session log (default: active session).
	LogPath string

	// ChatPath overrides the chat transcript (default: active session).
	ChatPath string

	// ErrOut receives user-facing warnings (default: os.Stderr).
	ErrOut io.Writer

	// Confirm, when set, is asked before terminal context is sent.
	Confirm func(provider, model, redactLevel, context string) (bool, error)

	// Run, when set, wraps the provider call.
	Run func(ctx context.Context, title string, work func(context.Context) (string, error)) (string, error)
}

// Chat answers a free-form question, grounded in the active session's
// terminal context when one exists, and records the exchange in the chat
// transcript.
func Chat(ctx context.Context, cfg *config.Config, opts *ChatOptions) (string, error) {
	log := debugLogger(cfg)
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	logPath, chatPath := sessionPaths(opts.LogPath, opts.ChatPath)
	termCtx := terminalContext(cfg, logPath)

	if cfg.LLM.ConfirmSend && termCtx != "" && opts.Confirm != nil {
		ok, err := opts.Confirm(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.Redact, termCtx)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", vityerrors.ErrCanceled
		}
	}

	var transcript *chat.Transcript
	if chatPath != "" {
		t, fresh, err := chat.Load(chatPath)
		if err == nil {
			transcript = t
			if fresh {
				fmt.Fprintln(errOut, "Warning: chat history was invalid JSON, starting fresh.")
				log.Debug().Str("path", chatPath).Msg("chat transcript unreadable, starting fresh")
			}
		}
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		return "", err
	}

	req := ai.Request{
		Prompt:          opts.Prompt,
		TerminalContext: termCtx,
		History:         transcriptHistory(transcript),
		Shell:           history.DetectShell(),
	}

	callCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
	defer cancel()

	var answer string
	if opts.Run != nil {
		answer, err = opts.Run(callCtx, "Thinking...", func(c context.Context) (string, error) {
			return provider.Chat(c, req)
		})
	} else {
		answer, err = provider.Chat(callCtx, req)
	}
	if err != nil {
		return "", err
	}

	if transcript != nil {
		transcript.Append(chat.RoleUser, opts.Prompt)
		transcript.Append(chat.RoleAssistant, answer)
		if err := chat.Save(chatPath, transcript); err != nil {
			log.Debug().Err(err).Str("path", chatPath).Msg("chat transcript save failed")
		}
	}

	return answer, nil
}
