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
	"github.com/vityhq/vity/internal/inject"
	"github.com/vityhq/vity/internal/safety"
)

// DoOptions contains options for the do command.
type DoOptions struct {
	// Prompt is the natural-language request.
	Prompt string

	// LogPath overrides the terminal session log (default: active session).
	LogPath string

	// ChatPath overrides the chat transcript (default: active session).
	ChatPath string

	// FromHistory, when positive, includes the last N shell history
	// commands as additional context.
	FromHistory int

	// Out receives the generated command and the injection marker line
	// (default: os.Stdout).
	Out io.Writer

	// ErrOut receives user-facing warnings (default: os.Stderr).
	ErrOut io.Writer

	// Confirm, when set, is asked before terminal context is sent to the
	// provider. Only consulted when llm.confirm_send is on and context is
	// non-empty.
	Confirm func(provider, model, redactLevel, context string) (bool, error)

	// Run, when set, wraps the provider call (the CLI uses it to show a
	// spinner). When nil the call runs inline.
	Run func(ctx context.Context, title string, work func(context.Context) (string, error)) (string, error)
}

// DoResult contains the outcome of a do invocation.
type DoResult struct {
	// Command is the generated shell command.
	Command string

	// Injected reports whether the command reached the shell history.
	Injected bool
}

// Do translates a natural-language request into a shell command, prints it,
// and injects it into the calling shell's history.
//
// Injection failures never fail the command: an unsupported shell or
// disabled history loses the up-arrow convenience, nothing more. Those
// errors go to the debug channel only.
func Do(ctx context.Context, cfg *config.Config, opts *DoOptions) (*DoResult, error) {
	log := debugLogger(cfg)
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	logPath, chatPath := sessionPaths(opts.LogPath, opts.ChatPath)
	termCtx := terminalContext(cfg, logPath)
	if opts.FromHistory > 0 {
		if recent := ai.Redact(recentCommands(opts.FromHistory), cfg.LLM.Redact); recent != "" {
			block := "Recent shell commands:\n" + recent
			if termCtx != "" {
				termCtx = termCtx + "\n\n" + block
			} else {
				termCtx = block
			}
		}
	}

	if cfg.LLM.ConfirmSend && termCtx != "" && opts.Confirm != nil {
		ok, err := opts.Confirm(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.Redact, termCtx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, vityerrors.ErrCanceled
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
		return nil, err
	}

	req := ai.Request{
		Prompt:          opts.Prompt,
		TerminalContext: termCtx,
		History:         transcriptHistory(transcript),
		Shell:           history.DetectShell(),
	}

	callCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
	defer cancel()

	var command string
	if opts.Run != nil {
		command, err = opts.Run(callCtx, "Generating command...", func(c context.Context) (string, error) {
			return provider.GenerateCommand(c, req)
		})
	} else {
		command, err = provider.GenerateCommand(callCtx, req)
	}
	if err != nil {
		return nil, err
	}

	if transcript != nil {
		transcript.Append(chat.RoleUser, opts.Prompt)
		transcript.Append(chat.RoleAssistant, command)
		if err := chat.Save(chatPath, transcript); err != nil {
			log.Debug().Err(err).Str("path", chatPath).Msg("chat transcript save failed")
		}
	}

	fmt.Fprintln(out, command)
	if warning := safety.Check(command); warning != nil {
		fmt.Fprintln(out, warning)
	}

	result := &DoResult{Command: command}
	result.Injected = injectCommand(cfg, out, command)
	return result, nil
}

// injectCommand places the command into the shell's history, degrading
// silently when the shell is unsupported or history is off.
func injectCommand(cfg *config.Config, out io.Writer, command string) bool {
	log := debugLogger(cfg)

	dialect, err := inject.Detect(inject.OSEnv())
	if err != nil {
		log.Debug().Err(err).Msg("history injection skipped")
		return false
	}

	policy, err := inject.ParsePolicy(cfg.History.FlushPolicy)
	if err != nil {
		policy = inject.PolicyAuto
	}

	injector := inject.New(dialect,
		inject.WithPolicy(policy),
		inject.WithOutput(out),
		inject.WithLogger(log),
	)
	if err := injector.Inject(command); err != nil {
		log.Debug().Err(err).Msg("history injection failed")
		return false
	}
	return true
}
