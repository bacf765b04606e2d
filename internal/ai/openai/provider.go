// Package openai provides the OpenAI-compatible AI provider for vity.
package openai

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/vityhq/vity/internal/ai"
	"github.com/vityhq/vity/internal/chat"
	vityerrors "github.com/vityhq/vity/internal/errors"
)

// Provider talks to any OpenAI-compatible chat completion endpoint.
type Provider struct {
	config *ai.Config
	client openai.Client
}

func init() {
	ai.RegisterProvider("openai", func(cfg *ai.Config) (ai.Provider, error) {
		return NewProvider(cfg)
	})
}

// NewProvider creates a provider from configuration.
func NewProvider(cfg *ai.Config) (*Provider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: llm.base_url is required", vityerrors.ErrInvalid)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: llm.model is required", vityerrors.ErrInvalid)
	}

	opts := []option.RequestOption{option.WithBaseURL(cfg.BaseURL)}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	return &Provider{
		config: cfg,
		client: openai.NewClient(opts...),
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return "openai" }

// GenerateCommand translates a natural-language request into one shell
// command. The model is told to answer with the command only; anything
// after the first line is dropped.
func (p *Provider) GenerateCommand(ctx context.Context, req ai.Request) (string, error) {
	system := fmt.Sprintf(`You are a terminal assistant. Translate the user's request into exactly one %s command for %s.
Reply with the command only: no prose, no code fences, no explanation.
If a short clarification helps, append it as a trailing "#" comment on the same line.`,
		shellOr(req.Shell), osOr(req.OS))

	content, err := p.complete(ctx, system, req)
	if err != nil {
		return "", &vityerrors.ProviderError{Provider: p.Name(), Op: "generate", Err: err}
	}

	cmd := firstLine(stripFences(content))
	if cmd == "" {
		return "", &vityerrors.ProviderError{Provider: p.Name(), Op: "generate", Err: fmt.Errorf("empty completion")}
	}
	if p.config.Tag != "" && !strings.Contains(cmd, p.config.Tag) {
		cmd = cmd + " " + p.config.Tag
	}
	return cmd, nil
}

// Chat answers a free-form question.
func (p *Provider) Chat(ctx context.Context, req ai.Request) (string, error) {
	system := fmt.Sprintf(`You are a terminal assistant for %s on %s.
Answer questions about the user's terminal session, shell commands, and errors.
Be concise; prefer runnable commands over prose where they answer the question.`,
		shellOr(req.Shell), osOr(req.OS))

	content, err := p.complete(ctx, system, req)
	if err != nil {
		return "", &vityerrors.ProviderError{Provider: p.Name(), Op: "chat", Err: err}
	}
	return strings.TrimSpace(content), nil
}

// complete runs one chat completion with history and wrapped context.
func (p *Provider) complete(ctx context.Context, system string, req ai.Request) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(system),
	}

	for _, msg := range req.History {
		switch msg.Role {
		case chat.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	messages = append(messages, openai.UserMessage(chat.WrapContext(req.Prompt, req.TerminalContext)))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.config.Model),
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// stripFences removes a surrounding markdown code fence, which models emit
// despite instructions often enough to handle.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:] // drop the language hint line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// firstLine returns the first non-empty line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func shellOr(shell string) string {
	if shell == "" {
		return "bash"
	}
	return shell
}

func osOr(osName string) string {
	if osName == "" {
		return runtime.GOOS
	}
	return osName
}
