// Package ai provides AI provider interfaces for command generation and chat.
package ai

import (
	"context"
	"fmt"
)

// Provider is an AI provider that can generate shell commands and chat.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// GenerateCommand translates a natural-language request into a single
	// shell command.
	GenerateCommand(ctx context.Context, req Request) (string, error)

	// Chat answers a free-form question, optionally grounded in terminal
	// context.
	Chat(ctx context.Context, req Request) (string, error)
}

// Message is one prior conversation turn sent to the provider.
type Message struct {
	// Role is "user" or "assistant".
	Role string

	// Content is the turn text.
	Content string
}

// Request contains parameters for a provider call.
type Request struct {
	// Prompt is the user's request.
	Prompt string

	// TerminalContext is the captured terminal scrollback, already
	// limited and redacted by the caller. May be empty.
	TerminalContext string

	// History is the prior conversation, oldest first.
	History []Message

	// Shell is the user's shell name, so generated commands match its
	// dialect.
	Shell string

	// OS is the operating system name.
	OS string
}

// Config contains provider configuration.
type Config struct {
	// Provider is the provider name (openai, ...).
	Provider string

	// APIKey is the API key for the provider.
	APIKey string

	// BaseURL is the base URL for the API; any OpenAI-compatible
	// endpoint works.
	BaseURL string

	// Model is the model to use.
	Model string

	// Tag is appended as a comment to generated commands.
	Tag string
}

// Factory creates a provider from configuration.
type Factory func(cfg *Config) (Provider, error)

var providers = make(map[string]Factory)

// RegisterProvider registers a provider factory.
func RegisterProvider(name string, factory Factory) {
	providers[name] = factory
}

// NewProvider creates a provider from configuration.
func NewProvider(cfg *Config) (Provider, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
