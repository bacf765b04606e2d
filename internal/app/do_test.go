package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vityhq/vity/internal/ai"
	"github.com/vityhq/vity/internal/chat"
	"github.com/vityhq/vity/internal/config"
	vityerrors "github.com/vityhq/vity/internal/errors"
	"github.com/vityhq/vity/internal/inject"
)

// fakeProvider returns canned responses and records the requests it sees.
type fakeProvider struct {
	command string
	answer  string
	lastReq ai.Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) GenerateCommand(_ context.Context, req ai.Request) (string, error) {
	f.lastReq = req
	return f.command, nil
}

func (f *fakeProvider) Chat(_ context.Context, req ai.Request) (string, error) {
	f.lastReq = req
	return f.answer, nil
}

func registerFake(t *testing.T, p *fakeProvider) *config.Config {
	t.Helper()
	ai.RegisterProvider("fake", func(*ai.Config) (ai.Provider, error) { return p, nil })

	cfg := config.DefaultConfig()
	cfg.LLM.Provider = "fake"
	cfg.LLM.BaseURL = "http://localhost:1"
	cfg.LLM.Model = "test-model"
	return cfg
}

func setShellEnv(t *testing.T, histFile string) {
	t.Helper()
	t.Setenv(inject.EnvShellOverride, "bash")
	t.Setenv("HISTFILE", histFile)
	t.Setenv("HISTSIZE", "")
	t.Setenv("HISTTIMEFORMAT", "")
	t.Setenv("PROMPT_COMMAND", "")
	t.Setenv("VITY_ACTIVE_LOG", "")
	t.Setenv("VITY_ACTIVE_CHAT", "")
}

func TestDoGeneratesAndInjects(t *testing.T) {
	dir := t.TempDir()
	histFile := filepath.Join(dir, "bash_history")
	setShellEnv(t, histFile)

	fake := &fakeProvider{command: "git status # vity generated"}
	cfg := registerFake(t, fake)

	logPath := filepath.Join(dir, "session.log")
	if err := os.WriteFile(logPath, []byte("$ ls\nmain.go\n"), 0644); err != nil {
		t.Fatal(err)
	}
	chatPath := filepath.Join(dir, "chat.json")

	var out bytes.Buffer
	result, err := Do(context.Background(), cfg, &DoOptions{
		Prompt:   "show repo status",
		LogPath:  logPath,
		ChatPath: chatPath,
		Out:      &out,
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	if result.Command != "git status # vity generated" {
		t.Errorf("Command = %q", result.Command)
	}
	if !result.Injected {
		t.Error("expected command to be injected")
	}

	if !strings.Contains(out.String(), "git status # vity generated\n") {
		t.Errorf("output missing command line: %q", out.String())
	}
	if !strings.Contains(out.String(), inject.Marker+"git status # vity generated") {
		t.Errorf("output missing marker line: %q", out.String())
	}

	data, err := os.ReadFile(histFile)
	if err != nil {
		t.Fatalf("history file not written: %v", err)
	}
	if string(data) != "git status # vity generated\n" {
		t.Errorf("history file = %q", data)
	}

	if !strings.Contains(fake.lastReq.TerminalContext, "main.go") {
		t.Errorf("terminal context not passed to provider: %q", fake.lastReq.TerminalContext)
	}

	transcript, fresh, err := chat.Load(chatPath)
	if err != nil || fresh {
		t.Fatalf("transcript load: err=%v fresh=%v", err, fresh)
	}
	if len(transcript.Messages) != 2 {
		t.Fatalf("transcript has %d messages, want 2", len(transcript.Messages))
	}
	if transcript.Messages[1].Content != "git status # vity generated" {
		t.Errorf("assistant turn = %q", transcript.Messages[1].Content)
	}
}

func TestDoUnsupportedShellDegrades(t *testing.T) {
	dir := t.TempDir()
	setShellEnv(t, filepath.Join(dir, "hist"))
	t.Setenv(inject.EnvShellOverride, "fish")
	t.Setenv("SHELL", "/usr/bin/fish")

	fake := &fakeProvider{command: "ls"}
	cfg := registerFake(t, fake)

	var out bytes.Buffer
	result, err := Do(context.Background(), cfg, &DoOptions{Prompt: "list", Out: &out})
	if err != nil {
		t.Fatalf("Do() error = %v, want silent degradation", err)
	}
	if result.Injected {
		t.Error("unsupported shell must not report injection")
	}
	if !strings.Contains(out.String(), "ls\n") {
		t.Error("command must still be printed")
	}
}

func TestDoConfirmDeclined(t *testing.T) {
	dir := t.TempDir()
	setShellEnv(t, filepath.Join(dir, "hist"))

	fake := &fakeProvider{command: "rm -rf /tmp/x"}
	cfg := registerFake(t, fake)
	cfg.LLM.ConfirmSend = true

	logPath := filepath.Join(dir, "session.log")
	if err := os.WriteFile(logPath, []byte("$ whoami\nroot\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Do(context.Background(), cfg, &DoOptions{
		Prompt:  "clean up",
		LogPath: logPath,
		Out:     &bytes.Buffer{},
		Confirm: func(provider, model, redactLevel, context string) (bool, error) {
			return false, nil
		},
	})
	if !errors.Is(err, vityerrors.ErrCanceled) {
		t.Errorf("Do() error = %v, want ErrCanceled", err)
	}
	if fake.lastReq.Prompt != "" {
		t.Error("provider must not be called after a declined confirmation")
	}
}

func TestChatRecordsTranscript(t *testing.T) {
	dir := t.TempDir()
	setShellEnv(t, filepath.Join(dir, "hist"))

	fake := &fakeProvider{answer: "That error means the port is taken."}
	cfg := registerFake(t, fake)

	chatPath := filepath.Join(dir, "chat.json")
	answer, err := Chat(context.Background(), cfg, &ChatOptions{
		Prompt:   "why did that fail?",
		ChatPath: chatPath,
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if answer != fake.answer {
		t.Errorf("answer = %q", answer)
	}

	transcript, _, err := chat.Load(chatPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(transcript.Messages) != 2 {
		t.Fatalf("transcript has %d messages, want 2", len(transcript.Messages))
	}

	// Second turn should carry the prior conversation.
	if _, err := Chat(context.Background(), cfg, &ChatOptions{
		Prompt:   "how do I fix it?",
		ChatPath: chatPath,
	}); err != nil {
		t.Fatal(err)
	}
	if len(fake.lastReq.History) != 2 {
		t.Errorf("second call saw %d history turns, want 2", len(fake.lastReq.History))
	}
}

func TestDoFromHistoryContext(t *testing.T) {
	dir := t.TempDir()
	histFile := filepath.Join(dir, "bash_history")
	setShellEnv(t, histFile)
	t.Setenv("SHELL", "/bin/bash")

	lines := "make build\nmake test\ngit diff\n"
	if err := os.WriteFile(histFile, []byte(lines), 0600); err != nil {
		t.Fatal(err)
	}

	fake := &fakeProvider{command: "make test -run TestParser"}
	cfg := registerFake(t, fake)

	_, err := Do(context.Background(), cfg, &DoOptions{
		Prompt:      "rerun that test",
		FromHistory: 2,
		Out:         &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	ctx := fake.lastReq.TerminalContext
	if !strings.Contains(ctx, "make test") || !strings.Contains(ctx, "git diff") {
		t.Errorf("context missing recent commands: %q", ctx)
	}
	if strings.Contains(ctx, "make build") {
		t.Errorf("context should only carry the last 2 commands: %q", ctx)
	}
}

func TestDoCorruptTranscriptWarns(t *testing.T) {
	dir := t.TempDir()
	setShellEnv(t, filepath.Join(dir, "hist"))

	fake := &fakeProvider{command: "ls"}
	cfg := registerFake(t, fake)

	chatPath := filepath.Join(dir, "chat.json")
	if err := os.WriteFile(chatPath, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	_, err := Do(context.Background(), cfg, &DoOptions{
		Prompt:   "list",
		ChatPath: chatPath,
		Out:      &out,
		ErrOut:   &errOut,
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	if !strings.Contains(errOut.String(), "invalid JSON, starting fresh") {
		t.Errorf("expected user-facing warning, got %q", errOut.String())
	}

	transcript, fresh, err := chat.Load(chatPath)
	if err != nil || fresh {
		t.Fatalf("transcript should be rewritten valid: err=%v fresh=%v", err, fresh)
	}
	if len(transcript.Messages) != 2 {
		t.Errorf("rewritten transcript has %d messages, want 2", len(transcript.Messages))
	}
}
