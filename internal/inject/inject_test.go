package inject

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	vityerrors "github.com/vityhq/vity/internal/errors"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Unix(1700000000, 0) }
}

func TestInject_EndToEnd(t *testing.T) {
	t.Run("bash plain entry", func(t *testing.T) {
		histFile := filepath.Join(t.TempDir(), ".bash_history")
		d := NewBashDialect(mapEnv(map[string]string{"HISTFILE": histFile}))

		var out bytes.Buffer
		inj := New(d, WithOutput(&out), WithClock(fixedClock()))

		if err := inj.Inject("list all files"); err != nil {
			t.Fatalf("Inject() error = %v", err)
		}

		if got, want := out.String(), "__VITY_CMD__:list all files\n"; got != want {
			t.Errorf("marker output = %q, want %q", got, want)
		}

		data, err := os.ReadFile(histFile)
		if err != nil {
			t.Fatalf("failed to read history file: %v", err)
		}
		if string(data) != "list all files\n" {
			t.Errorf("history file = %q, want %q", data, "list all files\n")
		}
	})

	t.Run("zsh extended entry", func(t *testing.T) {
		histFile := filepath.Join(t.TempDir(), ".zsh_history")
		d := NewZshDialect(mapEnv(map[string]string{"HISTFILE": histFile}))

		var out bytes.Buffer
		inj := New(d, WithOutput(&out), WithClock(fixedClock()))

		if err := inj.Inject("generated command text"); err != nil {
			t.Fatalf("Inject() error = %v", err)
		}

		data, err := os.ReadFile(histFile)
		if err != nil {
			t.Fatalf("failed to read history file: %v", err)
		}
		if string(data) != ": 1700000000:0;generated command text\n" {
			t.Errorf("history file = %q, want extended entry", data)
		}
	})

	t.Run("append preserves existing contents", func(t *testing.T) {
		histFile := filepath.Join(t.TempDir(), ".bash_history")
		prior := "old command one\nold command two\n"
		if err := os.WriteFile(histFile, []byte(prior), 0600); err != nil {
			t.Fatalf("failed to seed history file: %v", err)
		}

		d := NewBashDialect(mapEnv(map[string]string{"HISTFILE": histFile}))
		inj := New(d, WithOutput(&bytes.Buffer{}), WithClock(fixedClock()))

		if err := inj.Inject("new command"); err != nil {
			t.Fatalf("Inject() error = %v", err)
		}

		data, _ := os.ReadFile(histFile)
		if !strings.HasPrefix(string(data), prior) {
			t.Errorf("prior history bytes modified: %q", data)
		}
		if !strings.HasSuffix(string(data), "new command\n") {
			t.Errorf("entry not appended: %q", data)
		}
	})

	t.Run("embedded newline persisted as one line", func(t *testing.T) {
		histFile := filepath.Join(t.TempDir(), ".bash_history")
		d := NewBashDialect(mapEnv(map[string]string{"HISTFILE": histFile}))

		var out bytes.Buffer
		inj := New(d, WithOutput(&out), WithClock(fixedClock()))

		if err := inj.Inject("echo 'hello\nworld'"); err != nil {
			t.Fatalf("Inject() error = %v", err)
		}

		data, _ := os.ReadFile(histFile)
		entry := strings.TrimSuffix(string(data), "\n")
		if strings.Contains(entry, "\n") {
			t.Errorf("persisted entry contains newline: %q", entry)
		}
		if entry != "echo 'hello world'" {
			t.Errorf("persisted entry = %q, want %q", entry, "echo 'hello world'")
		}
	})
}

func TestInject_NoOps(t *testing.T) {
	t.Run("empty command", func(t *testing.T) {
		histFile := filepath.Join(t.TempDir(), ".bash_history")
		d := NewBashDialect(mapEnv(map[string]string{"HISTFILE": histFile}))

		var out bytes.Buffer
		inj := New(d, WithOutput(&out))

		if err := inj.Inject(""); err != nil {
			t.Fatalf("Inject(\"\") error = %v, want nil", err)
		}
		if out.Len() != 0 {
			t.Errorf("marker emitted for empty command: %q", out.String())
		}
		if _, err := os.Stat(histFile); !os.IsNotExist(err) {
			t.Error("history file created for empty command")
		}
	})

	t.Run("whitespace-only command", func(t *testing.T) {
		d := NewBashDialect(mapEnv(map[string]string{"HISTFILE": "/nonexistent/hist"}))
		inj := New(d, WithOutput(&bytes.Buffer{}))
		if err := inj.Inject(" \n "); err != nil {
			t.Fatalf("Inject() error = %v, want nil", err)
		}
	})

	t.Run("history disabled via HISTSIZE=0", func(t *testing.T) {
		histFile := filepath.Join(t.TempDir(), ".bash_history")
		d := NewBashDialect(mapEnv(map[string]string{
			"HISTFILE": histFile,
			"HISTSIZE": "0",
		}))

		var out bytes.Buffer
		inj := New(d, WithOutput(&out))

		err := inj.Inject("ls -la")
		if !vityerrors.IsHistoryDisabled(err) {
			t.Fatalf("Inject() error = %v, want ErrHistoryDisabled", err)
		}
		if out.Len() != 0 {
			t.Errorf("marker emitted with history disabled: %q", out.String())
		}
		if _, statErr := os.Stat(histFile); !os.IsNotExist(statErr) {
			t.Error("history file written with history disabled")
		}
	})
}

func TestInject_FlushPolicy(t *testing.T) {
	newBash := func(histFile string, extra map[string]string) *BashDialect {
		env := map[string]string{"HISTFILE": histFile}
		for k, v := range extra {
			env[k] = v
		}
		return NewBashDialect(mapEnv(env))
	}

	t.Run("never skips file append but emits marker", func(t *testing.T) {
		histFile := filepath.Join(t.TempDir(), ".bash_history")
		var out bytes.Buffer
		inj := New(newBash(histFile, nil), WithOutput(&out), WithPolicy(PolicyNever))

		if err := inj.Inject("ls"); err != nil {
			t.Fatalf("Inject() error = %v", err)
		}
		if out.Len() == 0 {
			t.Error("marker not emitted under PolicyNever")
		}
		if _, err := os.Stat(histFile); !os.IsNotExist(err) {
			t.Error("history file written under PolicyNever")
		}
	})

	t.Run("auto skips append for incremental sessions", func(t *testing.T) {
		histFile := filepath.Join(t.TempDir(), ".bash_history")
		d := newBash(histFile, map[string]string{"PROMPT_COMMAND": "history -a"})
		inj := New(d, WithOutput(&bytes.Buffer{}), WithPolicy(PolicyAuto))

		if err := inj.Inject("ls"); err != nil {
			t.Fatalf("Inject() error = %v", err)
		}
		if _, err := os.Stat(histFile); !os.IsNotExist(err) {
			t.Error("history file written although session persists incrementally")
		}
	})

	t.Run("always appends even for incremental sessions", func(t *testing.T) {
		histFile := filepath.Join(t.TempDir(), ".bash_history")
		d := newBash(histFile, map[string]string{"PROMPT_COMMAND": "history -a"})
		inj := New(d, WithOutput(&bytes.Buffer{}), WithPolicy(PolicyAlways))

		if err := inj.Inject("ls"); err != nil {
			t.Fatalf("Inject() error = %v", err)
		}
		data, err := os.ReadFile(histFile)
		if err != nil {
			t.Fatalf("history file not written under PolicyAlways: %v", err)
		}
		if string(data) != "ls\n" {
			t.Errorf("history file = %q, want %q", data, "ls\n")
		}
	})
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{"auto", PolicyAuto, false},
		{"always", PolicyAlways, false},
		{"never", PolicyNever, false},
		{"", PolicyAuto, false},
		{"sometimes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("ParsePolicy() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePolicy() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
