package inject

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// mapEnv returns an Env backed by a map, for tests.
func mapEnv(m map[string]string) Env {
	return func(key string) string { return m[key] }
}

func TestBashDialect(t *testing.T) {
	now := time.Unix(1700000000, 0)

	t.Run("plain format", func(t *testing.T) {
		d := NewBashDialect(mapEnv(map[string]string{"HISTFILE": "/tmp/hist"}))
		got := d.FormatEntry("git status", now)
		if got != "git status\n" {
			t.Errorf("FormatEntry() = %q, want %q", got, "git status\n")
		}
	})

	t.Run("stamped format with HISTTIMEFORMAT", func(t *testing.T) {
		d := NewBashDialect(mapEnv(map[string]string{
			"HISTFILE":       "/tmp/hist",
			"HISTTIMEFORMAT": "%F %T ",
		}))
		got := d.FormatEntry("git status", now)
		want := "#1700000000\ngit status\n"
		if got != want {
			t.Errorf("FormatEntry() = %q, want %q", got, want)
		}
	})

	t.Run("HISTFILE wins over default", func(t *testing.T) {
		d := NewBashDialect(mapEnv(map[string]string{"HISTFILE": "/custom/history"}))
		if got := d.HistoryFile(); got != "/custom/history" {
			t.Errorf("HistoryFile() = %q, want /custom/history", got)
		}
	})

	t.Run("default history file", func(t *testing.T) {
		d := NewBashDialect(mapEnv(map[string]string{}))
		got := d.HistoryFile()
		if !strings.HasSuffix(got, ".bash_history") {
			t.Errorf("HistoryFile() = %q, want ~/.bash_history", got)
		}
	})

	t.Run("disabled when HISTSIZE=0", func(t *testing.T) {
		d := NewBashDialect(mapEnv(map[string]string{
			"HISTFILE": "/tmp/hist",
			"HISTSIZE": "0",
		}))
		if d.Enabled() {
			t.Error("Enabled() = true with HISTSIZE=0")
		}
	})

	t.Run("enabled with unset HISTSIZE", func(t *testing.T) {
		d := NewBashDialect(mapEnv(map[string]string{"HISTFILE": "/tmp/hist"}))
		if !d.Enabled() {
			t.Error("Enabled() = false with history available")
		}
	})

	t.Run("incremental persist from PROMPT_COMMAND", func(t *testing.T) {
		d := NewBashDialect(mapEnv(map[string]string{
			"PROMPT_COMMAND": "history -a; history -n",
		}))
		if !d.IncrementalPersist() {
			t.Error("IncrementalPersist() = false with 'history -a' in PROMPT_COMMAND")
		}

		d = NewBashDialect(mapEnv(map[string]string{}))
		if d.IncrementalPersist() {
			t.Error("IncrementalPersist() = true without signals")
		}
	})

	t.Run("builtin", func(t *testing.T) {
		d := NewBashDialect(mapEnv(nil))
		if got := d.InMemoryBuiltin(); got != "history -s" {
			t.Errorf("InMemoryBuiltin() = %q, want 'history -s'", got)
		}
	})
}

func TestZshDialect(t *testing.T) {
	now := time.Unix(1700000000, 0)

	writeHist := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), ".zsh_history")
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write history file: %v", err)
		}
		return path
	}

	t.Run("extended format for new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".zsh_history")
		d := NewZshDialect(mapEnv(map[string]string{"HISTFILE": path}))
		got := d.FormatEntry("generated command text", now)
		want := ": 1700000000:0;generated command text\n"
		if got != want {
			t.Errorf("FormatEntry() = %q, want %q", got, want)
		}
	})

	t.Run("extended format matches existing extended file", func(t *testing.T) {
		path := writeHist(t, ": 1600000000:0;ls -la\n: 1600000100:2;make test\n")
		d := NewZshDialect(mapEnv(map[string]string{"HISTFILE": path}))
		got := d.FormatEntry("echo hi", now)
		if !strings.HasPrefix(got, ": 1700000000:0;") {
			t.Errorf("FormatEntry() = %q, want extended form", got)
		}
	})

	t.Run("plain format matches existing plain file", func(t *testing.T) {
		path := writeHist(t, "ls -la\nmake test\n")
		d := NewZshDialect(mapEnv(map[string]string{"HISTFILE": path}))
		got := d.FormatEntry("echo hi", now)
		if got != "echo hi\n" {
			t.Errorf("FormatEntry() = %q, want plain form", got)
		}
	})

	t.Run("disabled when SAVEHIST=0", func(t *testing.T) {
		d := NewZshDialect(mapEnv(map[string]string{
			"HISTFILE": "/tmp/hist",
			"SAVEHIST": "0",
		}))
		if d.Enabled() {
			t.Error("Enabled() = true with SAVEHIST=0")
		}
	})

	t.Run("disabled when HISTSIZE=0", func(t *testing.T) {
		d := NewZshDialect(mapEnv(map[string]string{
			"HISTFILE": "/tmp/hist",
			"HISTSIZE": "0",
		}))
		if d.Enabled() {
			t.Error("Enabled() = true with HISTSIZE=0")
		}
	})

	t.Run("builtin", func(t *testing.T) {
		d := NewZshDialect(mapEnv(nil))
		if got := d.InMemoryBuiltin(); got != "print -s" {
			t.Errorf("InMemoryBuiltin() = %q, want 'print -s'", got)
		}
	})
}
