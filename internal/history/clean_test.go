package history

import (
	"os"
	"strings"
	"testing"
)

func TestCleanTagged_Bash(t *testing.T) {
	content := "ls -la\nfind . -name '*.py' # vity generated\ngit status\n"
	path := writeHistory(t, ".bash_history", content)

	removed, err := CleanTagged(path, "# vity generated")
	if err != nil {
		t.Fatalf("CleanTagged() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("CleanTagged() removed = %d, want 1", removed)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "vity generated") {
		t.Errorf("tagged entry still present: %q", data)
	}
	if string(data) != "ls -la\ngit status\n" {
		t.Errorf("cleaned file = %q, want untagged entries only", data)
	}
}

func TestCleanTagged_ZshExtended(t *testing.T) {
	content := ": 1700000000:0;ls -la\n: 1700000100:0;find . -type d # vity generated\n: 1700000200:0;make\n"
	path := writeHistory(t, ".zsh_history", content)

	removed, err := CleanTagged(path, "# vity generated")
	if err != nil {
		t.Fatalf("CleanTagged() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("CleanTagged() removed = %d, want 1", removed)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "vity generated") {
		t.Errorf("tagged entry still present: %q", data)
	}
	if !strings.Contains(string(data), ": 1700000000:0;ls -la") {
		t.Errorf("untagged extended entry lost: %q", data)
	}
}

func TestCleanTagged_NoMatches(t *testing.T) {
	content := "ls -la\ngit status\n"
	path := writeHistory(t, ".bash_history", content)

	removed, err := CleanTagged(path, "# vity generated")
	if err != nil {
		t.Fatalf("CleanTagged() error = %v", err)
	}
	if removed != 0 {
		t.Errorf("CleanTagged() removed = %d, want 0", removed)
	}

	data, _ := os.ReadFile(path)
	if string(data) != content {
		t.Errorf("file modified with no matches: %q", data)
	}
}

func TestCleanTagged_MissingFile(t *testing.T) {
	removed, err := CleanTagged("/nonexistent/history", "# vity generated")
	if err != nil {
		t.Errorf("CleanTagged() on missing file error = %v, want nil", err)
	}
	if removed != 0 {
		t.Errorf("CleanTagged() removed = %d, want 0", removed)
	}
}
