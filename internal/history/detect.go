// Package history provides shell history parsing for bash and zsh.
package history

import (
	"os"
	"path/filepath"
)

// ParserFor returns the Parser for the given shell name, or nil for
// unsupported shells.
func ParserFor(shell string) Parser {
	switch shell {
	case "bash", "sh":
		return NewBashParser()
	case "zsh":
		return NewZshParser()
	default:
		return nil
	}
}

// DetectShell returns the name of the user's shell from $SHELL, defaulting
// to bash.
func DetectShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	return "bash"
}

// DetectHistoryFiles returns all found shell history files.
// It checks common locations for bash and zsh history files.
func DetectHistoryFiles() []string {
	var found []string
	home, err := os.UserHomeDir()
	if err != nil {
		return found
	}

	locations := []string{
		filepath.Join(home, ".bash_history"),
		filepath.Join(home, ".zsh_history"),
		filepath.Join(home, ".zhistory"),
		filepath.Join(home, ".histfile"),
	}

	for _, path := range locations {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			found = append(found, path)
		}
	}

	return found
}
