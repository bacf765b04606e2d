package history

import "time"

// Entry represents a single command parsed from shell history.
type Entry struct {
	Timestamp time.Time
	Command   string
	Shell     string // "bash", "zsh"
}

// Parser defines the interface for shell history parsers.
type Parser interface {
	Parse(path string) ([]Entry, error)
	DetectPath() (string, error)
}

// FilterOptions specifies filtering criteria for history entries.
type FilterOptions struct {
	Since     time.Time // Only include commands after this time
	MaxLines  int       // Maximum number of entries to return, newest kept (0 = no limit)
	RemoveDup bool      // Remove consecutive duplicate commands
}
