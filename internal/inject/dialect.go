// Package inject records generated commands in the interactive shell's
// history so the next recall-previous keypress surfaces them immediately.
//
// The in-memory history buffer belongs to the interactive shell process and
// cannot be reached from a child process. The injector therefore splits the
// work: it emits a marker line that the installed shell wrapper (see
// internal/shell) turns into the dialect's in-memory append builtin, and it
// optionally appends a formatted entry to the on-disk history file itself,
// depending on the configured flush policy.
package inject

import (
	"os"
	"time"
)

// Env supplies environment lookups to dialect construction and detection.
// Tests substitute a map-backed implementation.
type Env func(key string) string

// OSEnv returns an Env backed by the process environment.
func OSEnv() Env {
	return os.Getenv
}

// Dialect is the per-shell history capability strategy.
//
// One implementation exists per supported shell; Detect selects one at
// startup by environment introspection. A Dialect only ever describes and
// appends - it never reads back, seeks, or truncates history state.
type Dialect interface {
	// Name returns the dialect name ("bash", "zsh").
	Name() string

	// Enabled reports whether history recording is usable: false when the
	// shell's history size is configured to zero or no history file can
	// be resolved.
	Enabled() bool

	// HistoryFile returns the resolved on-disk history file path.
	HistoryFile() string

	// FormatEntry renders one on-disk history record for cmd, including
	// the trailing newline. cmd must already be sanitized.
	FormatEntry(cmd string, now time.Time) string

	// InMemoryBuiltin returns the shell builtin invocation that appends
	// to the running shell's in-memory history list ("history -s" for
	// bash, "print -s" for zsh). The integration wrapper embeds it.
	InMemoryBuiltin() string

	// IncrementalPersist reports whether the session shows signals of
	// incremental/shared history persistence, in which case the shell
	// itself writes each entry to the file and the injector can skip
	// its own append under the "auto" flush policy.
	IncrementalPersist() bool
}

// historySizeDisabled reports whether a history size variable is explicitly
// set to zero. Unset or non-numeric values leave history enabled.
func historySizeDisabled(val string) bool {
	return val == "0"
}
