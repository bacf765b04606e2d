package inject

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// extendedEntry matches the first line of a zsh extended-history record:
// ": <epoch>:<elapsed>;<command>".
var extendedEntry = regexp.MustCompile(`^: \d+:\d+;`)

// ZshDialect implements Dialect for zsh.
//
// Zsh has two on-disk formats: plain lines, and the EXTENDED_HISTORY form
// ": <epoch>:0;<command>". Mixing formats in one file is harmless to zsh
// but ugly, so the dialect sniffs the existing file and matches it; new or
// empty files get the extended form.
type ZshDialect struct {
	env Env
}

// NewZshDialect creates a zsh dialect reading settings from env.
func NewZshDialect(env Env) *ZshDialect {
	return &ZshDialect{env: env}
}

// Name returns "zsh".
func (d *ZshDialect) Name() string { return "zsh" }

// Enabled reports whether zsh history recording is usable. Zsh gates the
// in-memory list on HISTSIZE and the file on SAVEHIST; either at zero
// disables injection.
func (d *ZshDialect) Enabled() bool {
	if historySizeDisabled(d.env("HISTSIZE")) || historySizeDisabled(d.env("SAVEHIST")) {
		return false
	}
	return d.HistoryFile() != ""
}

// HistoryFile returns $HISTFILE if set, otherwise ~/.zsh_history.
func (d *ZshDialect) HistoryFile() string {
	if f := d.env("HISTFILE"); f != "" {
		return f
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zsh_history")
}

// FormatEntry renders one zsh history record, extended or plain depending
// on what the existing history file uses.
func (d *ZshDialect) FormatEntry(cmd string, now time.Time) string {
	if d.extendedFormat() {
		return fmt.Sprintf(": %d:0;%s\n", now.Unix(), cmd)
	}
	return cmd + "\n"
}

// InMemoryBuiltin returns the zsh builtin that appends to the session
// history list.
func (d *ZshDialect) InMemoryBuiltin() string { return "print -s" }

// IncrementalPersist is always false for zsh: INC_APPEND_HISTORY and
// SHARE_HISTORY are setopts, not environment variables, so there is no
// signal visible from a child process. The "auto" flush policy therefore
// appends for zsh.
func (d *ZshDialect) IncrementalPersist() bool { return false }

// extendedFormat sniffs the history file's first entry. Missing or empty
// files default to the extended form.
func (d *ZshDialect) extendedFormat() bool {
	file, err := os.Open(d.HistoryFile())
	if err != nil {
		return true
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return true
	}
	return extendedEntry.MatchString(scanner.Text())
}
