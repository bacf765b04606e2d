package inject

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BashDialect implements Dialect for bash.
//
// Bash history files are plain lines, one command each. When HISTTIMEFORMAT
// is set, bash additionally stores a #<epoch> stamp line before each command
// and expects one on read-back, so FormatEntry mirrors that.
type BashDialect struct {
	env Env
}

// NewBashDialect creates a bash dialect reading settings from env.
func NewBashDialect(env Env) *BashDialect {
	return &BashDialect{env: env}
}

// Name returns "bash".
func (d *BashDialect) Name() string { return "bash" }

// Enabled reports whether bash history recording is usable.
func (d *BashDialect) Enabled() bool {
	if historySizeDisabled(d.env("HISTSIZE")) {
		return false
	}
	return d.HistoryFile() != ""
}

// HistoryFile returns $HISTFILE if set, otherwise ~/.bash_history.
func (d *BashDialect) HistoryFile() string {
	if f := d.env("HISTFILE"); f != "" {
		return f
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bash_history")
}

// FormatEntry renders one bash history record. With HISTTIMEFORMAT set the
// record is a #<epoch> stamp line followed by the command line.
func (d *BashDialect) FormatEntry(cmd string, now time.Time) string {
	if d.env("HISTTIMEFORMAT") != "" {
		return fmt.Sprintf("#%d\n%s\n", now.Unix(), cmd)
	}
	return cmd + "\n"
}

// InMemoryBuiltin returns the bash builtin that appends to the session
// history list.
func (d *BashDialect) InMemoryBuiltin() string { return "history -s" }

// IncrementalPersist reports whether the session appends history
// incrementally. The only observable signal is a "history -a" inside
// PROMPT_COMMAND, a common bashrc idiom for shared history.
func (d *BashDialect) IncrementalPersist() bool {
	return strings.Contains(d.env("PROMPT_COMMAND"), "history -a")
}
