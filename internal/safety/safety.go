// Package safety flags generated commands that can destroy data.
//
// vity never executes what it generates - the command only lands in the
// shell history. The warning exists because a generated command is one
// up-arrow and Enter away from running, often without the scrutiny a
// hand-typed command gets.
package safety

import (
	"fmt"
	"regexp"
	"strings"
)

// riskyPatterns matches command shapes with destructive or hard-to-undo
// effects.
var riskyPatterns = []struct {
	pattern *regexp.Regexp
	name    string
	risk    string
}{
	{
		pattern: regexp.MustCompile(`(?i)\brm\s+(-rf|-r|-fr|--recursive)\s+/`),
		name:    "Recursive delete",
		risk:    "deletes all files under the target path",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bdd\s+(if=|of=)/dev/`),
		name:    "Disk overwrite",
		risk:    "destroys all data on the target device",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bmkfs\.`),
		name:    "Filesystem creation",
		risk:    "destroys existing data on the target device",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bgit\s+push\s+--force`),
		name:    "Force git push",
		risk:    "may overwrite remote history",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bgit\s+(branch\s+-D|reset\s+--hard)`),
		name:    "Destructive git operation",
		risk:    "discards commits or local changes",
	},
	{
		pattern: regexp.MustCompile(`(?i)chmod\s+-R\s+777`),
		name:    "World-writable permissions",
		risk:    "makes every file writable by anyone",
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(shutdown|reboot)\b`),
		name:    "System shutdown or reboot",
		risk:    "interrupts everything running on this machine",
	},
	{
		pattern: regexp.MustCompile(`(?i)>\s*/dev/sd[a-z]`),
		name:    "Raw device write",
		risk:    "destroys all data on the target device",
	},
}

// Warning describes why a command was flagged.
type Warning struct {
	Name    string
	Risk    string
	Command string
}

// String renders the warning for display.
func (w *Warning) String() string {
	return fmt.Sprintf("Warning: %s - %s", w.Name, w.Risk)
}

// Check returns a warning when the command matches a risky pattern, nil
// otherwise.
func Check(command string) *Warning {
	cmd := strings.TrimSpace(command)
	for _, p := range riskyPatterns {
		if p.pattern.MatchString(cmd) {
			return &Warning{Name: p.name, Risk: p.risk, Command: cmd}
		}
	}
	return nil
}
