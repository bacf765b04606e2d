// Package termlog loads terminal session transcripts for provider context.
package termlog

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ansiEscape matches the control sequences script(1) captures verbatim.
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]|\x1b\][^\x07]*\x07|\r`)

// Tail reads the session log at path and returns up to limit trailing lines
// with terminal control sequences stripped. limit <= 0 means no limit.
//
// A missing log is not an error - the caller warned the user at record time;
// context is best effort.
func Tail(path string, limit int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read session log: %w", err)
	}

	text := ansiEscape.ReplaceAllString(string(data), "")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return strings.Join(lines, "\n"), nil
}
