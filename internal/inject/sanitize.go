package inject

import (
	"regexp"
	"strings"
)

// newlineRun matches one or more consecutive newline characters, in any of
// the CR/LF flavors.
var newlineRun = regexp.MustCompile(`[\r\n]+`)

// Sanitize makes a command string safe for a line-oriented history file.
//
// Every run of newline characters is replaced by a single space and the
// result is trimmed. Nothing else is escaped: quotes and other special
// characters pass through untouched, since escaping rules differ between
// dialects and a history entry is re-parsed by the shell that recalls it.
//
// Sanitize is idempotent: applying it twice equals applying it once.
func Sanitize(s string) string {
	return strings.TrimSpace(newlineRun.ReplaceAllString(s, " "))
}
