package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// bashStamp matches the #<epoch> stamp lines bash writes when
// HISTTIMEFORMAT is configured.
var bashStamp = regexp.MustCompile(`^#(\d+)$`)

// BashParser implements Parser for bash history files.
//
// Bash history format varies:
//   - with HISTTIMEFORMAT: #<epoch> stamp lines followed by the command
//   - without: just commands, one per line
type BashParser struct{}

// NewBashParser creates a new BashParser.
func NewBashParser() *BashParser {
	return &BashParser{}
}

// Parse reads the bash history file at the given path.
func (p *BashParser) Parse(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bash history: %w", err)
	}
	defer file.Close()

	var entries []Entry
	var currentTimestamp time.Time
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" {
			continue
		}

		if matches := bashStamp.FindStringSubmatch(line); matches != nil {
			ts, err := strconv.ParseInt(matches[1], 10, 64)
			if err == nil {
				currentTimestamp = time.Unix(ts, 0)
			}
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		// Multi-line commands use backslash continuation.
		for strings.HasSuffix(line, "\\") {
			line = strings.TrimRight(strings.TrimSuffix(line, "\\"), " \t")
			if !scanner.Scan() {
				break
			}
			line += " " + strings.TrimSpace(scanner.Text())
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		entries = append(entries, Entry{
			Timestamp: currentTimestamp,
			Command:   line,
			Shell:     "bash",
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading bash history: %w", err)
	}

	return entries, nil
}

// DetectPath returns the path to the bash history file, honoring HISTFILE.
func (p *BashParser) DetectPath() (string, error) {
	if f := os.Getenv("HISTFILE"); f != "" {
		return f, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".bash_history"), nil
}
