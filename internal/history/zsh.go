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

// zshExtended matches the first line of a zsh extended-history record:
// ": <epoch>:<elapsed>;<command>".
var zshExtended = regexp.MustCompile(`^:\s*(\d+):(\d+);(.*)`)

// ZshParser implements Parser for zsh history files.
//
// Zsh extended history format: ": <epoch>:<elapsed>;<command>", with
// backslash continuation for multi-line commands. Plain files (without
// EXTENDED_HISTORY) carry one bare command per line.
type ZshParser struct{}

// NewZshParser creates a new ZshParser.
func NewZshParser() *ZshParser {
	return &ZshParser{}
}

// Parse reads the zsh history file at the given path.
func (p *ZshParser) Parse(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zsh history: %w", err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)

	flush := func(ts time.Time, cmd string) {
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			return
		}
		entries = append(entries, Entry{Timestamp: ts, Command: cmd, Shell: "zsh"})
	}

	for scanner.Scan() {
		line := scanner.Text()

		var ts time.Time
		var cmd string
		if matches := zshExtended.FindStringSubmatch(line); matches != nil {
			epoch, err := strconv.ParseInt(matches[1], 10, 64)
			if err == nil {
				ts = time.Unix(epoch, 0)
			}
			cmd = matches[3]
		} else {
			cmd = line
		}

		// Continuation lines are folded into one command.
		for strings.HasSuffix(cmd, "\\") && scanner.Scan() {
			cmd = strings.TrimRight(strings.TrimSuffix(cmd, "\\"), " \t")
			cmd += " " + strings.TrimSpace(scanner.Text())
		}

		flush(ts, cmd)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading zsh history: %w", err)
	}

	return entries, nil
}

// DetectPath returns the path to the zsh history file, honoring HISTFILE.
func (p *ZshParser) DetectPath() (string, error) {
	if f := os.Getenv("HISTFILE"); f != "" {
		return f, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check common locations
	locations := []string{
		filepath.Join(home, ".zsh_history"),
		filepath.Join(home, ".zhistory"),
		filepath.Join(home, ".histfile"),
	}
	for _, path := range locations {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	// Return default even if it doesn't exist
	return filepath.Join(home, ".zsh_history"), nil
}
