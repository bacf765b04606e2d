package history

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// CleanTagged rewrites the history file at path, dropping every entry whose
// command ends with tag. Returns the number of entries removed.
//
// Both plain lines and zsh extended-format lines are handled; the tag match
// is applied to the command portion. This is the only place vity rewrites a
// history file rather than appending, and it runs solely during uninstall.
func CleanTagged(path, tag string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open history file: %w", err)
	}

	var kept []string
	removed := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		cmd := line
		if matches := zshExtended.FindStringSubmatch(line); matches != nil {
			cmd = matches[3]
		}
		if strings.HasSuffix(strings.TrimRight(cmd, " \t"), tag) {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	if err := scanner.Err(); err != nil {
		file.Close()
		return 0, fmt.Errorf("error reading history file: %w", err)
	}
	file.Close()

	if removed == 0 {
		return 0, nil
	}

	// Rewrite via a sibling temp file so a crash never truncates history.
	tmp := path + ".vity-clean"
	content := strings.Join(kept, "\n")
	if len(kept) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(tmp, []byte(content), 0600); err != nil {
		return 0, fmt.Errorf("failed to write cleaned history: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("failed to replace history file: %w", err)
	}

	return removed, nil
}
