package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RCFiles returns the rc files integration is managed in, in install order.
// Only files that already exist are returned: vity does not create rc files
// for shells the user does not run.
func RCFiles() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	candidates := []string{
		filepath.Join(home, ".bashrc"),
		filepath.Join(home, ".zshrc"),
	}

	var found []string
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			found = append(found, path)
		}
	}
	return found, nil
}

// Installed reports whether the rc file at path carries the managed block.
func Installed(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read rc file: %w", err)
	}
	return strings.Contains(string(data), MarkerBegin), nil
}

// Install appends the integration block to the rc file at path. Installing
// twice is a no-op: an existing block is left untouched and updated=false
// is returned.
func Install(path string) (updated bool, err error) {
	installed, err := Installed(path)
	if err != nil {
		return false, err
	}
	if installed {
		return false, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open rc file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString("\n" + Snippet()); err != nil {
		return false, fmt.Errorf("failed to write integration block: %w", err)
	}
	return true, nil
}

// Uninstall removes the managed block from the rc file at path. Everything
// outside the markers is preserved byte for byte.
func Uninstall(path string) (removed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read rc file: %w", err)
	}

	content := string(data)
	if !strings.Contains(content, MarkerBegin) {
		return false, nil
	}

	lines := strings.Split(content, "\n")
	var kept []string
	inBlock := false
	for _, line := range lines {
		switch {
		case strings.TrimSpace(line) == MarkerBegin:
			inBlock = true
		case strings.TrimSpace(line) == MarkerEnd:
			inBlock = false
		case !inBlock:
			kept = append(kept, line)
		}
	}

	out := strings.Join(kept, "\n")
	// Installing added a separating blank line; drop a single trailing one.
	out = strings.TrimSuffix(out, "\n")
	if !strings.HasSuffix(out, "\n") && out != "" {
		out += "\n"
	}

	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return false, fmt.Errorf("failed to write rc file: %w", err)
	}
	return true, nil
}
