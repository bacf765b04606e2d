package app

import (
	"fmt"
	"os"

	"github.com/vityhq/vity/internal/config"
	"github.com/vityhq/vity/internal/history"
	"github.com/vityhq/vity/internal/shell"
)

// InstallResult describes the outcome of an install run.
type InstallResult struct {
	// Updated lists rc files the snippet was added to.
	Updated []string

	// Current lists rc files that already carried the snippet.
	Current []string
}

// Install adds the shell integration snippet to every existing rc file.
// Already-integrated files are left untouched.
func Install() (*InstallResult, error) {
	rcFiles, err := shell.RCFiles()
	if err != nil {
		return nil, err
	}
	if len(rcFiles) == 0 {
		return nil, fmt.Errorf("no shell rc files found (~/.bashrc or ~/.zshrc)")
	}

	result := &InstallResult{}
	for _, rc := range rcFiles {
		updated, err := shell.Install(rc)
		if err != nil {
			return nil, fmt.Errorf("install into %s: %w", rc, err)
		}
		if updated {
			result.Updated = append(result.Updated, rc)
		} else {
			result.Current = append(result.Current, rc)
		}
	}
	return result, nil
}

// Reinstall removes and re-adds the snippet, picking up template changes
// after an upgrade.
func Reinstall() (*InstallResult, error) {
	rcFiles, err := shell.RCFiles()
	if err != nil {
		return nil, err
	}
	for _, rc := range rcFiles {
		if _, err := shell.Uninstall(rc); err != nil {
			return nil, fmt.Errorf("remove old snippet from %s: %w", rc, err)
		}
	}
	return Install()
}

// UninstallOptions controls what uninstall removes.
type UninstallOptions struct {
	// KeepConfig preserves ~/.config/vity.
	KeepConfig bool

	// KeepData preserves recorded sessions under ~/.local/share/vity.
	KeepData bool

	// KeepHistory skips scrubbing tagged entries from shell history files.
	KeepHistory bool
}

// UninstallResult describes what uninstall removed.
type UninstallResult struct {
	// SnippetsRemoved lists rc files the integration block was removed from.
	SnippetsRemoved []string

	// HistoryEntriesRemoved counts tagged entries scrubbed from history
	// files.
	HistoryEntriesRemoved int

	// ConfigRemoved and DataRemoved report directory deletion.
	ConfigRemoved bool
	DataRemoved   bool
}

// Uninstall removes the shell integration, generated history entries, and
// (optionally) the config and data directories.
func Uninstall(cfg *config.Config, opts *UninstallOptions) (*UninstallResult, error) {
	result := &UninstallResult{}

	rcFiles, err := shell.RCFiles()
	if err != nil {
		return nil, err
	}
	for _, rc := range rcFiles {
		removed, err := shell.Uninstall(rc)
		if err != nil {
			return nil, fmt.Errorf("remove snippet from %s: %w", rc, err)
		}
		if removed {
			result.SnippetsRemoved = append(result.SnippetsRemoved, rc)
		}
	}

	if !opts.KeepHistory {
		for _, histFile := range history.DetectHistoryFiles() {
			n, err := history.CleanTagged(histFile, cfg.History.Tag)
			if err != nil {
				return nil, fmt.Errorf("clean %s: %w", histFile, err)
			}
			result.HistoryEntriesRemoved += n
		}
	}

	if !opts.KeepConfig {
		configDir, err := config.ConfigDir()
		if err == nil {
			if err := os.RemoveAll(configDir); err != nil {
				return nil, fmt.Errorf("remove config dir: %w", err)
			}
			result.ConfigRemoved = true
		}
	}

	if !opts.KeepData {
		dataDir, err := config.DataDir()
		if err == nil {
			if err := os.RemoveAll(dataDir); err != nil {
				return nil, fmt.Errorf("remove data dir: %w", err)
			}
			result.DataRemoved = true
		}
	}

	return result, nil
}
