package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vityhq/vity/internal/app"
)

// NewInstallCommand creates the install command.
func NewInstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the shell integration",
		Long: `Add the vity wrapper function to your shell rc files.

The wrapper is what lets 'vity do' place generated commands into your
shell's in-memory history. Without it, commands are still appended to the
history file but only appear in new shell sessions.

Installation is idempotent: running it again changes nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(app.Install)
		},
	}
}

// NewReinstallCommand creates the reinstall command.
func NewReinstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reinstall",
		Short: "Refresh the shell integration snippet",
		Long:  `Remove and re-add the vity wrapper, picking up snippet changes after an upgrade.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(app.Reinstall)
		},
	}
}

func runInstall(install func() (*app.InstallResult, error)) error {
	result, err := install()
	if err != nil {
		return err
	}
	for _, rc := range result.Updated {
		fmt.Printf("%s integration installed (%s)\n", shellLabel(rc), rc)
	}
	for _, rc := range result.Current {
		fmt.Printf("%s integration already present (%s)\n", shellLabel(rc), rc)
	}
	if len(result.Updated) > 0 {
		fmt.Println("\nRestart your shell or 'source' the rc file to activate it.")
	}
	return nil
}

var labelCaser = cases.Title(language.English)

// shellLabel derives a display name from an rc file path: ~/.bashrc
// becomes "Bash".
func shellLabel(rcPath string) string {
	base := strings.TrimPrefix(filepath.Base(rcPath), ".")
	return labelCaser.String(strings.TrimSuffix(base, "rc"))
}
