package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vityhq/vity/internal/app"
	"github.com/vityhq/vity/internal/shell"
)

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show recording and integration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	status := app.Status()
	if status.Active {
		fmt.Println("Recording: active")
		fmt.Printf("  Log:  %s\n", status.LogPath)
		fmt.Printf("  Chat: %s\n", status.ChatPath)
	} else {
		fmt.Println("Recording: inactive (start one with 'vity record')")
	}

	rcFiles, err := shell.RCFiles()
	if err != nil {
		return err
	}
	if len(rcFiles) == 0 {
		fmt.Println("Shell integration: no rc files found")
		return nil
	}
	for _, rc := range rcFiles {
		installed, err := shell.Installed(rc)
		if err != nil {
			return err
		}
		state := "not installed"
		if installed {
			state = "installed"
		}
		fmt.Printf("Shell integration (%s): %s\n", shellLabel(rc), state)
	}
	return nil
}
