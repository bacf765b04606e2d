package cli

import (
	"fmt"
	"time"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/vityhq/vity/internal/app"
)

// NewSessionsCommand creates the sessions command.
func NewSessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessions()
		},
	}
}

func runSessions() error {
	sessions, err := app.Sessions()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No recorded sessions. Start one with 'vity record'.")
		return nil
	}

	tbl := table.New("ID", "Started", "Duration", "Log")
	for _, s := range sessions {
		duration := "running"
		if !s.EndedAt.IsZero() {
			duration = s.EndedAt.Sub(s.StartedAt).Round(time.Second).String()
		}
		tbl.AddRow(s.ID, s.StartedAt.Local().Format("2006-01-02 15:04"), duration, s.LogPath)
	}
	tbl.Print()
	return nil
}
