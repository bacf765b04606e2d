package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vityhq/vity/internal/app"
	"github.com/vityhq/vity/internal/recorder"
)

// NewRecordCommand creates the record command.
func NewRecordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Start a recorded terminal session",
		Long: `Start a subshell whose terminal output is recorded.

Inside the session, 'vity do' and 'vity chat' see the full transcript as
context: they know what you just ran and what it printed.

Type 'exit' or press Ctrl+D to end the session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord()
		},
	}
}

func runRecord() error {
	if _, _, active := recorder.Active(); active {
		return fmt.Errorf("already inside a recorded session")
	}

	fmt.Println("Recording session started. 'vity do' and 'vity chat' now see your terminal.")
	fmt.Println("Type 'exit' or press Ctrl+D to stop.")
	fmt.Println()

	session, err := app.Record(context.Background())
	if err != nil {
		return fmt.Errorf("recording failed: %w", err)
	}

	fmt.Println()
	fmt.Printf("Recording session %s ended.\n", session.ID)
	return nil
}
