package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vityhq/vity/internal/ai/openai"
	"github.com/vityhq/vity/internal/cli"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	rootCmd := &cobra.Command{
		Use:   "vity",
		Short: "AI assistant for your terminal",
		Long: `vity turns natural language into shell commands and answers questions
about your terminal session. Generated commands land in your shell
history, so the next up-arrow recalls them.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(cli.NewDoCommand())
	rootCmd.AddCommand(cli.NewChatCommand())
	rootCmd.AddCommand(cli.NewRecordCommand())
	rootCmd.AddCommand(cli.NewStatusCommand())
	rootCmd.AddCommand(cli.NewSessionsCommand())
	rootCmd.AddCommand(cli.NewInstallCommand())
	rootCmd.AddCommand(cli.NewReinstallCommand())
	rootCmd.AddCommand(cli.NewUninstallCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand(Version, Commit, Date))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
