package app

import (
	"strings"

	"github.com/vityhq/vity/internal/ai"
	"github.com/vityhq/vity/internal/chat"
	"github.com/vityhq/vity/internal/config"
	"github.com/vityhq/vity/internal/history"
	"github.com/vityhq/vity/internal/recorder"
	"github.com/vityhq/vity/internal/termlog"
)

// sessionPaths resolves the terminal log and chat transcript paths for the
// current invocation: explicit paths win, then the active recording session.
func sessionPaths(logPath, chatPath string) (string, string) {
	if logPath != "" || chatPath != "" {
		return logPath, chatPath
	}
	if activeLog, activeChat, ok := recorder.Active(); ok {
		return activeLog, activeChat
	}
	return "", ""
}

// terminalContext loads and redacts the tail of the terminal session log.
// A missing or unreadable log yields empty context, never an error: context
// is a convenience, not a requirement.
func terminalContext(cfg *config.Config, logPath string) string {
	if logPath == "" {
		return ""
	}
	tail, err := termlog.Tail(logPath, cfg.Context.TerminalHistoryLimit)
	if err != nil {
		return ""
	}
	return ai.Redact(tail, cfg.LLM.Redact)
}

// recentCommands reads the last n commands from the user's shell history
// file. Unsupported shells and unreadable files yield an empty string:
// like the terminal log, history context is best-effort.
func recentCommands(n int) string {
	parser := history.ParserFor(history.DetectShell())
	if parser == nil {
		return ""
	}
	path, err := parser.DetectPath()
	if err != nil {
		return ""
	}
	entries, err := parser.Parse(path)
	if err != nil {
		return ""
	}
	entries = history.Filter(entries, history.FilterOptions{
		MaxLines:  n,
		RemoveDup: true,
	})
	return strings.Join(history.Commands(entries), "\n")
}

// transcriptHistory loads prior conversation turns for the provider call.
func transcriptHistory(t *chat.Transcript) []ai.Message {
	if t == nil {
		return nil
	}
	msgs := make([]ai.Message, 0, len(t.Messages))
	for _, m := range t.Messages {
		msgs = append(msgs, ai.Message{Role: m.Role, Content: m.Content})
	}
	return msgs
}
