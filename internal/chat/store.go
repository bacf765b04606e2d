// Package chat persists conversation transcripts between vity invocations.
//
// A transcript is a JSON file holding the message list for one recording
// session. Terminal context is wrapped in <terminal_history> tags when sent
// to the provider but stripped before the transcript is saved, so transcripts
// stay readable and do not balloon with captured scrollback.
package chat

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn.
type Message struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	Time    time.Time `json:"time,omitempty"`
}

// Transcript is an ordered conversation history.
type Transcript struct {
	Messages []Message `json:"messages"`
}

// terminalHistoryBlock matches the context block injected into user turns
// before they are sent to the provider.
var terminalHistoryBlock = regexp.MustCompile(`(?s)<terminal_history>.*?</terminal_history>`)

// WrapContext embeds terminal context into a prompt for the provider.
func WrapContext(prompt, terminalContext string) string {
	if terminalContext == "" {
		return prompt
	}
	return fmt.Sprintf("<terminal_history>\n%s\n</terminal_history>\n\n%s", terminalContext, prompt)
}

// StripContextTags removes terminal-history blocks from s.
func StripContextTags(s string) string {
	return strings.TrimSpace(terminalHistoryBlock.ReplaceAllString(s, ""))
}

// Append adds a turn to the transcript.
func (t *Transcript) Append(role, content string) {
	t.Messages = append(t.Messages, Message{
		Role:    role,
		Content: content,
		Time:    time.Now().UTC(),
	})
}

// LastAssistant returns the content of the most recent assistant turn, or
// false when there is none.
func (t *Transcript) LastAssistant() (string, bool) {
	for i := len(t.Messages) - 1; i >= 0; i-- {
		if t.Messages[i].Role == RoleAssistant {
			return t.Messages[i].Content, true
		}
	}
	return "", false
}

// Load reads a transcript from path. A missing file yields an empty
// transcript. A corrupt file also yields an empty transcript with fresh=true
// so the caller can warn and start over - a broken chat file must never
// block command generation.
func Load(path string) (t *Transcript, fresh bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Transcript{}, false, nil
		}
		return nil, false, fmt.Errorf("failed to read chat file: %w", err)
	}

	var transcript Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return &Transcript{}, true, nil
	}
	return &transcript, false, nil
}

// Save writes the transcript to path. User turns have terminal-history
// blocks stripped first. The write goes through a sibling temp file and
// rename so a crash cannot leave a half-written transcript.
func Save(path string, t *Transcript) error {
	for i := range t.Messages {
		if t.Messages[i].Role == RoleUser {
			t.Messages[i].Content = StripContextTags(t.Messages[i].Content)
		}
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create chat directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace transcript: %w", err)
	}
	return nil
}
