// Package recorder runs recorded terminal sessions whose transcripts become
// provider context for do/chat.
package recorder

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Environment variables exported into the recorded subshell. The integration
// wrapper checks them to decide whether context flags should be added to
// do/chat invocations.
const (
	EnvActiveLog  = "VITY_ACTIVE_LOG"
	EnvActiveChat = "VITY_ACTIVE_CHAT"
)

// Recorder spawns recorded subshells and tracks their session files.
type Recorder struct {
	dataDir string
	store   *SessionStore
}

// New creates a Recorder rooted at dataDir (normally ~/.local/share/vity).
func New(dataDir string) (*Recorder, error) {
	for _, sub := range []string{"logs", "chat"} {
		if err := os.MkdirAll(filepath.Join(dataDir, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return &Recorder{
		dataDir: dataDir,
		store:   NewSessionStore(filepath.Join(dataDir, "sessions.yaml")),
	}, nil
}

// Active reports whether the current process runs inside a recording
// session, and returns the active log and chat paths if so.
func Active() (logPath, chatPath string, ok bool) {
	logPath = os.Getenv(EnvActiveLog)
	chatPath = os.Getenv(EnvActiveChat)
	if logPath == "" {
		return "", "", false
	}
	if _, err := os.Stat(logPath); err != nil {
		return "", "", false
	}
	return logPath, chatPath, true
}

// Start spawns a recorded subshell via script(1) and blocks until the user
// exits it. The session transcript and chat file paths are registered in
// the session manifest before the shell starts, so a crashed session still
// shows up in `vity sessions`.
func (r *Recorder) Start(ctx context.Context) (*Session, error) {
	id := uuid.New().String()
	stamp := time.Now().Format("20060102-150405")

	session := &Session{
		ID:        id,
		StartedAt: time.Now().UTC(),
		LogPath:   filepath.Join(r.dataDir, "logs", fmt.Sprintf("%s-%s.log", stamp, shortID(id))),
		ChatPath:  filepath.Join(r.dataDir, "chat", fmt.Sprintf("%s-%s.json", stamp, shortID(id))),
	}

	if err := r.store.Add(session); err != nil {
		return nil, fmt.Errorf("failed to register session: %w", err)
	}

	cmd := exec.CommandContext(ctx, "script", "-q", "-f", session.LogPath)
	cmd.Env = append(os.Environ(),
		EnvActiveLog+"="+session.LogPath,
		EnvActiveChat+"="+session.ChatPath,
	)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()

	session.EndedAt = time.Now().UTC()
	if err := r.store.Update(session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if runErr != nil {
		// Non-zero shell exit is normal; anything else is a real failure.
		if _, ok := runErr.(*exec.ExitError); !ok {
			return nil, fmt.Errorf("recording shell error: %w", runErr)
		}
	}

	return session, nil
}

// Sessions returns all recorded sessions, oldest first.
func (r *Recorder) Sessions() ([]*Session, error) {
	return r.store.List()
}

// shortID returns the first uuid group, enough to keep filenames readable.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
