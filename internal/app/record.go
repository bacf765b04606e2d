package app

import (
	"context"

	"github.com/vityhq/vity/internal/config"
	"github.com/vityhq/vity/internal/recorder"
)

// Record starts a recorded subshell and blocks until it exits.
func Record(ctx context.Context) (*recorder.Session, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	rec, err := recorder.New(dataDir)
	if err != nil {
		return nil, err
	}
	return rec.Start(ctx)
}

// RecordingStatus describes whether a recording session is active.
type RecordingStatus struct {
	Active   bool
	LogPath  string
	ChatPath string
}

// Status reports the current recording state.
func Status() RecordingStatus {
	logPath, chatPath, ok := recorder.Active()
	return RecordingStatus{Active: ok, LogPath: logPath, ChatPath: chatPath}
}

// Sessions lists recorded sessions, oldest first.
func Sessions() ([]*recorder.Session, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	rec, err := recorder.New(dataDir)
	if err != nil {
		return nil, err
	}
	return rec.Sessions()
}
