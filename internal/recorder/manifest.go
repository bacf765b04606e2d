package recorder

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Session describes one recorded terminal session.
type Session struct {
	ID        string    `yaml:"id"`
	StartedAt time.Time `yaml:"started_at"`
	EndedAt   time.Time `yaml:"ended_at,omitempty"`
	LogPath   string    `yaml:"log"`
	ChatPath  string    `yaml:"chat"`
}

// manifest is the on-disk sessions.yaml document.
type manifest struct {
	Sessions []*Session `yaml:"sessions"`
}

// SessionStore persists the session manifest.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store backed by the YAML file at path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// List returns all sessions, oldest first. A missing manifest is empty.
func (s *SessionStore) List() ([]*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse session manifest: %w", err)
	}
	return m.Sessions, nil
}

// Add appends a session to the manifest.
func (s *SessionStore) Add(session *Session) error {
	sessions, err := s.List()
	if err != nil {
		return err
	}
	sessions = append(sessions, session)
	return s.write(sessions)
}

// Update replaces the stored session with the same ID.
func (s *SessionStore) Update(session *Session) error {
	sessions, err := s.List()
	if err != nil {
		return err
	}
	for i, existing := range sessions {
		if existing.ID == session.ID {
			sessions[i] = session
			return s.write(sessions)
		}
	}
	return fmt.Errorf("session %s not found in manifest", session.ID)
}

func (s *SessionStore) write(sessions []*Session) error {
	data, err := yaml.Marshal(&manifest{Sessions: sessions})
	if err != nil {
		return fmt.Errorf("failed to encode session manifest: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write session manifest: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace session manifest: %w", err)
	}
	return nil
}
