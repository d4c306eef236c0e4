package titles

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const (
	storeDirName  = ".resume-sessions"
	storeFileName = "sessions.json"
	defaultTitle  = "New session"
)

// Entry is the stored title history for one session.
type Entry struct {
	Titles      []string `json:"titles"`
	Created     string   `json:"created"`
	LastUpdated string   `json:"last_updated"`
}

// Sessions maps session IDs to their title histories. This is the on-disk
// shape of .resume-sessions/sessions.json, shared with the agent hooks.
type Sessions map[string]Entry

// Ensure returns the entry for id, creating it with the default title when
// absent.
func (s Sessions) Ensure(id string, now time.Time) Entry {
	if e, ok := s[id]; ok {
		return e
	}
	ts := now.UTC().Format(time.RFC3339)
	e := Entry{Titles: []string{defaultTitle}, Created: ts, LastUpdated: ts}
	s[id] = e
	return e
}

// SetTitle records title for id. The title is appended only when it differs
// from the most recent entry; last_updated is bumped either way.
func (s Sessions) SetTitle(id, title string, now time.Time) Entry {
	ts := now.UTC().Format(time.RFC3339)
	e, ok := s[id]
	if !ok {
		e = Entry{Titles: []string{defaultTitle}, Created: ts}
	}
	if len(e.Titles) == 0 || e.Titles[len(e.Titles)-1] != title {
		e.Titles = append(e.Titles, title)
	}
	e.LastUpdated = ts
	s[id] = e
	return e
}

// Store reads and writes a project's sessions.json. Writes are guarded by a
// sidecar file lock since agent hooks may update the file concurrently.
type Store struct {
	mu   sync.Mutex
	path string
	lock *flock.Flock
}

// StorePath returns the sessions.json path for a repository root.
func StorePath(repoRoot string) string {
	return filepath.Join(repoRoot, storeDirName, storeFileName)
}

// NewStore opens the title store for repoRoot, defaulting to the current
// working directory.
func NewStore(repoRoot string) (*Store, error) {
	if strings.TrimSpace(repoRoot) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		repoRoot = wd
	}
	path := StorePath(repoRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (s *Store) Load() (Sessions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock sessions file: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	return s.loadUnlocked()
}

// Update loads the sessions map, applies fn, and saves the result, all under
// the file lock.
func (s *Store) Update(fn func(Sessions) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock sessions file: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	sessions, err := s.loadUnlocked()
	if err != nil {
		return err
	}
	if err := fn(sessions); err != nil {
		return err
	}
	return s.saveUnlocked(sessions)
}

func (s *Store) loadUnlocked() (Sessions, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Sessions{}, nil
		}
		return nil, fmt.Errorf("read sessions file: %w", err)
	}

	var sessions Sessions
	if err := json.Unmarshal(b, &sessions); err != nil {
		return nil, fmt.Errorf("parse sessions file: %w", err)
	}
	if sessions == nil {
		sessions = Sessions{}
	}
	return sessions, nil
}

func (s *Store) saveUnlocked(sessions Sessions) error {
	b, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}
	b = append(b, '\n')

	if err := atomicWriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("atomic write sessions file: %w", err)
	}
	return nil
}
