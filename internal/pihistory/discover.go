package pihistory

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const EnvSessionsDir = "PI_SESSIONS_DIR"

// ResolveSessionsDir returns the Pi agent sessions directory, honoring the
// override flag first, then PI_SESSIONS_DIR, then ~/.pi/agent/sessions.
func ResolveSessionsDir(override string) (string, error) {
	if v := strings.TrimSpace(override); v != "" {
		return filepath.Clean(os.ExpandEnv(v)), nil
	}
	if v := strings.TrimSpace(os.Getenv(EnvSessionsDir)); v != "" {
		return filepath.Clean(os.ExpandEnv(v)), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pi", "agent", "sessions"), nil
}

// FindSessions walks dir for *.jsonl transcript files. The session ID is the
// file stem and the project is the parent directory name. Sessions are sorted
// by ID descending; IDs lead with a timestamp, so newest come first. A missing
// directory is not an error, it just means no sessions exist yet.
func FindSessions(dir string) ([]Session, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var sessions []Session
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".jsonl") {
			return nil
		}
		sessions = append(sessions, Session{
			ID:       strings.TrimSuffix(d.Name(), ".jsonl"),
			Project:  filepath.Base(filepath.Dir(path)),
			FilePath: path,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ID > sessions[j].ID
	})
	return sessions, nil
}
