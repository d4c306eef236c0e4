package titles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// ForSession loads the recorded titles for a session from another project's
// store. Returns nil when the project has no store or no entry for the
// session.
func ForSession(sessionID, projectPath string) []string {
	data, err := os.ReadFile(StorePath(expandHome(projectPath)))
	if err != nil {
		return nil
	}
	var sessions Sessions
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil
	}
	return sessions[sessionID].Titles
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
