package pihistory

import (
	"os"
	"path/filepath"
	"strings"
)

// ProjectPath converts an encoded Pi project directory name to a readable
// path. Pi encodes paths by replacing / with -, so /Users/foo/my-project
// becomes Users-foo-my-project. The encoding is lossy (a - in a directory
// name is indistinguishable from a separator), so segments under the home
// directory are resolved greedily against the filesystem.
func ProjectPath(encoded string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return projectPathIn(home, encoded)
}

func projectPathIn(home, encoded string) string {
	encoded = strings.Trim(encoded, "-")

	homeEncoded := strings.ReplaceAll(strings.TrimPrefix(home, "/"), "/", "-")
	if home != "" && strings.HasPrefix(encoded, homeEncoded) {
		remaining := strings.TrimPrefix(encoded[len(homeEncoded):], "-")
		if remaining == "" {
			return "~"
		}
		if resolved := resolveEncodedPath(home, remaining); resolved != "" {
			if rel, err := filepath.Rel(home, resolved); err == nil {
				return "~/" + rel
			}
		}
		return "~"
	}

	return "/" + strings.ReplaceAll(encoded, "-", "/")
}

// resolveEncodedPath resolves an encoded path segment against existing
// directories, trying the longest candidate directory names first.
func resolveEncodedPath(base, encoded string) string {
	if encoded == "" {
		return base
	}
	parts := strings.Split(encoded, "-")
	for i := len(parts); i > 0; i-- {
		candidate := filepath.Join(base, strings.Join(parts[:i], "-"))
		if !isDir(candidate) {
			continue
		}
		remaining := strings.Join(parts[i:], "-")
		if remaining == "" {
			return candidate
		}
		if resolved := resolveEncodedPath(candidate, remaining); resolved != "" {
			return resolved
		}
	}
	return ""
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
