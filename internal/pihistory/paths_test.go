package pihistory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProjectPathResolvesUnderHome(t *testing.T) {
	home := t.TempDir()
	if err := os.MkdirAll(filepath.Join(home, "my-project"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	encoded := strings.ReplaceAll(strings.TrimPrefix(home, "/"), "/", "-") + "-my-project"
	got := projectPathIn(home, encoded)
	if got != "~/my-project" {
		t.Fatalf("expected ~/my-project, got %q", got)
	}
}

func TestProjectPathGreedyMatching(t *testing.T) {
	// A directory literally named "a-b" must win over nested a/b.
	home := t.TempDir()
	if err := os.MkdirAll(filepath.Join(home, "a-b", "c"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	encoded := strings.ReplaceAll(strings.TrimPrefix(home, "/"), "/", "-") + "-a-b-c"
	got := projectPathIn(home, encoded)
	if got != "~/a-b/c" {
		t.Fatalf("expected ~/a-b/c, got %q", got)
	}
}

func TestProjectPathHomeOnly(t *testing.T) {
	home := t.TempDir()
	encoded := strings.ReplaceAll(strings.TrimPrefix(home, "/"), "/", "-")
	if got := projectPathIn(home, encoded); got != "~" {
		t.Fatalf("expected ~, got %q", got)
	}
}

func TestProjectPathUnresolvableUnderHomeCollapsesToHome(t *testing.T) {
	// Segments under home that no longer exist on disk cannot be decoded
	// unambiguously; the path degrades to the home directory.
	home := t.TempDir()
	encoded := strings.ReplaceAll(strings.TrimPrefix(home, "/"), "/", "-") + "-gone-project"
	if got := projectPathIn(home, encoded); got != "~" {
		t.Fatalf("expected ~, got %q", got)
	}
}

func TestProjectPathFallbackOutsideHome(t *testing.T) {
	got := projectPathIn("/home/user", "opt-work-thing")
	if got != "/opt/work/thing" {
		t.Fatalf("expected /opt/work/thing, got %q", got)
	}
}

func TestProjectPathStripsSurroundingDashes(t *testing.T) {
	got := projectPathIn("/home/user", "--var-data--")
	if got != "/var/data" {
		t.Fatalf("expected /var/data, got %q", got)
	}
}
