// Package hooks installs the agent-side hooks that title sessions after git
// commits.
package hooks

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

//go:embed assets/resume-sessions.ts
var piHookScript []byte

//go:embed assets/resume-sessions-hook.py
var claudeHookScript []byte

// InstallPi writes the Pi agent hook under homeDir. Pi loads every .ts file
// in ~/.pi/agent/hooks automatically, so no registration step is needed.
func InstallPi(homeDir string, out io.Writer) error {
	hooksDir := filepath.Join(homeDir, ".pi", "agent", "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("create hooks dir: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "resume-sessions.ts")
	if err := os.WriteFile(hookPath, piHookScript, 0o644); err != nil {
		return fmt.Errorf("write hook: %w", err)
	}

	fmt.Fprintf(out, "✓ Installed Pi hook: %s\n", hookPath)
	fmt.Fprintln(out)
	printHookSummary(out)
	return nil
}

// InstallClaudeCode writes the Claude Code hook script under homeDir and
// registers it in ~/.claude/settings.json. Registration is idempotent.
func InstallClaudeCode(homeDir string, out io.Writer) error {
	hooksDir := filepath.Join(homeDir, ".claude", "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("create hooks dir: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "resume-sessions-hook.py")
	if err := os.WriteFile(hookPath, claudeHookScript, 0o755); err != nil {
		return fmt.Errorf("write hook: %w", err)
	}
	fmt.Fprintf(out, "✓ Created hook script: %s\n", hookPath)

	settingsPath := filepath.Join(homeDir, ".claude", "settings.json")
	added, err := registerPostToolUseHook(settingsPath, hookPath)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(out, "✓ Added hook to: %s\n", settingsPath)
	} else {
		fmt.Fprintf(out, "✓ Hook already configured in: %s\n", settingsPath)
	}

	fmt.Fprintln(out)
	printHookSummary(out)
	return nil
}

func printHookSummary(out io.Writer) {
	fmt.Fprintln(out, "After git commits, the commit message (first line) becomes the session title.")
	fmt.Fprintln(out, "Titles are saved to .resume-sessions/sessions.json in each repo.")
}

// registerPostToolUseHook adds a PostToolUse entry for the hook script to the
// settings file unless one is already present. Unreadable or malformed
// settings are treated as empty rather than failing the install.
func registerPostToolUseHook(settingsPath, hookPath string) (bool, error) {
	settings := map[string]any{}
	if b, err := os.ReadFile(settingsPath); err == nil {
		if err := json.Unmarshal(b, &settings); err != nil {
			settings = map[string]any{}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("read settings: %w", err)
	}

	hooksMap, _ := settings["hooks"].(map[string]any)
	if hooksMap == nil {
		hooksMap = map[string]any{}
		settings["hooks"] = hooksMap
	}
	postHooks, _ := hooksMap["PostToolUse"].([]any)

	if hookRegistered(postHooks, filepath.Base(hookPath)) {
		return false, nil
	}

	postHooks = append(postHooks, map[string]any{
		"matcher": "Bash",
		"hooks": []any{
			map[string]any{"type": "command", "command": hookPath},
		},
	})
	hooksMap["PostToolUse"] = postHooks

	b, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return false, fmt.Errorf("marshal settings: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(settingsPath, b, 0o644); err != nil {
		return false, fmt.Errorf("write settings: %w", err)
	}
	return true, nil
}

func hookRegistered(postHooks []any, scriptName string) bool {
	for _, entry := range postHooks {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		inner, _ := m["hooks"].([]any)
		for _, h := range inner {
			hm, ok := h.(map[string]any)
			if !ok {
				continue
			}
			if cmd, _ := hm["command"].(string); cmd != "" {
				if filepath.Base(cmd) == scriptName {
					return true
				}
			}
		}
	}
	return false
}
