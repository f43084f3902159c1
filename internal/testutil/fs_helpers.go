// Package testutil provides test utilities and helpers for brb tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// WriteConfig writes a channel document into a fresh temp dir and returns
// its path.
func WriteConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	WriteFile(t, path, body)
	return path
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// RequireShell skips the test when sh is not on PATH.
func RequireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

// settingsEnvVars lists every variable brb reads its settings from.
var settingsEnvVars = []string{
	"BRB_CONFIG",
	"BRB_STATE_DIR",
	"BRB_LOG_LEVEL",
	"BRB_LOG_FORMAT",
	"BRB_HISTORY_MAX",
	"BRB_NO_HISTORY",
	"BRB_SEQUENTIAL",
}

// IsolateEnv clears brb's settings variables and points BRB_STATE_DIR at a
// temp dir, which it returns. Tests using it cannot run in parallel.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	for _, key := range settingsEnvVars {
		t.Setenv(key, "")
	}
	stateDir := t.TempDir()
	t.Setenv("BRB_STATE_DIR", stateDir)
	return stateDir
}
