// Package history records wrapped command runs and their delivery outcome.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// HistoryFileName is the name of the history file.
	HistoryFileName = "history.yaml"
	// BackupSuffix is the suffix for backup files when corruption is detected.
	BackupSuffix = ".backup"
	// LockSuffix names the lock file guarding read-modify-write cycles.
	LockSuffix = ".lock"
)

// Status constants for history entries.
const (
	// StatusRunning indicates the command is currently executing.
	StatusRunning = "running"
	// StatusCompleted indicates the command exited with status 0.
	StatusCompleted = "completed"
	// StatusFailed indicates a non-zero exit or a spawn failure.
	StatusFailed = "failed"
)

// Statuses lists every valid status, for filtering.
var Statuses = []string{StatusRunning, StatusCompleted, StatusFailed}

// StatusFor maps an exit code to a final status.
func StatusFor(exitCode int) string {
	if exitCode == 0 {
		return StatusCompleted
	}
	return StatusFailed
}

// Entry is one wrapped command run.
type Entry struct {
	// ID is a random UUID.
	ID          string     `yaml:"id"`
	StartedAt   time.Time  `yaml:"started_at"`
	CompletedAt *time.Time `yaml:"completed_at,omitempty"`
	Command     []string   `yaml:"command"`
	Cwd         string     `yaml:"cwd,omitempty"`
	Status      string     `yaml:"status"`
	ExitCode    int        `yaml:"exit_code"`
	// Duration is in Go duration format (e.g. "2m15.123s").
	Duration string `yaml:"duration,omitempty"`
	// Channels are the ids notifications were requested for.
	Channels []string `yaml:"channels,omitempty"`
	Sent     int      `yaml:"sent"`
	Total    int      `yaml:"total"`
	// FailedChannels are the ids whose delivery failed.
	FailedChannels []string `yaml:"failed_channels,omitempty"`
}

// File is the YAML document holding all entries, oldest first.
type File struct {
	Entries []Entry `yaml:"entries"`
}

// Path returns the history file inside stateDir.
func Path(stateDir string) string {
	return filepath.Join(stateDir, HistoryFileName)
}

// Load reads the history file from stateDir. A missing file yields an
// empty history; a corrupted one is renamed with BackupSuffix and an empty
// history is returned.
func Load(stateDir string) (*File, error) {
	historyPath := Path(stateDir)

	data, err := os.ReadFile(historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{Entries: []Entry{}}, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var history File
	if err := yaml.Unmarshal(data, &history); err != nil {
		if backupErr := backupCorruptedFile(historyPath); backupErr != nil {
			return nil, fmt.Errorf("backing up corrupted history file: %w", backupErr)
		}
		return &File{Entries: []Entry{}}, nil
	}

	if history.Entries == nil {
		history.Entries = []Entry{}
	}
	return &history, nil
}

func backupCorruptedFile(path string) error {
	if err := os.Rename(path, path+BackupSuffix); err != nil {
		return fmt.Errorf("renaming corrupted file to backup: %w", err)
	}
	return nil
}

// Save writes history atomically, creating stateDir when needed.
func Save(stateDir string, history *File) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := yaml.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	historyPath := Path(stateDir)
	tmpPath := historyPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing temp history file: %w", err)
	}
	if err := os.Rename(tmpPath, historyPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp history file: %w", err)
	}
	return nil
}

// Filter returns entries matching status (all when empty), newest first,
// capped at limit (unlimited when <= 0).
func (f *File) Filter(status string, limit int) []Entry {
	out := make([]Entry, 0, len(f.Entries))
	for i := len(f.Entries) - 1; i >= 0; i-- {
		e := f.Entries[i]
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// ValidStatus reports whether s is a known status.
func ValidStatus(s string) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}
