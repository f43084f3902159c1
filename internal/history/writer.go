package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Writer appends and updates entries under a file lock, so concurrent brb
// processes sharing a state directory never lose each other's entries.
type Writer struct {
	// StateDir is the directory containing the history file.
	StateDir string
	// MaxEntries is the maximum number of entries to retain; 0 keeps all.
	MaxEntries int
	// Logger receives non-fatal write failures.
	Logger logrus.FieldLogger
}

// NewWriter creates a new history writer.
func NewWriter(stateDir string, maxEntries int, logger logrus.FieldLogger) *Writer {
	return &Writer{StateDir: stateDir, MaxEntries: maxEntries, Logger: logger}
}

// Completion is the final state recorded by UpdateComplete.
type Completion struct {
	ExitCode       int
	Duration       time.Duration
	Sent           int
	Total          int
	FailedChannels []string
}

// WriteStart records a running entry and returns its id.
func (w *Writer) WriteStart(command []string, cwd string, channels []string) (string, error) {
	entry := Entry{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Command:   append([]string(nil), command...),
		Cwd:       cwd,
		Status:    StatusRunning,
		Channels:  append([]string(nil), channels...),
	}
	err := w.withLock(func(h *File) error {
		h.Entries = append(h.Entries, entry)
		w.prune(h)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("writing start entry: %w", err)
	}
	return entry.ID, nil
}

// UpdateComplete fills in the final state of the entry with the given id.
func (w *Writer) UpdateComplete(id string, c Completion) error {
	return w.withLock(func(h *File) error {
		for i := range h.Entries {
			if h.Entries[i].ID != id {
				continue
			}
			now := time.Now().UTC()
			e := &h.Entries[i]
			e.CompletedAt = &now
			e.Status = StatusFor(c.ExitCode)
			e.ExitCode = c.ExitCode
			e.Duration = c.Duration.String()
			e.Sent = c.Sent
			e.Total = c.Total
			e.FailedChannels = append([]string(nil), c.FailedChannels...)
			return nil
		}
		return fmt.Errorf("entry not found with ID: %s", id)
	})
}

// LogEntry appends a complete entry. Failures are logged, never returned.
func (w *Writer) LogEntry(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	err := w.withLock(func(h *File) error {
		h.Entries = append(h.Entries, entry)
		w.prune(h)
		return nil
	})
	if err != nil && w.Logger != nil {
		w.Logger.WithError(err).Warn("failed to log history")
	}
}

// Clear removes every entry.
func (w *Writer) Clear() error {
	return w.withLock(func(h *File) error {
		h.Entries = []Entry{}
		return nil
	})
}

func (w *Writer) prune(h *File) {
	if w.MaxEntries > 0 && len(h.Entries) > w.MaxEntries {
		h.Entries = h.Entries[len(h.Entries)-w.MaxEntries:]
	}
}

// withLock runs a load-modify-save cycle while holding the lock file.
func (w *Writer) withLock(fn func(*File) error) error {
	if err := os.MkdirAll(w.StateDir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	lock := flock.New(filepath.Join(w.StateDir, HistoryFileName+LockSuffix))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking history: %w", err)
	}
	defer lock.Unlock()

	h, err := Load(w.StateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	if err := fn(h); err != nil {
		return err
	}
	if err := Save(w.StateDir, h); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}
