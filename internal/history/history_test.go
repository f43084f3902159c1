// Package history_test tests history file loading, saving and filtering.
// Related: internal/history/history.go
// Tags: history, yaml, filtering, corruption

package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content     *string
		wantEntries int
	}{
		"missing file": {content: nil, wantEntries: 0},
		"existing entries": {content: ptr(`entries:
  - id: 7b0f1c52-2d1e-4c4b-9d43-8a1c2e0c9f11
    started_at: 2024-01-15T10:30:00Z
    command: [make, test]
    status: completed
    exit_code: 0
    duration: 2m30s
    sent: 1
    total: 1
  - id: 0c3d4e5f-0000-4000-8000-000000000002
    started_at: 2024-01-15T10:35:00Z
    command: [make, deploy]
    status: failed
    exit_code: 2
    sent: 0
    total: 2
    failed_channels: [desktop, hook]
`), wantEntries: 2},
		"empty file":   {content: ptr(""), wantEntries: 0},
		"empty list":   {content: ptr("entries: []"), wantEntries: 0},
		"corrupt yaml": {content: ptr("not valid yaml: [[["), wantEntries: 0},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			stateDir := t.TempDir()
			if tc.content != nil {
				require.NoError(t, os.WriteFile(Path(stateDir), []byte(*tc.content), 0o600))
			}

			h, err := Load(stateDir)
			require.NoError(t, err)
			assert.Len(t, h.Entries, tc.wantEntries)
			assert.NotNil(t, h.Entries)
		})
	}
}

func TestLoad_CorruptedFileIsBackedUp(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(stateDir), []byte("{{{"), 0o600))

	_, err := Load(stateDir)
	require.NoError(t, err)

	backup, err := os.ReadFile(Path(stateDir) + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, "{{{", string(backup))
	assert.NoFileExists(t, Path(stateDir))
}

func TestSave_RoundTripAndDirectoryCreation(t *testing.T) {
	t.Parallel()

	stateDir := filepath.Join(t.TempDir(), "a", "b")
	completed := time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC)
	in := &File{Entries: []Entry{{
		ID:             "id-1",
		StartedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		CompletedAt:    &completed,
		Command:        []string{"go", "test", "./..."},
		Cwd:            "/src",
		Status:         StatusFailed,
		ExitCode:       1,
		Duration:       "5s",
		Channels:       []string{"desktop", "hook"},
		Sent:           1,
		Total:          2,
		FailedChannels: []string{"hook"},
	}}}

	require.NoError(t, Save(stateDir, in))
	assert.NoFileExists(t, Path(stateDir)+".tmp")

	out, err := Load(stateDir)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	h := &File{Entries: []Entry{
		{ID: "1", Status: StatusCompleted},
		{ID: "2", Status: StatusFailed},
		{ID: "3", Status: StatusCompleted},
		{ID: "4", Status: StatusRunning},
	}}

	tests := map[string]struct {
		status string
		limit  int
		want   []string
	}{
		"all newest first": {want: []string{"4", "3", "2", "1"}},
		"limited":          {limit: 2, want: []string{"4", "3"}},
		"by status":        {status: StatusCompleted, want: []string{"3", "1"}},
		"status and limit": {status: StatusCompleted, limit: 1, want: []string{"3"}},
		"no match":         {status: StatusFailed, limit: 5, want: []string{"2"}},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var ids []string
			for _, e := range h.Filter(tc.status, tc.limit) {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusCompleted, StatusFor(0))
	assert.Equal(t, StatusFailed, StatusFor(127))
	assert.True(t, ValidStatus("failed"))
	assert.False(t, ValidStatus("cancelled"))
}

func ptr(s string) *string { return &s }
