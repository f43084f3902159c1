package history

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brb-cli/brb/internal/logging"
)

func TestWriter_StartThenComplete(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir(), 0, logging.Discard())

	id, err := w.WriteStart([]string{"make"}, "/src", []string{"desktop", "hook"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	h, err := Load(w.StateDir)
	require.NoError(t, err)
	require.Len(t, h.Entries, 1)
	assert.Equal(t, StatusRunning, h.Entries[0].Status)
	assert.Nil(t, h.Entries[0].CompletedAt)

	require.NoError(t, w.UpdateComplete(id, Completion{
		ExitCode:       2,
		Duration:       1500 * time.Millisecond,
		Sent:           1,
		Total:          2,
		FailedChannels: []string{"hook"},
	}))

	h, err = Load(w.StateDir)
	require.NoError(t, err)
	e := h.Entries[0]
	assert.Equal(t, StatusFailed, e.Status)
	assert.Equal(t, 2, e.ExitCode)
	assert.Equal(t, "1.5s", e.Duration)
	assert.Equal(t, 1, e.Sent)
	assert.Equal(t, 2, e.Total)
	assert.Equal(t, []string{"hook"}, e.FailedChannels)
	assert.NotNil(t, e.CompletedAt)
	assert.Equal(t, []string{"desktop", "hook"}, e.Channels)
}

func TestWriter_UpdateUnknownID(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir(), 0, logging.Discard())
	err := w.UpdateComplete("nope", Completion{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry not found")
}

func TestWriter_Pruning(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		existing   int
		maxEntries int
		want       int
	}{
		"no pruning needed":  {existing: 5, maxEntries: 10, want: 6},
		"prune oldest":       {existing: 10, maxEntries: 10, want: 10},
		"unlimited":          {existing: 20, maxEntries: 0, want: 21},
		"shrinks large file": {existing: 8, maxEntries: 3, want: 3},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			stateDir := t.TempDir()
			seed := &File{}
			for i := 0; i < tc.existing; i++ {
				seed.Entries = append(seed.Entries, Entry{ID: fmt.Sprintf("old-%d", i), Status: StatusCompleted})
			}
			require.NoError(t, Save(stateDir, seed))

			w := NewWriter(stateDir, tc.maxEntries, logging.Discard())
			w.LogEntry(Entry{ID: "new", Status: StatusCompleted})

			h, err := Load(stateDir)
			require.NoError(t, err)
			assert.Len(t, h.Entries, tc.want)
			assert.Equal(t, "new", h.Entries[len(h.Entries)-1].ID)
		})
	}
}

func TestWriter_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	const writers = 12

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			NewWriter(stateDir, 0, logging.Discard()).LogEntry(Entry{Status: StatusCompleted})
		}()
	}
	wg.Wait()

	h, err := Load(stateDir)
	require.NoError(t, err)
	assert.Len(t, h.Entries, writers)

	seen := map[string]bool{}
	for _, e := range h.Entries {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestWriter_Clear(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir(), 0, logging.Discard())
	w.LogEntry(Entry{Status: StatusCompleted})
	require.NoError(t, w.Clear())

	h, err := Load(w.StateDir)
	require.NoError(t, err)
	assert.Empty(t, h.Entries)
}
