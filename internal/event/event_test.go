package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/brb-cli/brb/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(exitCode int) runner.Result {
	start := time.Date(2024, 3, 9, 14, 5, 6, 789_000_000, time.FixedZone("CET", 3600))
	return runner.Result{
		Command:    []string{"make", "test"},
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Duration:   1500 * time.Millisecond,
		ExitCode:   exitCode,
	}
}

func TestFromRun(t *testing.T) {
	t.Parallel()

	ev := FromRun(sampleResult(0), Options{Cwd: "/work", Host: "box"})

	assert.Equal(t, ToolName, ev.Tool)
	assert.Equal(t, StatusSuccess, ev.Status)
	assert.Equal(t, []string{"make", "test"}, ev.Command)
	assert.Equal(t, "/work", ev.Cwd)
	assert.Equal(t, "box", ev.Host)
	assert.Equal(t, "2024-03-09T13:05:06.789Z", ev.StartedAt)
	assert.Equal(t, "2024-03-09T13:05:08.289Z", ev.FinishedAt)
	assert.Equal(t, int64(1500), ev.DurationMS)
	assert.Equal(t, 0, ev.ExitCode)
	assert.True(t, ev.Succeeded())
}

func TestFromRun_Failure(t *testing.T) {
	t.Parallel()

	ev := FromRun(sampleResult(2), Options{})
	assert.Equal(t, StatusFailure, ev.Status)
	assert.Equal(t, 2, ev.ExitCode)
	assert.NotEmpty(t, ev.Cwd)
	assert.NotEmpty(t, ev.Host)
}

func TestFromRun_CopiesCommand(t *testing.T) {
	t.Parallel()

	res := sampleResult(0)
	ev := FromRun(res, Options{})
	res.Command[0] = "changed"
	assert.Equal(t, "make", ev.Command[0])
}

func TestTestEvent(t *testing.T) {
	t.Parallel()

	ev := TestEvent(Options{Host: "h", Cwd: "/c"})
	assert.Equal(t, []string{"brb", "channels", "test"}, ev.Command)
	assert.Equal(t, int64(1), ev.DurationMS)
	assert.Equal(t, StatusSuccess, ev.Status)
}

func TestJSON_FieldNames(t *testing.T) {
	t.Parallel()

	data, err := FromRun(sampleResult(1), Options{Cwd: "/w", Host: "h"}).JSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"tool", "status", "command", "cwd", "started_at", "finished_at", "duration_ms", "exit_code", "host"} {
		assert.Contains(t, decoded, key)
	}
	assert.Len(t, decoded, 9)
	assert.Equal(t, "failure", decoded["status"])
}

func TestJSON_NilCommandIsEmptyArray(t *testing.T) {
	t.Parallel()

	data, err := CompletionEvent{}.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"command":[]`)
}
