// Package event builds the completion event delivered to every channel.
package event

import (
	"encoding/json"
	"os"
	"time"

	"github.com/brb-cli/brb/internal/runner"
)

// TimestampLayout is RFC 3339 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ToolName is reported as the event's tool.
const ToolName = "brb"

const (
	fallbackHost = "unknown-host"
	fallbackCwd  = "."
)

// Status of the wrapped command.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// CompletionEvent is the payload sent to channels. Build it with FromRun or
// TestEvent and treat it as read-only afterwards.
type CompletionEvent struct {
	Tool       string   `json:"tool"`
	Status     Status   `json:"status"`
	Command    []string `json:"command"`
	Cwd        string   `json:"cwd"`
	StartedAt  string   `json:"started_at"`
	FinishedAt string   `json:"finished_at"`
	DurationMS int64    `json:"duration_ms"`
	ExitCode   int      `json:"exit_code"`
	Host       string   `json:"host"`
}

// Options override the ambient values FromRun would otherwise look up.
type Options struct {
	Tool string
	Cwd  string
	Host string
}

// StatusFor maps an exit code to a status.
func StatusFor(exitCode int) Status {
	if exitCode == 0 {
		return StatusSuccess
	}
	return StatusFailure
}

// FromRun converts a runner result into an event. Empty option fields are
// filled from the process (working directory, hostname).
func FromRun(res runner.Result, opts Options) CompletionEvent {
	cmd := make([]string, len(res.Command))
	copy(cmd, res.Command)

	return CompletionEvent{
		Tool:       firstNonEmpty(opts.Tool, ToolName),
		Status:     StatusFor(res.ExitCode),
		Command:    cmd,
		Cwd:        firstNonEmpty(opts.Cwd, currentDir()),
		StartedAt:  FormatTime(res.StartedAt),
		FinishedAt: FormatTime(res.FinishedAt),
		DurationMS: res.Duration.Milliseconds(),
		ExitCode:   res.ExitCode,
		Host:       firstNonEmpty(opts.Host, hostname()),
	}
}

// TestEvent is the synthetic event sent by `brb channels test`.
func TestEvent(opts Options) CompletionEvent {
	finished := time.Now().UTC()
	return FromRun(runner.Result{
		Command:    []string{"brb", "channels", "test"},
		StartedAt:  finished.Add(-time.Millisecond),
		FinishedAt: finished,
		Duration:   time.Millisecond,
	}, opts)
}

// FormatTime renders t in UTC with millisecond precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Succeeded reports whether the event describes a zero exit.
func (e CompletionEvent) Succeeded() bool {
	return e.ExitCode == 0
}

// JSON encodes the event as the channel payload.
func (e CompletionEvent) JSON() ([]byte, error) {
	if e.Command == nil {
		e.Command = []string{}
	}
	return json.Marshal(e)
}

func currentDir() string {
	dir, err := os.Getwd()
	if err != nil || dir == "" {
		return fallbackCwd
	}
	return dir
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return fallbackHost
	}
	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
