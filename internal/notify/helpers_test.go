package notify

import (
	"context"
	"runtime"
	"sync"
	"testing"

	"github.com/brb-cli/brb/internal/config"
	"github.com/brb-cli/brb/internal/event"
)

// fakeNotifier records popups and returns err.
type fakeNotifier struct {
	mu     sync.Mutex
	calls  []popup
	err    error
	panics bool
}

type popup struct {
	title string
	body  string
}

func (f *fakeNotifier) Notify(_ context.Context, title, body string) error {
	if f.panics {
		panic("notifier exploded")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, popup{title: title, body: body})
	return f.err
}

func (f *fakeNotifier) Available() bool { return true }

func (f *fakeNotifier) popups() []popup {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]popup(nil), f.calls...)
}

func sampleEvent(exitCode int) event.CompletionEvent {
	status := event.StatusSuccess
	if exitCode != 0 {
		status = event.StatusFailure
	}
	return event.CompletionEvent{
		Tool:       "brb",
		Status:     status,
		Command:    []string{"cargo", "test"},
		Cwd:        "/src",
		StartedAt:  "2024-01-01T00:00:00.000Z",
		FinishedAt: "2024-01-01T00:00:01.234Z",
		DurationMS: 1234,
		ExitCode:   exitCode,
		Host:       "host",
	}
}

func configWith(channels map[string]config.ChannelSpec) *config.Config {
	return &config.Config{
		Version:         config.SupportedVersion,
		DefaultChannels: []string{"desktop"},
		Channels:        channels,
	}
}

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("custom channel tests use /bin/sh")
	}
}
