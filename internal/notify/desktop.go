package notify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/brb-cli/brb/internal/event"
)

// DesktopNotifier shows a popup with a title and body.
type DesktopNotifier interface {
	Notify(ctx context.Context, title, body string) error
	// Available reports whether the underlying tool can be used.
	Available() bool
}

// DesktopNotifierFunc adapts a function to DesktopNotifier.
type DesktopNotifierFunc func(ctx context.Context, title, body string) error

// Notify calls f.
func (f DesktopNotifierFunc) Notify(ctx context.Context, title, body string) error {
	return f(ctx, title, body)
}

// Available always reports true.
func (f DesktopNotifierFunc) Available() bool { return true }

// NewDesktopNotifier returns the notifier for the current operating system.
// Unsupported platforms get a notifier that always fails.
func NewDesktopNotifier() DesktopNotifier {
	switch runtime.GOOS {
	case "darwin":
		return newDarwinNotifier()
	case "linux":
		return newLinuxNotifier()
	case "windows":
		return newWindowsNotifier()
	default:
		return unsupportedNotifier{}
	}
}

// Platform returns the current operating system name.
func Platform() string {
	return runtime.GOOS
}

// DesktopTool names the program the platform notifier runs, or "" when
// the platform has none.
func DesktopTool() string {
	switch runtime.GOOS {
	case "darwin":
		return "osascript"
	case "linux":
		return "notify-send"
	case "windows":
		return "powershell"
	default:
		return ""
	}
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

var errDesktopUnsupported = errors.New("desktop channel is not supported on this platform")

type unsupportedNotifier struct{}

func (unsupportedNotifier) Notify(context.Context, string, string) error {
	return errDesktopUnsupported
}

func (unsupportedNotifier) Available() bool { return false }

// DesktopSender renders an event as a popup.
type DesktopSender struct {
	notifier DesktopNotifier
}

// NewDesktopSender wraps n. A nil n uses NewDesktopNotifier.
func NewDesktopSender(n DesktopNotifier) *DesktopSender {
	if n == nil {
		n = NewDesktopNotifier()
	}
	return &DesktopSender{notifier: n}
}

// Send shows the popup for ev.
func (s *DesktopSender) Send(ctx context.Context, ev event.CompletionEvent) error {
	return s.notifier.Notify(ctx, DesktopTitle(ev), DesktopBody(ev))
}

// DesktopTitle is "<tool>: success" or "<tool>: failed (exit <code>)".
func DesktopTitle(ev event.CompletionEvent) string {
	if ev.Succeeded() {
		return fmt.Sprintf("%s: success", ev.Tool)
	}
	return fmt.Sprintf("%s: failed (exit %d)", ev.Tool, ev.ExitCode)
}

// DesktopBody is the joined command followed by the duration in seconds.
func DesktopBody(ev event.CompletionEvent) string {
	return fmt.Sprintf("%s (%.2fs)", strings.Join(ev.Command, " "), float64(ev.DurationMS)/1000)
}

// runNotifierCommand runs a notifier tool and maps failures to stable messages.
func runNotifierCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return errors.New("desktop notifier command returned non-zero status")
	}
	return fmt.Errorf("failed to run %s: %w", name, err)
}
