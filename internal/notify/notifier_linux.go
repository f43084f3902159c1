//go:build linux

package notify

import (
	"context"
	"os"
)

// linuxNotifier implements DesktopNotifier with notify-send.
type linuxNotifier struct {
	available bool
}

func newLinuxNotifier() DesktopNotifier {
	return &linuxNotifier{available: toolAvailable("notify-send") && hasDisplay()}
}

// newDarwinNotifier is unsupported on linux
func newDarwinNotifier() DesktopNotifier { return unsupportedNotifier{} }

// newWindowsNotifier is unsupported on linux
func newWindowsNotifier() DesktopNotifier { return unsupportedNotifier{} }

// hasDisplay checks for an X11 or Wayland session.
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func (n *linuxNotifier) Notify(ctx context.Context, title, body string) error {
	return runNotifierCommand(ctx, "notify-send", title, body)
}

func (n *linuxNotifier) Available() bool { return n.available }
