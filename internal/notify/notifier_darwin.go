//go:build darwin

package notify

import (
	"context"
	"fmt"
	"strings"
)

// darwinNotifier implements DesktopNotifier with osascript.
type darwinNotifier struct {
	available bool
}

func newDarwinNotifier() DesktopNotifier {
	return &darwinNotifier{available: toolAvailable("osascript")}
}

// newLinuxNotifier is unsupported on darwin
func newLinuxNotifier() DesktopNotifier { return unsupportedNotifier{} }

// newWindowsNotifier is unsupported on darwin
func newWindowsNotifier() DesktopNotifier { return unsupportedNotifier{} }

func (n *darwinNotifier) Notify(ctx context.Context, title, body string) error {
	script := fmt.Sprintf(`display notification "%s" with title "%s"`,
		escapeAppleScript(body), escapeAppleScript(title))
	return runNotifierCommand(ctx, "osascript", "-e", script)
}

func (n *darwinNotifier) Available() bool { return n.available }

// escapeAppleScript escapes backslashes and double quotes for a string literal.
func escapeAppleScript(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
