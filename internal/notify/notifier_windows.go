//go:build windows

package notify

import (
	"context"
	"fmt"
	"strings"
)

// windowsNotifier implements DesktopNotifier with a PowerShell toast.
type windowsNotifier struct {
	available bool
}

func newWindowsNotifier() DesktopNotifier {
	return &windowsNotifier{available: toolAvailable("powershell")}
}

// newDarwinNotifier is unsupported on windows
func newDarwinNotifier() DesktopNotifier { return unsupportedNotifier{} }

// newLinuxNotifier is unsupported on windows
func newLinuxNotifier() DesktopNotifier { return unsupportedNotifier{} }

func (n *windowsNotifier) Notify(ctx context.Context, title, body string) error {
	script := fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$textNodes = $template.GetElementsByTagName('text')
$textNodes.Item(0).AppendChild($template.CreateTextNode('%s')) | Out-Null
$textNodes.Item(1).AppendChild($template.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('brb').Show($toast)
`, escapeForPowerShell(title), escapeForPowerShell(body))

	return runNotifierCommand(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script)
}

func (n *windowsNotifier) Available() bool { return n.available }

// escapeForPowerShell escapes a value for a single-quoted PowerShell string.
func escapeForPowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
