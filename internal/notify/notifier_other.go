//go:build !linux && !darwin && !windows

package notify

func newLinuxNotifier() DesktopNotifier   { return unsupportedNotifier{} }
func newDarwinNotifier() DesktopNotifier  { return unsupportedNotifier{} }
func newWindowsNotifier() DesktopNotifier { return unsupportedNotifier{} }
