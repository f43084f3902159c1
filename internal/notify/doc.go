// Package notify delivers completion events to configured channels.
//
// A Dispatcher fans one event out to the requested channel ids and returns
// one DeliveryResult per id, in request order. Each channel type has its
// own sender:
//
//   - desktop: a popup through the platform DesktopNotifier
//     (notify-send on Linux, osascript on macOS, a PowerShell toast on Windows)
//   - webhook: the event as a JSON HTTP request
//   - custom: the event as JSON on the stdin of a user-supplied program
//
// Failures never abort the fan-out. They are captured per channel and every
// message passes through Redact before it leaves the package.
//
// # Usage
//
//	d := notify.NewDispatcher(notify.WithLogger(logger))
//	results := d.NotifySelected(ctx, cfg, cfg.DefaultChannels, ev)
//	summary := notify.Summarize(results)
package notify
