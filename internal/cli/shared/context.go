package shared

import (
	"context"

	"github.com/brb-cli/brb/internal/notify"
)

type notifyOptionsKey struct{}

// ContextWithNotifyOptions attaches dispatcher options to ctx. Pass the
// result to ExecuteContext to swap the desktop notifier or HTTP client.
func ContextWithNotifyOptions(ctx context.Context, opts ...notify.Option) context.Context {
	return context.WithValue(ctx, notifyOptionsKey{}, opts)
}

func notifyOptionsFrom(ctx context.Context) []notify.Option {
	if ctx == nil {
		return nil
	}
	opts, _ := ctx.Value(notifyOptionsKey{}).([]notify.Option)
	return opts
}
