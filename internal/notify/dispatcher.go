package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/brb-cli/brb/internal/config"
	"github.com/brb-cli/brb/internal/event"
	"github.com/brb-cli/brb/internal/logging"
)

// DefaultUserAgent is sent by webhooks unless overridden.
const DefaultUserAgent = "brb"

var errChannelNotFound = errors.New("channel not found in config")

// Dispatcher fans an event out to channels.
type Dispatcher struct {
	desktopNotifier DesktopNotifier
	httpClient      *http.Client
	userAgent       string
	logger          logrus.FieldLogger
	sequential      bool

	desktop *DesktopSender
	webhook *WebhookSender
	custom  *CustomSender
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDesktopNotifier replaces the platform popup mechanism.
func WithDesktopNotifier(n DesktopNotifier) Option {
	return func(d *Dispatcher) { d.desktopNotifier = n }
}

// WithHTTPClient sets the client used by webhook channels, e.g. one with a
// timeout. No timeout is imposed otherwise.
func WithHTTPClient(c *http.Client) Option {
	return func(d *Dispatcher) { d.httpClient = c }
}

// WithUserAgent sets the default webhook User-Agent.
func WithUserAgent(ua string) Option {
	return func(d *Dispatcher) { d.userAgent = ua }
}

// WithLogger sets the logger for per-attempt entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithSequential attempts channels one at a time in request order.
func WithSequential() Option {
	return func(d *Dispatcher) { d.sequential = true }
}

// NewDispatcher builds a dispatcher; defaults are the platform notifier,
// http.DefaultClient and a discarding logger.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.Discard()
	}
	d.desktop = NewDesktopSender(d.desktopNotifier)
	d.webhook = NewWebhookSender(d.httpClient, d.userAgent)
	d.custom = NewCustomSender()
	return d
}

// NotifySelected attempts delivery of ev to every id and returns one result
// per id in the same order. Duplicate ids are attempted independently. A
// failing or panicking channel never affects the others.
func (d *Dispatcher) NotifySelected(ctx context.Context, cfg *config.Config, ids []string, ev event.CompletionEvent) []DeliveryResult {
	results := make([]DeliveryResult, len(ids))
	if len(ids) == 0 {
		return results
	}

	payload, payloadErr := ev.JSON()

	if d.sequential {
		for i, id := range ids {
			results[i] = d.deliver(ctx, cfg, id, ev, payload, payloadErr)
		}
		return results
	}

	var wg sync.WaitGroup
	for i, id := range ids {
		i, id := i, id
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = d.deliver(ctx, cfg, id, ev, payload, payloadErr)
		}()
	}
	wg.Wait()
	return results
}

// deliver attempts one channel and converts every outcome, including a
// panic, into a DeliveryResult.
func (d *Dispatcher) deliver(ctx context.Context, cfg *config.Config, id string, ev event.CompletionEvent, payload []byte, payloadErr error) (res DeliveryResult) {
	log := d.logger.WithField("channel", id)

	defer func() {
		if r := recover(); r != nil {
			res = failure(id, fmt.Errorf("channel sender panicked: %v", r))
		}
		if res.Success {
			log.Debug("notification delivered")
		} else {
			log.WithField("error", res.Error).Warn("notification failed")
		}
	}()

	var spec config.ChannelSpec
	if cfg != nil {
		spec, _ = cfg.Channel(id)
	}
	if spec == nil {
		return failure(id, errChannelNotFound)
	}
	log = log.WithField("type", string(spec.Type()))

	if err := d.send(ctx, spec, ev, payload, payloadErr); err != nil {
		return failure(id, err)
	}
	return success(id)
}

func (d *Dispatcher) send(ctx context.Context, spec config.ChannelSpec, ev event.CompletionEvent, payload []byte, payloadErr error) error {
	switch s := spec.(type) {
	case config.DesktopChannel:
		return d.desktop.Send(ctx, ev)
	case config.WebhookChannel:
		if payloadErr != nil {
			return fmt.Errorf("failed to encode event payload: %w", payloadErr)
		}
		return d.webhook.Send(ctx, s, payload)
	case config.CustomChannel:
		if payloadErr != nil {
			return fmt.Errorf("failed to encode event payload: %w", payloadErr)
		}
		return d.custom.Send(ctx, s, payload)
	default:
		return fmt.Errorf("unsupported channel type %q", spec.Type())
	}
}
