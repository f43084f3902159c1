package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/brb-cli/brb/internal/config"
)

// maxDrainBytes bounds how much of a response body is read before closing.
const maxDrainBytes = 64 << 10

// WebhookSender posts the event as JSON.
type WebhookSender struct {
	client    *http.Client
	userAgent string
}

// NewWebhookSender uses client, or http.DefaultClient when nil.
func NewWebhookSender(client *http.Client, userAgent string) *WebhookSender {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookSender{client: client, userAgent: userAgent}
}

// Send delivers payload to the webhook described by spec. Method and
// headers are checked before any network I/O.
func (s *WebhookSender) Send(ctx context.Context, spec config.WebhookChannel, payload []byte) error {
	method := spec.Method
	if method == "" {
		method = config.DefaultHTTPMethod
	}
	if !validMethod(method) {
		return errors.New("invalid HTTP method in webhook config")
	}

	header, host, err := buildHeaders(spec.Headers)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, spec.URL, bytes.NewReader(payload))
	if err != nil {
		// The URL may carry credentials; keep it out of the message.
		return errors.New("webhook request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	for name, values := range header {
		req.Header[name] = values
	}
	if host != "" {
		req.Host = host
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.New("webhook request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// validMethod reports whether m is a non-empty HTTP token.
func validMethod(m string) bool {
	if m == "" {
		return false
	}
	return strings.IndexFunc(m, func(r rune) bool { return !httpguts.IsTokenRune(r) }) == -1
}

// buildHeaders validates names then values in sorted name order and stops
// at the first invalid entry. A Host header is returned separately since
// net/http ignores it in the header map.
func buildHeaders(headers map[string]string) (http.Header, string, error) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(http.Header, len(headers))
	var host string
	for _, name := range names {
		value := headers[name]
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, "", fmt.Errorf("invalid webhook header name `%s`", name)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return nil, "", fmt.Errorf("invalid value for webhook header `%s`", name)
		}
		if strings.EqualFold(name, "Host") {
			host = value
			continue
		}
		out.Set(name, value)
	}
	return out, host, nil
}
