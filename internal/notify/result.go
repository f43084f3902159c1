package notify

import (
	"fmt"
	"strings"
)

// DeliveryResult is the outcome of one channel attempt.
type DeliveryResult struct {
	ChannelID string `json:"channel_id" yaml:"channel_id"`
	Success   bool   `json:"success" yaml:"success"`
	// Error is redacted and empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func success(id string) DeliveryResult {
	return DeliveryResult{ChannelID: id, Success: true}
}

func failure(id string, err error) DeliveryResult {
	return DeliveryResult{ChannelID: id, Error: Redact(err.Error())}
}

// Summary aggregates delivery results.
type Summary struct {
	Sent   int
	Total  int
	Failed []DeliveryResult
}

// Summarize counts successes and collects failures in order.
func Summarize(results []DeliveryResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			s.Sent++
			continue
		}
		s.Failed = append(s.Failed, r)
	}
	return s
}

// AllSent reports whether every attempt succeeded.
func (s Summary) AllSent() bool {
	return s.Sent == s.Total
}

// FailedIDs lists the channel ids that failed, in order.
func (s Summary) FailedIDs() []string {
	ids := make([]string, 0, len(s.Failed))
	for _, r := range s.Failed {
		ids = append(ids, r.ChannelID)
	}
	return ids
}

// String renders "notifications sent S/T[; failed: id (reason), ...]".
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "notifications sent %d/%d", s.Sent, s.Total)
	if len(s.Failed) == 0 {
		return b.String()
	}
	parts := make([]string, 0, len(s.Failed))
	for _, r := range s.Failed {
		parts = append(parts, fmt.Sprintf("%s (%s)", r.ChannelID, r.Error))
	}
	b.WriteString("; failed: ")
	b.WriteString(strings.Join(parts, ", "))
	return b.String()
}
