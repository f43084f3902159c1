package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/brb-cli/brb/internal/config"
)

// maxStderrChars caps the stderr excerpt in a failure message.
const maxStderrChars = 200

// CustomSender runs a user-supplied program with the event on stdin.
type CustomSender struct {
	environ func() []string
}

// NewCustomSender returns a sender inheriting the process environment.
func NewCustomSender() *CustomSender {
	return &CustomSender{environ: os.Environ}
}

// Send starts spec.Exec, writes payload to its stdin and waits for it.
func (s *CustomSender) Send(ctx context.Context, spec config.CustomChannel, payload []byte) error {
	cmd := exec.CommandContext(ctx, spec.Exec, spec.Args...)
	cmd.Env = overlayEnv(s.environ(), spec.Env)
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start custom notifier `%s`", spec.Exec)
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		if cmd.ProcessState != nil && cmd.ProcessState.Success() {
			return errors.New("failed writing event payload to custom notifier")
		}
		return errors.New("failed waiting for custom notifier process")
	}

	msg := strings.TrimSpace(strings.ToValidUTF8(stderr.String(), "�"))
	if msg == "" {
		return errors.New("custom notifier exited with non-zero status")
	}
	return fmt.Errorf("custom notifier failed: %s", truncateChars(msg, maxStderrChars))
}

// overlayEnv returns base with overrides applied; overridden keys are
// removed from base and the overrides appended in sorted order.
func overlayEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}
	out := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		out = append(out, kv)
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+overrides[k])
	}
	return out
}

// truncateChars keeps the first n characters of s and appends "..." when
// anything was cut.
func truncateChars(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
