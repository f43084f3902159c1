package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/cli/shared"
	"github.com/brb-cli/brb/internal/notify"
	"github.com/brb-cli/brb/internal/testutil"
)

// execute runs the config commands under a fresh root with state kept in a
// temp dir. Tests calling it must not run in parallel.
func execute(t *testing.T, desktop *testutil.DesktopRecorder, args ...string) (string, string, error) {
	t.Helper()
	testutil.IsolateEnv(t)
	return executeInEnv(t, desktop, args...)
}

// executeInEnv is execute without resetting the environment first.
func executeInEnv(t *testing.T, desktop *testutil.DesktopRecorder, args ...string) (string, string, error) {
	t.Helper()
	root := &cobra.Command{Use: "brb", SilenceErrors: true, SilenceUsage: true}
	shared.AddGroups(root)
	shared.AddPersistentFlags(root)
	Register(root)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	if desktop == nil {
		desktop = &testutil.DesktopRecorder{}
	}
	ctx := shared.ContextWithNotifyOptions(context.Background(), notify.WithDesktopNotifier(desktop))
	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

const sampleConfig = `version: 1
default_channels: [desktop]
channels:
  desktop:
    type: desktop
  hook:
    type: webhook
    url: https://example.com/hook?token=abc123
  fails:
    type: custom
    exec: sh
    args: ["-c", "echo boom >&2; exit 3"]
`
