package util

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/cli/shared"
	"github.com/brb-cli/brb/internal/testutil"
)

// execute runs the util commands under a fresh root with the given state
// directory. Tests calling it must not run in parallel.
func execute(t *testing.T, stateDir string, args ...string) (string, error) {
	t.Helper()
	testutil.IsolateEnv(t)
	t.Setenv("BRB_STATE_DIR", stateDir)

	root := &cobra.Command{Use: "brb", SilenceErrors: true, SilenceUsage: true}
	shared.AddGroups(root)
	shared.AddPersistentFlags(root)
	Register(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
