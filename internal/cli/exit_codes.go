package cli

import (
	"github.com/brb-cli/brb/internal/cli/shared"
	"github.com/brb-cli/brb/internal/runner"
)

// Exit codes for the brb CLI. A wrapped command's own exit code is passed
// through unchanged; these cover brb's failures.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = shared.ExitSuccess

	// ExitFailure indicates brb itself failed (config, arguments, delivery test)
	ExitFailure = shared.ExitFailure

	// ExitSpawnFailed indicates the wrapped command could not be started
	ExitSpawnFailed = runner.ExitSpawnFailed
)

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}

// IsExitError reports whether err only carries an exit code and needs no
// further message.
func IsExitError(err error) bool {
	return shared.IsExitError(err)
}
