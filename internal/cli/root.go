// brb - be right back
// Source: https://github.com/brb-cli/brb

// Package cli provides the Cobra-based command line for brb: the wrapper
// that runs a command and notifies channels when it ends, plus channel
// management (init, channels, config) and utilities (history, doctor,
// version).
package cli

import (
	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/cli/config"
	"github.com/brb-cli/brb/internal/cli/shared"
	"github.com/brb-cli/brb/internal/cli/util"
)

const flagChannel = "channel"

// NewRootCmd builds the brb command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "brb [--channel <id>]... [--] <command> [args...]",
		Short: "Run a command and get notified when it finishes",
		Long: `brb - be right back

Run any command unchanged and get a desktop popup, webhook call or custom
program invocation when it exits. brb exits with the command's own exit code.

Source: https://github.com/brb-cli/brb`,
		Example: `  # Notify the default channels when the build ends
  brb make release

  # Pick channels explicitly; -- separates brb flags from the command's
  brb --channel desktop --channel ci-webhook -- go test -count=1 ./...

  # First-time setup
  brb init
  brb channels test desktop`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runWrapped,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	// Everything after the first positional belongs to the wrapped command.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().StringArray(flagChannel, nil, "Channel id to notify (repeatable; default: default_channels)")

	shared.AddGroups(rootCmd)
	// Assign built-in help and completion to configuration group
	rootCmd.SetHelpCommandGroupID(shared.GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(shared.GroupConfiguration)
	shared.AddPersistentFlags(rootCmd)

	config.Register(rootCmd)
	util.Register(rootCmd)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
