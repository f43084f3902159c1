// Package util provides utility CLI commands for brb.
// Includes: version, history
package util

import "github.com/spf13/cobra"

// Register adds all utility commands to the root command.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newHistoryCmd())
}
