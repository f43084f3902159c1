// Package config provides CLI commands for brb configuration management.
// Includes: init, config, channels, doctor
package config

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Color helper functions for command output
var (
	cGreen = color.New(color.FgGreen).SprintFunc()
	cRed   = color.New(color.FgRed).SprintFunc()
	cDim   = color.New(color.Faint).SprintFunc()
)

// Register adds all configuration commands to the root command.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newChannelsCmd())
	rootCmd.AddCommand(newDoctorCmd())
}
