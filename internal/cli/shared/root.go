package shared

import "github.com/spf13/cobra"

// AddGroups registers the help groups used by brb subcommands.
func AddGroups(root *cobra.Command) {
	root.AddGroup(
		&cobra.Group{ID: GroupGettingStarted, Title: "Getting Started:"},
		&cobra.Group{ID: GroupChannels, Title: "Channels:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"},
	)
}

// AddPersistentFlags registers the flags every brb command reads via NewApp.
func AddPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().StringP(FlagConfig, "c", "", "Path to config file (default: BRB_CONFIG or the user config dir)")
	root.PersistentFlags().BoolP(FlagDebug, "d", false, "Log at debug level to stderr and the log file")
}
