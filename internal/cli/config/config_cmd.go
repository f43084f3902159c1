package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/cli/shared"
	cfgpkg "github.com/brb-cli/brb/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect brb configuration",
		Long:  "Inspect brb configuration. Without a subcommand, prints the config file path.",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	}
	cmd.GroupID = shared.GroupConfiguration

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "template",
		Short: "Print the config template written by init",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(cfgpkg.DefaultConfigYAML())
			return err
		},
	})
	return cmd
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := shared.NewApp(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Stdout, app.ConfigPath)
	return nil
}
