package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/cli/shared"
	cfgpkg "github.com/brb-cli/brb/internal/config"
	clierrors "github.com/brb-cli/brb/internal/errors"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default config file",
		Long: `Create the user config file with a desktop channel as the default.

If the file already exists it is left unchanged (use --force to overwrite).
The location is ~/.config/brb/config.yml on Linux, overridable with
--config or BRB_CONFIG.`,
		Example: `  # Create ~/.config/brb/config.yml
  brb init

  # Reset an existing config to the template
  brb init --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	cmd.GroupID = shared.GroupGettingStarted
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config with the template")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	app, err := shared.NewApp(cmd)
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	status, err := cfgpkg.InitConfig(app.ConfigPath, force)
	if err != nil {
		return initError(err, app.ConfigPath)
	}
	app.Logger.WithField("path", app.ConfigPath).WithField("status", status).Info("init")

	out := app.Stdout
	switch status {
	case cfgpkg.InitCreated:
		fmt.Fprintf(out, "%s created config at %s\n", cGreen("brb:"), app.ConfigPath)
	case cfgpkg.InitOverwritten:
		fmt.Fprintf(out, "%s overwrote config at %s\n", cGreen("brb:"), app.ConfigPath)
	default:
		fmt.Fprintf(out, "brb: config already exists at %s %s\n", app.ConfigPath, cDim("(use --force to overwrite)"))
	}
	return nil
}

// initError reports filesystem failures with the path that could not be
// written.
func initError(err error, path string) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Op != "stat" {
		return clierrors.WriteFailure(path, err)
	}
	return clierrors.Wrap(err, clierrors.Runtime, "Check permissions on the config directory")
}
