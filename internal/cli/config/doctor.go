package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/cli/shared"
	"github.com/brb-cli/brb/internal/health"
	"github.com/brb-cli/brb/internal/notify"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"doc"},
		Short:   "Run health checks for brb (doc)",
		Long: `Run health checks to verify that brb can deliver notifications.

This command checks:
  - the config file loads and validates
  - the state directory (logs, history) is writable
  - the desktop notifier tool is installed, for desktop channels
  - every custom channel's program exists

Each check displays a checkmark if passed or an X with the reason.`,
		Example: `  # Check everything
  brb doctor`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}
	cmd.GroupID = shared.GroupConfiguration
	return cmd
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app, err := shared.NewApp(cmd)
	if err != nil {
		return err
	}

	report := health.RunHealthChecks(health.Options{
		ConfigPath:  app.ConfigPath,
		StateDir:    app.Settings.StateDir,
		DesktopTool: notify.DesktopTool(),
	})

	for _, line := range strings.Split(strings.TrimRight(health.FormatReport(report), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "✓"):
			fmt.Fprintln(app.Stdout, cGreen("✓")+strings.TrimPrefix(line, "✓"))
		case strings.HasPrefix(line, "✗"):
			fmt.Fprintln(app.Stdout, cRed("✗")+strings.TrimPrefix(line, "✗"))
		default:
			fmt.Fprintln(app.Stdout, line)
		}
	}

	if !report.Passed {
		return shared.NewExitError(shared.ExitFailure)
	}
	return nil
}
