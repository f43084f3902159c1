package config

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/cli/shared"
	cfgpkg "github.com/brb-cli/brb/internal/config"
	clierrors "github.com/brb-cli/brb/internal/errors"
	"github.com/brb-cli/brb/internal/event"
	"github.com/brb-cli/brb/internal/history"
	"github.com/brb-cli/brb/internal/notify"
	"github.com/brb-cli/brb/internal/progress"
)

func newChannelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List, validate and test notification channels",
		Long:  "Manage notification channels. Without a subcommand, lists them.",
		Args:  cobra.NoArgs,
		RunE:  runChannelsList,
	}
	cmd.GroupID = shared.GroupChannels

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured channels",
		Args:  cobra.NoArgs,
		RunE:  runChannelsList,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Load and validate the config",
		Args:  cobra.NoArgs,
		RunE:  runChannelsValidate,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "test <channel-id>",
		Short: "Send a test notification to one channel",
		Example: `  # Check that the webhook accepts events
  brb channels test ci-webhook`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return clierrors.NewArgumentErrorWithUsage(
					"`brb channels test` requires a <channel-id>",
					"brb channels test <channel-id>",
				)
			}
			return nil
		},
		RunE: runChannelsTest,
	})
	return cmd
}

func runChannelsList(cmd *cobra.Command, _ []string) error {
	app, err := shared.NewApp(cmd)
	if err != nil {
		return err
	}
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Stdout, "Config: %s\n", app.ConfigPath)
	fmt.Fprintln(app.Stdout, renderChannels(cfg))
	return nil
}

// renderChannels draws one row per channel in id order.
func renderChannels(cfg *cfgpkg.Config) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Type", "Default", "Target"})
	for _, id := range cfg.ChannelIDs() {
		spec, _ := cfg.Channel(id)
		def := ""
		if cfg.IsDefault(id) {
			def = "yes"
		}
		tw.AppendRow(table.Row{id, string(spec.Type()), def, channelTarget(spec)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignCenter, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// channelTarget describes where a channel delivers, with secrets masked.
func channelTarget(spec cfgpkg.ChannelSpec) string {
	switch s := spec.(type) {
	case cfgpkg.DesktopChannel:
		return notify.DesktopTool()
	case cfgpkg.WebhookChannel:
		return notify.Redact(fmt.Sprintf("%s %s", s.Method, s.URL))
	case cfgpkg.CustomChannel:
		return s.Exec
	default:
		return ""
	}
}

func runChannelsValidate(cmd *cobra.Command, _ []string) error {
	app, err := shared.NewApp(cmd)
	if err != nil {
		return err
	}
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Stdout, "%s config is valid (%s, %d channel(s))\n", cGreen("brb:"), app.ConfigPath, len(cfg.Channels))
	return nil
}

func runChannelsTest(cmd *cobra.Command, args []string) error {
	id := args[0]
	app, err := shared.NewApp(cmd)
	if err != nil {
		return err
	}
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	if _, ok := cfg.Channel(id); !ok {
		return clierrors.UnknownChannel(id, cfg.ChannelIDs())
	}

	display := progress.NewDisplay(progress.DetectCapabilities()).WithWriter(app.Stderr).Quiet()
	display.Start(fmt.Sprintf("sending test notification on `%s`", id))
	started := time.Now()
	results := app.Dispatcher().NotifySelected(cmd.Context(), cfg, []string{id}, event.TestEvent(event.Options{}))
	recordChannelsTest(app, id, started, notify.Summarize(results))

	result := results[0]
	if !result.Success {
		display.Finish(false, fmt.Sprintf("test notification failed on `%s`: %s", id, result.Error))
		return shared.NewExitError(shared.ExitFailure)
	}
	display.Stop()
	display.WithWriter(app.Stdout).Finish(true, fmt.Sprintf("test notification delivered on `%s`", id))
	return nil
}

// recordChannelsTest keeps a history entry for the test run so it shows up
// next to wrapped commands.
func recordChannelsTest(app *shared.App, id string, started time.Time, summary notify.Summary) {
	if app.Settings.NoHistory {
		return
	}
	duration := time.Since(started)
	completed := started.Add(duration).UTC()
	exitCode := shared.ExitSuccess
	if !summary.AllSent() {
		exitCode = shared.ExitFailure
	}
	history.NewWriter(app.Settings.StateDir, app.Settings.HistoryMax, app.Logger).LogEntry(history.Entry{
		StartedAt:      started.UTC(),
		CompletedAt:    &completed,
		Command:        []string{"brb", "channels", "test", id},
		Status:         history.StatusFor(exitCode),
		ExitCode:       exitCode,
		Duration:       duration.String(),
		Channels:       []string{id},
		Sent:           summary.Sent,
		Total:          summary.Total,
		FailedChannels: summary.FailedIDs(),
	})
}
