package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/cli/shared"
	"github.com/brb-cli/brb/internal/config"
	clierrors "github.com/brb-cli/brb/internal/errors"
	"github.com/brb-cli/brb/internal/event"
	"github.com/brb-cli/brb/internal/history"
	"github.com/brb-cli/brb/internal/notify"
	"github.com/brb-cli/brb/internal/progress"
	"github.com/brb-cli/brb/internal/runner"
)

// runWrapped runs args as a child process, notifies the selected channels
// and exits with the child's exit code.
func runWrapped(cmd *cobra.Command, args []string) error {
	requested, _ := cmd.Flags().GetStringArray(flagChannel)
	if len(args) == 0 {
		if len(requested) > 0 {
			return clierrors.MissingCommand()
		}
		return cmd.Help()
	}

	app, err := shared.NewApp(cmd)
	if err != nil {
		return err
	}
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	ids, err := selectChannels(cfg, requested)
	if err != nil {
		return err
	}

	cwd, _ := os.Getwd()
	rec := startHistory(app, args, cwd, ids)

	log := app.Logger.WithField("command", args[0])
	log.WithField("channels", ids).Debug("starting command")
	res := runner.Run(cmd.Context(), args)
	if res.SpawnErr != nil {
		cause := errors.Unwrap(res.SpawnErr)
		if cause == nil {
			cause = res.SpawnErr
		}
		clierrors.FprintError(app.Stderr, clierrors.CommandNotStarted(args[0], cause))
	}
	log.WithField("exit_code", res.ExitCode).WithField("duration", res.Duration).Info("command finished")

	ev := event.FromRun(res, event.Options{Cwd: cwd})

	display := progress.NewDisplay(progress.DetectCapabilities()).WithWriter(app.Stderr).Quiet()
	display.Start(fmt.Sprintf("notifying %d channel(s)", len(ids)))
	results := app.Dispatcher().NotifySelected(cmd.Context(), cfg, ids, ev)
	display.Stop()

	summary := notify.Summarize(results)
	summaryColor := color.New(color.FgGreen)
	if !summary.AllSent() {
		summaryColor = color.New(color.FgYellow)
	}
	fmt.Fprintf(app.Stderr, "brb: command %s (exit %d); %s\n", outcome(res), res.ExitCode, summaryColor.Sprint(summary))

	rec.complete(res, summary)

	if res.ExitCode != shared.ExitSuccess {
		return shared.NewExitError(res.ExitCode)
	}
	return nil
}

// selectChannels returns the explicit channels, or the defaults when none
// were requested. Every explicit id must be configured.
func selectChannels(cfg *config.Config, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return append([]string(nil), cfg.DefaultChannels...), nil
	}
	for _, id := range requested {
		if _, ok := cfg.Channel(id); !ok {
			return nil, clierrors.SelectedChannelNotDefined(id, cfg.ChannelIDs())
		}
	}
	return requested, nil
}

func outcome(res runner.Result) string {
	if res.Success() {
		return "succeeded"
	}
	return "failed"
}

// runRecord tracks the history entry of one run. A disabled or failed
// history never affects the wrapped command.
type runRecord struct {
	writer *history.Writer
	id     string
}

func startHistory(app *shared.App, command []string, cwd string, ids []string) *runRecord {
	if app.Settings.NoHistory {
		return &runRecord{}
	}
	w := history.NewWriter(app.Settings.StateDir, app.Settings.HistoryMax, app.Logger)
	id, err := w.WriteStart(command, cwd, ids)
	if err != nil {
		app.Logger.WithError(err).Warn("failed to record history")
		return &runRecord{}
	}
	return &runRecord{writer: w, id: id}
}

func (r *runRecord) complete(res runner.Result, summary notify.Summary) {
	if r.writer == nil {
		return
	}
	err := r.writer.UpdateComplete(r.id, history.Completion{
		ExitCode:       res.ExitCode,
		Duration:       res.Duration,
		Sent:           summary.Sent,
		Total:          summary.Total,
		FailedChannels: summary.FailedIDs(),
	})
	if err != nil {
		r.writer.Logger.WithError(err).Warn("failed to update history")
	}
}
