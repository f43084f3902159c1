package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/cli/shared"
	clierrors "github.com/brb-cli/brb/internal/errors"
	"github.com/brb-cli/brb/internal/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View wrapped command history",
		Long: `View a log of commands run through brb with their exit code, duration
and how many notifications were delivered. Entries live in history.yaml
under the state directory (BRB_STATE_DIR).`,
		Example: `  # Last 10 runs
  brb history -n 10

  # Only failures
  brb history --status failed`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}
	cmd.GroupID = shared.GroupConfiguration
	cmd.Flags().IntP("limit", "n", 0, "Limit to last N entries (most recent)")
	cmd.Flags().Bool("clear", false, "Clear all history")
	cmd.Flags().String("status", "", "Filter by status ("+strings.Join(history.Statuses, ", ")+")")
	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app, err := shared.NewApp(cmd)
	if err != nil {
		return err
	}
	clearFlag, _ := cmd.Flags().GetBool("clear")
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")

	if limit < 0 {
		return clierrors.NewArgumentError(fmt.Sprintf("limit must be positive, got %d", limit))
	}
	if status != "" && !history.ValidStatus(status) {
		return clierrors.InvalidHistoryStatus(status, history.Statuses)
	}
	if clearFlag && (status != "" || limit > 0) {
		return clierrors.InvalidFlagCombination("--clear with --status/--limit", "clearing always removes every entry")
	}

	if clearFlag {
		w := history.NewWriter(app.Settings.StateDir, app.Settings.HistoryMax, app.Logger)
		if err := w.Clear(); err != nil {
			return clierrors.WriteFailure(history.Path(app.Settings.StateDir), err)
		}
		fmt.Fprintln(app.Stdout, "History cleared.")
		return nil
	}

	h, err := history.Load(app.Settings.StateDir)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}
	entries := h.Filter(status, limit)
	if len(entries) == 0 {
		fmt.Fprintln(app.Stdout, emptyMessage(status))
		return nil
	}
	displayEntries(app.Stdout, entries)
	return nil
}

// emptyMessage creates an appropriate message when no entries match filters.
func emptyMessage(status string) string {
	if status != "" {
		return fmt.Sprintf("No matching entries for status '%s'.", status)
	}
	return "No history available."
}

// displayEntries renders entries newest first.
func displayEntries(out io.Writer, entries []history.Entry) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Started", "Status", "Exit", "Duration", "Sent", "Command"})
	for _, e := range entries {
		tw.AppendRow(table.Row{
			e.StartedAt.Local().Format("2006-01-02 15:04:05"),
			formatStatus(e.Status),
			e.ExitCode,
			dash(e.Duration),
			formatSent(e),
			truncateCommand(strings.Join(e.Command, " "), 48),
		})
	}
	fmt.Fprintln(out, tw.Render())
}

// formatStatus returns a color-coded status string.
func formatStatus(status string) string {
	switch status {
	case history.StatusCompleted:
		return color.GreenString(status)
	case history.StatusRunning:
		return color.YellowString(status)
	case history.StatusFailed:
		return color.RedString(status)
	default:
		return dash(status)
	}
}

func formatSent(e history.Entry) string {
	if e.Status == history.StatusRunning {
		return "-"
	}
	s := fmt.Sprintf("%d/%d", e.Sent, e.Total)
	if len(e.FailedChannels) > 0 {
		s += " (failed: " + strings.Join(e.FailedChannels, ", ") + ")"
	}
	return s
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncateCommand(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
