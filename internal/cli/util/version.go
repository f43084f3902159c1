package util

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/brb-cli/brb/internal/build"
	"github.com/brb-cli/brb/internal/cli/shared"
)

// SourceURL is the project source URL
const SourceURL = "https://github.com/brb-cli/brb"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for brb",
		Example: `  # Show version info
  brb version

  # Plain output (for scripts)
  brb version --plain`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			plain, _ := cmd.Flags().GetBool("plain")
			if plain {
				printPlainVersion(cmd.OutOrStdout())
			} else {
				printPrettyVersion(cmd.OutOrStdout())
			}
		},
	}
	cmd.GroupID = shared.GroupGettingStarted
	cmd.Flags().Bool("plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(out io.Writer) {
	fmt.Fprintf(out, "brb %s\n", build.Version)
	fmt.Fprintf(out, "commit: %s\n", build.Commit)
	fmt.Fprintf(out, "built: %s\n", build.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s\n", build.Platform())
}

// printPrettyVersion prints the same fields in a rounded box.
func printPrettyVersion(out io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(out, "%s %s\n", cyan("brb"), dim("be right back: run a command, get notified when it ends"))

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	rows := []struct {
		label string
		value string
	}{
		{"Version", build.Version},
		{"Commit", truncateCommit(build.Commit)},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", build.Platform()},
		{"Source", SourceURL},
	}
	for _, r := range rows {
		tw.AppendRow(table.Row{yellow(r.label), r.value})
	}
	fmt.Fprintln(out, tw.Render())
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
