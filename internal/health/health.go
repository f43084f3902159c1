// Package health runs the checks behind `brb doctor`.
package health

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/brb-cli/brb/internal/config"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

func (r *HealthReport) add(c CheckResult) {
	r.Checks = append(r.Checks, c)
	if !c.Passed {
		r.Passed = false
	}
}

// Options select what RunHealthChecks inspects.
type Options struct {
	// ConfigPath is the channel document; empty uses the default location.
	ConfigPath string
	// StateDir must be writable for logs and history.
	StateDir string
	// DesktopTool is the popup program; empty means the platform has none.
	DesktopTool string
	// LookPath resolves executables; defaults to exec.LookPath.
	LookPath func(string) (string, error)
	// LoadOptions are passed to config.Load.
	LoadOptions []config.Option
}

// RunHealthChecks runs all health checks and returns a report. Channel
// checks only run when the config loads.
func RunHealthChecks(opts Options) *HealthReport {
	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}
	report := &HealthReport{Checks: make([]CheckResult, 0), Passed: true}

	cfg, cfgCheck := CheckConfig(opts.ConfigPath, opts.LoadOptions...)
	report.add(cfgCheck)
	report.add(CheckStateDir(opts.StateDir))

	if cfg == nil {
		return report
	}
	for _, id := range cfg.ChannelIDs() {
		spec, _ := cfg.Channel(id)
		switch s := spec.(type) {
		case config.DesktopChannel:
			report.add(CheckDesktopTool(id, opts.DesktopTool, opts.LookPath))
		case config.CustomChannel:
			report.add(CheckCustomExec(id, s.Exec, opts.LookPath))
		}
	}
	return report
}

// CheckConfig loads the channel document.
func CheckConfig(path string, loadOpts ...config.Option) (*config.Config, CheckResult) {
	cfg, err := config.Load(path, loadOpts...)
	if err != nil {
		return nil, CheckResult{Name: "Config", Passed: false, Message: err.Error()}
	}
	return cfg, CheckResult{
		Name:    "Config",
		Passed:  true,
		Message: fmt.Sprintf("%d channel(s), defaults: %s", len(cfg.Channels), strings.Join(cfg.DefaultChannels, ", ")),
	}
}

// CheckStateDir verifies brb can create files in dir.
func CheckStateDir(dir string) CheckResult {
	const name = "State directory"
	if dir == "" {
		return CheckResult{Name: name, Passed: false, Message: "state directory is not set"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf("cannot create %s: %v", dir, err)}
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf("%s is not writable: %v", dir, err)}
	}
	f.Close()
	os.Remove(f.Name())
	return CheckResult{Name: name, Passed: true, Message: filepath.Clean(dir)}
}

// CheckDesktopTool verifies the popup program exists.
func CheckDesktopTool(channelID, tool string, lookPath func(string) (string, error)) CheckResult {
	name := fmt.Sprintf("Channel %s (desktop)", channelID)
	if tool == "" {
		return CheckResult{Name: name, Passed: false, Message: "desktop notifications are not supported on this platform"}
	}
	if _, err := lookPath(tool); err != nil {
		return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf("%s not found in PATH", tool)}
	}
	return CheckResult{Name: name, Passed: true, Message: fmt.Sprintf("%s found", tool)}
}

// CheckCustomExec verifies a custom channel's program exists.
func CheckCustomExec(channelID, execPath string, lookPath func(string) (string, error)) CheckResult {
	name := fmt.Sprintf("Channel %s (custom)", channelID)
	if _, err := lookPath(execPath); err != nil {
		return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf("%s not found or not executable", execPath)}
	}
	return CheckResult{Name: name, Passed: true, Message: fmt.Sprintf("%s found", execPath)}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder
	for _, check := range report.Checks {
		mark := "✓"
		if !check.Passed {
			mark = "✗"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", mark, check.Name, check.Message)
	}
	return b.String()
}
