// Package health_test tests doctor checks for config, state directory and channel tools.
// Related: internal/health/health.go
// Tags: health, doctor, validation

package health

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLookPath(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const fullConfig = `
version: 1
default_channels: [desktop]
channels:
  desktop:
    type: desktop
  pager:
    type: custom
    exec: page-me
  hook:
    type: webhook
    url: https://example.com
`

func TestRunHealthChecks_AllPass(t *testing.T) {
	t.Parallel()

	report := RunHealthChecks(Options{
		ConfigPath:  writeConfig(t, fullConfig),
		StateDir:    t.TempDir(),
		DesktopTool: "notify-send",
		LookPath:    fakeLookPath("notify-send", "page-me"),
	})

	assert.True(t, report.Passed)
	names := make([]string, 0, len(report.Checks))
	for _, c := range report.Checks {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Config", "State directory", "Channel desktop (desktop)", "Channel pager (custom)"}, names)
}

func TestRunHealthChecks_MissingTools(t *testing.T) {
	t.Parallel()

	report := RunHealthChecks(Options{
		ConfigPath:  writeConfig(t, fullConfig),
		StateDir:    t.TempDir(),
		DesktopTool: "notify-send",
		LookPath:    fakeLookPath(),
	})

	assert.False(t, report.Passed)
	assert.Contains(t, FormatReport(report), "✗ Channel pager (custom): page-me not found or not executable")
	assert.Contains(t, FormatReport(report), "✗ Channel desktop (desktop): notify-send not found in PATH")
}

func TestRunHealthChecks_BadConfigSkipsChannels(t *testing.T) {
	t.Parallel()

	report := RunHealthChecks(Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yml"),
		StateDir:   t.TempDir(),
		LookPath:   fakeLookPath(),
	})

	assert.False(t, report.Passed)
	require.Len(t, report.Checks, 2)
	assert.False(t, report.Checks[0].Passed)
	assert.Contains(t, report.Checks[0].Message, "config file not found")
}

func TestCheckDesktopTool_UnsupportedPlatform(t *testing.T) {
	t.Parallel()

	result := CheckDesktopTool("desktop", "", fakeLookPath())
	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "not supported")
}

func TestCheckStateDir(t *testing.T) {
	t.Parallel()

	assert.True(t, CheckStateDir(filepath.Join(t.TempDir(), "new")).Passed)
	assert.False(t, CheckStateDir("").Passed)
}

func TestCheckStateDir_ReadOnly(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	result := CheckStateDir(dir)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "not writable")
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	report := &HealthReport{Checks: []CheckResult{
		{Name: "Config", Passed: true, Message: "1 channel(s), defaults: desktop"},
		{Name: "State directory", Passed: false, Message: "state directory is not set"},
	}}
	assert.Equal(t,
		"✓ Config: 1 channel(s), defaults: desktop\n✗ State directory: state directory is not set\n",
		FormatReport(report))
}
