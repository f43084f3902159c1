package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// MissingCommand is returned when brb is invoked without a command to run.
func MissingCommand() *CLIError {
	return NewArgumentErrorWithUsage(
		"no command given",
		"brb [--channel <id>]... [--] <command> [args...]",
		"Pass the command to wrap after brb's own flags",
		"Use -- to separate brb flags from the command's flags",
	)
}

// UnknownChannel is returned when a requested channel id is not configured.
func UnknownChannel(id string, available []string) *CLIError {
	steps := []string{"Run 'brb channels list' to see configured channels"}
	if len(available) > 0 {
		steps = append(steps, fmt.Sprintf("Available channels: %s", strings.Join(available, ", ")))
	}
	return NewArgumentError(fmt.Sprintf("channel `%s` is not defined in config", id), steps...)
}

// SelectedChannelNotDefined is returned before running the command when a
// --channel id is not configured.
func SelectedChannelNotDefined(id string, available []string) *CLIError {
	err := UnknownChannel(id, available)
	err.Message = fmt.Sprintf("selected channel `%s` is not defined in config", id)
	return err
}

// ConfigFileNotFound is returned when no config document exists.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"Run 'brb init' to create a default config",
		"Or point BRB_CONFIG / --config at an existing file",
	)
}

// ConfigParseError is returned when the config document cannot be used.
func ConfigParseError(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to load config %s: %v", path, err),
		Remediation: []string{
			"Run 'brb channels validate' after editing the file",
			"Run 'brb init --force' to restore the default template",
		},
		Err: err,
	}
}

// MissingEnvironmentVariable is returned when ${env:NAME} cannot be resolved.
func MissingEnvironmentVariable(name string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("environment variable %s is referenced by the config but not set", name),
		Remediation: []string{
			fmt.Sprintf("export %s=<value> before running brb", name),
		},
		Err: err,
	}
}

// InvalidFlagCombination is returned when flags conflict.
func InvalidFlagCombination(flags, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination %s: %s", flags, reason),
		"Run 'brb --help' for usage",
	)
}

// InvalidHistoryStatus is returned by 'brb history --status'.
func InvalidHistoryStatus(status string, valid []string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid status filter %q", status),
		fmt.Sprintf("Use one of: %s", strings.Join(valid, ", ")),
	)
}

// CommandNotStarted is returned when the wrapped command cannot be spawned.
func CommandNotStarted(name string, err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("failed to start command `%s`: %v", name, err),
		Remediation: []string{
			"Check the command name and that it is on PATH",
		},
		Err: err,
	}
}

// DirectoryNotFound is returned when a directory brb writes into is missing
// and cannot be created.
func DirectoryNotFound(path string, err error) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("directory not found and could not be created: %s", path),
		Remediation: []string{
			"Create the directory, or pick another location with --config / BRB_STATE_DIR",
		},
		Err: err,
	}
}

// FileNotWritable is returned when brb cannot write a file it owns.
func FileNotWritable(path string, err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("file not writable: %s", path),
		Remediation: []string{
			"Check permissions on the file and its directory",
		},
		Err: err,
	}
}

// WriteFailure classifies a failed write of path: a directory that could not
// be created, or a file that could not be written.
func WriteFailure(path string, err error) *CLIError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Op == "mkdir" {
		return DirectoryNotFound(pathErr.Path, err)
	}
	return FileNotWritable(path, err)
}
