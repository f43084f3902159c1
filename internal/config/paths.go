package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDirName     = "brb"
	configFileName = "config.yml"
)

// UserConfigDir returns the brb directory under the platform config root
// ($XDG_CONFIG_HOME or ~/.config on Linux, ~/Library/Application Support on
// macOS, %AppData% on Windows).
func UserConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "", newError(KindNoConfigDirectory, "", err)
	}
	return filepath.Join(base, appDirName), nil
}

// UserConfigPath returns the absolute path of the global config.yml.
func UserConfigPath() (string, error) {
	dir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DefaultStateDir returns where brb keeps its log and run history:
// $XDG_STATE_HOME/brb, ~/.local/state/brb, or
// ~/Library/Application Support/brb/state on macOS.
func DefaultStateDir() string {
	if runtime.GOOS == "darwin" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support", appDirName, "state")
		}
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", appDirName)
	}
	return filepath.Join(os.TempDir(), appDirName)
}
