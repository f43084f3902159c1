package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed default_config.yml
var defaultConfigYAML []byte

// DefaultConfigYAML returns the template written by `brb init`.
func DefaultConfigYAML() []byte {
	out := make([]byte, len(defaultConfigYAML))
	copy(out, defaultConfigYAML)
	return out
}

// InitStatus reports what InitConfig did.
type InitStatus int

const (
	// InitCreated means a new config file was written.
	InitCreated InitStatus = iota
	// InitAlreadyExists means the file was left untouched.
	InitAlreadyExists
	// InitOverwritten means an existing file was replaced (force).
	InitOverwritten
)

// InitConfig writes the default template to path unless a file already
// exists there. With force, an existing file is replaced.
func InitConfig(path string, force bool) (InitStatus, error) {
	if path == "" {
		var err error
		if path, err = UserConfigPath(); err != nil {
			return InitAlreadyExists, err
		}
	}

	exists := false
	if _, err := os.Stat(path); err == nil {
		exists = true
	} else if !errors.Is(err, os.ErrNotExist) {
		return InitAlreadyExists, newError(KindReadFailed, "", err)
	}

	if exists && !force {
		return InitAlreadyExists, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return InitAlreadyExists, fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, defaultConfigYAML, 0o600); err != nil {
		return InitAlreadyExists, fmt.Errorf("writing config file: %w", err)
	}

	if exists {
		return InitOverwritten, nil
	}
	return InitCreated, nil
}
