package shared

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brb-cli/brb/internal/config"
	clierrors "github.com/brb-cli/brb/internal/errors"
)

func TestConfigError(t *testing.T) {
	t.Parallel()

	const path = "/home/me/.config/brb/config.yml"
	tests := map[string]struct {
		err          error
		wantCategory clierrors.ErrorCategory
		wantMessage  string
	}{
		"not found": {
			err:          &config.Error{Kind: config.KindNotFound, Detail: path},
			wantCategory: clierrors.Configuration,
			wantMessage:  "config file not found: " + path,
		},
		"missing variable": {
			err:          &config.Error{Kind: config.KindMissingEnvironmentVariable, Detail: "SLACK_TOKEN"},
			wantCategory: clierrors.Configuration,
			wantMessage:  "environment variable SLACK_TOKEN is referenced by the config but not set",
		},
		"no config directory": {
			err:          &config.Error{Kind: config.KindNoConfigDirectory},
			wantCategory: clierrors.Configuration,
			wantMessage:  "unable to determine user config directory",
		},
		"read failure": {
			err:          &config.Error{Kind: config.KindReadFailed, Err: fs.ErrPermission},
			wantCategory: clierrors.Configuration,
			wantMessage:  "failed to read config file",
		},
		"invalid config wrapped": {
			err:          fmt.Errorf("loading: %w", &config.Error{Kind: config.KindInvalidConfig, Detail: "no channels"}),
			wantCategory: clierrors.Configuration,
			wantMessage:  "failed to load config " + path,
		},
		"invalid interpolation": {
			err:          &config.Error{Kind: config.KindInvalidInterpolation, Detail: "${env:}"},
			wantCategory: clierrors.Configuration,
			wantMessage:  "failed to load config " + path,
		},
		"plain error": {
			err:          errors.New("disk on fire"),
			wantCategory: clierrors.Configuration,
			wantMessage:  "disk on fire",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cliErr := clierrors.AsCLIError(ConfigError(tt.err, path))
			require.NotNil(t, cliErr)
			assert.Equal(t, tt.wantCategory, cliErr.Category)
			assert.Contains(t, cliErr.Message, tt.wantMessage)
		})
	}
}
