package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_WritesRotatingFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "state")
	logger, err := Configure(Options{StateDir: dir, Level: "info", Format: "json"})
	require.NoError(t, err)

	logger.WithField("channel", "desktop").Info("delivered")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"channel":"desktop"`)
	assert.Contains(t, string(data), `"msg":"delivered"`)
}

func TestConfigure_Levels(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		opts Options
		want logrus.Level
	}{
		"default":       {opts: Options{}, want: logrus.InfoLevel},
		"explicit warn": {opts: Options{Level: "WARN"}, want: logrus.WarnLevel},
		"unknown level": {opts: Options{Level: "loud"}, want: logrus.InfoLevel},
		"debug flag":    {opts: Options{Level: "error", Debug: true, Stderr: &bytes.Buffer{}}, want: logrus.DebugLevel},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			logger, err := Configure(tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, logger.GetLevel())
		})
	}
}

func TestConfigure_DebugMirrorsToStderr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := Configure(Options{Debug: true, Stderr: &buf})
	require.NoError(t, err)

	logger.Debug("loading config")
	assert.Contains(t, buf.String(), "loading config")
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { Discard().Error("nothing to see") })
}
