package util

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brb-cli/brb/internal/build"
)

func TestVersionPlain(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version", "--plain")
	require.NoError(t, err)

	assert.Contains(t, out, "brb "+build.Version+"\n")
	assert.Contains(t, out, "commit: "+build.Commit)
	assert.Contains(t, out, "go: "+runtime.Version())
	assert.Contains(t, out, "platform: "+build.Platform())
}

func TestVersionPretty(t *testing.T) {
	out, err := execute(t, t.TempDir(), "v")
	require.NoError(t, err)

	assert.Contains(t, out, "Version")
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, SourceURL)
}

func TestTruncateCommit(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"short":   {in: "abc", want: "abc"},
		"exact":   {in: "12345678", want: "12345678"},
		"long":    {in: "1234567890abcdef", want: "12345678"},
		"unknown": {in: "unknown", want: "unknown"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncateCommit(tt.in))
		})
	}
}
