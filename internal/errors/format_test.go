package errors

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatErrorWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	tests := map[string]struct {
		err  *CLIError
		want string
	}{
		"nil": {
			err:  nil,
			want: "",
		},
		"message only": {
			err:  &CLIError{Category: Runtime, Message: "webhook returned HTTP 500"},
			want: "Runtime Error: webhook returned HTTP 500\n",
		},
		"usage and steps": {
			err: &CLIError{
				Category:    Argument,
				Message:     "no command given",
				Usage:       "brb [--channel <id>]... [--] <command> [args...]",
				Remediation: []string{"Pass the command to wrap", "Use -- before its flags"},
			},
			want: "Argument Error: no command given\n" +
				"\nUsage:\n  brb [--channel <id>]... [--] <command> [args...]\n" +
				"\nTo fix this:\n  1. Pass the command to wrap\n  2. Use -- before its flags\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatError(tt.err))
		})
	}
}

func TestFprintError(t *testing.T) {
	var buf bytes.Buffer
	FprintError(&buf, nil)
	assert.Zero(t, buf.Len())

	FprintError(&buf, &CLIError{Category: Prerequisite, Message: "notify-send not found in PATH"})
	assert.Contains(t, buf.String(), "Prerequisite Error")
	assert.Contains(t, buf.String(), "notify-send not found in PATH")
}

func TestPrintErrorNil(t *testing.T) {
	assert.NotPanics(t, func() { PrintError(nil) })
}
