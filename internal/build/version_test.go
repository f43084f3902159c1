package build

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "brb/"+Version, UserAgent())
}

func TestPlatform(t *testing.T) {
	assert.True(t, strings.Contains(Platform(), "/"))
}
