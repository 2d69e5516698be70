package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{"v2.0.0+build.5", "v2.0.0"},
		{"v1.0.0-rc.1", "v1.0.0-rc.1"},
		{"dev", "dev"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonical(tt.in), tt.in)
	}
}

func TestInfoString(t *testing.T) {
	info := Get()
	assert.Equal(t, "dev", info.Version)
	assert.True(t, strings.HasPrefix(info.String(), "dev (commit: none, built: unknown, go"))
}
