package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExpandHome tests expansion of a leading "~" against a resolved home
// directory.
func TestExpandHome(t *testing.T) {
	tests := []struct {
		name     string
		home     string
		path     string
		expected string
	}{
		{
			name:     "leading tilde",
			home:     "/home/user",
			path:     "~/.ncmpcpp/config",
			expected: "/home/user/.ncmpcpp/config",
		},
		{
			name:     "tilde only",
			home:     "/home/user",
			path:     "~",
			expected: "/home/user",
		},
		{
			name:     "absolute path unchanged",
			home:     "/home/user",
			path:     "/etc/ncmpcpp/config",
			expected: "/etc/ncmpcpp/config",
		},
		{
			name:     "relative path unchanged",
			home:     "/home/user",
			path:     "config",
			expected: "config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandHome(tt.home, tt.path))
		})
	}
}

// TestExpandHome_Idempotent verifies that expanding an already-expanded path
// is a no-op.
func TestExpandHome_Idempotent(t *testing.T) {
	once := ExpandHome("/home/user", "~/.lyrics/")
	twice := ExpandHome("/home/user", once)
	assert.Equal(t, once, twice)
}

// TestConfigBaseDir verifies the XDG_CONFIG_HOME convention with its fixed
// fallback and guaranteed trailing separator.
func TestConfigBaseDir(t *testing.T) {
	tests := []struct {
		name     string
		xdg      string
		expected string
	}{
		{
			name:     "unset falls back",
			xdg:      "",
			expected: "~/.config/",
		},
		{
			name:     "set without trailing separator",
			xdg:      "/home/user/.config",
			expected: "/home/user/.config/",
		},
		{
			name:     "set with trailing separator",
			xdg:      "/home/user/.config/",
			expected: "/home/user/.config/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			environment := Environment{XDGConfigHome: tt.xdg}
			assert.Equal(t, tt.expected, configBaseDir(environment))
		})
	}
}

// TestDefaultConfigPaths verifies the two well-known candidate locations,
// lowest to highest priority.
func TestDefaultConfigPaths(t *testing.T) {
	environment := Environment{XDGConfigHome: "/xdg"}

	paths := defaultConfigPaths(environment)

	assert.Equal(t, []string{"~/.ncmpcpp/config", "/xdg/ncmpcpp/config"}, paths)
}
