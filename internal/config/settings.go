// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Compiled-in defaults for the media-server connection.
const (
	DefaultHost              = "localhost"
	DefaultPort              = 6600
	DefaultConnectionTimeout = 5 * time.Second
)

// Settings is the contribution of a single configuration source. Fields are
// pointers so that "not provided by this source" is distinguishable from a
// value that happens to equal the default; precedence depends on origin, not
// value. Sources are merged per field, highest priority first, and mergo
// fills only the fields that are still nil.
type Settings struct {
	Host               *string
	Port               *int
	ConnectionTimeout  *time.Duration
	NcmpcppDirectory   *string
	LyricsDirectory    *string
	StartupScreen      *string
	StartupSlaveScreen *string
}

// defaultSettings returns the compiled-in defaults, the lowest-priority
// source. Every field is populated so the merged result never has gaps.
// An empty StartupSlaveScreen means no slave screen is opened.
func defaultSettings() *Settings {
	return &Settings{
		Host:               ptr(DefaultHost),
		Port:               ptr(DefaultPort),
		ConnectionTimeout:  ptr(DefaultConnectionTimeout),
		NcmpcppDirectory:   ptr("~/.ncmpcpp/"),
		LyricsDirectory:    ptr("~/.lyrics/"),
		StartupScreen:      ptr("playlist"),
		StartupSlaveScreen: ptr(""),
	}
}

func ptr[T any](v T) *T { return &v }
