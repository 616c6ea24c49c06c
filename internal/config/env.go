// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment is a read-only snapshot of the environment variables the
// resolver consults. It is captured once at startup and never re-read.
//
// MPDPort is kept as a string so that a malformed value can be reported with
// the variable name once the overlay actually applies it.
type Environment struct {
	// Home is the user's home directory. Required: path expansion and the
	// default configuration locations depend on it.
	Home string `env:"HOME"`

	// XDGConfigHome is the base directory for user configuration files.
	// Optional; falls back to ~/.config/.
	XDGConfigHome string `env:"XDG_CONFIG_HOME"`

	// MPDHost overrides the media-server host from configuration files.
	MPDHost string `env:"MPD_HOST"`

	// MPDPort overrides the media-server port from configuration files.
	MPDPort string `env:"MPD_PORT"`
}

// CaptureEnvironment reads the process environment into an Environment
// snapshot using the caarlos0/env tags declared on the struct.
func CaptureEnvironment() (Environment, error) {
	var snapshot Environment
	if err := env.Parse(&snapshot); err != nil {
		return Environment{}, fmt.Errorf("error capturing environment: %w", err)
	}

	return snapshot, nil
}
