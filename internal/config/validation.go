// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/himanshuxd/ncmpcpp/internal/screens"

// validateScreens maps the resolved startup screen names through the fixed
// screen table. An unrecognized name is a ValidationError naming the
// offending string and whether it was the primary or the slave screen.
// An empty slave screen name means no slave screen.
func validateScreens(merged *Settings) (primary, slave screens.Type, err error) {
	primary, ok := screens.FromName(*merged.StartupScreen)
	if !ok {
		return 0, 0, &ValidationError{Field: "screen", Value: *merged.StartupScreen}
	}

	if name := *merged.StartupSlaveScreen; name != "" {
		slave, ok = screens.FromName(name)
		if !ok {
			return 0, 0, &ValidationError{Field: "slave screen", Value: name}
		}
	}

	return primary, slave, nil
}
