// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// ExpandHome replaces a leading "~" in path with the resolved home
// directory. Paths that do not start with "~" are returned unchanged, so the
// function is idempotent on already-expanded paths.
//
// The home directory is always threaded in by the caller; the resolver
// captures it from the environment snapshot before any expansion happens.
func ExpandHome(home, path string) string {
	if strings.HasPrefix(path, "~") {
		return home + path[1:]
	}
	return path
}

// configBaseDir returns the base directory for user configuration files:
// XDG_CONFIG_HOME when set, otherwise "~/.config/". The result always ends
// with a path separator.
func configBaseDir(environment Environment) string {
	dir := environment.XDGConfigHome
	if dir == "" {
		return "~/.config/"
	}
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return dir
}

// defaultConfigPaths computes the candidate configuration files consulted
// when --config is not passed, lowest to highest priority.
func defaultConfigPaths(environment Environment) []string {
	return []string{
		"~/.ncmpcpp/config",
		configBaseDir(environment) + "ncmpcpp/config",
	}
}
