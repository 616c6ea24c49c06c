// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

// Sentinel results of command-line parsing. Neither is a failure: the caller
// prints the corresponding text to stdout and exits with status 0.
var (
	// ErrHelpRequested is returned when --help / -? was passed.
	ErrHelpRequested = errors.New("help requested")
	// ErrVersionRequested is returned when --version / -v was passed.
	ErrVersionRequested = errors.New("version requested")
)

// CommandLineError reports an unknown flag or a malformed flag value.
type CommandLineError struct {
	Token string
	Err   error
}

func (e *CommandLineError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("invalid command line: %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid command line: %v", e.Err)
}

func (e *CommandLineError) Unwrap() error { return e.Err }

// EnvironmentError reports a required or malformed environment variable.
type EnvironmentError struct {
	Variable string
	Err      error
}

func (e *EnvironmentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("environment variable %s is not defined", e.Variable)
	}
	return fmt.Sprintf("environment variable %s: %v", e.Variable, e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// ConfigFileError reports a configuration file that exists but could not be
// parsed, with the tolerance flag off.
type ConfigFileError struct {
	Path string
	Err  error
}

func (e *ConfigFileError) Error() string {
	return fmt.Sprintf("configuration file %s: %v", e.Path, e.Err)
}

func (e *ConfigFileError) Unwrap() error { return e.Err }

// ValidationError reports a resolved value that fails a domain constraint,
// e.g. an unknown startup screen name.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Field, e.Value)
}

// ResourceError reports a failed filesystem or resource operation during
// bootstrap, such as directory creation or loading the bindings file.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
