// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"time"

	"github.com/himanshuxd/ncmpcpp/internal/logger"
	"github.com/himanshuxd/ncmpcpp/internal/screens"
)

// EffectiveConfig is the final resolved startup configuration consumed by
// the rest of the application. Every field is populated once resolution
// completes; the value is created once and never mutated afterwards.
type EffectiveConfig struct {
	// Host and Port identify the media-server daemon to connect to.
	Host string
	Port int

	// ConnectionTimeout bounds the upcoming connection attempt. This layer
	// only produces the value; it never observes it.
	ConnectionTimeout time.Duration

	// NcmpcppDirectory is the main application directory, with a trailing
	// separator. Created during bootstrap if absent.
	NcmpcppDirectory string

	// LyricsDirectory stores fetched lyrics. Created during bootstrap if
	// absent.
	LyricsDirectory string

	// BindingsPath is the resolved key-bindings file location.
	BindingsPath string

	// StartupScreen is the screen shown first. StartupSlaveScreen is
	// screens.None when no slave screen was requested.
	StartupScreen      screens.Type
	StartupSlaveScreen screens.Type

	// IgnoreConfigErrors records whether invalid configuration-file content
	// was tolerated during resolution.
	IgnoreConfigErrors bool

	// ConfigPaths lists the candidate configuration files that were
	// consulted, home-expanded, lowest to highest priority.
	ConfigPaths []string
}

// Loader resolves and bootstraps the startup configuration. The collaborator
// interfaces keep file parsing, bindings loading, and directory creation
// outside the resolution logic so each stage stays testable in isolation.
type Loader struct {
	Files    FileReader
	Bindings BindingsLoader
	Dirs     DirCreator
	Log      *logger.Logger
}

// NewLoader returns a Loader wired with the production directory creator.
func NewLoader(files FileReader, bindings BindingsLoader, log *logger.Logger) *Loader {
	return &Loader{
		Files:    files,
		Bindings: bindings,
		Dirs:     osDirCreator{},
		Log:      log,
	}
}

// Resolve computes the effective configuration from the argument vector and
// the current environment.
//
// Stages, in order: syntax-only command-line parsing, environment snapshot
// (HOME is required and checked before any file is read), per-setting merge
// of command line > environment > configuration files > defaults, path
// expansion, and screen-name validation. On --help or --version the
// matching sentinel is returned and no later stage runs.
//
// No partial EffectiveConfig is ever returned: any failure yields nil.
func (l *Loader) Resolve(args []string) (*EffectiveConfig, error) {
	raw, err := parseOptions(args)
	if err != nil {
		return nil, err
	}

	environment, err := CaptureEnvironment()
	if err != nil {
		return nil, err
	}
	if environment.Home == "" {
		return nil, &EnvironmentError{Variable: "HOME"}
	}

	paths := raw.ConfigPaths
	if paths == nil {
		paths = defaultConfigPaths(environment)
	}
	expanded := make([]string, len(paths))
	for i, path := range paths {
		expanded[i] = ExpandHome(environment.Home, path)
	}

	merged, err := newResolver(l.Log).
		withFlags(raw).
		withEnv(environment).
		withFiles(l.Files, expanded, raw.IgnoreConfigErrors).
		withDefaults().
		merge()
	if err != nil {
		return nil, err
	}

	primary, slave, err := validateScreens(merged)
	if err != nil {
		return nil, err
	}

	ncmpcppDir := ensureTrailingSlash(ExpandHome(environment.Home, *merged.NcmpcppDirectory))
	lyricsDir := ensureTrailingSlash(ExpandHome(environment.Home, *merged.LyricsDirectory))

	// When --bindings was not passed, the bindings file lives in the main
	// application directory rather than at a fixed literal path.
	bindingsPath := ncmpcppDir + "bindings"
	if raw.BindingsPathSet {
		bindingsPath = ExpandHome(environment.Home, raw.BindingsPath)
	}

	return &EffectiveConfig{
		Host:               *merged.Host,
		Port:               *merged.Port,
		ConnectionTimeout:  *merged.ConnectionTimeout,
		NcmpcppDirectory:   ncmpcppDir,
		LyricsDirectory:    lyricsDir,
		BindingsPath:       bindingsPath,
		StartupScreen:      primary,
		StartupSlaveScreen: slave,
		IgnoreConfigErrors: raw.IgnoreConfigErrors,
		ConfigPaths:        expanded,
	}, nil
}

// Bootstrap creates the required on-disk directories and loads the key
// bindings. Directory creation failure is fatal-reportable; a bindings file
// that is missing or unreadable degrades gracefully to the generated
// defaults with a warning.
func (l *Loader) Bootstrap(cfg *EffectiveConfig) error {
	for _, dir := range []string{cfg.NcmpcppDirectory, cfg.LyricsDirectory} {
		if err := l.Dirs.CreateDir(dir); err != nil {
			return &ResourceError{Op: "create directory", Path: dir, Err: err}
		}
	}

	if err := l.Bindings.Load(cfg.BindingsPath); err != nil {
		resErr := &ResourceError{Op: "load bindings", Path: cfg.BindingsPath, Err: err}
		l.Log.Warn().Err(resErr).Msg("using default key bindings")
	}

	return nil
}

func ensureTrailingSlash(path string) string {
	if !strings.HasSuffix(path, "/") {
		return path + "/"
	}
	return path
}
