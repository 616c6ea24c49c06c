// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"dario.cat/mergo"

	"github.com/himanshuxd/ncmpcpp/internal/logger"
)

// resolver accumulates per-source Settings layers, highest priority first,
// and merges them field by field. A layer contributes a setting only when
// the source actually provided it, so precedence is resolved per setting and
// never as an all-or-nothing source choice.
type resolver struct {
	layers []*Settings
	log    *logger.Logger
	err    error
}

func newResolver(log *logger.Logger) *resolver {
	return &resolver{
		layers: make([]*Settings, 0, 4),
		log:    log,
	}
}

// withFlags adds the command-line layer. Only flags the user explicitly set
// participate; a flag left at its compiled-in default must not shadow the
// environment or configuration files.
func (r *resolver) withFlags(raw *RawOptions) *resolver {
	if r.err != nil {
		return r
	}

	layer := &Settings{}
	if raw.HostSet {
		layer.Host = ptr(raw.Host)
	}
	if raw.PortSet {
		layer.Port = ptr(raw.Port)
	}
	if raw.ScreenSet {
		layer.StartupScreen = ptr(raw.Screen)
	}
	if raw.SlaveScreenSet {
		layer.StartupSlaveScreen = ptr(raw.SlaveScreen)
	}

	r.layers = append(r.layers, layer)
	return r
}

// withEnv adds the environment overlay: MPD_HOST and MPD_PORT override the
// connection details found in configuration files.
func (r *resolver) withEnv(environment Environment) *resolver {
	if r.err != nil {
		return r
	}

	layer := &Settings{}
	if environment.MPDHost != "" {
		layer.Host = ptr(environment.MPDHost)
	}
	if environment.MPDPort != "" {
		port, err := strconv.Atoi(environment.MPDPort)
		if err != nil {
			r.err = &EnvironmentError{Variable: "MPD_PORT", Err: err}
			return r
		}
		layer.Port = ptr(port)
	}

	r.layers = append(r.layers, layer)
	return r
}

// withFiles adds one layer per readable configuration file. paths are listed
// lowest to highest priority, so they are appended in reverse: a setting in
// a later file overrides the same setting in an earlier one. A missing file
// is skipped silently; an invalid one aborts unless tolerant is set, in
// which case the reader skips the offending lines with a warning.
func (r *resolver) withFiles(reader FileReader, paths []string, tolerant bool) *resolver {
	if r.err != nil {
		return r
	}

	for i := len(paths) - 1; i >= 0; i-- {
		settings, err := reader.ReadFile(paths[i], tolerant)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			r.err = &ConfigFileError{Path: paths[i], Err: err}
			return r
		}

		r.log.Debug().Str("path", paths[i]).Msg("loaded configuration file")
		r.layers = append(r.layers, settings)
	}

	return r
}

// withDefaults adds the compiled-in defaults as the lowest-priority layer.
func (r *resolver) withDefaults() *resolver {
	if r.err != nil {
		return r
	}

	r.layers = append(r.layers, defaultSettings())
	return r
}

// merge folds all layers into a single fully-populated Settings value.
// Because layers are ordered highest priority first and mergo only fills
// fields that are still nil, the first source to provide a setting wins.
func (r *resolver) merge() (*Settings, error) {
	if r.err != nil {
		return nil, r.err
	}

	merged := &Settings{}
	for _, layer := range r.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configuration sources: %w", err)
		}
	}

	return merged, nil
}
