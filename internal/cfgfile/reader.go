// SPDX-License-Identifier: Apache-2.0

// Package cfgfile reads the client's line-oriented configuration files.
//
// The format is one "key = value" directive per line; values may be quoted.
// Blank lines and lines starting with "#" are ignored. The package only
// recognizes the startup-relevant keys; everything else is an error, or a
// warning when the tolerance flag is set.
package cfgfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/himanshuxd/ncmpcpp/internal/config"
	"github.com/himanshuxd/ncmpcpp/internal/logger"
)

// ParseError describes a single invalid directive, with line context.
type ParseError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}

// Reader implements the config.FileReader collaborator for the native
// configuration-file syntax.
type Reader struct {
	log *logger.Logger
}

// New returns a Reader that reports tolerated parse problems to log.
func New(log *logger.Logger) *Reader {
	return &Reader{log: log}
}

// ReadFile parses the configuration file at path into a config.Settings
// value containing exactly the keys the file defines. A missing file is
// reported with an error wrapping fs.ErrNotExist; the resolver skips those
// silently. When tolerant is true, invalid lines are skipped with a warning
// instead of failing the whole file.
func (r *Reader) ReadFile(path string, tolerant bool) (*config.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file: %w", err)
	}

	return r.parse(path, string(data), tolerant)
}

func (r *Reader) parse(path, content string, tolerant bool) (*config.Settings, error) {
	settings := &config.Settings{}

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if err := r.applyDirective(settings, path, i+1, trimmed); err != nil {
			if !tolerant {
				return nil, err
			}
			r.log.Warn().Err(err).Msg("skipping invalid configuration line")
		}
	}

	return settings, nil
}

// applyDirective parses a single "key = value" directive into settings.
func (r *Reader) applyDirective(settings *config.Settings, path string, line int, text string) error {
	key, value, found := strings.Cut(text, "=")
	if !found {
		return &ParseError{Path: path, Line: line, Text: text, Reason: "malformed directive"}
	}

	key = strings.TrimSpace(key)
	value = unquote(strings.TrimSpace(value))

	switch key {
	case "mpd_host":
		settings.Host = &value
	case "mpd_port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return &ParseError{Path: path, Line: line, Text: text, Reason: "invalid port"}
		}
		settings.Port = &port
	case "mpd_connection_timeout":
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return &ParseError{Path: path, Line: line, Text: text, Reason: "invalid timeout"}
		}
		timeout := time.Duration(seconds) * time.Second
		settings.ConnectionTimeout = &timeout
	case "ncmpcpp_directory":
		settings.NcmpcppDirectory = &value
	case "lyrics_directory":
		settings.LyricsDirectory = &value
	case "startup_screen":
		settings.StartupScreen = &value
	case "startup_slave_screen":
		settings.StartupSlaveScreen = &value
	default:
		return &ParseError{Path: path, Line: line, Text: text, Reason: "unknown option"}
	}

	return nil
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
