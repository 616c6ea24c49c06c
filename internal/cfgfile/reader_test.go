package cfgfile

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himanshuxd/ncmpcpp/internal/logger"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── happy path ────────────────────────────────────────────────────────────────

// TestReadFile_AllKeys verifies that every recognized directive is parsed,
// with quoted and bare values both accepted.
func TestReadFile_AllKeys(t *testing.T) {
	path := writeTempConfig(t, `
# connection
mpd_host = "music.local"
mpd_port = 6601
mpd_connection_timeout = 10

ncmpcpp_directory = "~/.ncmpcpp/"
lyrics_directory = ~/.lyrics/

startup_screen = "media_library"
startup_slave_screen = lyrics
`)

	settings, err := New(logger.Nop()).ReadFile(path, false)
	require.NoError(t, err)

	assert.Equal(t, "music.local", *settings.Host)
	assert.Equal(t, 6601, *settings.Port)
	assert.Equal(t, 10*time.Second, *settings.ConnectionTimeout)
	assert.Equal(t, "~/.ncmpcpp/", *settings.NcmpcppDirectory)
	assert.Equal(t, "~/.lyrics/", *settings.LyricsDirectory)
	assert.Equal(t, "media_library", *settings.StartupScreen)
	assert.Equal(t, "lyrics", *settings.StartupSlaveScreen)
}

// TestReadFile_OnlyPresentKeysSet verifies that directives the file does not
// contain stay nil, so merging remains per setting.
func TestReadFile_OnlyPresentKeysSet(t *testing.T) {
	path := writeTempConfig(t, `mpd_port = 6601`)

	settings, err := New(logger.Nop()).ReadFile(path, false)
	require.NoError(t, err)

	assert.Equal(t, 6601, *settings.Port)
	assert.Nil(t, settings.Host)
	assert.Nil(t, settings.ConnectionTimeout)
	assert.Nil(t, settings.NcmpcppDirectory)
	assert.Nil(t, settings.StartupScreen)
}

// TestReadFile_CommentsAndBlanksIgnored verifies that comments and empty
// lines do not produce errors.
func TestReadFile_CommentsAndBlanksIgnored(t *testing.T) {
	path := writeTempConfig(t, "\n# a comment\n\nmpd_host = x\n\n")

	settings, err := New(logger.Nop()).ReadFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, "x", *settings.Host)
}

// ── failure modes ─────────────────────────────────────────────────────────────

// TestReadFile_Missing verifies that a missing file is reported with an
// error wrapping fs.ErrNotExist, which the resolver skips silently.
func TestReadFile_Missing(t *testing.T) {
	settings, err := New(logger.Nop()).ReadFile(filepath.Join(t.TempDir(), "absent"), false)

	assert.Nil(t, settings)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestReadFile_UnknownOption verifies that an unrecognized directive is a
// ParseError carrying the path, line number, and offending text.
func TestReadFile_UnknownOption(t *testing.T) {
	path := writeTempConfig(t, "mpd_host = x\nno_such_option = 1\n")

	settings, err := New(logger.Nop()).ReadFile(path, false)
	assert.Nil(t, settings)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, "unknown option", parseErr.Reason)
}

// TestReadFile_IgnoreConfigErrorsNotAFileKey verifies that error tolerance
// cannot be set from a config file. It has to be known before any file is
// read, so the only spelling is the command-line flag.
func TestReadFile_IgnoreConfigErrorsNotAFileKey(t *testing.T) {
	path := writeTempConfig(t, "ignore_config_errors = \"yes\"\n")

	settings, err := New(logger.Nop()).ReadFile(path, false)
	assert.Nil(t, settings)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "unknown option", parseErr.Reason)
}

// TestReadFile_MalformedDirective verifies that a line without "=" fails.
func TestReadFile_MalformedDirective(t *testing.T) {
	path := writeTempConfig(t, "not a directive\n")

	_, err := New(logger.Nop()).ReadFile(path, false)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "malformed directive", parseErr.Reason)
}

// TestReadFile_InvalidValues verifies value-level validation of the numeric
// directives.
func TestReadFile_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{name: "bad port", line: "mpd_port = sixsixzero", reason: "invalid port"},
		{name: "bad timeout", line: "mpd_connection_timeout = forever", reason: "invalid timeout"},
		{name: "zero timeout", line: "mpd_connection_timeout = 0", reason: "invalid timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.line)

			_, err := New(logger.Nop()).ReadFile(path, false)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.reason, parseErr.Reason)
		})
	}
}

// ── tolerant mode ─────────────────────────────────────────────────────────────

// TestReadFile_TolerantSkipsInvalidLines verifies that with the tolerance
// flag set, invalid lines are skipped and the valid remainder is returned.
func TestReadFile_TolerantSkipsInvalidLines(t *testing.T) {
	path := writeTempConfig(t, "no_such_option = 1\nmpd_port = 6601\nbroken line\n")

	settings, err := New(logger.Nop()).ReadFile(path, true)
	require.NoError(t, err)

	assert.Equal(t, 6601, *settings.Port)
	assert.Nil(t, settings.Host)
}
