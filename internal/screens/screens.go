// SPDX-License-Identifier: Apache-2.0

// Package screens defines the identifiers of the UI screens the client can
// open at startup. The actual screen implementations live elsewhere; this
// package only provides the fixed name table used when validating the
// startup_screen and startup_slave_screen settings.
package screens

// Type identifies a single UI screen.
type Type int

const (
	// None means no screen was requested. It is the zero value and is only
	// valid for the slave screen slot.
	None Type = iota
	Help
	Playlist
	Browser
	SearchEngine
	MediaLibrary
	PlaylistEditor
	TagEditor
	Outputs
	Visualizer
	Clock
	Lyrics
	LastFM
)

// names is the fixed name table. Keys are the strings accepted in
// configuration files and on the command line.
var names = map[string]Type{
	"help":            Help,
	"playlist":        Playlist,
	"browser":         Browser,
	"search_engine":   SearchEngine,
	"media_library":   MediaLibrary,
	"playlist_editor": PlaylistEditor,
	"tag_editor":      TagEditor,
	"outputs":         Outputs,
	"visualizer":      Visualizer,
	"clock":           Clock,
	"lyrics":          Lyrics,
	"last_fm":         LastFM,
}

// FromName maps a screen name to its Type. The second return value reports
// whether the name is known.
func FromName(name string) (Type, bool) {
	t, ok := names[name]
	return t, ok
}

// String returns the canonical name of the screen, or "none" for None.
func (t Type) String() string {
	for name, typ := range names {
		if typ == t {
			return name
		}
	}
	return "none"
}
