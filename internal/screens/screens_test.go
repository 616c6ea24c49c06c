package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromName_Known verifies the fixed name table.
func TestFromName_Known(t *testing.T) {
	tests := []struct {
		name     string
		expected Type
	}{
		{name: "playlist", expected: Playlist},
		{name: "browser", expected: Browser},
		{name: "media_library", expected: MediaLibrary},
		{name: "search_engine", expected: SearchEngine},
		{name: "last_fm", expected: LastFM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, ok := FromName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.expected, typ)
		})
	}
}

// TestFromName_Unknown verifies that unrecognized names are rejected.
func TestFromName_Unknown(t *testing.T) {
	for _, name := range []string{"bogus", "", "Playlist", "play list"} {
		_, ok := FromName(name)
		assert.False(t, ok, "name %q must be unknown", name)
	}
}

// TestString_RoundTrip verifies that every table entry stringifies back to
// its canonical name.
func TestString_RoundTrip(t *testing.T) {
	for name, typ := range names {
		assert.Equal(t, name, typ.String())
	}
}

// TestString_None verifies the zero value.
func TestString_None(t *testing.T) {
	assert.Equal(t, "none", None.String())
}
