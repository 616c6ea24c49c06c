// SPDX-License-Identifier: Apache-2.0

// Package bindings loads the key-bindings file and maintains the active
// binding set. Only the file syntax is handled here; dispatching bound
// actions is the job of the screens consuming the set.
//
// The file format mirrors the native client:
//
//	def_key "j"
//	  scroll_down
//	def_key "k"
//	  scroll_up
//
// A def_key line names a key; the indented lines below it are the actions
// bound to that key, in order.
package bindings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Registry holds the active key bindings. Load fills it from a file and
// generateDefaults guarantees a usable set even when loading fails, so a
// missing or broken bindings file never blocks startup.
type Registry struct {
	byKey map[string][]string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byKey: make(map[string][]string)}
}

// Load reads the bindings file at path. A missing file is not an error; the
// registry then contains only the generated defaults. A syntactically
// invalid file is reported to the caller, but the registry is still left
// with the defaults plus whatever parsed cleanly, so the caller can degrade
// gracefully instead of aborting.
func (r *Registry) Load(path string) error {
	defer r.generateDefaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading bindings file: %w", err)
	}

	return r.parse(path, string(data))
}

func (r *Registry) parse(path, content string) error {
	current := ""
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indented := line[0] == ' ' || line[0] == '\t'

		switch {
		case indented:
			if current == "" {
				return fmt.Errorf("%s:%d: action outside of def_key block: %q", path, i+1, trimmed)
			}
			r.byKey[current] = append(r.byKey[current], trimmed)
		case strings.HasPrefix(trimmed, "def_key"):
			key, ok := parseDefKey(trimmed)
			if !ok {
				return fmt.Errorf("%s:%d: malformed def_key: %q", path, i+1, trimmed)
			}
			current = key
			r.byKey[current] = nil
		default:
			return fmt.Errorf("%s:%d: unexpected line: %q", path, i+1, trimmed)
		}
	}

	return nil
}

// parseDefKey extracts the quoted key name from a `def_key "x"` line.
func parseDefKey(line string) (string, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "def_key"))
	if len(rest) < 2 || !strings.HasPrefix(rest, `"`) || !strings.HasSuffix(rest, `"`) {
		return "", false
	}
	key := rest[1 : len(rest)-1]
	return key, key != ""
}

// Lookup returns the actions bound to key, in binding order.
func (r *Registry) Lookup(key string) []string {
	return r.byKey[key]
}

// generateDefaults binds the compiled-in default action for every key that
// the loaded file left unbound. Keys the user did bind are not touched.
func (r *Registry) generateDefaults() {
	for key, action := range defaultBindings {
		if _, bound := r.byKey[key]; !bound {
			r.byKey[key] = []string{action}
		}
	}
}

// defaultBindings is the compiled-in binding set, one default action per
// key, matching the native client's basics.
var defaultBindings = map[string]string{
	"up":        "scroll_up",
	"down":      "scroll_down",
	"page_up":   "page_up",
	"page_down": "page_down",
	"home":      "move_home",
	"end":       "move_end",
	"enter":     "press_enter",
	"space":     "press_space",
	"left":      "previous_column",
	"right":     "next_column",
	"tab":       "next_screen",
	"q":         "quit",
	"s":         "stop",
	"P":         "toggle_pause",
	">":         "next",
	"<":         "previous",
	"1":         "show_help",
	"2":         "show_playlist",
	"3":         "show_browser",
	"4":         "show_search_engine",
	"5":         "show_media_library",
	"6":         "show_playlist_editor",
	"7":         "show_tag_editor",
	"8":         "show_outputs",
	"9":         "show_visualizer",
	"0":         "show_clock",
}
