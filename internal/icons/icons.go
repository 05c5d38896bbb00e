// Package icons maps window classes to Nerd Font glyphs for picker labels.
package icons

import "strings"

// table is ordered: the first fragment contained in the window class wins, so
// more specific names must come before generic ones. The final "default" entry
// is the fallback for unknown applications.
var table = []struct {
	fragment string
	glyph    string
}{
	{"firefox", ""},
	{"alacritty", ""},
	{"discord", "\U000f0667"},
	{"steam", ""},
	{"chromium", ""},
	{"code", "\U000f0a1e"},
	{"spotify", ""},
	{"ghostty", ""},
	{"kitty", ""},
	{"default", "\U000f05b2"},
}

// Default is the glyph used when no table entry matches a class.
var Default = table[len(table)-1].glyph

// For returns the glyph for a window class. The match is a case-insensitive
// substring check against each table entry in order.
func For(class string) string {
	lower := strings.ToLower(class)
	for _, e := range table {
		if strings.Contains(lower, e.fragment) {
			return e.glyph
		}
	}
	return Default
}
