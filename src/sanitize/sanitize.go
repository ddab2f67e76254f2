// Package sanitize is the core line cleaner for unterm. It removes ANSI/VT
// escape sequences and remaps Unicode box-drawing glyphs to ASCII so that
// terminal captures become plain, grep-able text.
//
// Every function here is a pure, total transformation of a single line.
// TUI rendering has its own ANSI handling via charmbracelet/x/ansi; this
// package owns the exact cleaning contract instead.
package sanitize

import (
	"regexp"
	"strings"
)

// escapePattern matches CSI-style escape sequences: ESC '[' followed by a
// greedy run of digits and semicolons, terminated by a single letter.
// A sequence that reaches end of line without its terminating letter is not
// a match and passes through untouched.
var escapePattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// Stats describes what one cleaning pass removed or rewrote.
type Stats struct {
	// EscapesStripped counts whole escape sequences deleted from the line.
	EscapesStripped int
	// GlyphsReplaced counts replacements per source glyph.
	GlyphsReplaced map[rune]int
}

// Total returns the number of glyph replacements across all source runes.
func (s Stats) Total() int {
	n := 0
	for _, c := range s.GlyphsReplaced {
		n += c
	}
	return n
}

// Merge adds another pass's counts into this one.
func (s *Stats) Merge(other Stats) {
	s.EscapesStripped += other.EscapesStripped
	if len(other.GlyphsReplaced) == 0 {
		return
	}
	if s.GlyphsReplaced == nil {
		s.GlyphsReplaced = make(map[rune]int, len(other.GlyphsReplaced))
	}
	for r, c := range other.GlyphsReplaced {
		s.GlyphsReplaced[r] += c
	}
}

// StripEscapes deletes every escape sequence from the line. Matches are
// leftmost and non-overlapping; surrounding text is untouched.
func StripEscapes(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return escapePattern.ReplaceAllString(s, "")
}

// ReplaceGlyphs substitutes every box-drawing rune in the line with its
// ASCII equivalent. Runes outside the glyph table pass through unchanged.
func ReplaceGlyphs(s string) string {
	return strings.Map(func(r rune) rune {
		if ascii, ok := glyphTable[r]; ok {
			return ascii
		}
		return r
	}, s)
}

// Clean runs the full cleaning pass on one line: escape stripping first,
// then glyph remapping. Applying Clean to its own output returns it
// unchanged.
func Clean(s string) string {
	return ReplaceGlyphs(StripEscapes(s))
}

// CleanWithStats is Clean plus a tally of what was removed. The returned
// line is identical to Clean(s).
func CleanWithStats(s string) (string, Stats) {
	stats := Stats{GlyphsReplaced: make(map[rune]int)}

	stripped := s
	if strings.ContainsRune(s, 0x1b) {
		stripped = escapePattern.ReplaceAllStringFunc(s, func(string) string {
			stats.EscapesStripped++
			return ""
		})
	}

	cleaned := strings.Map(func(r rune) rune {
		if ascii, ok := glyphTable[r]; ok {
			stats.GlyphsReplaced[r]++
			return ascii
		}
		return r
	}, stripped)

	return cleaned, stats
}
