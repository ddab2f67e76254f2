// Package report summarizes what a cleaning run removed. Both the CLI and
// the MCP server consume this package so run summaries stay consistent.
package report

import (
	"fmt"
	"sort"
	"strings"

	"unterm-agent/src/sanitize"
)

// GlyphCount is one row of a replacement tally.
type GlyphCount struct {
	Glyph string `json:"glyph"`
	Count int    `json:"count"`
}

// Run is the summary of one cleaning run.
type Run struct {
	InputPath       string       `json:"input_path"`
	OutputPath      string       `json:"output_path"`
	Lines           int          `json:"lines"`
	EscapesStripped int          `json:"escapes_stripped"`
	GlyphsReplaced  int          `json:"glyphs_replaced"`
	TopGlyphs       []GlyphCount `json:"top_glyphs,omitempty"`
}

// New builds a run summary from accumulated cleaning stats.
func New(inputPath, outputPath string, lines int, stats sanitize.Stats) Run {
	return Run{
		InputPath:       inputPath,
		OutputPath:      outputPath,
		Lines:           lines,
		EscapesStripped: stats.EscapesStripped,
		GlyphsReplaced:  stats.Total(),
		TopGlyphs:       TallyGlyphs(stats),
	}
}

// TallyGlyphs returns per-glyph replacement counts sorted by count
// (descending), then by glyph for a stable order.
func TallyGlyphs(stats sanitize.Stats) []GlyphCount {
	if len(stats.GlyphsReplaced) == 0 {
		return nil
	}

	tally := make([]GlyphCount, 0, len(stats.GlyphsReplaced))
	for r, c := range stats.GlyphsReplaced {
		tally = append(tally, GlyphCount{Glyph: string(r), Count: c})
	}
	sort.Slice(tally, func(i, j int) bool {
		if tally[i].Count != tally[j].Count {
			return tally[i].Count > tally[j].Count
		}
		return tally[i].Glyph < tally[j].Glyph
	})
	return tally
}

// Format renders a run summary as plain text for the console.
func Format(r Run) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cleaned %s\n", r.InputPath)
	fmt.Fprintf(&b, "Output written to %s\n", r.OutputPath)
	fmt.Fprintf(&b, "Lines: %d  Escapes stripped: %d  Glyphs replaced: %d\n",
		r.Lines, r.EscapesStripped, r.GlyphsReplaced)

	if len(r.TopGlyphs) > 0 {
		b.WriteString("Replacements:\n")
		for _, g := range r.TopGlyphs {
			fmt.Fprintf(&b, "  %s  %d\n", g.Glyph, g.Count)
		}
	}
	return b.String()
}
