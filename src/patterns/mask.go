// Package patterns provides optional masking of volatile log artifacts
// (timestamps, UUIDs, hex addresses, long hashes) in cleaned output.
//
// Masking is opt-in: the default cleaning path never rewrites anything
// beyond escape sequences and box-drawing glyphs.
package patterns

import "regexp"

// Compiled once at package init.
var (
	// timestampPattern matches ISO8601 and common log timestamps.
	// Matches: 2024-05-21T10:00:05.123Z, 2024-05-21 10:00:05,123, etc.
	timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}([.,]\d+)?(Z|[+-]\d{2}:?\d{2})?`)

	// uuidPattern matches standard UUIDs.
	uuidPattern = regexp.MustCompile(`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`)

	// hexAddressPattern matches 0x-prefixed hex addresses.
	hexAddressPattern = regexp.MustCompile(`\b0x[0-9a-fA-F]+\b`)

	// longHashPattern matches long bare hex strings (container IDs, git SHAs).
	longHashPattern = regexp.MustCompile(`\b[a-f0-9]{12,}\b`)
)

// Mask replaces volatile artifacts in one line with stable placeholders.
// Order matters: UUIDs and addresses are masked before bare hashes so the
// more specific patterns win.
func Mask(line string) string {
	line = timestampPattern.ReplaceAllString(line, "<TIMESTAMP>")
	line = uuidPattern.ReplaceAllString(line, "<UUID>")
	line = hexAddressPattern.ReplaceAllString(line, "<HEX>")
	line = longHashPattern.ReplaceAllString(line, "<HASH>")
	return line
}
