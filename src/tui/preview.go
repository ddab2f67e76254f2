package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PreviewLines is the number of lines shown in a file preview.
const PreviewLines = 10

// DisplaySafe prepares raw file content for rendering inside the TUI.
// All terminal escape sequences are stripped (not just CSI, anything the
// terminal would interpret) and remaining control characters are replaced
// with their Unicode Control Picture representations so they render
// visibly instead of corrupting the display.
func DisplaySafe(content string) string {
	content = ansi.Strip(content)
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		switch {
		case r == '\t':
			sb.WriteString("    ")
		case r >= 0 && r <= 0x1f:
			sb.WriteRune('␀' + r)
		case r == ansi.DEL:
			sb.WriteRune('␡')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// RenderPreview renders up to PreviewLines of a file as a fixed-width block.
// Lines are made display-safe and truncated to the given width.
func RenderPreview(lines []string, width int) string {
	if width <= 0 {
		width = 80
	}
	n := len(lines)
	if n > PreviewLines {
		n = PreviewLines
	}
	rows := make([]string, 0, n+1)
	for _, line := range lines[:n] {
		rows = append(rows, TruncateAndPad(DisplaySafe(line), width, true))
	}
	if len(lines) > PreviewLines {
		rows = append(rows, TruncateAndPad("...", width, false))
	}
	return strings.Join(rows, "\n")
}
