package sanitize

// glyphTable maps Unicode box/line-drawing code points to single ASCII
// replacements. Every source rune maps to exactly one ASCII rune, so
// replacement preserves per-character count and no entry can produce
// another entry's source.
var glyphTable = map[rune]rune{
	// Light lines and tees
	'├': '+',
	'┤': '+',
	'─': '-',
	'│': '|',

	// Corners and junctions, light and rounded
	'└': '+', '┌': '+', '┐': '+', '┘': '+',
	'┬': '+', '┴': '+', '┼': '+',
	'╭': '+', '╮': '+', '╯': '+', '╰': '+',

	// Double and mixed-weight corners and junctions
	'╒': '+', '╓': '+', '╔': '+', '╕': '+', '╖': '+', '╗': '+',
	'╘': '+', '╙': '+', '╚': '+', '╛': '+', '╜': '+', '╝': '+',
	'╞': '+', '╟': '+', '╠': '+', '╡': '+', '╢': '+', '╣': '+',
	'╤': '+', '╥': '+', '╦': '+', '╧': '+', '╨': '+', '╩': '+',
	'╪': '+', '╫': '+', '╬': '+',

	// Diagonals
	'╱': '/', '╲': '\\', '╳': 'X',

	// Half-lines and mixed-weight horizontals
	'╴': '-', '╶': '-', '╸': '-', '╺': '-', '╼': '-', '╾': '-',

	// Half-lines and mixed-weight verticals
	'╵': '|', '╷': '|', '╹': '|', '╻': '|', '╽': '|', '╿': '|',

	// Double horizontals and verticals
	'═': '=', '║': '|',
}
