package terminal

// CellWidth classifies how many screen columns a cell's glyph occupies.
type CellWidth uint8

const (
	// WidthSingle occupies one column.
	WidthSingle CellWidth = iota
	// WidthWide occupies two columns; the right-hand column holds a
	// continuation cell owned by the wide cell.
	WidthWide
)

// wideRanges are the Unicode scalar ranges classified Wide. Everything
// outside them, including combining marks and zero-width joiners, is
// Single; grapheme clustering beyond this table is out of scope.
var wideRanges = [][2]rune{
	{0x1100, 0x115F},
	{0x2E80, 0x9FFF},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAFF},
	{0xFF00, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
}

// charWidth returns WidthWide if r falls in one of wideRanges, else
// WidthSingle.
func charWidth(r rune) CellWidth {
	for _, rg := range wideRanges {
		if r >= rg[0] && r <= rg[1] {
			return WidthWide
		}
	}
	return WidthSingle
}

// columns returns the number of screen columns a CellWidth occupies: 1 for
// WidthSingle, 2 for WidthWide.
func (w CellWidth) columns() int {
	if w == WidthWide {
		return 2
	}
	return 1
}
