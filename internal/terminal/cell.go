package terminal

// Attributes holds the live SGR state: colors plus the boolean style
// flags. A fresh Attributes value (the zero value) is "default on
// default, no flags," which is also what SGR 0 and a full reset produce.
type Attributes struct {
	FG, BG                               Color
	Bold, Dim, Italic, Underline         bool
	Blink, Reverse, Hidden, Strikethrough bool
}

// Cell represents one screen position: a glyph, its rendition, and its
// column width. A wide cell's partner continuation cell at column+1
// carries the same Bg and an empty Char; erasing either erases both (see
// Screen.fillRow).
type Cell struct {
	Char  rune
	Attrs Attributes
	Width CellWidth
	// Continuation marks a cell as the right-hand half of a wide glyph
	// immediately to its left. A continuation cell never carries its own
	// Char.
	Continuation bool
}

// blankCell returns a space cell whose only attribute is the background
// color bg (so erase operations that "erase to background" can pass the
// live register's background through), with default foreground and no
// style flags.
func blankCell(bg Color) Cell {
	return Cell{Char: ' ', Attrs: Attributes{BG: bg}, Width: WidthSingle}
}

// defaultCell is a fully blank cell with default colors, used for new,
// scrolled-in, inserted and deleted-line rows, resize padding, and
// out-of-bounds CellAt results.
var defaultCell = Cell{Char: ' ', Width: WidthSingle}
