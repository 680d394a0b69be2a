package terminal

// Reset performs a full terminal reset (RIS / ESC c): attributes clear,
// cursor returns to (0,0), the grid is fully erased, the scroll region
// resets to the whole grid, and modes return to their defaults. It does
// not touch scrollback — RIS on real terminals leaves history alone.
func (s *Screen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attrs = Attributes{}
	s.cursor = Cursor{Visible: true}
	s.saved = savedCursor{}
	s.modes = defaultModes()
	s.scrollTop = 0
	s.scrollBottom = s.rows - 1
	s.Title = ""

	blank := blankCell(DefaultColor())
	for r := 0; r < s.rows; r++ {
		s.fillRow(r, 0, s.cols, blank)
	}
}
