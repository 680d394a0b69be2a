package terminal

import "testing"

// Each scenario below starts with a fresh 5x10 screen and default attributes.

func TestScenario_PlainTextWrite(t *testing.T) {
	p, s := newParser(5, 10)
	p.Feed([]byte("Hi"))
	row, col := s.Cursor()
	if row != 0 || col != 2 {
		t.Fatalf("cursor = (%d,%d), want (0,2)", row, col)
	}
	if s.CellAt(0, 0).Char != 'H' || s.CellAt(0, 1).Char != 'i' {
		t.Fatalf("cells = %q,%q, want H,i", s.CellAt(0, 0).Char, s.CellAt(0, 1).Char)
	}
}

func TestScenario_SGRColorThenReset(t *testing.T) {
	p, s := newParser(5, 10)
	p.Feed([]byte("\x1b[31mR\x1b[0mG"))
	c0 := s.CellAt(0, 0)
	if c0.Char != 'R' || c0.Attrs.FG.Kind != ColorAnsi || c0.Attrs.FG.Index != 1 {
		t.Fatalf("cell0 = %+v, want 'R' fg=Ansi(1)", c0)
	}
	c1 := s.CellAt(0, 1)
	if c1.Char != 'G' || c1.Attrs.FG.Kind != ColorDefault {
		t.Fatalf("cell1 = %+v, want 'G' fg=Default", c1)
	}
}

func TestScenario_CursorPositionThenWrite(t *testing.T) {
	p, s := newParser(5, 10)
	p.Feed([]byte("\x1b[2;3HX"))
	if s.CellAt(1, 2).Char != 'X' {
		t.Fatalf("cell(1,2) = %q, want 'X'", s.CellAt(1, 2).Char)
	}
	row, col := s.Cursor()
	if row != 1 || col != 3 {
		t.Fatalf("cursor = (%d,%d), want (1,3)", row, col)
	}
}

func TestScenario_DeferredWrapThenWrapOnNextPrintable(t *testing.T) {
	p, s := newParser(5, 10)
	p.Feed([]byte("0123456789A"))
	for c := 0; c < 10; c++ {
		want := rune('0' + c)
		if got := s.CellAt(0, c).Char; got != want {
			t.Fatalf("cell(0,%d) = %q, want %q", c, got, want)
		}
	}
	if s.CellAt(1, 0).Char != 'A' {
		t.Fatalf("cell(1,0) = %q, want 'A' (wrapped)", s.CellAt(1, 0).Char)
	}
	row, col := s.Cursor()
	if row != 1 || col != 1 {
		t.Fatalf("cursor = (%d,%d), want (1,1)", row, col)
	}
}

func TestScenario_ExtendedRGBForeground(t *testing.T) {
	p, s := newParser(5, 10)
	p.Feed([]byte("\x1b[38;2;255;128;0mZ"))
	c := s.CellAt(0, 0)
	if c.Char != 'Z' || c.Attrs.FG.Kind != ColorRGB || c.Attrs.FG.R != 255 || c.Attrs.FG.G != 128 || c.Attrs.FG.B != 0 {
		t.Fatalf("cell = %+v, want 'Z' fg=RGB(255,128,0)", c)
	}
}

func TestScenario_OSCTitleLeavesGridUnchanged(t *testing.T) {
	p, s := newParser(5, 10)
	cap := &captureTitle{}
	p.Title = cap
	p.Feed([]byte("\x1b]0;hello\x07"))
	if len(cap.got) != 1 || cap.got[0] != "hello" {
		t.Fatalf("TitleChanged calls = %v, want ['hello']", cap.got)
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 10; c++ {
			if got := s.CellAt(r, c); got != defaultCell {
				t.Fatalf("cell(%d,%d) = %+v, want untouched defaultCell", r, c, got)
			}
		}
	}
}

// Invariant and idempotence properties from the testable-properties list.

func TestInvariant_GridDimensionsMatchLastResize(t *testing.T) {
	s := NewScreen(5, 10, 10)
	s.Resize(8, 15)
	rows, cols := s.Size()
	if rows != 8 || cols != 15 {
		t.Fatalf("Size() = (%d,%d), want (8,15)", rows, cols)
	}
}

func TestInvariant_CursorAlwaysInBounds(t *testing.T) {
	s := NewScreen(5, 10, 10)
	ops := []func(){
		func() { s.MoveCursorAbsolute(1000, 1000) },
		func() { s.MoveCursorAbsolute(-100, -100) },
		func() { s.MoveCursorRelative(1000, 1000) },
		func() { s.ColumnAbsolute(-5) },
		func() { s.RowAbsolute(999) },
	}
	for _, op := range ops {
		op()
		row, col := s.Cursor()
		if row < 0 || row >= 5 || col < 0 || col >= 10 {
			t.Fatalf("cursor out of bounds: (%d,%d)", row, col)
		}
	}
}

func TestInvariant_ScrollbackNeverExceedsMax(t *testing.T) {
	s := NewScreen(2, 5, 3)
	for i := 0; i < 50; i++ {
		s.LineFeed()
	}
	if s.ScrollbackLen() > 3 {
		t.Fatalf("ScrollbackLen = %d, want <= 3", s.ScrollbackLen())
	}
}

func TestInvariant_WideCellAlwaysHasContinuationPartner(t *testing.T) {
	s := NewScreen(3, 10, 10)
	s.WriteGlyph(0x4E2D)
	if s.CellAt(0, 0).Width != WidthWide {
		t.Fatal("expected a wide cell at (0,0)")
	}
	if !s.CellAt(0, 1).Continuation {
		t.Fatal("(0,1) should be the continuation partner")
	}
}

func TestInvariant_DrainDirtyTwiceIsEmptySecondTime(t *testing.T) {
	s := NewScreen(5, 10, 10)
	s.WriteGlyph('x')
	first := s.DrainDirty()
	if len(first) == 0 {
		t.Fatal("expected dirty rows after a write")
	}
	second := s.DrainDirty()
	if len(second) != 0 {
		t.Fatalf("second DrainDirty = %v, want empty", second)
	}
}

func TestIdempotence_SaveRestoreCursorRoundTrip(t *testing.T) {
	s := NewScreen(5, 10, 10)
	s.MoveCursorAbsolute(2, 3)
	s.SetAttribute(AttrItalic)
	s.SaveCursor()

	wantRow, wantCol := s.Cursor()
	wantAttrs := s.CurrentAttributes()

	s.MoveCursorAbsolute(0, 0)
	s.ResetAttributes()
	s.MoveCursorRelative(4, 4)
	s.RestoreCursor()

	row, col := s.Cursor()
	if row != wantRow || col != wantCol {
		t.Fatalf("cursor after restore = (%d,%d), want (%d,%d)", row, col, wantRow, wantCol)
	}
	if s.CurrentAttributes() != wantAttrs {
		t.Fatalf("attrs after restore = %+v, want %+v", s.CurrentAttributes(), wantAttrs)
	}
}

func TestIdempotence_TwoSGRResetsEquivOneReset(t *testing.T) {
	once, sOnce := newParser(5, 10)
	once.Feed([]byte("\x1b[1m\x1b[0m"))

	twice, sTwice := newParser(5, 10)
	twice.Feed([]byte("\x1b[1m\x1b[0m\x1b[0m"))

	if sOnce.CurrentAttributes() != sTwice.CurrentAttributes() {
		t.Fatalf("attrs differ: once=%+v twice=%+v", sOnce.CurrentAttributes(), sTwice.CurrentAttributes())
	}
}

func TestBoundary_ResizeToOneByOneAccepted(t *testing.T) {
	s := NewScreen(5, 10, 10)
	s.Resize(1, 1)
	rows, cols := s.Size()
	if rows != 1 || cols != 1 {
		t.Fatalf("Size() = (%d,%d), want (1,1)", rows, cols)
	}
}

func TestBoundary_ResizeZeroRowsClampsToOne(t *testing.T) {
	s := NewScreen(5, 10, 10)
	s.Resize(0, 0)
	rows, cols := s.Size()
	if rows != 1 || cols != 1 {
		t.Fatalf("Size() after resize(0,0) = (%d,%d), want (1,1)", rows, cols)
	}
}
