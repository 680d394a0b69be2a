package terminal

// AttrStyle names a boolean style flag toggled by SGR, independent of
// color.
type AttrStyle int

const (
	AttrBold AttrStyle = iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// SetAttribute turns on a single boolean style in the live attribute
// register. SGR 22 clearing both bold and dim is handled by the parser
// calling ResetStyle for both, not by a combined code here.
func (s *Screen) SetAttribute(style AttrStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStyleLocked(style, true)
}

// ResetStyle turns off a single boolean style.
func (s *Screen) ResetStyle(style AttrStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStyleLocked(style, false)
}

func (s *Screen) setStyleLocked(style AttrStyle, on bool) {
	switch style {
	case AttrBold:
		s.attrs.Bold = on
	case AttrDim:
		s.attrs.Dim = on
	case AttrItalic:
		s.attrs.Italic = on
	case AttrUnderline:
		s.attrs.Underline = on
	case AttrBlink:
		s.attrs.Blink = on
	case AttrReverse:
		s.attrs.Reverse = on
	case AttrHidden:
		s.attrs.Hidden = on
	case AttrStrikethrough:
		s.attrs.Strikethrough = on
	}
}

// SetForeground sets the live attribute register's foreground color.
func (s *Screen) SetForeground(c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs.FG = c
}

// SetBackground sets the live attribute register's background color.
func (s *Screen) SetBackground(c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs.BG = c
}

// ResetAttributes clears the live attribute register to default colors,
// no flags (SGR 0).
func (s *Screen) ResetAttributes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = Attributes{}
}
