package terminal

// dispatchSGR interprets a complete CSI ... m sequence as a run of SGR
// parameters, including the 38/48 extended-color sub-grammar.
func (p *Parser) dispatchSGR() {
	if len(p.params) == 0 {
		p.screen.ResetAttributes()
		return
	}

	for i := 0; i < len(p.params); i++ {
		code := p.params[i]
		switch {
		case code == 0:
			p.screen.ResetAttributes()
		case code == 1:
			p.screen.SetAttribute(AttrBold)
		case code == 2:
			p.screen.SetAttribute(AttrDim)
		case code == 3:
			p.screen.SetAttribute(AttrItalic)
		case code == 4:
			p.screen.SetAttribute(AttrUnderline)
		case code == 5 || code == 6:
			p.screen.SetAttribute(AttrBlink)
		case code == 7:
			p.screen.SetAttribute(AttrReverse)
		case code == 8:
			p.screen.SetAttribute(AttrHidden)
		case code == 9:
			p.screen.SetAttribute(AttrStrikethrough)
		case code == 22:
			p.screen.ResetStyle(AttrBold)
			p.screen.ResetStyle(AttrDim)
		case code == 23:
			p.screen.ResetStyle(AttrItalic)
		case code == 24:
			p.screen.ResetStyle(AttrUnderline)
		case code == 25:
			p.screen.ResetStyle(AttrBlink)
		case code == 27:
			p.screen.ResetStyle(AttrReverse)
		case code == 28:
			p.screen.ResetStyle(AttrHidden)
		case code == 29:
			p.screen.ResetStyle(AttrStrikethrough)
		case code >= 30 && code <= 37:
			p.screen.SetForeground(AnsiColor(uint8(code - 30)))
		case code == 38:
			c, consumed := p.parseExtendedColor(i + 1)
			if consumed > 0 {
				p.screen.SetForeground(c)
				i += consumed
			}
		case code == 39:
			p.screen.SetForeground(DefaultColor())
		case code >= 40 && code <= 47:
			p.screen.SetBackground(AnsiColor(uint8(code - 40)))
		case code == 48:
			c, consumed := p.parseExtendedColor(i + 1)
			if consumed > 0 {
				p.screen.SetBackground(c)
				i += consumed
			}
		case code == 49:
			p.screen.SetBackground(DefaultColor())
		case code >= 90 && code <= 97:
			p.screen.SetForeground(AnsiColor(uint8(code - 90 + 8)))
		case code >= 100 && code <= 107:
			p.screen.SetBackground(AnsiColor(uint8(code - 100 + 8)))
		default:
			// Unrecognized SGR codes are ignored.
		}
	}
}

// parseExtendedColor reads the "5;n" (256-color) or "2;r;g;b" (RGB)
// sub-grammar starting at params[start]. Returns the decoded color and how
// many extra params it consumed (0 if malformed, meaning nothing to skip).
func (p *Parser) parseExtendedColor(start int) (Color, int) {
	if start >= len(p.params) {
		return Color{}, 0
	}
	switch p.params[start] {
	case 5:
		if start+1 >= len(p.params) {
			return Color{}, 0
		}
		return Palette256Color(clampColorComponent(p.params[start+1])), 2
	case 2:
		if start+3 >= len(p.params) {
			return Color{}, 0
		}
		r := clampColorComponent(p.params[start+1])
		g := clampColorComponent(p.params[start+2])
		b := clampColorComponent(p.params[start+3])
		return RGBColor(r, g, b), 4
	default:
		return Color{}, 0
	}
}

// clampColorComponent folds a CSI parameter into the 0..255 range a color
// component occupies, so out-of-range input (e.g. "38;2;300;0;0") saturates
// instead of wrapping when narrowed to uint8.
func clampColorComponent(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
