package terminal

// feedCsi handles the CsiEntry/CsiParam states: digits accumulate into the
// current parameter, ';' starts a new one, 0x3C-0x3F are private markers,
// 0x20-0x2F enter CsiIntermediate, and 0x40-0x7E finals dispatch.
func (p *Parser) feedCsi(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.accumulateDigit(b)
		p.state = stateCsiParam
	case b == ';':
		p.params = append(p.params, 0)
		p.paramStarted = false
		p.state = stateCsiParam
	case b >= 0x3C && b <= 0x3F:
		if p.private == 0 {
			p.private = b
		}
		p.state = stateCsiParam
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
		p.state = stateCsiIntermediate
	case b >= 0x40 && b <= 0x7E:
		p.dispatchCSI(b)
		p.state = stateGround
	default:
		p.state = stateCsiIgnore
	}
}

func (p *Parser) feedCsiIntermediate(b byte) {
	switch {
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
	case b >= 0x40 && b <= 0x7E:
		p.dispatchCSI(b)
		p.state = stateGround
	default:
		p.state = stateCsiIgnore
	}
}

// feedCsiIgnore discards bytes of a malformed CSI sequence until its
// final byte, then returns to Ground without dispatching.
func (p *Parser) feedCsiIgnore(b byte) {
	if b >= 0x40 && b <= 0x7E {
		p.state = stateGround
	}
}

func (p *Parser) accumulateDigit(b byte) {
	if len(p.params) == 0 {
		p.params = append(p.params, 0)
	}
	if !p.paramStarted {
		p.params[len(p.params)-1] = 0
		p.paramStarted = true
	}
	i := len(p.params) - 1
	v := p.params[i]*10 + int(b-'0')
	if v > maxParamValue {
		v = maxParamValue
	}
	p.params[i] = v
}

// param returns the idx'th parameter, or def if absent or zero (CSI
// parameters conventionally treat 0 and "absent" the same for counts).
func (p *Parser) param(idx, def int) int {
	if idx < len(p.params) && p.params[idx] > 0 {
		return p.params[idx]
	}
	return def
}

// paramRaw returns the idx'th parameter as given, including an explicit 0,
// or def when the parameter is absent. Callers such as CSI r apply their
// own handling to an explicit 0.
func (p *Parser) paramRaw(idx, def int) int {
	if idx < len(p.params) {
		return p.params[idx]
	}
	return def
}

func (p *Parser) isPrivate() bool { return p.private == '?' }

// dispatchCSI executes a complete CSI sequence given its final byte.
func (p *Parser) dispatchCSI(final byte) {
	s := p.screen
	switch final {
	case 'A':
		s.MoveCursorRelative(-p.param(0, 1), 0)
	case 'B':
		s.MoveCursorRelative(p.param(0, 1), 0)
	case 'C':
		s.MoveCursorRelative(0, p.param(0, 1))
	case 'D':
		s.MoveCursorRelative(0, -p.param(0, 1))
	case 'E':
		s.MoveCursorRelative(p.param(0, 1), 0)
		s.CarriageReturn()
	case 'F':
		s.MoveCursorRelative(-p.param(0, 1), 0)
		s.CarriageReturn()
	case 'G', '`':
		s.ColumnAbsolute(p.param(0, 1) - 1)
	case 'd':
		s.RowAbsolute(p.param(0, 1) - 1)
	case 'H', 'f':
		s.MoveCursorAbsolute(p.param(0, 1)-1, p.param(1, 1)-1)
	case 'J':
		s.EraseDisplay(p.param(0, 0))
	case 'K':
		s.EraseLine(p.param(0, 0))
	case 'L':
		s.InsertLines(p.param(0, 1))
	case 'M':
		s.DeleteLines(p.param(0, 1))
	case 'P':
		s.DeleteChars(p.param(0, 1))
	case '@':
		s.InsertChars(p.param(0, 1))
	case 'S':
		s.ScrollUp(p.param(0, 1))
	case 'T':
		s.ScrollDown(p.param(0, 1))
	case 'X':
		s.EraseChars(p.param(0, 1))
	case 'r':
		top := p.param(0, 1)
		bottom := p.paramRaw(1, s.Rows())
		if bottom <= 0 {
			bottom = s.Rows()
		}
		s.SetScrollRegion(top-1, bottom-1)
	case 'm':
		p.dispatchSGR()
	case 'h':
		p.dispatchModeChange(true)
	case 'l':
		p.dispatchModeChange(false)
	case 's':
		s.SaveCursor()
	case 'u':
		s.RestoreCursor()
	default:
		// Unrecognized finals are dropped silently.
	}
}

func (p *Parser) dispatchModeChange(enable bool) {
	private := p.isPrivate()
	for i := 0; i < len(p.params) || i == 0; i++ {
		code := p.paramRaw(i, 0)
		if i >= len(p.params) && i > 0 {
			break
		}
		if enable {
			p.screen.SetMode(code, private)
		} else {
			p.screen.ResetMode(code, private)
		}
		if len(p.params) == 0 {
			break
		}
	}
}
