package terminal

// feedEscape handles the byte immediately after ESC.
func (p *Parser) feedEscape(b byte) {
	switch b {
	case '[':
		p.state = stateCsiEntry
		p.resetCsiAccumulators()
	case ']':
		p.state = stateOscString
		p.oscBuf = p.oscBuf[:0]
		p.oscAfterEsc = false
	case 'P':
		p.state = stateDcsEntry
		p.resetCsiAccumulators()
		p.dcsBuf = p.dcsBuf[:0]
	case '7':
		p.screen.SaveCursor()
		p.state = stateGround
	case '8':
		p.screen.RestoreCursor()
		p.state = stateGround
	case 'M':
		p.screen.ReverseLineFeed()
		p.state = stateGround
	case 'E':
		p.screen.NextLine()
		p.state = stateGround
	case 'D':
		p.screen.LineFeed()
		p.state = stateGround
	case 'c':
		p.screen.Reset()
		p.state = stateGround
	case 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2A,
		0x2B, 0x2C, 0x2D, 0x2E, 0x2F:
		p.intermediates = append(p.intermediates, b)
		p.state = stateEscapeIntermediate
	default:
		p.state = stateGround
	}
}

// feedEscapeIntermediate accumulates intermediate bytes after ESC until a
// final byte returns the machine to Ground. None of the two-character ESC
// intermediate sequences are given any behavior here, so the final byte is
// simply consumed.
func (p *Parser) feedEscapeIntermediate(b byte) {
	if b >= 0x20 && b <= 0x2F {
		p.intermediates = append(p.intermediates, b)
		return
	}
	p.state = stateGround
}

func (p *Parser) resetCsiAccumulators() {
	p.params = p.params[:0]
	p.paramStarted = false
	p.private = 0
	p.intermediates = p.intermediates[:0]
}
