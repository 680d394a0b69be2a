package terminal

// feedDcsHeader collects the parameter/intermediate bytes of a DCS
// introducer (ESC P ... before the passthrough data) until a final byte
// hands off to DcsPassthrough, mirroring CSI's own header handling. DCS
// payloads are never interpreted by this terminal, only absorbed, so the
// final byte's identity does not matter beyond the state transition.
func (p *Parser) feedDcsHeader(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.accumulateDigit(b)
		p.state = stateDcsParam
	case b == ';':
		p.params = append(p.params, 0)
		p.paramStarted = false
		p.state = stateDcsParam
	case b >= 0x3C && b <= 0x3F:
		if p.private == 0 {
			p.private = b
		}
		p.state = stateDcsParam
	case b >= 0x20 && b <= 0x2F:
		p.intermediates = append(p.intermediates, b)
		p.state = stateDcsIntermediate
	case b >= 0x40 && b <= 0x7E:
		p.state = stateDcsPassthrough
	case b == 0x1b || b == 0x18 || b == 0x1a:
		p.state = stateGround
	default:
		p.state = stateDcsIgnore
	}
}

// feedDcsPassthrough absorbs the DCS data string until ST (ESC \) or a
// cancel byte.
func (p *Parser) feedDcsPassthrough(b byte) {
	if p.oscAfterEsc {
		p.oscAfterEsc = false
		if b == '\\' {
			p.state = stateGround
			return
		}
		// Not a valid ST: the sequence is malformed, discard it and
		// reprocess b fresh in Ground.
		p.state = stateGround
		p.feedGround(b)
		return
	}
	switch b {
	case 0x1b:
		p.oscAfterEsc = true
	case 0x18, 0x1a:
		p.state = stateGround
	default:
		p.dcsBuf = append(p.dcsBuf, b)
	}
}

// feedDcsIgnore discards a malformed DCS sequence until its terminator.
func (p *Parser) feedDcsIgnore(b byte) {
	switch b {
	case 0x1b:
		// ESC of the ST: Escape state consumes the following '\'.
		p.state = stateEscape
	case 0x18, 0x1a:
		p.state = stateGround
	}
}
