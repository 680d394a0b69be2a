package terminal

import (
	"encoding/base64"
	"strconv"
)

// feedOsc accumulates an OSC payload until it is terminated by BEL (0x07)
// or ST (ESC \), then dispatches on its leading numeric code.
func (p *Parser) feedOsc(b byte) {
	if p.oscAfterEsc {
		p.oscAfterEsc = false
		if b == '\\' {
			p.dispatchOSC()
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
	case 0x07:
		p.dispatchOSC()
		p.state = stateGround
	case 0x1b:
		p.oscAfterEsc = true
	default:
		p.oscBuf = append(p.oscBuf, b)
	}
}

// dispatchOSC interprets the collected OSC payload "Ps;Pt".
func (p *Parser) dispatchOSC() {
	payload := string(p.oscBuf)
	code, rest, ok := splitOSC(payload)
	if !ok {
		return
	}
	switch code {
	case 0, 1, 2:
		p.screen.Title = rest
		p.Title.TitleChanged(rest)
	case 4:
		// Palette redefinition: accepted, not interpreted.
	case 52:
		p.dispatchClipboardOSC(rest)
	default:
		// Unrecognized OSC codes are ignored.
	}
}

// splitOSC splits "Ps;Pt" into its numeric code and remainder.
func splitOSC(payload string) (code int, rest string, ok bool) {
	for i := 0; i < len(payload); i++ {
		if payload[i] == ';' {
			n, err := strconv.Atoi(payload[:i])
			if err != nil {
				return 0, "", false
			}
			return n, payload[i+1:], true
		}
	}
	n, err := strconv.Atoi(payload)
	if err != nil {
		return 0, "", false
	}
	return n, "", true
}

// dispatchClipboardOSC handles OSC 52's "Pc;Pd" body: Pc selects the
// selection buffer, Pd is either "?" (read request) or base64 data (write).
func (p *Parser) dispatchClipboardOSC(rest string) {
	var selection, data string
	if i := indexByte(rest, ';'); i >= 0 {
		selection, data = rest[:i], rest[i+1:]
	} else {
		data = rest
	}
	if selection == "" {
		selection = "c"
	}
	if data == "?" {
		_ = p.Clipboard.GetClipboard(selection)
		return
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		p.Clipboard.SetClipboard(selection, decoded)
	}
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
