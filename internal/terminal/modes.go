package terminal

// Modes holds the boolean terminal-mode flags. Most are toggled by CSI
// h/l (DECSET/DECRST when private-marker prefixed).
type Modes struct {
	AutoWrap              bool // DECAWM, private mode 7; default true
	OriginMode            bool // DECOM
	InsertMode            bool // IRM, mode 4
	ApplicationCursorKeys bool // DECCKM
	ApplicationKeypad     bool // DECKPAM/DECKPNM
	BracketedPaste        bool // mode 2004
	ShowCursor            bool // DECTCEM, mode 25
	AlternateScreen       bool // mode 1049 — reserved, tracked but inert
	LineFeedNewline       bool // LNM, mode 20 — accounting only, no behavior
}

func defaultModes() Modes {
	return Modes{
		AutoWrap:   true,
		ShowCursor: true,
	}
}

// Mode codes accepted by CSI h/l. Private (DEC) codes are prefixed with
// '?' in the wire syntax; the parser strips the marker and passes the bare
// numeric code plus a privateFlag here.
const (
	modeIRM            = 4
	modeLineFeedNewline = 20
	modeDECOM          = 6
	modeDECAWM         = 7
	modeDECTCEM        = 25
	modeDECCKM         = 1
	modeDECKPAM        = 66
	modeAltScreen      = 1049
	modeBracketedPaste = 2004
)

// SetMode enables the given mode code. private indicates the code arrived
// with a DEC private-mode prefix ('?').
func (s *Screen) SetMode(code int, private bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyMode(code, private, true)
}

// ResetMode disables the given mode code.
func (s *Screen) ResetMode(code int, private bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyMode(code, private, false)
}

func (s *Screen) applyMode(code int, private bool, enable bool) {
	if !private {
		switch code {
		case modeIRM:
			s.modes.InsertMode = enable
		case modeLineFeedNewline:
			s.modes.LineFeedNewline = enable
		}
		return
	}
	switch code {
	case modeDECOM:
		s.modes.OriginMode = enable
	case modeDECAWM:
		s.modes.AutoWrap = enable
	case modeDECTCEM:
		s.modes.ShowCursor = enable
		s.cursor.Visible = enable
	case modeDECCKM:
		s.modes.ApplicationCursorKeys = enable
	case modeDECKPAM:
		s.modes.ApplicationKeypad = enable
	case modeAltScreen:
		s.modes.AlternateScreen = enable
	case modeBracketedPaste:
		s.modes.BracketedPaste = enable
	}
}

// HasMode reports a mode's current value for hosts that want to query
// without reaching into Screen internals (e.g. to decide whether to send
// bracketed-paste markers around pasted text).
func (s *Screen) HasMode(get func(Modes) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return get(s.modes)
}
