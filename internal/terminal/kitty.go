package terminal

// EnableKittyKeyboard sends the kitty keyboard protocol's enable sequence
// (CSI > 1 u) to the child, so applications that understand it report
// Shift+Enter and other modified keys as distinct CSI u sequences instead
// of folding them into plain Enter.
func (s *Session) EnableKittyKeyboard() error {
	return s.WriteInput([]byte("\x1b[>1u"))
}

// DisableKittyKeyboard pops the kitty keyboard protocol flags pushed by
// EnableKittyKeyboard (CSI < 1 u).
func (s *Session) DisableKittyKeyboard() error {
	return s.WriteInput([]byte("\x1b[<1u"))
}
