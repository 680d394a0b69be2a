package main

import tea "github.com/charmbracelet/bubbletea"

// controlKeyBytes maps the named control-key messages Bubbletea emits to
// the single control byte a shell expects on its stdin.
var controlKeyBytes = map[tea.KeyType]byte{
	tea.KeyCtrlA: 0x01,
	tea.KeyCtrlB: 0x02,
	tea.KeyCtrlC: 0x03,
	tea.KeyCtrlD: 0x04,
	tea.KeyCtrlE: 0x05,
	tea.KeyCtrlF: 0x06,
	tea.KeyCtrlG: 0x07,
	tea.KeyCtrlH: 0x08,
	tea.KeyCtrlJ: 0x0a,
	tea.KeyCtrlK: 0x0b,
	tea.KeyCtrlL: 0x0c,
	tea.KeyCtrlN: 0x0e,
	tea.KeyCtrlO: 0x0f,
	tea.KeyCtrlP: 0x10,
	tea.KeyCtrlQ: 0x11,
	tea.KeyCtrlR: 0x12,
	tea.KeyCtrlS: 0x13,
	tea.KeyCtrlT: 0x14,
	tea.KeyCtrlU: 0x15,
	tea.KeyCtrlV: 0x16,
	tea.KeyCtrlW: 0x17,
	tea.KeyCtrlX: 0x18,
	tea.KeyCtrlY: 0x19,
	tea.KeyCtrlZ: 0x1a,
}

// cursorKeySequences maps the arrow/navigation keys to the CSI escape
// sequence a VT100-compatible application expects for them. These are
// always sent in the ANSI cursor-key form (not application mode); vtdemo
// doesn't track DECCKM for its own keyboard input.
var cursorKeySequences = map[tea.KeyType]string{
	tea.KeyUp:     "\x1b[A",
	tea.KeyDown:   "\x1b[B",
	tea.KeyRight:  "\x1b[C",
	tea.KeyLeft:   "\x1b[D",
	tea.KeyHome:   "\x1b[H",
	tea.KeyEnd:    "\x1b[F",
	tea.KeyDelete: "\x1b[3~",
	tea.KeyPgUp:   "\x1b[5~",
	tea.KeyPgDown: "\x1b[6~",
}

// keyToBytes converts a Bubbletea key message to the raw bytes the child
// shell expects to see on its stdin.
func keyToBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyEsc:
		return []byte{0x1b}
	}
	if b, ok := controlKeyBytes[msg.Type]; ok {
		return []byte{b}
	}
	if seq, ok := cursorKeySequences[msg.Type]; ok {
		return []byte(seq)
	}
	return nil
}
