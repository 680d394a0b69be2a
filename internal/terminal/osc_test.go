package terminal

import (
	"encoding/base64"
	"testing"
)

type captureTitle struct{ got []string }

func (c *captureTitle) TitleChanged(title string) { c.got = append(c.got, title) }

type captureClipboard struct {
	sets []string
	data [][]byte
}

func (c *captureClipboard) SetClipboard(selection string, data []byte) {
	c.sets = append(c.sets, selection)
	c.data = append(c.data, data)
}
func (c *captureClipboard) GetClipboard(string) []byte { return nil }

func TestOSC_TitleViaBEL(t *testing.T) {
	p, s := newParser(5, 5)
	cap := &captureTitle{}
	p.Title = cap
	p.Feed([]byte("\x1b]0;my title\x07"))
	if s.Title != "my title" {
		t.Fatalf("Screen.Title = %q, want 'my title'", s.Title)
	}
	if len(cap.got) != 1 || cap.got[0] != "my title" {
		t.Fatalf("TitleProvider got %v", cap.got)
	}
}

func TestOSC_TitleViaST(t *testing.T) {
	p, s := newParser(5, 5)
	p.Feed([]byte("\x1b]2;other title\x1b\\"))
	if s.Title != "other title" {
		t.Fatalf("Screen.Title = %q, want 'other title'", s.Title)
	}
}

func TestOSC_EscNotFollowedByBackslashDiscardsSequence(t *testing.T) {
	p, s := newParser(5, 5)
	// An ESC inside the OSC body that isn't followed by '\' is not a valid
	// ST: the malformed sequence is abandoned and the following byte is
	// reprocessed fresh in Ground, so the trailing BEL here is a plain bell
	// rather than a terminator for the original OSC.
	p.Feed([]byte("\x1b]0;ti\x1bXtle\x07"))
	if s.Title != "" {
		t.Fatalf("title should not have been set from an abandoned OSC, got %q", s.Title)
	}
}

func TestOSC_ClipboardWriteDecodesBase64(t *testing.T) {
	p, _ := newParser(5, 5)
	cb := &captureClipboard{}
	p.Clipboard = cb
	payload := base64.StdEncoding.EncodeToString([]byte("hello"))
	p.Feed([]byte("\x1b]52;c;" + payload + "\x07"))
	if len(cb.sets) != 1 || cb.sets[0] != "c" {
		t.Fatalf("sets = %v, want ['c']", cb.sets)
	}
	if string(cb.data[0]) != "hello" {
		t.Fatalf("data = %q, want 'hello'", cb.data[0])
	}
}

func TestOSC_ClipboardReadRequestDoesNotSet(t *testing.T) {
	p, _ := newParser(5, 5)
	cb := &captureClipboard{}
	p.Clipboard = cb
	p.Feed([]byte("\x1b]52;c;?\x07"))
	if len(cb.sets) != 0 {
		t.Fatal("a read request ('?') must not call SetClipboard")
	}
}

func TestOSC_ClipboardDefaultSelectionIsC(t *testing.T) {
	p, _ := newParser(5, 5)
	cb := &captureClipboard{}
	p.Clipboard = cb
	payload := base64.StdEncoding.EncodeToString([]byte("x"))
	p.Feed([]byte("\x1b]52;;" + payload + "\x07"))
	if len(cb.sets) != 1 || cb.sets[0] != "c" {
		t.Fatalf("sets = %v, want ['c'] (default selection)", cb.sets)
	}
}

func TestOSC_MalformedBase64Ignored(t *testing.T) {
	p, _ := newParser(5, 5)
	cb := &captureClipboard{}
	p.Clipboard = cb
	p.Feed([]byte("\x1b]52;c;not-valid-base64!!!\x07"))
	if len(cb.sets) != 0 {
		t.Fatal("malformed base64 must not call SetClipboard")
	}
}

func TestOSC_UnrecognizedCodeIsIgnoredAndParserReturnsToGround(t *testing.T) {
	p, _ := newParser(5, 5)
	p.Feed([]byte("\x1b]999;whatever\x07"))
	if p.State() != "Ground" {
		t.Fatalf("state = %s, want Ground", p.State())
	}
}

func TestOSC_NonNumericPrefixIsDropped(t *testing.T) {
	p, s := newParser(5, 5)
	p.Feed([]byte("\x1b]notanumber;x\x07"))
	if s.Title != "" {
		t.Fatal("malformed OSC prefix should not set the title")
	}
}
