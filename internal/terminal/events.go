package terminal

// BellProvider handles BEL (0x07) events. Ring is advisory — hosts may
// ignore it entirely.
type BellProvider interface {
	Ring()
}

// NoopBell discards bell events.
type NoopBell struct{}

// Ring implements BellProvider.
func (NoopBell) Ring() {}

// TitleProvider handles OSC 0/1/2 window-title changes.
type TitleProvider interface {
	TitleChanged(title string)
}

// NoopTitle discards title-change events.
type NoopTitle struct{}

// TitleChanged implements TitleProvider.
func (NoopTitle) TitleChanged(string) {}

// ClipboardProvider handles OSC 52 clipboard read/write requests. Both
// methods are accepted but inert unless a host supplies a real
// implementation.
type ClipboardProvider interface {
	// SetClipboard is called with the decoded payload of an OSC 52 write.
	SetClipboard(selection string, data []byte)
	// GetClipboard is called for an OSC 52 read request ("?" payload). The
	// Parser discards the returned bytes; no reply is sent to the child.
	GetClipboard(selection string) []byte
}

// NoopClipboard discards writes and has nothing to return for reads.
type NoopClipboard struct{}

// SetClipboard implements ClipboardProvider.
func (NoopClipboard) SetClipboard(string, []byte) {}

// GetClipboard implements ClipboardProvider.
func (NoopClipboard) GetClipboard(string) []byte { return nil }

var (
	_ BellProvider      = NoopBell{}
	_ TitleProvider     = NoopTitle{}
	_ ClipboardProvider = NoopClipboard{}
)
