package terminal

import (
	"log"
	"os"
	"os/exec"
	"sync"
)

// Config holds the settings used to start a Session. Zero values pick
// sensible defaults: ShellPath falls back to SHELL then /bin/zsh, Rows/Cols
// default to 24/80, and MaxScrollback defaults to 10000.
type Config struct {
	ShellPath     string
	ShellArgs     []string
	Env           map[string]string
	WorkingDir    string
	Rows          int
	Cols          int
	MaxScrollback int

	// Logger receives a handful of lifecycle lines (spawn, exit, forced
	// kill). Defaults to log.Default() when nil.
	Logger *log.Logger

	// OnTitleChanged, OnBell, and OnSessionExited are advisory event
	// callbacks. OnTitleChanged and OnBell run on the reader goroutine
	// (see readLoop); OnSessionExited runs on the goroutine that reaps the
	// child (see waitLoop). Hosts may leave any of them nil.
	OnTitleChanged  func(title string)
	OnBell          func()
	OnSessionExited func(code int)

	// OnOutput fires once after every chunk the reader hands to the
	// Parser (the implicit BytesParsed event of §6). It runs on the
	// reader goroutine, so implementations that want to wake a separate
	// render loop should do a non-blocking send to a buffered channel,
	// the way a host typically signals "redraw available" without
	// backing up the reader.
	OnOutput func()
}

func (c Config) rows() int {
	if c.Rows > 0 {
		return c.Rows
	}
	return 24
}

func (c Config) cols() int {
	if c.Cols > 0 {
		return c.Cols
	}
	return 80
}

func (c Config) maxScrollback() int {
	if c.MaxScrollback > 0 {
		return c.MaxScrollback
	}
	return 10000
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// Session owns a PTY pair, the child shell process spawned on it, and the
// Screen+Parser pair that turns the child's output into grid state. It
// pumps bytes from the PTY master into the Parser on a reader goroutine
// (the "reader context" of the concurrency model) while Screen/Parser
// mutation happens synchronously within that same goroutine's calls — the
// host context and the reader context are the same goroutine here, which
// satisfies the ordering contract trivially. See doc.go for the full
// concurrency writeup.
type Session struct {
	mu sync.Mutex

	cfg    Config
	Screen *Screen
	parser *Parser

	master  *os.File
	cmd     *exec.Cmd
	running bool
	exited  chan struct{}

	exitCode int
	log      *log.Logger
}

// NewSession constructs a Session with the given configuration. The
// Screen is allocated immediately so callers can inspect an empty grid
// before Start is called; no process exists yet.
func NewSession(cfg Config) *Session {
	screen := NewScreen(cfg.rows(), cfg.cols(), cfg.maxScrollback())
	parser := NewParser(screen)
	s := &Session{
		cfg:    cfg,
		Screen: screen,
		parser: parser,
		exited: make(chan struct{}),
		log:    cfg.logger(),
	}
	parser.Title = sessionTitleBridge{s}
	parser.Bell = sessionBellBridge{s}
	parser.Clipboard = NoopClipboard{}
	return s
}

// sessionTitleBridge adapts Session's OnTitleChanged callback to the
// Parser's TitleProvider interface.
type sessionTitleBridge struct{ s *Session }

func (b sessionTitleBridge) TitleChanged(title string) {
	if b.s.cfg.OnTitleChanged != nil {
		b.s.cfg.OnTitleChanged(title)
	}
}

// sessionBellBridge adapts Session's OnBell callback to BellProvider.
type sessionBellBridge struct{ s *Session }

func (b sessionBellBridge) Ring() {
	if b.s.cfg.OnBell != nil {
		b.s.cfg.OnBell()
	}
}

// IsRunning reports whether the child process is currently alive.
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Done returns a channel closed once the child has exited and been
// reaped, whether via natural exit or Stop.
func (s *Session) Done() <-chan struct{} {
	return s.exited
}

// ExitCode returns the child's exit status after SessionExited fires; -1
// means the child was killed by signal rather than exiting normally.
// Meaningless before Done() closes.
func (s *Session) ExitCode() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitCode
}
