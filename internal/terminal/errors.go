package terminal

import "errors"

// Sentinel errors returned by Session's lifecycle operations. Callers
// should compare with errors.Is, since some are wrapped with additional
// context (the underlying syscall error, for instance).
var (
	// ErrOpenFailed means the PTY open syscall refused.
	ErrOpenFailed = errors.New("terminal: pty open failed")
	// ErrForkFailed means the spawn syscall refused.
	ErrForkFailed = errors.New("terminal: spawn failed")
	// ErrAlreadyRunning means Start was called on a Session with a live child.
	ErrAlreadyRunning = errors.New("terminal: session already running")
	// ErrNotRunning means an operation requiring a live child was attempted
	// on a Session that never started or has already exited.
	ErrNotRunning = errors.New("terminal: session not running")
	// ErrIoError marks a write-side failure not attributable to a retriable
	// interruption (EINTR/EAGAIN).
	ErrIoError = errors.New("terminal: io error")
)
