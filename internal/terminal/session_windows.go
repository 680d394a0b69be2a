//go:build windows

package terminal

import "errors"

// Start is unsupported on Windows: the spawn contract (setsid,
// controlling-terminal slave, SIGWINCH-driven resize) is POSIX-only and
// has no ConPTY equivalent implemented here.
func (s *Session) Start() error {
	return errors.New("terminal: POSIX PTY session unsupported on windows")
}
