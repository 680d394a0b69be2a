//go:build windows

package terminal

import "syscall"

// Stop is a no-op on windows: Start never produces a running child here.
func (s *Session) Stop() {}

// Signal always fails on windows for the same reason.
func (s *Session) Signal(sig syscall.Signal) error {
	return ErrNotRunning
}
