package terminal

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/creack/pty"
)

const readChunkSize = 8192

// readLoop is the reader context: it drains the PTY master in order and
// hands each chunk to the Parser, which mutates Screen synchronously
// before the next chunk is read. This ordering is what makes "bytes
// parsed in arrival order" hold without any explicit queue.
func (s *Session) readLoop() {
	buf := make([]byte, readChunkSize)
	for {
		s.mu.Lock()
		master := s.master
		s.mu.Unlock()
		if master == nil {
			return
		}

		n, err := master.Read(buf)
		if n > 0 {
			s.parser.Feed(buf[:n])
			if s.cfg.OnOutput != nil {
				s.cfg.OnOutput()
			}
		}
		if err != nil {
			return
		}
	}
}

// waitLoop reaps the child once it exits (naturally, or as a result of
// Stop), records its exit status, closes the master exactly once, and
// fires SessionExited.
func (s *Session) waitLoop() {
	_ = s.cmd.Wait()

	s.mu.Lock()
	// ProcessState.ExitCode reports the exit status if the child exited
	// normally, or -1 if it was terminated by a signal. SessionExited
	// carries that same code through unchanged.
	code := -1
	if s.cmd.ProcessState != nil {
		code = s.cmd.ProcessState.ExitCode()
	}
	s.exitCode = code
	s.running = false
	master := s.master
	s.master = nil
	s.mu.Unlock()

	if master != nil {
		master.Close()
	}

	s.log.Printf("terminal: session exited, code=%d", code)
	if s.cfg.OnSessionExited != nil {
		s.cfg.OnSessionExited(code)
	}
	close(s.exited)
}

// WriteInput writes bytes to the PTY master, translating the host's "\n"
// Enter convention to "\r" and retrying on transient interruption. It
// blocks if the kernel applies backpressure, propagating it to the
// caller rather than buffering unboundedly.
func (s *Session) WriteInput(data []byte) error {
	s.mu.Lock()
	master := s.master
	running := s.running
	s.mu.Unlock()
	if !running || master == nil {
		return ErrNotRunning
	}

	translated := make([]byte, len(data))
	for i, b := range data {
		if b == '\n' {
			b = '\r'
		}
		translated[i] = b
	}

	for len(translated) > 0 {
		n, err := master.Write(translated)
		if n > 0 {
			translated = translated[n:]
		}
		if err != nil {
			if errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN) {
				continue
			}
			return fmt.Errorf("%w: %v", ErrIoError, err)
		}
	}
	return nil
}

// Resize reshapes the Screen first, then issues the window-size ioctl on
// the master so the child's SIGWINCH handler observes a grid already sized
// to receive whatever it emits in response.
func (s *Session) Resize(rows, cols int) error {
	s.Screen.Resize(rows, cols)

	s.mu.Lock()
	master := s.master
	running := s.running
	s.mu.Unlock()
	if !running || master == nil {
		return ErrNotRunning
	}
	return pty.Setsize(master, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}
