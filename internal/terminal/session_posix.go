//go:build !windows

package terminal

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
)

// Start opens a PTY pair and spawns the configured shell on it, following
// the spawn contract in full: own session, slave as controlling terminal,
// stdin/stdout/stderr dup'd onto the slave, no inherited fds beyond those,
// configured working directory, TERM/LANG in the environment, and a
// login-shell argv[0].
func (s *Session) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}

	rows, cols := s.Screen.Size()
	master, slave, err := pty.Open()
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	if err := pty.Setsize(master, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}); err != nil {
		master.Close()
		slave.Close()
		s.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	shellPath := resolveShellPath(s.cfg.ShellPath)

	cmd := exec.Command(shellPath)
	cmd.Args = append([]string{loginArgv0(shellPath)}, s.cfg.ShellArgs...)
	cmd.Dir = s.cfg.WorkingDir
	cmd.Env = buildChildEnv(s.cfg.Env)
	cmd.Stdin = slave
	cmd.Stdout = slave
	cmd.Stderr = slave
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    0,
	}

	if err := cmd.Start(); err != nil {
		master.Close()
		slave.Close()
		s.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrForkFailed, err)
	}
	// The child has its own copy of the slave now; the parent only needs
	// the master end from here on.
	slave.Close()

	s.master = master
	s.cmd = cmd
	s.running = true
	s.log.Printf("terminal: spawned %s (pid %d)", shellPath, cmd.Process.Pid)
	s.mu.Unlock()

	go s.readLoop()
	go s.waitLoop()
	return nil
}

// buildChildEnv merges the parent's environment with TERM/LANG defaults
// (unless overridden) and the caller's explicit overrides. Glibc's getenv
// returns the first match for a duplicated key, so any pre-existing
// TERM/LANG/override entries are filtered out of the inherited slice
// before the resolved values are appended.
func buildChildEnv(overrides map[string]string) []string {
	merged := map[string]string{
		"TERM": "xterm-256color",
		"LANG": "en_US.UTF-8",
	}
	for k, v := range overrides {
		merged[k] = v
	}

	env := make([]string, 0, len(os.Environ())+len(merged))
	for _, kv := range os.Environ() {
		if key, _, ok := splitEnv(kv); ok {
			if _, overridden := merged[key]; overridden {
				continue
			}
		}
		env = append(env, kv)
	}
	for k, v := range merged {
		env = append(env, k+"="+v)
	}
	return env
}

func splitEnv(kv string) (key, value string, ok bool) {
	for i := 0; i < len(kv); i++ {
		if kv[i] == '=' {
			return kv[:i], kv[i+1:], true
		}
	}
	return "", "", false
}
