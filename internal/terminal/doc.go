// Package terminal implements a VT100/xterm-style terminal emulation core.
//
// It hosts a child shell over a pseudo-terminal, interprets the byte stream
// the shell emits as escape sequences, maintains a grid of formatted
// character cells, and hands that grid to whatever renders it. There is no
// renderer, window chrome, or GPU text layout in this package — those are
// host concerns that pull from the read-only views below.
//
// # Quick start
//
//	sess := terminal.NewSession(terminal.Config{Rows: 24, Cols: 80})
//	if err := sess.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Stop()
//
//	sess.WriteInput([]byte("ls\n"))
//
//	row, col := sess.Screen.Cursor()
//	cell := sess.Screen.CellAt(0, 0)
//
// # Three subsystems
//
//   - [Parser]: a total byte-stream state machine (Ground, Escape, CSI,
//     OSC, DCS and their sub-states) that classifies incoming bytes and
//     drives Screen mutations.
//   - [Screen]: the grid, scrollback, cursor, saved-cursor slot, scroll
//     region, attribute register, and terminal modes.
//   - [Session]: PTY ownership, child process lifecycle, the I/O pump
//     between the child and the Parser, and resize/signal plumbing.
//
// # Concurrency
//
// The reader goroutine that Session.Start launches reads the PTY master and
// feeds each chunk straight into the Parser, so Screen mutation happens on
// that goroutine, in arrival order. Every exported Screen method takes the
// Screen's own mutex, so a host may read cells and drain dirty rows from
// another goroutine at the same time. Session guards its own
// PID/FD/running-flag bookkeeping with a separate mutex since WriteInput,
// Resize, and Stop may be called from any goroutine.
package terminal
