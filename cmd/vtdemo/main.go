// Command vtdemo is a thin, illustrative host renderer for the vterm
// engine: it spawns a shell inside a terminal.Session and redraws the
// Session's Screen inside a Bubbletea program, the same relationship any
// GUI or TUI frontend has to the core (see internal/terminal/doc.go).
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/kjvec/vterm/internal/termconfig"
	"github.com/kjvec/vterm/internal/terminal"
)

func main() {
	cfg := termconfig.Load()

	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols == 0 || rows == 0 {
		cols, rows = cfg.Cols, cfg.Rows
	}

	outputCh := make(chan struct{}, 1)
	exitedCh := make(chan int, 1)

	sess := terminal.NewSession(terminal.Config{
		ShellPath:     cfg.ShellPath,
		Rows:          rows - 1, // reserve the bottom line for the status bar
		Cols:          cols,
		MaxScrollback: cfg.MaxScrollback,
		OnOutput: func() {
			select {
			case outputCh <- struct{}{}:
			default:
			}
		},
		OnSessionExited: func(code int) {
			select {
			case exitedCh <- code:
			default:
			}
		},
	})

	if err := sess.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo: failed to start session:", err)
		os.Exit(1)
	}
	defer sess.Stop()

	m := newModel(sess, outputCh, exitedCh, cols, rows)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo:", err)
		os.Exit(1)
	}
}
