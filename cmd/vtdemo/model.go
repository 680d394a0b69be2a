package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kjvec/vterm/internal/terminal"
)

var statusBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#1E1E2E")).
	Background(lipgloss.Color("#89B4FA")).
	Bold(true)

type outputMsg struct{}

type exitMsg struct{ code int }

// model is the Bubbletea model driving one terminal.Session. It owns no
// terminal state of its own beyond layout — all grid state lives in
// sess.Screen, which this model only reads.
type model struct {
	sess     *terminal.Session
	outputCh chan struct{}
	exitedCh chan int

	width, height int
	exited        bool
	exitCode      int
}

func newModel(sess *terminal.Session, outputCh chan struct{}, exitedCh chan int, width, height int) model {
	return model{
		sess:     sess,
		outputCh: outputCh,
		exitedCh: exitedCh,
		width:    width,
		height:   height,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForOutput(m.outputCh), waitForExit(m.exitedCh))
}

func waitForOutput(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return outputMsg{}
	}
}

func waitForExit(ch chan int) tea.Cmd {
	return func() tea.Msg {
		code := <-ch
		return exitMsg{code: code}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_ = m.sess.Resize(m.height-1, m.width)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC && m.exited {
			return m, tea.Quit
		}
		if b := keyToBytes(msg); b != nil {
			_ = m.sess.WriteInput(b)
		}
		return m, nil

	case outputMsg:
		return m, waitForOutput(m.outputCh)

	case exitMsg:
		m.exited = true
		m.exitCode = msg.code
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	body := renderScreen(m.sess.Screen, m.width, m.height-1)

	status := fmt.Sprintf(" vterm demo — %dx%d ", m.width, m.height-1)
	if m.exited {
		status = fmt.Sprintf(" shell exited (code %d) — press Ctrl+C to quit ", m.exitCode)
	}
	bar := statusBarStyle.Width(m.width).Render(status)

	return body + "\n" + bar
}
