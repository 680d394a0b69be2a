package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kjvec/vterm/internal/terminal"
)

var (
	defaultFg = [3]uint8{229, 229, 229}
	defaultBg = [3]uint8{30, 30, 46}
)

// renderScreen turns the visible rows of screen into a styled string,
// grouping consecutive cells with identical attributes into a single
// lipgloss.Render call per run rather than per cell.
func renderScreen(screen *terminal.Screen, width, height int) string {
	rows, cols := screen.Size()
	if cols > width {
		cols = width
	}

	var out strings.Builder
	visibleRows := height
	if visibleRows > rows {
		visibleRows = rows
	}
	startRow := rows - visibleRows

	for r := startRow; r < rows; r++ {
		out.WriteString(renderRow(screen, r, cols))
		if r != rows-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func renderRow(screen *terminal.Screen, row, cols int) string {
	var line strings.Builder
	var runAttrs terminal.Attributes
	var runText strings.Builder
	haveRun := false

	flush := func() {
		if !haveRun {
			return
		}
		line.WriteString(styleFor(runAttrs).Render(runText.String()))
		runText.Reset()
		haveRun = false
	}

	for c := 0; c < cols; c++ {
		cell := screen.CellAt(row, c)
		if cell.Continuation {
			continue
		}
		if !haveRun || cell.Attrs != runAttrs {
			flush()
			runAttrs = cell.Attrs
			haveRun = true
		}
		if cell.Char == 0 {
			runText.WriteRune(' ')
		} else {
			runText.WriteRune(cell.Char)
		}
	}
	flush()
	return line.String()
}

func styleFor(a terminal.Attributes) lipgloss.Style {
	style := lipgloss.NewStyle()

	fr, fg, fb := terminal.ResolveRGB(a.FG, true, defaultFg, defaultBg)
	br, bg, bb := terminal.ResolveRGB(a.BG, false, defaultFg, defaultBg)
	if a.Reverse {
		fr, fg, fb, br, bg, bb = br, bg, bb, fr, fg, fb
	}
	style = style.Foreground(lipgloss.Color(hexColor(fr, fg, fb)))
	style = style.Background(lipgloss.Color(hexColor(br, bg, bb)))

	if a.Bold {
		style = style.Bold(true)
	}
	if a.Dim {
		style = style.Faint(true)
	}
	if a.Italic {
		style = style.Italic(true)
	}
	if a.Underline {
		style = style.Underline(true)
	}
	if a.Blink {
		style = style.Blink(true)
	}
	if a.Strikethrough {
		style = style.Strikethrough(true)
	}
	if a.Hidden {
		style = style.Foreground(lipgloss.Color(hexColor(br, bg, bb)))
	}
	return style
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
