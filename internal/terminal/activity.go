package terminal

import (
	"regexp"
	"strings"
)

// PromptHint classifies what the bottom of the screen currently looks
// like, for hosts that want to guess whether the child is sitting at an
// idle shell prompt or waiting on a yes/no confirmation. It is a pure,
// non-mutating query over the grid's current content and carries no
// timers or state of its own; a host that wants idle-timeout behavior
// layers that on top by polling PromptHint alongside its own last-output
// timestamp.
type PromptHint int

const (
	// HintNone means neither pattern below matched; no opinion offered.
	HintNone PromptHint = iota
	// HintNeedsConfirmation means the last non-blank row looks like a
	// yes/no or permission prompt.
	HintNeedsConfirmation
	// HintAtShellPrompt means the last non-blank row looks like a bare
	// shell prompt (trailing $, %, #, or >).
	HintAtShellPrompt
)

var (
	needsInputPattern = regexp.MustCompile(`(?i)\[Y/n\]|\[y/N\]|\(y/n\)|proceed\?|continue\?|confirm|approve|allow|permission`)
	shellPromptPattern = regexp.MustCompile(`[>$%#]\s*$`)
)

// PromptHint scans the last few on-screen rows from the bottom up
// (scrollback is not consulted) and classifies the first non-blank row it
// finds; rows above that one are never examined. It never mutates Screen
// state.
func (s *Screen) PromptHint() PromptHint {
	rows := s.Rows()
	scanFrom := rows - 5
	if scanFrom < 0 {
		scanFrom = 0
	}
	for r := rows - 1; r >= scanFrom; r-- {
		line := strings.TrimRight(s.RowText(r), " ")
		if line == "" {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if needsInputPattern.MatchString(trimmed) {
			return HintNeedsConfirmation
		}
		if shellPromptPattern.MatchString(line) {
			return HintAtShellPrompt
		}
		return HintNone
	}
	return HintNone
}
