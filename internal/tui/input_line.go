package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws the new to-do input followed by the create control on
// one line of exactly bodyW columns.
func renderInputLine(bodyW int, inputView string, focused bool) string {
	if bodyW < minContentW {
		bodyW = minContentW
	}

	// The input must stay on one visual line, or typing looks like newline insertion.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	btn := styleButton(focused).Render(createLabel)
	inputW := bodyW - xansi.StringWidth(btn) - 1
	if inputW < 8 {
		inputW = 8
	}

	field := lipgloss.PlaceHorizontal(
		inputW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(field) > inputW {
		// Terminate ANSI styling so a cut never bleeds into the button.
		field = xansi.Cut(field, 0, inputW) + "\x1b[0m"
	}
	return field + " " + btn
}
