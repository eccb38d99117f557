package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderActionMenu draws the open menu of r: a title line with the task text
// and exactly two buttons, the focused one highlighted.
func renderActionMenu(width int, r taskRow) string {
	if !r.menuOpen {
		return ""
	}

	labels := r.menuLabels()
	btns := make([]string, 0, len(labels))
	for i, lbl := range labels {
		btns = append(btns, styleButton(menuFocus(i) == r.focus).Render(lbl))
	}
	sep := lipgloss.NewStyle().Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, btns[0], sep, btns[1])

	innerW := width - 4
	if innerW < minContentW-4 {
		innerW = minContentW - 4
	}
	title := fitLine("Actions: "+singleLine(r.task.Text), innerW)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Width(innerW + 2)
	return box.Render(strings.Join([]string{title, controls}, "\n"))
}
