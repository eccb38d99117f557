package tui

import (
	"fmt"
	"io"
	"strings"

	"ticktack/internal/tasks"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type taskItem struct {
	row taskRow
}

func (i taskItem) FilterValue() string { return i.row.task.Text }

// taskRowDelegate renders one task per line: checkbox, text, and the
// Action/Close control flush right.
type taskRowDelegate struct{}

func (d taskRowDelegate) Height() int  { return 1 }
func (d taskRowDelegate) Spacing() int { return 0 }
func (d taskRowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskRowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderTaskRow(it.row, m.Width(), index == m.Index()))
}

func renderTaskRow(r taskRow, width int, selected bool) string {
	if width < 4 {
		return ""
	}

	lead := "  "
	if selected {
		lead = glyphCursor() + " "
	}

	btn := styleButton(r.menuOpen).Render(r.menuButtonLabel())
	btnW := xansi.StringWidth(btn)

	textStyle := lipgloss.NewStyle()
	if r.task.Done {
		textStyle = textStyle.Strikethrough(true).Foreground(colorDoneFg)
	}
	label := glyphCheckbox(r.task.Done) + " " + textStyle.Render(singleLine(r.task.Text))

	textW := width - xansi.StringWidth(lead) - btnW - 1
	line := lead + fitLine(label, textW) + " " + btn

	rowStyle := lipgloss.NewStyle()
	switch {
	case selected:
		rowStyle = rowStyle.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	case r.task.Done:
		rowStyle = rowStyle.Background(colorDoneBg)
	}
	return rowStyle.Render(line)
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// PlainView renders ts the way the list shows them, without colors or
// interactive controls. An empty slice renders the placeholder message.
func PlainView(ts []tasks.Task) string {
	if len(ts) == 0 {
		return emptyListText
	}
	lines := make([]string, 0, len(ts))
	for _, t := range ts {
		lines = append(lines, fmt.Sprintf("%s %d. %s", glyphCheckbox(t.Done), t.ID, singleLine(t.Text)))
	}
	return strings.Join(lines, "\n")
}
