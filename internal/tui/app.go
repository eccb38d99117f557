package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is every line the screen draws besides the task rows.
const chromeHeight = 12

func (m appModel) View() string {
	w := contentWidth(m.width)

	if m.showHelp {
		return m.viewHelp(w)
	}

	header := styleHeader().Width(w).Render(headerTitle)

	form := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(formLabel),
		renderInputLine(w, m.input.View(), m.focus == focusForm),
	}, "\n")

	var body string
	if len(m.itemsList.Items()) == 0 {
		body = styleMuted().Render(emptyListText)
	} else {
		body = m.itemsList.View()
	}

	parts := []string{header, "", form, "", body}
	if m.focus == focusList {
		if r, ok := m.selectedRow(); ok && r.menuOpen {
			parts = append(parts, renderActionMenu(w, r))
		}
	}
	parts = append(parts, "", m.footer(w))

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, "\n"))
}

func (m appModel) footer(w int) string {
	h := m.help
	h.Width = w

	var km help.KeyMap
	switch {
	case m.focus == focusForm:
		km = m.keys.formHelp()
	case m.menuOpenOnSelection():
		km = m.keys.menuHelp()
	default:
		km = m.keys.listHelp(m.itemsList.KeyMap)
	}

	open, done := m.list.Counts()
	counts := styleMuted().Render(fmtCounts(open, done))
	return h.View(km) + "  " + counts
}

func (m appModel) menuOpenOnSelection() bool {
	r, ok := m.selectedRow()
	return ok && r.menuOpen
}

func (m appModel) viewHelp(w int) string {
	body := renderMarkdown(KeyHelpMarkdown(), w-4)
	hint := styleMuted().Render("press any key to close")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Width(w - 2)
	return box.Render(body + "\n\n" + hint)
}

func fmtCounts(open, done int) string {
	return strings.Join([]string{plural(open, "open"), plural(done, "done")}, " · ")
}

func plural(n int, what string) string {
	return strconv.Itoa(n) + " " + what
}
