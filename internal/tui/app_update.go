package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Cursor blink and other input housekeeping.
	if m.focus == focusForm {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.showHelp {
		// Any key dismisses the help overlay.
		m.showHelp = false
		return m, nil
	}
	if m.focus == focusForm {
		return m.updateForm(msg)
	}
	return m.updateList(msg)
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submitNewTask()
		return m, nil
	case key.Matches(msg, m.keys.FocusList):
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if r, ok := m.selectedRow(); ok && r.menuOpen {
		if m.updateMenu(r, msg) {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.FocusForm):
		m.setFocus(focusForm)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Menu):
		if r, ok := m.selectedRow(); ok {
			m.applyRow(r.toggleMenu())
		}
		return m, nil
	}

	// Cursor movement, paging and jump keys.
	var cmd tea.Cmd
	m.itemsList, cmd = m.itemsList.Update(msg)
	return m, cmd
}

// updateMenu handles keys aimed at the open action menu of r. It reports
// whether the key was consumed.
func (m *appModel) updateMenu(r taskRow, msg tea.KeyMsg) bool {
	id := r.task.ID
	switch {
	case key.Matches(msg, m.keys.CloseMenu):
		m.applyRow(r.toggleMenu())
	case key.Matches(msg, m.keys.NextAction), key.Matches(msg, m.keys.PrevAction):
		m.applyRow(r.cycleMenuFocus())
	case key.Matches(msg, m.keys.Activate):
		m.applyRow(r.activate(m.handlers()))
		m.selectTaskByID(id)
	case key.Matches(msg, m.keys.ToggleDone):
		m.applyRow(r.confirmToggleDone(m.handlers()))
		m.selectTaskByID(id)
	case key.Matches(msg, m.keys.Delete):
		m.applyRow(r.confirmDelete(m.handlers()))
	default:
		return false
	}
	return true
}
