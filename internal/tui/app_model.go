package tui

import (
	"io"

	"ticktack/internal/tasks"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sirupsen/logrus"
)

// appModel is the task list screen. It owns the task list and the pending
// input text; rows only receive a copy of their task plus rowHandlers.
type appModel struct {
	list *tasks.List
	log  logrus.FieldLogger

	// rows holds per-row local state keyed by task id.
	rows map[int]rowState

	itemsList list.Model
	input     textinput.Model
	help      help.Model
	keys      keyMap

	focus    focusArea
	showHelp bool

	width  int
	height int
}

// Options configures a TUI session.
type Options struct {
	IDMode tasks.IDMode
	Theme  string
	Glyphs string
	Logger logrus.FieldLogger
}

func newAppModel(opts Options) appModel {
	lg := opts.Logger
	if lg == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		lg = l
	}

	m := appModel{
		list:  tasks.NewList(tasks.WithIDMode(opts.IDMode)),
		log:   lg,
		rows:  map[int]rowState{},
		help:  help.New(),
		keys:  newKeyMap(),
		focus: focusForm,
	}

	m.itemsList = newList()

	m.input = textinput.New()
	m.input.Placeholder = inputPlaceholder
	m.input.Prompt = ""
	m.input.CharLimit = 200
	m.input.Width = maxContentW - 16
	m.input.Focus()

	m.syncRows()
	return m
}

func newList() list.Model {
	l := list.New(nil, taskRowDelegate{}, 0, 0)
	l.Title = "Tasks"
	// The screen renders its own header and footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("task", "tasks")
	// Quit and help are handled by the screen, not the list.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	// Emacs-style aliases.
	l.KeyMap.CursorUp.SetKeys(append(append([]string{}, l.KeyMap.CursorUp.Keys()...), "ctrl+p")...)
	l.KeyMap.CursorDown.SetKeys(append(append([]string{}, l.KeyMap.CursorDown.Keys()...), "ctrl+n")...)
	return l
}

// syncRows rebuilds the list items from the task list, carrying row state over
// by id and dropping state for ids that no longer exist.
func (m *appModel) syncRows() {
	ts := m.list.Tasks()
	next := make(map[int]rowState, len(ts))
	items := make([]list.Item, 0, len(ts))
	for _, t := range ts {
		st, seen := next[t.ID]
		if !seen {
			st = m.rows[t.ID]
			next[t.ID] = st
		}
		items = append(items, taskItem{row: taskRow{task: t, rowState: st}})
	}
	m.rows = next
	m.itemsList.SetItems(items)
	if n := len(items); n > 0 && m.itemsList.Index() >= n {
		m.itemsList.Select(n - 1)
	}
}

func (m *appModel) handlers() rowHandlers {
	return rowHandlers{
		toggleDone: m.toggleDone,
		deleteTask: m.deleteTask,
	}
}

func (m *appModel) submitNewTask() {
	text := m.input.Value()
	t, ok := m.list.Add(text)
	if !ok {
		m.log.Debug("ignored empty task submission")
		return
	}
	m.input.SetValue("")
	m.log.WithFields(logrus.Fields{"task_id": t.ID, "id_mode": m.list.IDMode()}).Debug("task created")
	m.syncRows()
	m.itemsList.Select(0)
}

func (m *appModel) toggleDone(id int) {
	t, ok := m.list.ToggleDone(id)
	if !ok {
		m.log.WithField("task_id", id).Debug("toggle ignored: no such task")
		return
	}
	m.log.WithFields(logrus.Fields{"task_id": id, "done": t.Done}).Debug("task toggled")
}

func (m *appModel) deleteTask(id int) {
	if !m.list.Delete(id) {
		m.log.WithField("task_id", id).Debug("delete ignored: no such task")
		return
	}
	delete(m.rows, id)
	m.log.WithField("task_id", id).Debug("task deleted")
}

func (m appModel) selectedRow() (taskRow, bool) {
	it, ok := m.itemsList.SelectedItem().(taskItem)
	if !ok {
		return taskRow{}, false
	}
	return it.row, true
}

// applyRow stores r's local state and re-renders the rows.
func (m *appModel) applyRow(r taskRow) {
	if _, ok := m.list.Get(r.task.ID); ok {
		m.rows[r.task.ID] = r.rowState
	}
	m.syncRows()
}

func (m *appModel) selectTaskByID(id int) {
	for i, it := range m.itemsList.Items() {
		if ti, ok := it.(taskItem); ok && ti.row.task.ID == id {
			m.itemsList.Select(i)
			return
		}
	}
}

func (m *appModel) setFocus(f focusArea) {
	m.focus = f
	if f == focusForm {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m *appModel) resize() {
	w := contentWidth(m.width)
	m.input.Width = w - len(createLabel) - 6
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	m.itemsList.SetSize(w, h)
}
