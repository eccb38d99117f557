package tui

import (
	"ticktack/internal/tasks"
)

// rowState is the part of a row that outlives re-renders. It is keyed by task id.
type rowState struct {
	menuOpen bool
	focus    menuFocus
}

// rowHandlers are the parent's mutations, handed down to a row. A row never
// touches the task list itself.
type rowHandlers struct {
	toggleDone func(id int)
	deleteTask func(id int)
}

// taskRow renders one task and owns its action menu.
type taskRow struct {
	task tasks.Task
	rowState
}

func (r taskRow) toggleMenu() taskRow {
	r.menuOpen = !r.menuOpen
	r.focus = menuFocusToggleDone
	return r
}

func (r taskRow) cycleMenuFocus() taskRow {
	if !r.menuOpen {
		return r
	}
	r.focus = r.focus.next()
	return r
}

func (r taskRow) confirmToggleDone(h rowHandlers) taskRow {
	if h.toggleDone != nil {
		h.toggleDone(r.task.ID)
	}
	r.menuOpen = false
	r.focus = menuFocusToggleDone
	return r
}

func (r taskRow) confirmDelete(h rowHandlers) taskRow {
	if h.deleteTask != nil {
		h.deleteTask(r.task.ID)
	}
	r.menuOpen = false
	r.focus = menuFocusToggleDone
	return r
}

// activate runs whichever menu entry is focused.
func (r taskRow) activate(h rowHandlers) taskRow {
	if !r.menuOpen {
		return r
	}
	if r.focus == menuFocusDelete {
		return r.confirmDelete(h)
	}
	return r.confirmToggleDone(h)
}

func (r taskRow) toggleLabel() string {
	if r.task.Done {
		return "Mark Undone"
	}
	return "Mark Done"
}

func (r taskRow) menuButtonLabel() string {
	if r.menuOpen {
		return "Close"
	}
	return "Action"
}

// menuLabels lists the open menu's entries in display order.
func (r taskRow) menuLabels() []string {
	return []string{r.toggleLabel(), "Delete"}
}
