// Package tasks holds the in-memory to-do list and its three mutations.
package tasks

import "strings"

type Task struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// IDMode selects how new task ids are assigned.
type IDMode string

const (
	// IDModeCounter assigns ids from a counter that never goes backwards, so ids
	// stay unique for the lifetime of the list.
	IDModeCounter IDMode = "counter"
	// IDModeLength assigns len(tasks)+1. Ids can repeat after a delete.
	IDModeLength IDMode = "length"
)

func ParseIDMode(s string) (IDMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "counter":
		return IDModeCounter, true
	case "length", "legacy":
		return IDModeLength, true
	default:
		return "", false
	}
}

// List is an ordered task collection. Open tasks always come before done
// tasks; each partition keeps its own relative order.
//
// A List is not safe for concurrent use.
type List struct {
	mode   IDMode
	nextID int

	open []Task
	done []Task
}

type Option func(*List)

func WithIDMode(mode IDMode) Option {
	return func(l *List) {
		if mode == IDModeLength {
			l.mode = IDModeLength
			return
		}
		l.mode = IDModeCounter
	}
}

func NewList(opts ...Option) *List {
	l := &List{mode: IDModeCounter, nextID: 1}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *List) IDMode() IDMode { return l.mode }

func (l *List) Len() int { return len(l.open) + len(l.done) }

// Counts returns the size of the open and done partitions.
func (l *List) Counts() (open, done int) { return len(l.open), len(l.done) }

// Tasks returns the display order (open first, then done) as a fresh slice.
func (l *List) Tasks() []Task {
	out := make([]Task, 0, l.Len())
	out = append(out, l.open...)
	out = append(out, l.done...)
	return out
}

// Get returns the first task with id in display order.
func (l *List) Get(id int) (Task, bool) {
	if i := indexOf(l.open, id); i >= 0 {
		return l.open[i], true
	}
	if i := indexOf(l.done, id); i >= 0 {
		return l.done[i], true
	}
	return Task{}, false
}

// Add puts a new open task at the front. Empty text is ignored and reports
// false; any other text, whitespace included, is stored as given.
func (l *List) Add(text string) (Task, bool) {
	if text == "" {
		return Task{}, false
	}
	t := Task{ID: l.allocID(), Text: text}
	l.open = append([]Task{t}, l.open...)
	return t, true
}

// ToggleDone flips Done on the first task with id. A task that becomes done
// moves to the end of the list; a task that becomes open moves to the front.
// Unknown ids are ignored and report false.
func (l *List) ToggleDone(id int) (Task, bool) {
	if i := indexOf(l.open, id); i >= 0 {
		t := l.open[i]
		l.open = removeAt(l.open, i)
		t.Done = true
		l.done = append(l.done, t)
		return t, true
	}
	if i := indexOf(l.done, id); i >= 0 {
		t := l.done[i]
		l.done = removeAt(l.done, i)
		t.Done = false
		l.open = append([]Task{t}, l.open...)
		return t, true
	}
	return Task{}, false
}

// Delete removes the first task with id. Unknown ids are ignored and report false.
func (l *List) Delete(id int) bool {
	if i := indexOf(l.open, id); i >= 0 {
		l.open = removeAt(l.open, i)
		return true
	}
	if i := indexOf(l.done, id); i >= 0 {
		l.done = removeAt(l.done, i)
		return true
	}
	return false
}

func (l *List) allocID() int {
	if l.mode == IDModeLength {
		return l.Len() + 1
	}
	id := l.nextID
	l.nextID++
	return id
}

func indexOf(ts []Task, id int) int {
	for i := range ts {
		if ts[i].ID == id {
			return i
		}
	}
	return -1
}

func removeAt(ts []Task, i int) []Task {
	out := make([]Task, 0, len(ts)-1)
	out = append(out, ts[:i]...)
	return append(out, ts[i+1:]...)
}
