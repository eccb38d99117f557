package tui

type focusArea int

const (
	focusForm focusArea = iota
	focusList
)

func (f focusArea) String() string {
	switch f {
	case focusForm:
		return "form"
	case focusList:
		return "list"
	default:
		return "unknown"
	}
}

// menuFocus is the highlighted entry of an open row action menu.
type menuFocus int

const (
	menuFocusToggleDone menuFocus = iota
	menuFocusDelete
)

func (f menuFocus) next() menuFocus {
	if f == menuFocusToggleDone {
		return menuFocusDelete
	}
	return menuFocusToggleDone
}

const (
	headerTitle      = "TICK TACK"
	formLabel        = "New To-Do"
	inputPlaceholder = "I want to..."
	createLabel      = "+ Create"
	emptyListText    = "You've added no task yet."

	maxContentW = 72
	minContentW = 30
)
