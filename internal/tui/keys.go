package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

// keyMap holds the screen's own bindings. Cursor movement belongs to the
// bubbles list and is read from its KeyMap.
type keyMap struct {
	Menu       key.Binding
	FocusForm  key.Binding
	FocusList  key.Binding
	Submit     key.Binding
	NextAction key.Binding
	PrevAction key.Binding
	Activate   key.Binding
	ToggleDone key.Binding
	Delete     key.Binding
	CloseMenu  key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Menu:       key.NewBinding(key.WithKeys("enter", " ", "x"), key.WithHelp("enter/x", "actions")),
		FocusForm:  key.NewBinding(key.WithKeys("tab", "a", "i"), key.WithHelp("a", "new to-do")),
		FocusList:  key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "to list")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "create")),
		NextAction: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next action")),
		PrevAction: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev action")),
		Activate:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "run action")),
		ToggleDone: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "mark done/undone")),
		Delete:     key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("del", "delete")),
		CloseMenu:  key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// contextKeys adapts keyMap to help.KeyMap for whatever has focus right now.
type contextKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (c contextKeys) ShortHelp() []key.Binding  { return c.short }
func (c contextKeys) FullHelp() [][]key.Binding { return c.full }

func (k keyMap) formHelp() contextKeys {
	short := []key.Binding{k.Submit, k.FocusList, k.ForceQuit}
	return contextKeys{short: short, full: [][]key.Binding{short}}
}

func (k keyMap) listHelp(nav list.KeyMap) contextKeys {
	short := []key.Binding{nav.CursorUp, nav.CursorDown, k.Menu, k.FocusForm, k.Help, k.Quit}
	return contextKeys{short: short, full: [][]key.Binding{short}}
}

func (k keyMap) menuHelp() contextKeys {
	short := []key.Binding{k.NextAction, k.Activate, k.ToggleDone, k.Delete, k.CloseMenu}
	return contextKeys{short: short, full: [][]key.Binding{short}}
}

// KeyHelpMarkdown describes every key binding as a markdown document.
func KeyHelpMarkdown() string {
	k := newKeyMap()
	nav := newList().KeyMap
	section := func(title string, bs ...key.Binding) string {
		var b strings.Builder
		b.WriteString("## " + title + "\n\n")
		for _, kb := range bs {
			h := kb.Help()
			b.WriteString("- `" + strings.Join(kb.Keys(), "` `") + "` " + h.Desc + "\n")
		}
		return b.String()
	}
	parts := []string{
		"# TICK TACK keys",
		section("New to-do form", k.Submit, k.FocusList, k.ForceQuit),
		section("Task list", nav.CursorUp, nav.CursorDown, k.Menu, k.FocusForm, k.Help, k.Quit),
		section("Action menu", k.NextAction, k.PrevAction, k.Activate, k.ToggleDone, k.Delete, k.CloseMenu),
	}
	return strings.Join(parts, "\n\n")
}
