package menu

import tea "charm.land/bubbletea/v2"

// Item represents a selectable menu entry.
type Item struct {
	ID      string
	Label   string
	Submenu string // ID of the submenu this item opens, empty for leaves
}

// HasSubmenu reports whether activating the item opens a nested menu.
func (i Item) HasSubmenu() bool {
	return i.Submenu != ""
}

// Context carries runtime data needed by action handlers.
type Context struct {
	MenuFile string
	Verbose  bool
}

// Action executes a leaf item. The returned command is run through the
// Bubble Tea loop.
type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
}
