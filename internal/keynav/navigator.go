// Package keynav moves keyboard focus among sibling menu items and drives
// open/close through the open-path controller.
package keynav

import (
	"github.com/cascadeui/cascade/internal/logging/events"
	"github.com/cascadeui/cascade/internal/menu"
)

// Key is the abstract navigation key set. The rendering layer maps its raw
// key events (arrows, tab, shift+tab) onto these before calling Handle.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// ItemSource resolves the rendered item list of a menu.
type ItemSource interface {
	MenuItems(menuID string) []menu.Item
}

// FocusSink moves input focus to a rendered item.
type FocusSink interface {
	FocusItem(menuID, itemID string)
}

// Navigator owns keyboard focus within the open menu chain. It never mutates
// the open path directly; open and close requests funnel through the
// controller.
type Navigator struct {
	ctrl  *menu.Controller
	items ItemSource
	sink  FocusSink

	focusMenu   string
	focusItem   string
	focusInside bool

	onActivate func(menu.Item)
}

// New creates a navigator over the given controller and item source.
func New(ctrl *menu.Controller, items ItemSource, sink FocusSink) *Navigator {
	return &Navigator{ctrl: ctrl, items: items, sink: sink, focusInside: true}
}

// SetOnActivate installs the click-semantics callback invoked when Enter
// activates a leaf item.
func (n *Navigator) SetOnActivate(fn func(menu.Item)) {
	n.onActivate = fn
}

// SetFocusInside records whether input focus is currently inside the menu's
// rendered surface. While false, every key but Escape is ignored.
func (n *Navigator) SetFocusInside(inside bool) {
	n.focusInside = inside
}

// SetFocus records the externally-applied focus position, e.g. after a
// deferred pending-focus is consumed.
func (n *Navigator) SetFocus(menuID, itemID string) {
	n.focusMenu = menuID
	n.focusItem = itemID
}

// Focus returns the currently focused menu and item.
func (n *Navigator) Focus() (menuID, itemID string) {
	return n.focusMenu, n.focusItem
}

// Handle processes one navigation key. It reports whether the key was
// consumed. All keys are ignored while the root menu is closed.
func (n *Navigator) Handle(key Key) bool {
	if !n.ctrl.IsOpen() {
		return false
	}
	if key == KeyEscape {
		n.focusMenu = ""
		n.focusItem = ""
		n.ctrl.CloseRoot(menu.ReasonEscapeKey)
		return true
	}
	if !n.focusInside {
		events.Keys.Ignored("focus-outside")
		return false
	}

	switch key {
	case KeyDown:
		return n.move(1)
	case KeyUp:
		return n.move(-1)
	case KeyRight:
		return n.openFocused()
	case KeyLeft:
		return n.closeDeepest()
	case KeyEnter:
		return n.activate()
	}
	return false
}

// relevantMenu is the menu whose items navigation currently walks: the
// innermost open submenu when one is open, else the focused item's own menu,
// else the root.
func (n *Navigator) relevantMenu() string {
	path := n.ctrl.Path()
	if len(path) > 1 {
		return path[len(path)-1]
	}
	if n.focusItem != "" && n.focusMenu != "" {
		return n.focusMenu
	}
	return n.ctrl.Tree().RootID()
}

func (n *Navigator) move(delta int) bool {
	menuID := n.relevantMenu()
	items := n.items.MenuItems(menuID)
	if len(items) == 0 {
		return true
	}
	idx := -1
	if menuID == n.focusMenu {
		for i, it := range items {
			if it.ID == n.focusItem {
				idx = i
				break
			}
		}
	}
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = len(items) - 1
	default:
		next = (idx + delta + len(items)) % len(items)
	}
	n.applyFocus(menuID, items[next].ID)
	return true
}

func (n *Navigator) openFocused() bool {
	item, ok := n.focusedItem()
	if !ok || !item.HasSubmenu() {
		return false
	}
	n.openSubmenuWithFocus(item)
	return true
}

func (n *Navigator) closeDeepest() bool {
	path := n.ctrl.Path()
	if len(path) < 2 {
		return false
	}
	deepest := path[len(path)-1]
	parentMenu := path[len(path)-2]
	n.ctrl.CloseSubmenu(deepest)
	// The submenu shares its ID with the item that hosts it; focus
	// returns there.
	n.applyFocus(parentMenu, deepest)
	return true
}

func (n *Navigator) activate() bool {
	item, ok := n.focusedItem()
	if !ok {
		return false
	}
	if item.HasSubmenu() {
		// Enter on a host whose submenu is already somewhere on the open
		// path leaves the deeper chain alone.
		if !n.ctrl.Contains(item.Submenu) {
			n.openSubmenuWithFocus(item)
		}
		return true
	}
	if n.onActivate != nil {
		n.onActivate(item)
	}
	return true
}

func (n *Navigator) openSubmenuWithFocus(item menu.Item) {
	n.ctrl.SetPendingFocus(item.Submenu)
	n.ctrl.OpenSubmenu(item.Submenu)
	if n.ctrl.Deepest() == item.Submenu {
		if children := n.items.MenuItems(item.Submenu); len(children) > 0 {
			n.ctrl.TakePendingFocus()
			n.applyFocus(item.Submenu, children[0].ID)
		}
	}
}

// focusedItem resolves the focused item in whichever menu holds focus. Focus
// may sit on a host item in an ancestor menu while its submenu is open.
func (n *Navigator) focusedItem() (menu.Item, bool) {
	if n.focusMenu == "" || n.focusItem == "" {
		return menu.Item{}, false
	}
	for _, it := range n.items.MenuItems(n.focusMenu) {
		if it.ID == n.focusItem {
			return it, true
		}
	}
	return menu.Item{}, false
}

func (n *Navigator) applyFocus(menuID, itemID string) {
	n.focusMenu = menuID
	n.focusItem = itemID
	events.Keys.Focus(itemID)
	if n.sink != nil {
		n.sink.FocusItem(menuID, itemID)
	}
}
