package menu

import (
	"github.com/cascadeui/cascade/internal/logging"
	"github.com/cascadeui/cascade/internal/logging/events"
)

// Reason labels a request to change the root menu's open state so an
// externally-controlling caller can decide whether to honor it.
type Reason string

const (
	ReasonClickToggle   Reason = "clickToggle"
	ReasonClickDropdown Reason = "clickDropdown"
	ReasonClickOutside  Reason = "clickOutside"
	ReasonEscapeKey     Reason = "escapeKey"
	ReasonOpenSubmenu   Reason = "openSubmenu"
	ReasonCloseSubmenu  Reason = "closeSubmenu"
)

// RootDecider is consulted before the controller changes the root menu's open
// state. Returning false vetoes the change; a deferred pending-open target
// stays recorded so the embedding caller can honor the request later.
type RootDecider func(open bool, reason Reason) bool

// Controller owns the single chain of currently-open submenu IDs and the
// rules for opening and closing members of that chain. All mutations of the
// open path funnel through it.
type Controller struct {
	tree *Tree
	path []string

	pendingOpen  string
	pendingFocus string

	decider  RootDecider
	onChange func(path []string)
	onClose  func()
}

// NewController creates a controller bound to the given tree. The tree may be
// replaced later via SetTree as the definition changes.
func NewController(tree *Tree) *Controller {
	return &Controller{tree: tree}
}

// SetRootDecider installs the external open-state arbiter. A nil decider
// means every request is honored.
func (c *Controller) SetRootDecider(d RootDecider) {
	c.decider = d
}

// SetOnChange installs the path change listener and fires it once with the
// current path, so subscribers observe the state at mount.
func (c *Controller) SetOnChange(fn func(path []string)) {
	c.onChange = fn
	if fn != nil {
		fn(c.Path())
	}
}

// SetOnClose installs a hook fired whenever the root closes, after the path
// notification. The session uses it to clear alignment, hover, and pending
// focus state.
func (c *Controller) SetOnClose(fn func()) {
	c.onClose = fn
}

// Path returns a copy of the open path, root first.
func (c *Controller) Path() []string {
	out := make([]string, len(c.path))
	copy(out, c.path)
	return out
}

// IsOpen reports whether the root menu is open.
func (c *Controller) IsOpen() bool {
	return len(c.path) > 0
}

// Contains reports whether id is a member of the open path.
func (c *Controller) Contains(id string) bool {
	for _, entry := range c.path {
		if entry == id {
			return true
		}
	}
	return false
}

// Deepest returns the last element of the open path, or "".
func (c *Controller) Deepest() string {
	if len(c.path) == 0 {
		return ""
	}
	return c.path[len(c.path)-1]
}

// OpenRoot transitions Closed→Open. A recorded pending-open target is
// consumed atomically with the root's own initialization so no intermediate
// state shows "root open, nothing selected".
func (c *Controller) OpenRoot(reason Reason) {
	if c.tree == nil || c.tree.RootID() == "" {
		logging.Warn("open root with no tree")
		return
	}
	if len(c.path) > 0 && c.pendingOpen == "" {
		return
	}
	if !c.approve(true, reason) {
		return
	}
	next := []string{c.tree.RootID()}
	if target := c.pendingOpen; target != "" {
		c.pendingOpen = ""
		if full := c.tree.PathFromRoot(target); full != nil {
			next = full
		} else {
			events.Menu.LookupFailed("openRoot.pending", target)
		}
	}
	c.commit(next, reason)
}

// CloseRoot transitions any state to Closed and discards per-chain state.
func (c *Controller) CloseRoot(reason Reason) {
	if len(c.path) == 0 {
		return
	}
	if !c.approve(false, reason) {
		return
	}
	c.pendingOpen = ""
	c.pendingFocus = ""
	c.commit(nil, reason)
	if c.onClose != nil {
		c.onClose()
	}
}

// OpenSubmenu opens the submenu with the given ID, closing any divergent
// branch in the same transition. When the root is closed the target is
// recorded as pending and a root-open request is issued instead; the target
// is applied once the root open completes.
func (c *Controller) OpenSubmenu(id string) {
	if len(c.path) == 0 {
		c.pendingOpen = id
		events.Menu.OpenDeferred(id)
		c.OpenRoot(ReasonOpenSubmenu)
		return
	}
	if c.Deepest() == id {
		return
	}
	full := c.tree.PathFromRoot(id)
	if full == nil {
		events.Menu.LookupFailed("openSubmenu", id)
		logging.Warn("open submenu: id not in tree", "id", id)
		return
	}
	c.commit(full, ReasonOpenSubmenu)
}

// CloseSubmenu closes the submenu with the given ID and everything below it.
// Closing the root ID delegates to CloseRoot.
func (c *Controller) CloseSubmenu(id string) {
	if !c.Contains(id) {
		return
	}
	if id == c.tree.RootID() {
		c.CloseRoot(ReasonCloseSubmenu)
		return
	}
	parent, ok := c.tree.Parent(id)
	if !ok {
		// Unreachable while tree invariants hold: every non-root path
		// entry has a parent.
		events.Menu.LookupFailed("closeSubmenu.parent", id)
		logging.Warn("close submenu: no parent", "id", id)
		return
	}
	full := c.tree.PathFromRoot(parent.ID)
	if full == nil {
		events.Menu.LookupFailed("closeSubmenu", parent.ID)
		return
	}
	c.commit(full, ReasonCloseSubmenu)
}

// ClearPendingOpen discards a deferred open target.
func (c *Controller) ClearPendingOpen() {
	c.pendingOpen = ""
}

// PendingOpen returns the deferred open target, if any.
func (c *Controller) PendingOpen() string {
	return c.pendingOpen
}

// SetPendingFocus records the submenu whose first item should receive
// keyboard focus once its open completes.
func (c *Controller) SetPendingFocus(id string) {
	c.pendingFocus = id
	events.Keys.PendingFocus(id)
}

// TakePendingFocus consumes and returns the pending-focus target.
func (c *Controller) TakePendingFocus() string {
	id := c.pendingFocus
	c.pendingFocus = ""
	return id
}

// SetTree swaps in a freshly rebuilt tree and revalidates the open path
// against it, truncating at the first entry that is no longer a valid edge.
func (c *Controller) SetTree(tree *Tree) {
	c.tree = tree
	if len(c.path) == 0 {
		return
	}
	if tree == nil || tree.RootID() == "" || c.path[0] != tree.RootID() {
		c.path = nil
		c.notify()
		if c.onClose != nil {
			c.onClose()
		}
		return
	}
	valid := 1
	for valid < len(c.path) && tree.IsEdge(c.path[valid-1], c.path[valid]) {
		valid++
	}
	if valid != len(c.path) {
		c.path = c.path[:valid]
		c.notify()
	}
}

// Tree returns the controller's current tree.
func (c *Controller) Tree() *Tree {
	return c.tree
}

func (c *Controller) approve(open bool, reason Reason) bool {
	if c.decider == nil {
		return true
	}
	return c.decider(open, reason)
}

// commit replaces the open path in a single transition so branch switches are
// observable as one state change, not two.
func (c *Controller) commit(path []string, reason Reason) {
	c.path = path
	events.Menu.PathChanged(c.Path(), string(reason))
	c.notify()
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange(c.Path())
	}
}
