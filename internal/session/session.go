// Package session owns the per-run aggregate of menu state. One Session is
// built at startup and handed to the UI, the debug facade, and the pointer
// and keyboard adapters instead of threading each component separately.
package session

import (
	"fmt"
	"time"

	"github.com/cascadeui/cascade/internal/geometry"
	"github.com/cascadeui/cascade/internal/hover"
	"github.com/cascadeui/cascade/internal/menu"
	"github.com/cascadeui/cascade/internal/schedule"
)

// RootID is the synthetic tree root standing for the always-visible menu bar.
// Depth one under it are the per-toggle dropdowns; everything deeper is a
// cascading submenu.
const RootID = "menubar"

// Session bundles the live menu components for one program run.
type Session struct {
	def    menu.Definition
	tree   *menu.Tree
	Ctrl   *menu.Controller
	Solver *geometry.Solver
	Hover  *hover.Coordinator
	Frames *schedule.Frame

	hovered  string
	tornDown bool
}

// New builds a session from a menu definition. Closing the root menu resets
// placement, alignment, hover timers, and any pending layout pass.
func New(def menu.Definition, openDwell, closeDwell time.Duration) (*Session, error) {
	tree, err := menu.BuildFromDefinition(RootID, def)
	if err != nil {
		return nil, fmt.Errorf("build menu tree: %w", err)
	}
	s := &Session{
		def:    def,
		tree:   tree,
		Ctrl:   menu.NewController(tree),
		Solver: geometry.NewSolver(),
		Hover:  hover.New(openDwell, closeDwell),
		Frames: schedule.New(),
	}
	s.Ctrl.SetOnClose(func() {
		s.hovered = ""
		s.Solver.Reset()
		s.Hover.Reset()
		s.Frames.Cancel()
	})
	return s, nil
}

// Definition returns the current menu definition.
func (s *Session) Definition() menu.Definition {
	return s.def
}

// Tree returns the current submenu tree.
func (s *Session) Tree() *menu.Tree {
	return s.tree
}

// MenuItems resolves the rendered item list of a menu: the menu bar toggles
// for the root, otherwise the named submenu's items. Unknown IDs yield nil.
func (s *Session) MenuItems(menuID string) []menu.Item {
	items, ok := s.def.Submenu(RootID, menuID)
	if !ok {
		return nil
	}
	return items
}

// ReplaceDefinition swaps in a new definition after a structure change. The
// tree is rebuilt wholesale and the controller revalidates the open path
// against it; a definition that fails to build leaves everything untouched.
func (s *Session) ReplaceDefinition(def menu.Definition) error {
	tree, err := menu.BuildFromDefinition(RootID, def)
	if err != nil {
		return fmt.Errorf("rebuild menu tree: %w", err)
	}
	s.def = def
	s.tree = tree
	s.Ctrl.SetTree(tree)
	return nil
}

// Hovered returns the item currently owning the pointer, if any.
func (s *Session) Hovered() string {
	return s.hovered
}

// SetHovered records the item currently owning the pointer.
func (s *Session) SetHovered(id string) {
	s.hovered = id
}

// Teardown marks the session dead. Callbacks scheduled before teardown check
// Alive and no-op afterwards.
func (s *Session) Teardown() {
	s.tornDown = true
	s.Frames.Cancel()
	s.Hover.Reset()
}

// Alive reports whether the session has not been torn down.
func (s *Session) Alive() bool {
	return !s.tornDown
}
