package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascadeui/cascade/internal/geometry"
	"github.com/cascadeui/cascade/internal/menu"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(menu.DefaultDefinition(), 200*time.Millisecond, 300*time.Millisecond)
	require.NoError(t, err)
	return s
}

func TestMenuItemsResolvesTogglesAndSubmenus(t *testing.T) {
	s := newSession(t)

	toggles := s.MenuItems(RootID)
	require.Len(t, toggles, 3)
	assert.Equal(t, "file", toggles[0].ID)
	assert.True(t, toggles[0].HasSubmenu())

	items := s.MenuItems("file:open")
	require.Len(t, items, 2)
	assert.Equal(t, "file:open:recent", items[0].ID)

	assert.Nil(t, s.MenuItems("no-such-menu"))
}

func TestCloseRootResetsPlacementAndHover(t *testing.T) {
	s := newSession(t)
	vp := geometry.Viewport{Bounds: geometry.Rect{W: 80, H: 24}}

	s.Ctrl.OpenSubmenu("file")
	require.Equal(t, []string{RootID, "file"}, s.Ctrl.Path())

	content := geometry.Size{W: 12, H: 4}
	s.Solver.SizeChanged("file", content, vp)
	require.False(t, s.Solver.SizeChanged("file", content, vp))
	s.SetHovered("file:open")
	s.Hover.Enter("file:open", time.Now())
	s.Frames.RequestReposition()

	s.Ctrl.CloseRoot(menu.ReasonEscapeKey)

	assert.Empty(t, s.Hovered())
	assert.False(t, s.Frames.Pending())
	// Snapshots were dropped, so the same inputs read as changed again.
	assert.True(t, s.Solver.SizeChanged("file", content, vp))
	_, ok := s.Hover.NextDeadline()
	assert.False(t, ok)
}

func TestReplaceDefinitionRevalidatesOpenPath(t *testing.T) {
	s := newSession(t)
	s.Ctrl.OpenSubmenu("file")
	s.Ctrl.OpenSubmenu("file:open")
	require.Equal(t, []string{RootID, "file", "file:open"}, s.Ctrl.Path())

	// Drop the nested open submenu from the definition; the open path
	// truncates at the broken edge.
	def := menu.Definition{Menus: []menu.ItemDef{
		{ID: "file", Label: "File", Items: []menu.ItemDef{
			{ID: "file:new", Label: "New"},
		}},
	}}
	require.NoError(t, s.ReplaceDefinition(def))

	assert.Equal(t, []string{RootID, "file"}, s.Ctrl.Path())
	assert.Len(t, s.MenuItems(RootID), 1)
}

func TestReplaceDefinitionRejectsBadBuildAndKeepsState(t *testing.T) {
	s := newSession(t)
	before := s.Tree().Len()

	bad := menu.Definition{Menus: []menu.ItemDef{
		{ID: "a", Label: "A", Items: []menu.ItemDef{{ID: "x", Label: "X"}}},
		{ID: "a", Label: "A again", Items: []menu.ItemDef{{ID: "y", Label: "Y"}}},
	}}
	err := s.ReplaceDefinition(bad)
	require.Error(t, err)
	assert.Equal(t, before, s.Tree().Len())
	assert.Equal(t, "cascade", s.Definition().Title)
}

func TestTeardown(t *testing.T) {
	s := newSession(t)
	require.True(t, s.Alive())

	s.Frames.RequestReposition()
	s.Teardown()

	assert.False(t, s.Alive())
	assert.False(t, s.Frames.Pending())
}
