package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(buildTestTree(t))
}

func TestOpenRootInitializesPath(t *testing.T) {
	c := newTestController(t)
	assert.False(t, c.IsOpen())

	c.OpenRoot(ReasonClickToggle)
	assert.Equal(t, []string{"root"}, c.Path())
	assert.True(t, c.IsOpen())
}

func TestOpenSubmenuBranchSwitch(t *testing.T) {
	c := newTestController(t)
	c.OpenRoot(ReasonClickToggle)

	c.OpenSubmenu("A1")
	assert.Equal(t, []string{"root", "A", "A1"}, c.Path())

	// Opening a divergent branch closes A and A1 in the same transition.
	c.OpenSubmenu("B")
	assert.Equal(t, []string{"root", "B"}, c.Path())

	c.CloseSubmenu("B")
	assert.Equal(t, []string{"root"}, c.Path())
}

func TestOpenSubmenuSingleTransitionOnBranchSwitch(t *testing.T) {
	c := newTestController(t)
	c.OpenRoot(ReasonClickToggle)
	c.OpenSubmenu("A1")

	var transitions [][]string
	c.SetOnChange(func(path []string) {
		transitions = append(transitions, path)
	})
	transitions = nil // drop the mount notification

	c.OpenSubmenu("B")
	require.Len(t, transitions, 1)
	assert.Equal(t, []string{"root", "B"}, transitions[0])
}

func TestOpenSubmenuIdempotent(t *testing.T) {
	c := newTestController(t)
	c.OpenRoot(ReasonClickToggle)

	c.OpenSubmenu("A1")
	first := c.Path()
	c.OpenSubmenu("A1")
	assert.Equal(t, first, c.Path())
}

func TestOpenSubmenuUnknownIDIsNoOp(t *testing.T) {
	c := newTestController(t)
	c.OpenRoot(ReasonClickToggle)
	c.OpenSubmenu("A")

	c.OpenSubmenu("missing")
	assert.Equal(t, []string{"root", "A"}, c.Path())
}

func TestOpenDescendantKeepsAncestors(t *testing.T) {
	c := newTestController(t)
	c.OpenRoot(ReasonClickToggle)
	c.OpenSubmenu("A")

	c.OpenSubmenu("A1")
	assert.Equal(t, []string{"root", "A", "A1"}, c.Path())
}

func TestCloseRootClearsEverything(t *testing.T) {
	c := newTestController(t)
	closed := 0
	c.SetOnClose(func() { closed++ })

	c.OpenRoot(ReasonClickToggle)
	c.OpenSubmenu("A1")
	c.SetPendingFocus("A1")

	c.CloseRoot(ReasonEscapeKey)
	assert.Empty(t, c.Path())
	assert.Equal(t, "", c.TakePendingFocus())
	assert.Equal(t, 1, closed)
}

func TestCloseSubmenuRootDelegates(t *testing.T) {
	c := newTestController(t)
	c.OpenRoot(ReasonClickToggle)
	c.OpenSubmenu("A1")

	c.CloseSubmenu("root")
	assert.Empty(t, c.Path())
}

func TestCloseSubmenuNotInPathIsNoOp(t *testing.T) {
	c := newTestController(t)
	c.OpenRoot(ReasonClickToggle)
	c.OpenSubmenu("A")

	c.CloseSubmenu("B")
	assert.Equal(t, []string{"root", "A"}, c.Path())
}

func TestPendingOpenOnClosedRoot(t *testing.T) {
	c := newTestController(t)

	c.OpenSubmenu("A1")
	assert.Equal(t, []string{"root", "A", "A1"}, c.Path(),
		"pending target applies atomically with the root open")
	assert.Equal(t, "", c.PendingOpen())
}

func TestPendingOpenHeldWhenRootOpenVetoed(t *testing.T) {
	c := newTestController(t)
	allow := false
	c.SetRootDecider(func(open bool, reason Reason) bool { return allow })

	c.OpenSubmenu("A1")
	assert.False(t, c.IsOpen())
	assert.Equal(t, "A1", c.PendingOpen())

	// The embedding caller honors the request later.
	allow = true
	c.OpenRoot(ReasonOpenSubmenu)
	assert.Equal(t, []string{"root", "A", "A1"}, c.Path())
}

func TestClearPendingOpen(t *testing.T) {
	c := newTestController(t)
	c.SetRootDecider(func(bool, Reason) bool { return false })

	c.OpenSubmenu("A1")
	require.Equal(t, "A1", c.PendingOpen())

	c.ClearPendingOpen()
	c.SetRootDecider(nil)
	c.OpenRoot(ReasonClickToggle)
	assert.Equal(t, []string{"root"}, c.Path())
}

func TestPathEdgesAlwaysValid(t *testing.T) {
	c := newTestController(t)
	tree := c.Tree()
	c.OpenRoot(ReasonClickToggle)

	for _, target := range []string{"A", "A1", "B", "A1", "A", "B"} {
		c.OpenSubmenu(target)
		path := c.Path()
		require.LessOrEqual(t, len(path), 3)
		for i := 1; i < len(path); i++ {
			assert.True(t, tree.IsEdge(path[i-1], path[i]),
				"%s→%s must be a tree edge", path[i-1], path[i])
		}
	}
}

func TestSetTreeRevalidatesPath(t *testing.T) {
	c := newTestController(t)
	c.OpenRoot(ReasonClickToggle)
	c.OpenSubmenu("A1")

	// Rebuild without A1: the open path truncates at the broken edge.
	rebuilt, err := Build("root", []Marker{
		{Sub: "A", Parent: "root"},
		{Sub: "B", Parent: "root"},
	})
	require.NoError(t, err)
	c.SetTree(rebuilt)
	assert.Equal(t, []string{"root", "A"}, c.Path())
}

func TestSetTreeNewRootCloses(t *testing.T) {
	c := newTestController(t)
	c.OpenRoot(ReasonClickToggle)

	rebuilt, err := Build("other", nil)
	require.NoError(t, err)
	c.SetTree(rebuilt)
	assert.Empty(t, c.Path())
}

func TestOnChangeFiresAtMount(t *testing.T) {
	c := newTestController(t)
	c.OpenRoot(ReasonClickToggle)

	var got [][]string
	c.SetOnChange(func(path []string) { got = append(got, path) })
	require.Len(t, got, 1)
	assert.Equal(t, []string{"root"}, got[0])
}
