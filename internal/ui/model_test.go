package ui

import (
	"os"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone/v2"

	"github.com/cascadeui/cascade/internal/geometry"
	"github.com/cascadeui/cascade/internal/menu"
	"github.com/cascadeui/cascade/internal/session"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newTestModel(t *testing.T) (*Model, *Harness) {
	t.Helper()
	sess, err := session.New(menu.DefaultDefinition(), 200*time.Millisecond, 400*time.Millisecond)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	m := NewModel(sess, 80, 24, 0, false, false, nil, "")
	h := NewHarness(m)
	return m, h
}

func pathEquals(t *testing.T, m *Model, want ...string) {
	t.Helper()
	got := m.sess.Ctrl.Path()
	if len(got) != len(want) {
		t.Fatalf("open path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("open path = %v, want %v", got, want)
		}
	}
}

func TestToggleClickOpensAndCloses(t *testing.T) {
	m, _ := newTestModel(t)

	m.openToggle("file")
	pathEquals(t, m, session.RootID, "file")
	if m.panes["file"] == nil {
		t.Fatalf("expected a pane for the opened dropdown")
	}

	m.openToggle("file")
	pathEquals(t, m)
	if m.panes["file"] != nil {
		t.Fatalf("closed dropdown should drop its pane")
	}
	if m.panes[session.RootID] == nil {
		t.Fatalf("menu bar pane must survive a close")
	}
}

func TestToggleSwitchReplacesBranch(t *testing.T) {
	m, _ := newTestModel(t)

	m.openToggle("file")
	m.sess.Ctrl.OpenSubmenu("file:open")
	pathEquals(t, m, session.RootID, "file", "file:open")

	m.openToggle("edit")
	pathEquals(t, m, session.RootID, "edit")
	if m.panes["file:open"] != nil {
		t.Fatalf("switching toggles should drop the old branch's panes")
	}
}

func TestHoverOverToggleWhileClosedStaysPending(t *testing.T) {
	m, h := newTestModel(t)

	now := time.Now()
	m.sess.Hover.Enter("edit", now)
	h.Send(hoverTickMsg{at: now.Add(time.Second)})

	pathEquals(t, m)
	if got := m.sess.Ctrl.PendingOpen(); got != "edit" {
		t.Fatalf("pending open = %q, want %q", got, "edit")
	}

	m.openToggle("edit")
	pathEquals(t, m, session.RootID, "edit")
}

func TestHoverDwellOpensSubmenuWhileOpen(t *testing.T) {
	m, h := newTestModel(t)
	m.openToggle("file")

	now := time.Now()
	m.sess.Hover.Enter("file:open", now)
	h.Send(hoverTickMsg{at: now.Add(time.Second)})

	pathEquals(t, m, session.RootID, "file", "file:open")
}

func TestHoverCloseDwellSparesTopLevelDropdown(t *testing.T) {
	m, h := newTestModel(t)
	m.openToggle("file")
	m.sess.Ctrl.OpenSubmenu("file:open")

	now := time.Now()
	m.sess.Hover.Enter("file:open", now)
	_ = m.sess.Hover.Due(now.Add(time.Second))
	m.sess.Hover.Leave("file:open", now.Add(2*time.Second))
	h.Send(hoverTickMsg{at: now.Add(10 * time.Second)})
	pathEquals(t, m, session.RootID, "file")

	m.sess.Hover.Enter("file", now.Add(20*time.Second))
	_ = m.sess.Hover.Due(now.Add(30 * time.Second))
	m.sess.Hover.Leave("file", now.Add(40*time.Second))
	h.Send(hoverTickMsg{at: now.Add(60 * time.Second)})
	pathEquals(t, m, session.RootID, "file")
}

func TestKeyboardOpensFirstToggleWhenClosed(t *testing.T) {
	m, h := newTestModel(t)

	h.Send(tea.KeyPressMsg{Code: tea.KeyDown})
	pathEquals(t, m, session.RootID, "file")

	p := m.panes["file"]
	if p == nil {
		t.Fatalf("expected pane for opened dropdown")
	}
	if p.Cursor != 0 {
		t.Fatalf("cursor = %d, want 0 (first item focused on keyboard open)", p.Cursor)
	}
}

func TestEscapePeelsFilterThenMenuThenQuits(t *testing.T) {
	m, h := newTestModel(t)
	m.openToggle("file")

	h.Send(tea.KeyPressMsg{Code: 'o', Text: "o"})
	if got := m.panes["file"].Filter; got != "o" {
		t.Fatalf("filter = %q, want %q", got, "o")
	}

	h.Send(tea.KeyPressMsg{Code: tea.KeyEscape})
	if got := m.panes["file"].Filter; got != "" {
		t.Fatalf("escape should clear the filter first, still %q", got)
	}
	pathEquals(t, m, session.RootID, "file")

	h.Send(tea.KeyPressMsg{Code: tea.KeyEscape})
	pathEquals(t, m)

	if cmd := m.handleEscape(); cmd == nil {
		t.Fatalf("escape with everything closed should quit")
	}
}

func TestTypeAheadFiltersDeepestMenu(t *testing.T) {
	m, h := newTestModel(t)
	m.openToggle("file")

	h.Send(tea.KeyPressMsg{Code: 'q', Text: "q"})
	p := m.panes["file"]
	if len(p.Items) != 1 || p.Items[0].ID != "file:quit" {
		t.Fatalf("filtered items = %v, want only file:quit", p.Items)
	}

	h.Send(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if len(p.Items) != 3 {
		t.Fatalf("backspace should restore all %d items, got %d", 3, len(p.Items))
	}
}

func TestActivateLeafClosesAndReportsInfo(t *testing.T) {
	m, h := newTestModel(t)
	m.openToggle("file")

	m.activateItem(menu.Item{ID: "file:new", Label: "New"})
	for _, cmd := range m.queued {
		h.processCmd(cmd)
	}
	m.queued = nil

	pathEquals(t, m)
	if m.infoMsg != "New" {
		t.Fatalf("info = %q, want %q", m.infoMsg, "New")
	}
}

func TestWheelScrollsPaneUnderPointer(t *testing.T) {
	m, _ := newTestModel(t)
	m.openToggle("file")

	items := make([]menu.Item, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, menu.Item{ID: string(rune('a' + i)), Label: "Item"})
	}
	p := m.panes["file"]
	p.UpdateItems(items)
	m.placements["file"] = geometry.Placement{
		ID:   "file",
		Rect: geometry.Rect{X: 2, Y: 1, W: 20, H: 8},
	}

	wheel := tea.MouseWheelMsg{X: 5, Y: 3, Button: tea.MouseWheelDown}
	m.handleMouseWheelMsg(wheel)
	if p.ScrollOffset != 1 {
		t.Fatalf("scroll offset = %d, want 1", p.ScrollOffset)
	}

	away := tea.MouseWheelMsg{X: 60, Y: 20, Button: tea.MouseWheelDown}
	m.handleMouseWheelMsg(away)
	if p.ScrollOffset != 1 {
		t.Fatalf("wheel outside the popup must not scroll, offset = %d", p.ScrollOffset)
	}
}

func TestHoverRequestForOpenMenuIsAbsorbed(t *testing.T) {
	m, h := newTestModel(t)
	m.openToggle("file")
	m.sess.Ctrl.OpenSubmenu("file:open")

	now := time.Now()
	m.sess.Hover.Enter("file:open", now)
	h.Send(hoverTickMsg{at: now.Add(time.Second)})
	pathEquals(t, m, session.RootID, "file", "file:open")
}

func TestCapturedScrollRecordedAtSubmenuOpen(t *testing.T) {
	m, _ := newTestModel(t)
	m.openToggle("file")

	m.panes["file"].ScrollOffset = 3
	m.sess.Ctrl.OpenSubmenu("file:open")

	if got := m.captured["file:open"]; got != 3 {
		t.Fatalf("captured scroll = %d, want 3", got)
	}
	m.sess.Ctrl.CloseSubmenu("file:open")
	if _, ok := m.captured["file:open"]; ok {
		t.Fatalf("captured scroll must be forgotten on close")
	}
}

func TestBranchContainsSpansOpenChain(t *testing.T) {
	m, _ := newTestModel(t)
	m.openToggle("file")
	m.sess.Ctrl.OpenSubmenu("file:open")
	m.placements["file"] = geometry.Placement{Rect: geometry.Rect{X: 1, Y: 1, W: 10, H: 5}}
	m.placements["file:open"] = geometry.Placement{Rect: geometry.Rect{X: 11, Y: 2, W: 10, H: 4}}

	path := m.sess.Ctrl.Path()
	if !m.branchContains(path, "file", 15, 3) {
		t.Fatalf("pointer in a nested popup still counts as inside the toggle branch")
	}
	if !m.branchContains(path, "file:open", 15, 3) {
		t.Fatalf("pointer in the submenu popup is inside the host item's branch")
	}
	if m.branchContains(path, "file:open", 2, 2) {
		t.Fatalf("pointer in the parent popup is outside the submenu branch")
	}
}

func TestDueRequestKindsRouteToController(t *testing.T) {
	m, h := newTestModel(t)
	m.openToggle("file")
	m.sess.Ctrl.OpenSubmenu("file:open")
	m.sess.Ctrl.OpenSubmenu("file:open:recent")
	pathEquals(t, m, session.RootID, "file", "file:open", "file:open:recent")

	now := time.Now()
	m.sess.Hover.Enter("file:open:recent", now)
	_ = m.sess.Hover.Due(now.Add(time.Second)) // open fires, already open
	m.sess.Hover.Leave("file:open:recent", now.Add(2*time.Second))
	h.Send(hoverTickMsg{at: now.Add(10 * time.Second)})

	pathEquals(t, m, session.RootID, "file", "file:open")
	if m.sess.Hover.Inside("file:open:recent") {
		t.Fatalf("containment should read outside after leave")
	}
}

func TestBranchSwitchForgetsHoverState(t *testing.T) {
	m, _ := newTestModel(t)
	m.openToggle("file")
	m.sess.Ctrl.OpenSubmenu("file:open")

	now := time.Now()
	m.sess.Hover.Enter("file:open", now)

	m.openToggle("edit")
	pathEquals(t, m, session.RootID, "edit")
	if m.sess.Hover.Inside("file:open") {
		t.Fatalf("item of a closed pane must not stay logically hovered")
	}
	if reqs := m.sess.Hover.Due(now.Add(time.Minute)); len(reqs) != 0 {
		t.Fatalf("dwell from the closed branch fired: %v", reqs)
	}

	// After the branch reopens, entry schedules a fresh dwell instead of
	// being swallowed by stale containment.
	m.openToggle("file")
	m.sess.Hover.Enter("file:open", now.Add(time.Minute))
	if _, ok := m.sess.Hover.NextDeadline(); !ok {
		t.Fatalf("re-entry after reopen must schedule an open dwell")
	}
}

func TestBranchSwitchDropsStalePlacement(t *testing.T) {
	m, _ := newTestModel(t)
	m.openToggle("file")
	m.placements["file"] = geometry.Placement{
		ID:   "file",
		Rect: geometry.Rect{X: 2, Y: 1, W: 12, H: 5},
	}

	m.openToggle("edit")
	if _, ok := m.placements["file"]; ok {
		t.Fatalf("placement of a closed dropdown must not survive the switch")
	}
}

func TestHomeEndAndPagingKeys(t *testing.T) {
	m, h := newTestModel(t)
	m.openToggle("file")

	items := make([]menu.Item, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, menu.Item{ID: string(rune('a' + i)), Label: "Item"})
	}
	p := m.panes["file"]
	p.UpdateItems(items)
	m.placements["file"] = geometry.Placement{
		ID:   "file",
		Rect: geometry.Rect{X: 2, Y: 1, W: 20, H: 8},
	}

	h.Send(tea.KeyPressMsg{Code: tea.KeyEnd})
	if p.Cursor != 11 {
		t.Fatalf("end cursor = %d, want 11", p.Cursor)
	}
	if p.ScrollOffset != 6 {
		t.Fatalf("end scroll offset = %d, want 6", p.ScrollOffset)
	}

	h.Send(tea.KeyPressMsg{Code: tea.KeyHome})
	if p.Cursor != 0 {
		t.Fatalf("home cursor = %d, want 0", p.Cursor)
	}
	if p.ScrollOffset != 0 {
		t.Fatalf("home scroll offset = %d, want 0", p.ScrollOffset)
	}

	h.Send(tea.KeyPressMsg{Code: tea.KeyPgDown})
	if p.Cursor != 6 {
		t.Fatalf("pgdown cursor = %d, want 6", p.Cursor)
	}

	h.Send(tea.KeyPressMsg{Code: tea.KeyPgUp})
	if p.Cursor != 0 {
		t.Fatalf("pgup cursor = %d, want 0", p.Cursor)
	}
}
