package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone/v2"

	"github.com/cascadeui/cascade/internal/hover"
	"github.com/cascadeui/cascade/internal/menu"
	"github.com/cascadeui/cascade/internal/session"
)

type hoverTickMsg struct {
	at time.Time
}

func scrollZoneID(dir, menuID string) string { return "scroll/" + dir + "/" + menuID }

func (m *Model) handleMouseClickMsg(msg tea.Msg) tea.Cmd {
	click, ok := msg.(tea.MouseClickMsg)
	if !ok || click.Button != tea.MouseLeft {
		return nil
	}

	if rootPane := m.panes[session.RootID]; rootPane != nil {
		for _, item := range rootPane.Items {
			if zi := zone.Get(toggleZoneID(item.ID)); zi != nil && zi.InBounds(click) {
				m.openToggle(item.ID)
				return nil
			}
		}
	}

	path := m.sess.Ctrl.Path()
	for depth := len(path) - 1; depth >= 1; depth-- {
		id := path[depth]
		p := m.panes[id]
		pl, placed := m.placements[id]
		if p == nil || !placed {
			continue
		}
		if zi := zone.Get(scrollZoneID("up", id)); zi != nil && zi.InBounds(click) {
			if p.ScrollBy(-1, m.visibleRowsFor(id)) {
				m.requestLayout()
			}
			return nil
		}
		if zi := zone.Get(scrollZoneID("down", id)); zi != nil && zi.InBounds(click) {
			if p.ScrollBy(1, m.visibleRowsFor(id)) {
				m.requestLayout()
			}
			return nil
		}
		for _, item := range p.Items {
			if zi := zone.Get(itemZoneID(id, item.ID)); zi != nil && zi.InBounds(click) {
				m.clickItem(id, item)
				return nil
			}
		}
		// Clicks on a popup's dead space stay inside the menu system.
		if pl.Rect.Contains(click.X, click.Y) {
			return nil
		}
	}

	if click.Y == m.insets.Top {
		return nil // menu bar background
	}
	if m.sess.Ctrl.IsOpen() {
		m.sess.Ctrl.CloseRoot(menu.ReasonClickOutside)
	}
	return nil
}

func (m *Model) clickItem(menuID string, item menu.Item) {
	m.nav.SetFocus(menuID, item.ID)
	m.FocusItem(menuID, item.ID)
	if item.HasSubmenu() {
		if m.sess.Ctrl.Contains(item.ID) {
			m.sess.Ctrl.CloseSubmenu(item.ID)
		} else {
			m.sess.Ctrl.OpenSubmenu(item.ID)
		}
		return
	}
	m.activateItem(item)
}

func (m *Model) handleMouseMotionMsg(msg tea.Msg) tea.Cmd {
	motion, ok := msg.(tea.MouseMotionMsg)
	if !ok {
		return nil
	}
	now := time.Now()
	m.updateHoverState(motion, now)
	return m.scheduleHoverTick(now)
}

// updateHoverState diffs logical containment against the coordinator's view
// and feeds it the enter/leave transitions. Containment for an item spans its
// own row plus, when its submenu is open, every popup of that open branch, so
// the pointer travelling into a detached submenu never counts as leaving the
// item that spawned it.
func (m *Model) updateHoverState(msg tea.MouseMsg, now time.Time) {
	mouse := msg.Mouse()
	hovered := ""
	path := m.sess.Ctrl.Path()

	if rootPane := m.panes[session.RootID]; rootPane != nil {
		for _, item := range rootPane.Items {
			zi := zone.Get(toggleZoneID(item.ID))
			onRow := zi != nil && zi.InBounds(msg)
			if onRow {
				hovered = item.ID
			}
			m.transition(item.ID, onRow || m.branchContains(path, item.ID, mouse.X, mouse.Y), now)
		}
	}

	for depth := 1; depth < len(path); depth++ {
		p := m.panes[path[depth]]
		if p == nil {
			continue
		}
		for _, item := range p.Items {
			zi := zone.Get(itemZoneID(path[depth], item.ID))
			onRow := zi != nil && zi.InBounds(msg)
			if onRow {
				hovered = item.ID
			}
			if !item.HasSubmenu() {
				continue
			}
			m.transition(item.ID, onRow || m.branchContains(path, item.ID, mouse.X, mouse.Y), now)
		}
	}

	m.sess.SetHovered(hovered)
}

func (m *Model) transition(itemID string, inside bool, now time.Time) {
	switch {
	case inside && !m.sess.Hover.Inside(itemID):
		m.sess.Hover.Enter(itemID, now)
	case !inside && m.sess.Hover.Inside(itemID):
		m.sess.Hover.Leave(itemID, now)
	}
}

// branchContains reports whether (x, y) falls inside the open popup chain
// rooted at the item's submenu.
func (m *Model) branchContains(path []string, itemID string, x, y int) bool {
	from := -1
	for depth, id := range path {
		if id == itemID {
			from = depth
			break
		}
	}
	if from < 1 {
		return false
	}
	for depth := from; depth < len(path); depth++ {
		if pl, ok := m.placements[path[depth]]; ok && pl.Rect.Contains(x, y) {
			return true
		}
	}
	return false
}

func (m *Model) scheduleHoverTick(now time.Time) tea.Cmd {
	deadline, ok := m.sess.Hover.NextDeadline()
	if !ok {
		return nil
	}
	wait := deadline.Sub(now)
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg { return hoverTickMsg{at: t} })
}

func (m *Model) handleHoverTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(hoverTickMsg)
	if !ok || !m.sess.Alive() {
		return nil
	}
	for _, req := range m.sess.Hover.Due(tick.at) {
		switch req.Kind {
		case hover.RequestOpen:
			if m.sess.Ctrl.Contains(req.ItemID) {
				continue
			}
			m.sess.Ctrl.OpenSubmenu(req.ItemID)
		case hover.RequestClose:
			// Top-level dropdowns only close on an explicit dismissal.
			if m.pathDepth(req.ItemID) >= 2 {
				m.sess.Ctrl.CloseSubmenu(req.ItemID)
			}
		}
	}
	return m.scheduleHoverTick(tick.at)
}

func (m *Model) pathDepth(id string) int {
	for depth, open := range m.sess.Ctrl.Path() {
		if open == id {
			return depth
		}
	}
	return -1
}

func (m *Model) handleMouseWheelMsg(msg tea.Msg) tea.Cmd {
	wheel, ok := msg.(tea.MouseWheelMsg)
	if !ok {
		return nil
	}
	delta := 0
	switch wheel.Button {
	case tea.MouseWheelUp:
		delta = -1
	case tea.MouseWheelDown:
		delta = 1
	default:
		return nil
	}
	mouse := wheel.Mouse()
	path := m.sess.Ctrl.Path()
	for depth := len(path) - 1; depth >= 1; depth-- {
		id := path[depth]
		pl, placed := m.placements[id]
		if !placed || !pl.Rect.Contains(mouse.X, mouse.Y) {
			continue
		}
		if p := m.panes[id]; p != nil && p.ScrollBy(delta, m.visibleRowsFor(id)) {
			m.requestLayout()
		}
		return nil
	}
	return nil
}
