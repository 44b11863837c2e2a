package ui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone/v2"

	"github.com/cascadeui/cascade/internal/geometry"
	"github.com/cascadeui/cascade/internal/logging"
	"github.com/cascadeui/cascade/internal/logging/events"
	"github.com/cascadeui/cascade/internal/schedule"
)

func toggleZoneID(id string) string { return "toggle/" + id }

func itemZoneID(menuID, itemID string) string { return "item/" + menuID + "/" + itemID }

// handleLayoutMsg runs one coalesced layout pass: optional tree rebuild, then
// placement of every open menu in depth order.
func (m *Model) handleLayoutMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(schedule.LayoutMsg)
	if !ok || !m.sess.Alive() {
		return nil
	}
	pass, ok := m.sess.Frames.Consume(tick)
	if !ok {
		return nil
	}
	if pass.Rebuild {
		m.applyRebuild()
	}
	m.solvePlacements(pass)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.requestLayout()
	return nil
}

// applyRebuild swaps in the latest loaded definition and refreshes every
// pane's item list. A definition that fails to build keeps the previous tree.
func (m *Model) applyRebuild() {
	if !m.defs.Loaded() {
		return
	}
	if err := m.sess.ReplaceDefinition(m.defs.Definition()); err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return
	}
	events.Menu.TreeRebuilt(m.sess.Tree().Len())
	for id, p := range m.panes {
		p.UpdateItems(m.sess.MenuItems(id))
	}
}

func (m *Model) viewport() geometry.Viewport {
	insets := m.insets
	insets.Top++    // menu bar row
	insets.Bottom += 2 // status + filter prompt rows
	return geometry.Viewport{
		Bounds:  geometry.Rect{W: m.width, H: m.height},
		Padding: m.padding,
		Insets:  insets,
	}
}

// solvePlacements places the open chain root-first. A menu whose inputs
// cannot be measured aborts placement for itself and everything deeper;
// previously published placements stay as they were.
func (m *Model) solvePlacements(pass schedule.Pass) {
	path := m.sess.Ctrl.Path()
	if len(path) < 2 {
		m.placements = make(map[string]geometry.Placement)
		return
	}
	vp := m.viewport()
	for depth := 1; depth < len(path); depth++ {
		id := path[depth]
		p := m.panes[id]
		if p == nil {
			events.Geometry.Aborted(id, "no pane")
			return
		}
		content := m.contentSize(p)
		changed := m.sess.Solver.SizeChanged(id, content, vp)
		if pass.Phase == schedule.PhaseReposition && !changed {
			if _, placed := m.placements[id]; placed {
				events.Geometry.PassSkipped(id)
				continue
			}
		}

		var (
			pl  geometry.Placement
			err error
		)
		if depth == 1 {
			toggle, ok := zoneRect(toggleZoneID(id))
			if !ok {
				events.Geometry.Aborted(id, "missing toggle rect")
				return
			}
			pl, err = m.sess.Solver.PlaceRoot(id, toggle, content, vp)
		} else {
			parentID := path[depth-1]
			parentPl, placed := m.placements[parentID]
			parentPane := m.panes[parentID]
			if !placed || parentPane == nil {
				events.Geometry.Aborted(id, "parent not placed")
				return
			}
			idx := parentPane.IndexOf(id)
			if idx < 0 {
				events.Geometry.Aborted(id, "host item not visible")
				return
			}
			parentVisible := visibleRows(parentPl.Rect.H, len(parentPane.Items))
			if len(parentPane.Items) > parentPl.Rect.H {
				idx++ // top scroll hitbox row shifts content down
			}
			pl, err = m.sess.Solver.PlaceSubmenu(geometry.SubmenuInput{
				ID:               id,
				ParentFrame:      parentPl.Rect,
				ItemIndex:        idx,
				CapturedScroll:   m.captured[id],
				CurrentMaxScroll: parentPane.MaxScroll(parentVisible),
				Content:          content,
				Preferred:        geometry.EdgeRight,
			}, vp)
		}
		if err != nil {
			return
		}
		m.placements[id] = pl
		p.ScrollBy(0, visibleRows(pl.Rect.H, len(p.Items)))
	}
}

// contentSize measures a menu's natural size from its (filtered) items.
func (m *Model) contentSize(p *pane) geometry.Size {
	w := 0
	for _, item := range p.Items {
		lw := ansi.StringWidth(item.Label)
		if item.HasSubmenu() {
			lw += 2 // trailing submenu arrow
		}
		if lw > w {
			w = lw
		}
	}
	w += 4 // indicator column and padding
	h := len(p.Items)
	if h == 0 {
		h = 1 // room for the "no matches" row
	}
	return geometry.Size{W: w, H: h}
}

// visibleRows returns how many item rows fit in a panel of the given height.
// A panel too short for its items reserves its first and last rows for the
// scroll hitboxes.
func visibleRows(height, total int) int {
	if total > height {
		v := height - 2
		if v < 1 {
			v = 1
		}
		return v
	}
	return height
}

func (m *Model) visibleRowsFor(menuID string) int {
	p := m.panes[menuID]
	if p == nil {
		return 0
	}
	pl, ok := m.placements[menuID]
	if !ok {
		return len(p.Items)
	}
	return visibleRows(pl.Rect.H, len(p.Items))
}

func zoneRect(id string) (geometry.Rect, bool) {
	zi := zone.Get(id)
	if zi == nil || zi.IsZero() {
		return geometry.Rect{}, false
	}
	return geometry.Rect{
		X: zi.StartX,
		Y: zi.StartY,
		W: zi.EndX - zi.StartX + 1,
		H: zi.EndY - zi.StartY + 1,
	}, true
}
