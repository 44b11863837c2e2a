package ui

import (
	"unicode"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/cascadeui/cascade/internal/keynav"
	"github.com/cascadeui/cascade/internal/logging/events"
	"github.com/cascadeui/cascade/internal/session"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(k, m.keys.Quit):
		events.App.Shutdown("interrupt")
		return tea.Quit
	case key.Matches(k, m.keys.Escape):
		return m.handleEscape()
	case key.Matches(k, m.keys.Up):
		m.navigate(keynav.KeyUp)
		return nil
	case key.Matches(k, m.keys.Down):
		m.navigate(keynav.KeyDown)
		return nil
	case key.Matches(k, m.keys.Left):
		m.navigate(keynav.KeyLeft)
		return nil
	case key.Matches(k, m.keys.Right):
		m.navigate(keynav.KeyRight)
		return nil
	case key.Matches(k, m.keys.Enter):
		m.navigate(keynav.KeyEnter)
		return nil
	case key.Matches(k, m.keys.Home):
		m.moveCursorHome()
		return nil
	case key.Matches(k, m.keys.End):
		m.moveCursorEnd()
		return nil
	case key.Matches(k, m.keys.PageUp):
		m.moveCursorPageUp()
		return nil
	case key.Matches(k, m.keys.PageDown):
		m.moveCursorPageDown()
		return nil
	}
	m.handleTextInput(k)
	return nil
}

// handleEscape peels state back one layer at a time: an active type-ahead
// query first, then the open menu chain, and with nothing left the program.
func (m *Model) handleEscape() tea.Cmd {
	if p := m.currentPane(); p != nil && p.Filter != "" {
		p.ClearFilter()
		events.Filter.Cleared(p.MenuID)
		m.errMsg = ""
		m.forceClearInfo()
		m.requestLayout()
		return nil
	}
	if m.sess.Ctrl.IsOpen() {
		m.nav.Handle(keynav.KeyEscape)
		return nil
	}
	events.App.Shutdown("escape")
	return tea.Quit
}

func (m *Model) navigate(k keynav.Key) {
	if !m.sess.Ctrl.IsOpen() {
		if k != keynav.KeyDown && k != keynav.KeyEnter {
			events.Keys.Ignored("menu-closed")
			return
		}
		root := m.panes[session.RootID]
		if root == nil || len(root.Items) == 0 {
			return
		}
		id := root.Items[0].ID
		m.sess.Ctrl.SetPendingFocus(id)
		m.openToggle(id)
		return
	}
	m.nav.Handle(k)
}

func (m *Model) moveCursorHome() {
	if p := m.currentPane(); p != nil && p.MoveCursorHome() {
		m.syncCursorFocus(p)
	}
}

func (m *Model) moveCursorEnd() {
	if p := m.currentPane(); p != nil && p.MoveCursorEnd() {
		m.syncCursorFocus(p)
	}
}

func (m *Model) moveCursorPageUp() {
	if p := m.currentPane(); p != nil && p.MoveCursorPageUp(m.visibleRowsFor(p.MenuID)) {
		m.syncCursorFocus(p)
	}
}

func (m *Model) moveCursorPageDown() {
	if p := m.currentPane(); p != nil && p.MoveCursorPageDown(m.visibleRowsFor(p.MenuID)) {
		m.syncCursorFocus(p)
	}
}

// syncCursorFocus pushes a pane-local cursor move back into the navigator
// so the next arrow key continues from the same item.
func (m *Model) syncCursorFocus(p *pane) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return
	}
	id := p.Items[p.Cursor].ID
	m.nav.SetFocus(p.MenuID, id)
	events.Keys.Focus(id)
	p.EnsureCursorVisible(m.visibleRowsFor(p.MenuID))
	m.requestLayout()
}

// handleTextInput feeds printable keys into the deepest open menu's
// type-ahead filter.
func (m *Model) handleTextInput(k tea.KeyPressMsg) bool {
	current := m.currentPane()
	if current == nil {
		return false
	}
	switch k.String() {
	case "backspace", "ctrl+h":
		if !current.DeleteFilterRuneBackward() {
			return false
		}
		events.Filter.Changed(current.MenuID, current.Filter)
		m.errMsg = ""
		m.forceClearInfo()
		m.requestLayout()
		return true
	case "ctrl+u":
		if !current.ClearFilter() {
			return false
		}
		events.Filter.Cleared(current.MenuID)
		m.errMsg = ""
		m.forceClearInfo()
		m.requestLayout()
		return true
	}
	if k.Text == "" {
		return false
	}
	for _, r := range k.Text {
		if unicode.IsControl(r) {
			return false
		}
	}
	if !current.InsertFilterText(k.Text) {
		return false
	}
	events.Filter.Changed(current.MenuID, current.Filter)
	m.errMsg = ""
	m.forceClearInfo()
	m.requestLayout()
	return true
}
