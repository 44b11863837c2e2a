package ui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone/v2"

	"github.com/cascadeui/cascade/internal/session"
)

// View implements tea.Model. The frame is a plain background with the menu
// bar on top, the open popup chain composited over it, and a two-row bottom
// bar for status and the type-ahead prompt.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.MouseMode = tea.MouseModeAllMotion
	v.AltScreen = true
	return v
}

func (m *Model) render() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	base := make([]string, m.height)
	if barRow := m.insets.Top; barRow >= 0 && barRow < len(base) {
		base[barRow] = m.renderMenuBar()
	}
	m.renderBottomBar(base)

	for depth := 1; depth < len(m.path); depth++ {
		id := m.path[depth]
		pl, placed := m.placements[id]
		p := m.panes[id]
		if !placed || p == nil {
			continue
		}
		base = compositeAt(base, m.renderPanel(id, p, pl.Rect.W, pl.Rect.H), pl.Rect.X, pl.Rect.Y)
	}

	return zone.Scan(strings.Join(base, "\n"))
}

func (m *Model) renderMenuBar() string {
	root := m.panes[session.RootID]
	if root == nil {
		return ""
	}
	open := ""
	if len(m.path) > 1 {
		open = m.path[1]
	}
	var b strings.Builder
	b.WriteString(styles.MenuBar.Render(" "))
	for _, item := range root.Items {
		style := styles.Toggle
		if item.ID == open || (open == "" && item.ID == m.sess.Hovered()) {
			style = styles.ActiveToggle
		}
		b.WriteString(zone.Mark(toggleZoneID(item.ID), style.Render(item.Label)))
	}
	bar := b.String()
	if pad := m.width - ansi.StringWidth(bar); pad > 0 {
		bar += styles.MenuBar.Render(strings.Repeat(" ", pad))
	}
	return bar
}

// renderPanel draws one popup at its placed size. A panel too short for its
// items devotes its first and last rows to the scroll hitboxes and windows
// the items between them.
func (m *Model) renderPanel(menuID string, p *pane, w, h int) string {
	scrollable := len(p.Items) > h
	visible := visibleRows(h, len(p.Items))
	rows := make([]string, 0, h)

	if scrollable {
		rows = append(rows, m.renderScrollRow(menuID, "up", p.CanScrollUp(), w))
	}
	if len(p.Items) == 0 {
		msg := "(no entries)"
		if p.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", p.Filter)
		}
		rows = append(rows, styles.Item.Render(padText(" "+msg, w)))
	}
	start := p.ScrollOffset
	if start > len(p.Items) {
		start = len(p.Items)
	}
	end := start + visible
	if end > len(p.Items) {
		end = len(p.Items)
	}
	for idx := start; idx < end; idx++ {
		rows = append(rows, m.renderItemRow(menuID, p, idx, w))
	}
	if scrollable {
		rows = append(rows, m.renderScrollRow(menuID, "down", p.CanScrollDown(visible), w))
	}
	for len(rows) < h {
		rows = append(rows, styles.Panel.Render(padText("", w)))
	}
	if len(rows) > h {
		rows = rows[:h]
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderItemRow(menuID string, p *pane, idx, w int) string {
	item := p.Items[idx]
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	arrowStyle := styles.SubmenuArrow
	if idx == p.Cursor || m.sess.Ctrl.Contains(item.ID) || m.sess.Hovered() == item.ID {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItem
		arrowStyle = styles.SelectedItem
	}
	arrow := "  "
	if item.HasSubmenu() {
		arrow = "▸ "
	}
	room := w - 3 // indicator column and trailing arrow cell
	if room < 1 {
		room = 1
	}
	label := padText(" "+truncateText(item.Label, room-1), room)
	row := indicatorStyle.Render("▌") + lineStyle.Render(label) + arrowStyle.Render(arrow)
	return zone.Mark(itemZoneID(menuID, item.ID), row)
}

func (m *Model) renderScrollRow(menuID, dir string, active bool, w int) string {
	glyph := "▲"
	if dir == "down" {
		glyph = "▼"
	}
	style := styles.ScrollIdle
	if active {
		style = styles.ScrollHitbox
	}
	pad := (w - 1) / 2
	if pad < 0 {
		pad = 0
	}
	row := style.Render(padText(strings.Repeat(" ", pad)+glyph, w))
	return zone.Mark(scrollZoneID(dir, menuID), row)
}

func (m *Model) renderBottomBar(base []string) {
	statusRow := m.height - 2
	promptRow := m.height - 1
	if statusRow <= m.insets.Top || promptRow >= len(base) {
		return
	}
	switch {
	case m.errMsg != "":
		base[statusRow] = styles.Error.Render(truncateText(fmt.Sprintf("Error: %s", m.errMsg), m.width))
	case m.currentInfo() != "":
		base[statusRow] = styles.Info.Render(truncateText(m.infoMsg, m.width))
	case m.showFooter:
		base[statusRow] = styles.Footer.Render(truncateText("↑/↓ move  →/enter open  ← back  esc close  ctrl+c quit", m.width))
	}
	base[promptRow] = m.filterPrompt()
}

func (m *Model) filterPrompt() string {
	p := m.currentPane()
	if p == nil {
		return ""
	}
	prompt := styles.FilterPrompt.Render("> ")
	if p.Filter == "" {
		return prompt + styles.FilterPlaceholder.Render("type to filter")
	}
	return prompt + styles.Filter.Render(truncateText(p.Filter, m.width-2))
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func padText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if pad := width - len([]rune(text)); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
