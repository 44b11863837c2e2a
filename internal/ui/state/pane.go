package state

import "github.com/cascadeui/cascade/internal/menu"

// Pane encapsulates per-open-menu view state such as cursor position, filter,
// and scroll offset.
type Pane struct {
	MenuID       string
	Items        []menu.Item
	Full         []menu.Item
	Filter       string
	FilterCursor int
	Cursor       int
	LastCursor   int
	ScrollOffset int
}

// NewPane constructs a Pane for the given menu and its full item list.
func NewPane(menuID string, items []menu.Item) *Pane {
	p := &Pane{
		MenuID:     menuID,
		Cursor:     -1,
		LastCursor: -1,
	}
	p.UpdateItems(items)
	return p
}

// IndexOf returns the index of the item with the given ID, or -1.
func (p *Pane) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range p.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems refreshes the pane's item list, reapplying any active filter
// and keeping the scroll offset when it still fits.
func (p *Pane) UpdateItems(items []menu.Item) {
	prevOffset := p.ScrollOffset
	p.Full = CloneItems(items)
	p.applyFilter()
	if len(p.Items) == 0 {
		p.ScrollOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(p.Items)-1 {
		p.ScrollOffset = 0
		return
	}
	p.ScrollOffset = prevOffset
}

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []menu.Item) []menu.Item {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}
