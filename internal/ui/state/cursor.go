package state

// MoveCursorHome moves the cursor to the first item.
func (p *Pane) MoveCursorHome() bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (p *Pane) MoveCursorEnd() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = n - 1
	return old != p.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (p *Pane) MoveCursorPageUp(maxVisible int) bool {
	return p.moveCursorBy(-p.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (p *Pane) MoveCursorPageDown(maxVisible int) bool {
	return p.moveCursorBy(p.pageSize(maxVisible))
}

func (p *Pane) moveCursorBy(delta int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	return p.Cursor != old
}

func (p *Pane) pageSize(maxVisible int) int {
	total := len(p.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// MaxScroll returns the largest valid scroll offset for the given window.
func (p *Pane) MaxScroll(maxVisible int) int {
	if maxVisible <= 0 {
		return 0
	}
	m := len(p.Items) - maxVisible
	if m < 0 {
		return 0
	}
	return m
}

// CanScrollUp reports whether rows are hidden above the window. The view
// shows the up scroll hitbox exactly when this holds.
func (p *Pane) CanScrollUp() bool {
	return p.ScrollOffset > 0
}

// CanScrollDown reports whether rows are hidden below the window.
func (p *Pane) CanScrollDown(maxVisible int) bool {
	return p.ScrollOffset < p.MaxScroll(maxVisible)
}

// ScrollBy shifts the window without moving the cursor, clamped to the valid
// range. Reports whether the offset changed.
func (p *Pane) ScrollBy(delta, maxVisible int) bool {
	old := p.ScrollOffset
	p.ScrollOffset += delta
	if p.ScrollOffset < 0 {
		p.ScrollOffset = 0
	}
	if m := p.MaxScroll(maxVisible); p.ScrollOffset > m {
		p.ScrollOffset = m
	}
	return p.ScrollOffset != old
}

// EnsureCursorVisible adjusts the scroll offset so the cursor stays visible.
func (p *Pane) EnsureCursorVisible(maxVisible int) {
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ScrollOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if maxVisible <= 0 {
		p.ScrollOffset = 0
		return
	}
	maxOffset := p.MaxScroll(maxVisible)
	if p.ScrollOffset > maxOffset {
		p.ScrollOffset = maxOffset
	}
	if p.ScrollOffset < 0 {
		p.ScrollOffset = 0
	}
	if p.Cursor < p.ScrollOffset {
		p.ScrollOffset = p.Cursor
	}
	upper := p.ScrollOffset + maxVisible - 1
	if p.Cursor > upper {
		p.ScrollOffset = p.Cursor - maxVisible + 1
		if p.ScrollOffset < 0 {
			p.ScrollOffset = 0
		}
		if p.ScrollOffset > maxOffset {
			p.ScrollOffset = maxOffset
		}
	}
}
