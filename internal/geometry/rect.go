package geometry

// Rect is a cell-coordinate rectangle. X grows right, Y grows down.
type Rect struct {
	X, Y, W, H int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether o lies fully inside r.
func (r Rect) ContainsRect(o Rect) bool {
	if o.Empty() {
		return false
	}
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Size is a width/height pair in cells.
type Size struct {
	W, H int
}

// Insets shrinks a viewport on each side to account for platform rendering
// quirks (status rows, scrollback margins).
type Insets struct {
	Top, Right, Bottom, Left int
}

// Viewport is the visible terminal area the solver must keep popups inside.
type Viewport struct {
	Bounds  Rect
	Padding int
	Insets  Insets
}

// Padded returns the usable area after padding and platform insets.
func (v Viewport) Padded() Rect {
	r := Rect{
		X: v.Bounds.X + v.Padding + v.Insets.Left,
		Y: v.Bounds.Y + v.Padding + v.Insets.Top,
		W: v.Bounds.W - 2*v.Padding - v.Insets.Left - v.Insets.Right,
		H: v.Bounds.H - 2*v.Padding - v.Insets.Top - v.Insets.Bottom,
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
