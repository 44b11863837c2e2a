package geometry

import (
	"errors"

	"github.com/cascadeui/cascade/internal/logging/events"
)

// Edge is the horizontal side of its parent a submenu opens on.
type Edge string

const (
	EdgeLeft  Edge = "left"
	EdgeRight Edge = "right"
)

func (e Edge) other() Edge {
	if e == EdgeLeft {
		return EdgeRight
	}
	return EdgeLeft
}

// ErrUnmeasurable signals that a required rectangle is not yet available; the
// pass for that menu is abandoned without touching published geometry.
var ErrUnmeasurable = errors.New("geometry: rect not measurable")

// Placement is the solver's output for one popup.
type Placement struct {
	ID   string
	Rect Rect
	Edge Edge
	// MaxScroll is how many content rows exceed the capped height.
	MaxScroll int
}

// snapshot records the inputs of the last pass so reposition triggers can
// skip menus whose size did not actually change.
type snapshot struct {
	content  Size
	viewport Rect
}

// Solver computes viewport-constrained popup placements. The alignment map
// keeps each open submenu on the edge chosen when it opened, so repeated
// reposition passes do not oscillate between sides.
type Solver struct {
	alignment map[string]Edge
	snapshots map[string]snapshot
}

// NewSolver returns a solver with empty alignment and snapshot state.
func NewSolver() *Solver {
	return &Solver{
		alignment: make(map[string]Edge),
		snapshots: make(map[string]snapshot),
	}
}

// Alignment returns the recorded edge for an open submenu.
func (s *Solver) Alignment(id string) (Edge, bool) {
	e, ok := s.alignment[id]
	return e, ok
}

// Forget drops the alignment and snapshot entries for a closed menu.
func (s *Solver) Forget(id string) {
	delete(s.alignment, id)
	delete(s.snapshots, id)
}

// Reset clears all recorded state. Called when the root menu closes.
func (s *Solver) Reset() {
	s.alignment = make(map[string]Edge)
	s.snapshots = make(map[string]snapshot)
}

// SizeChanged records the pass inputs for id and reports whether they differ
// from the previous pass. Used to break feedback loops with resize signals.
func (s *Solver) SizeChanged(id string, content Size, vp Viewport) bool {
	prev, ok := s.snapshots[id]
	cur := snapshot{content: content, viewport: vp.Padded()}
	s.snapshots[id] = cur
	return !ok || prev != cur
}

// PlaceRoot positions the root popup against its toggle. The popup opens
// below the toggle unless its natural height overflows below and there is
// strictly more room above, in which case it flips above, bottom edge
// anchored to the toggle's top. Offsets are clamped so the popup stays inside
// the padded viewport; height and width are capped to the space that remains.
func (s *Solver) PlaceRoot(id string, toggle Rect, content Size, vp Viewport) (Placement, error) {
	bounds := vp.Padded()
	if bounds.Empty() || toggle.Empty() || content.W <= 0 || content.H <= 0 {
		events.Geometry.Aborted(id, "unmeasurable")
		return Placement{}, ErrUnmeasurable
	}

	below := bounds.Bottom() - toggle.Bottom()
	above := toggle.Y - bounds.Y

	var top, height int
	if content.H > below && above > below {
		height = min(content.H, above)
		top = toggle.Y - height
	} else {
		height = min(content.H, below)
		top = toggle.Bottom()
	}
	if height < 0 {
		height = 0
	}
	top = clamp(top, bounds.Y, bounds.Bottom()-height)

	width := min(content.W, bounds.W)
	left := clamp(toggle.X, bounds.X, bounds.Right()-width)

	p := Placement{
		ID:        id,
		Rect:      Rect{X: left, Y: top, W: width, H: height},
		MaxScroll: max(content.H-height, 0),
	}
	events.Geometry.Placed(id, top, left, width, height, "")
	return p, nil
}

// SubmenuInput collects the measurements a submenu placement depends on.
type SubmenuInput struct {
	ID          string
	ParentFrame Rect // already-placed popup of the parent menu
	ItemIndex   int  // row of the opening item within the parent's content
	// CapturedScroll is the parent's scroll offset recorded when the
	// submenu opened; it is re-clamped against CurrentMaxScroll so late
	// scrolling does not desync the anchor.
	CapturedScroll   int
	CurrentMaxScroll int
	Content          Size
	Preferred        Edge
}

// PlaceSubmenu positions a nested popup against its opening item. The ideal
// top aligns the submenu's first row with the opening item's row; it is
// clamped first into the parent's own vertical extent and then into the
// viewport. The horizontal edge prefers the recorded alignment (or the
// caller's preference), flips when that side overflows, and when both sides
// overflow takes the side with strictly more room.
func (s *Solver) PlaceSubmenu(in SubmenuInput, vp Viewport) (Placement, error) {
	bounds := vp.Padded()
	if bounds.Empty() || in.ParentFrame.Empty() || in.Content.W <= 0 || in.Content.H <= 0 {
		events.Geometry.Aborted(in.ID, "unmeasurable")
		return Placement{}, ErrUnmeasurable
	}

	scroll := clamp(in.CapturedScroll, 0, max(in.CurrentMaxScroll, 0))
	idealTop := in.ParentFrame.Y + in.ItemIndex - scroll
	idealTop = clamp(idealTop, in.ParentFrame.Y, in.ParentFrame.Bottom()-1)

	height := min(in.Content.H, bounds.H)
	top := clamp(idealTop, bounds.Y, bounds.Bottom()-height)

	preferred := in.Preferred
	if preferred == "" {
		preferred = EdgeRight
	}
	if recorded, ok := s.alignment[in.ID]; ok {
		preferred = recorded
	}

	rightAvail := bounds.Right() - in.ParentFrame.Right()
	leftAvail := in.ParentFrame.X - bounds.X
	overflows := func(e Edge) bool {
		if e == EdgeRight {
			return in.Content.W > rightAvail
		}
		return in.Content.W > leftAvail
	}

	edge := preferred
	if overflows(EdgeRight) && overflows(EdgeLeft) {
		if rightAvail > leftAvail {
			edge = EdgeRight
		} else if leftAvail > rightAvail {
			edge = EdgeLeft
		}
	} else if overflows(preferred) {
		edge = preferred.other()
	}
	s.alignment[in.ID] = edge

	var width, left int
	if edge == EdgeRight {
		width = min(in.Content.W, max(rightAvail, 0))
		left = clamp(in.ParentFrame.Right(), bounds.X, bounds.Right()-width)
	} else {
		width = min(in.Content.W, max(leftAvail, 0))
		left = clamp(in.ParentFrame.X-width, bounds.X, bounds.Right()-width)
	}

	p := Placement{
		ID:        in.ID,
		Rect:      Rect{X: left, Y: top, W: width, H: height},
		Edge:      edge,
		MaxScroll: max(in.Content.H-height, 0),
	}
	events.Geometry.Placed(in.ID, top, left, width, height, string(edge))
	return p, nil
}
