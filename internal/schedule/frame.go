// Package schedule coalesces layout work into at most one pending pass per
// frame. Any number of requests between two frames collapses into a single
// pass; a layout message from a cancelled generation is dropped on arrival.
package schedule

// Phase distinguishes the first placement pass of a menu chain from the
// follow-up passes that rerun with captured scroll positions.
type Phase int

const (
	// PhaseInitial measures content and places menus for the first time
	// after the chain opened or its structure changed.
	PhaseInitial Phase = iota
	// PhaseReposition re-solves placement for an already-visible chain.
	PhaseReposition
)

func (p Phase) String() string {
	if p == PhaseInitial {
		return "initial"
	}
	return "reposition"
}

// LayoutMsg is the frame tick that drives one layout pass. It carries the
// scheduler generation so stale ticks from a cancelled chain are ignored.
type LayoutMsg struct {
	Gen uint64
}

// Pass describes the work a consumed layout tick should perform.
type Pass struct {
	Phase   Phase
	Rebuild bool
}

// Frame is the coalescing scheduler. It is not safe for concurrent use; the
// update loop owns it.
type Frame struct {
	gen     uint64
	pending bool
	rebuild bool
	phase   Phase
}

// New returns a scheduler whose first pass runs in the initial phase.
func New() *Frame {
	return &Frame{phase: PhaseInitial}
}

// RequestReposition schedules a layout pass. It returns the tick to dispatch
// and whether one is actually needed; while a pass is already pending the
// request folds into it and no new tick is issued.
func (f *Frame) RequestReposition() (LayoutMsg, bool) {
	if f.pending {
		return LayoutMsg{}, false
	}
	f.pending = true
	return LayoutMsg{Gen: f.gen}, true
}

// RequestRebuild schedules a layout pass that must also rebuild the submenu
// tree first. A rebuild resets the phase: the next pass places the chain as
// if freshly opened.
func (f *Frame) RequestRebuild() (LayoutMsg, bool) {
	f.rebuild = true
	f.phase = PhaseInitial
	return f.RequestReposition()
}

// Consume resolves an arrived tick. Stale generations and ticks with nothing
// pending report false. A consumed pass flips the phase so subsequent passes
// reposition instead of re-placing from scratch.
func (f *Frame) Consume(msg LayoutMsg) (Pass, bool) {
	if msg.Gen != f.gen || !f.pending {
		return Pass{}, false
	}
	pass := Pass{Phase: f.phase, Rebuild: f.rebuild}
	f.pending = false
	f.rebuild = false
	f.phase = PhaseReposition
	return pass, true
}

// Cancel drops any pending pass and invalidates in-flight ticks. The next
// scheduled pass starts over in the initial phase.
func (f *Frame) Cancel() {
	f.gen++
	f.pending = false
	f.rebuild = false
	f.phase = PhaseInitial
}

// Pending reports whether a pass is scheduled but not yet consumed.
func (f *Frame) Pending() bool {
	return f.pending
}
