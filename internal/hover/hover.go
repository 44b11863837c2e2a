// Package hover turns logical pointer enter/leave transitions into dwell-
// debounced open and close requests. Logical containment — whether the
// pointer counts as inside an item's whole interactive subtree, detached
// submenus and scroll hitboxes included — is resolved by the caller; this
// package only owns the timing.
package hover

import (
	"sort"
	"time"

	"github.com/cascadeui/cascade/internal/logging/events"
)

// RequestKind says what a fired dwell timer asks for.
type RequestKind int

const (
	RequestOpen RequestKind = iota
	RequestClose
)

// Request is a dwell timer that has fired.
type Request struct {
	ItemID string
	Kind   RequestKind
}

type pending struct {
	kind     RequestKind
	deadline time.Time
}

// Coordinator tracks, per item, whether the pointer is logically within its
// component tree and schedules open/close requests after a dwell. Re-entry
// before a timer fires cancels it outright; timers never reset on pointer
// micro-movement, only on actual enter/leave transitions.
type Coordinator struct {
	openDwell  time.Duration
	closeDwell time.Duration

	inside  map[string]bool
	pending map[string]pending
}

// New creates a coordinator with the given open and close dwell durations.
func New(openDwell, closeDwell time.Duration) *Coordinator {
	return &Coordinator{
		openDwell:  openDwell,
		closeDwell: closeDwell,
		inside:     make(map[string]bool),
		pending:    make(map[string]pending),
	}
}

// Enter records that the pointer logically entered the item's subtree. A
// pending close timer for the item is cancelled; otherwise an open dwell
// starts unless one is already pending.
func (c *Coordinator) Enter(itemID string, now time.Time) {
	if c.inside[itemID] {
		return
	}
	c.inside[itemID] = true
	events.Hover.Enter(itemID)

	if p, ok := c.pending[itemID]; ok {
		if p.kind == RequestClose {
			delete(c.pending, itemID)
			events.Hover.DwellCancelled(itemID, "close")
		}
		// An already-pending open keeps its original deadline.
		return
	}
	c.pending[itemID] = pending{kind: RequestOpen, deadline: now.Add(c.openDwell)}
}

// Leave records that the pointer logically left the item's subtree. A pending
// open timer is cancelled; otherwise a close dwell starts.
func (c *Coordinator) Leave(itemID string, now time.Time) {
	if !c.inside[itemID] {
		return
	}
	c.inside[itemID] = false
	events.Hover.Leave(itemID)

	if p, ok := c.pending[itemID]; ok {
		if p.kind == RequestOpen {
			delete(c.pending, itemID)
			events.Hover.DwellCancelled(itemID, "open")
		}
		return
	}
	c.pending[itemID] = pending{kind: RequestClose, deadline: now.Add(c.closeDwell)}
}

// Inside reports the logical containment state for an item.
func (c *Coordinator) Inside(itemID string) bool {
	return c.inside[itemID]
}

// Due collects the requests whose dwell has elapsed at now. A request only
// fires if the containment state still matches its kind: an open requires
// the pointer still inside, a close still outside.
func (c *Coordinator) Due(now time.Time) []Request {
	var fired []Request
	for id, p := range c.pending {
		if now.Before(p.deadline) {
			continue
		}
		delete(c.pending, id)
		if p.kind == RequestOpen && !c.inside[id] {
			continue
		}
		if p.kind == RequestClose && c.inside[id] {
			continue
		}
		kind := "open"
		if p.kind == RequestClose {
			kind = "close"
		}
		events.Hover.DwellFired(id, kind)
		fired = append(fired, Request{ItemID: id, Kind: p.kind})
	}
	// Map iteration is unordered; keep request order deterministic.
	sort.Slice(fired, func(i, j int) bool { return fired[i].ItemID < fired[j].ItemID })
	return fired
}

// NextDeadline returns the earliest pending dwell deadline, if any, so the
// caller can schedule a single wake-up instead of polling.
func (c *Coordinator) NextDeadline() (time.Time, bool) {
	var next time.Time
	found := false
	for _, p := range c.pending {
		if !found || p.deadline.Before(next) {
			next = p.deadline
			found = true
		}
	}
	return next, found
}

// Forget drops the containment state and any pending timer for a single
// item. Called when the item's menu closes out from under the pointer, e.g.
// a branch switch, so the next logical entry starts a fresh dwell.
func (c *Coordinator) Forget(itemID string) {
	delete(c.inside, itemID)
	p, ok := c.pending[itemID]
	if !ok {
		return
	}
	delete(c.pending, itemID)
	kind := "open"
	if p.kind == RequestClose {
		kind = "close"
	}
	events.Hover.DwellCancelled(itemID, kind)
}

// Reset cancels every pending timer and forgets containment state. Called
// when the root menu closes or unmounts so orphaned callbacks cannot mutate
// stale state.
func (c *Coordinator) Reset() {
	c.inside = make(map[string]bool)
	c.pending = make(map[string]pending)
}
