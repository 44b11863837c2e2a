// Package debug exposes read-only snapshots of live menu state. A Facade is
// only constructed when the program runs with --debug; nothing in the normal
// path depends on it.
package debug

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cascadeui/cascade/internal/geometry"
	"github.com/cascadeui/cascade/internal/session"
)

// Snapshot is a point-in-time copy of the observable menu state.
type Snapshot struct {
	OpenPath    []string
	PendingOpen string
	Hovered     string
	TreeSize    int
	Alignments  map[string]string
}

// Facade reads state out of a session without mutating it.
type Facade struct {
	sess *session.Session
}

// New wraps the given session.
func New(sess *session.Session) *Facade {
	return &Facade{sess: sess}
}

// Snapshot captures the current open path, pending state, and recorded
// submenu alignments.
func (f *Facade) Snapshot() Snapshot {
	snap := Snapshot{
		OpenPath:    f.sess.Ctrl.Path(),
		PendingOpen: f.sess.Ctrl.PendingOpen(),
		Hovered:     f.sess.Hovered(),
		TreeSize:    f.sess.Tree().Len(),
		Alignments:  make(map[string]string),
	}
	for _, id := range snap.OpenPath {
		if edge, ok := f.sess.Solver.Alignment(id); ok {
			snap.Alignments[id] = edgeName(edge)
		}
	}
	return snap
}

// String renders a compact single-line form of the snapshot for log files.
func (f *Facade) String() string {
	snap := f.Snapshot()
	parts := []string{
		fmt.Sprintf("path=%s", strings.Join(snap.OpenPath, ">")),
		fmt.Sprintf("tree=%d", snap.TreeSize),
	}
	if snap.PendingOpen != "" {
		parts = append(parts, "pending="+snap.PendingOpen)
	}
	if snap.Hovered != "" {
		parts = append(parts, "hover="+snap.Hovered)
	}
	if len(snap.Alignments) > 0 {
		ids := make([]string, 0, len(snap.Alignments))
		for id := range snap.Alignments {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		aligns := make([]string, 0, len(ids))
		for _, id := range ids {
			aligns = append(aligns, id+":"+snap.Alignments[id])
		}
		parts = append(parts, "align="+strings.Join(aligns, ","))
	}
	return strings.Join(parts, " ")
}

func edgeName(e geometry.Edge) string {
	if e == geometry.EdgeLeft {
		return "left"
	}
	return "right"
}
