// Package dispatcher routes backend events into the definition store and
// reports whether the menu structure changed so the model can schedule a
// rebuild.
package dispatcher

import (
	"github.com/cascadeui/cascade/internal/backend"
	"github.com/cascadeui/cascade/internal/state"
)

type Result struct {
	StructureChanged bool
	Err              error
}

type Dispatcher struct {
	defs state.DefinitionStore
}

func New(defs state.DefinitionStore) *Dispatcher {
	return &Dispatcher{defs: defs}
}

// Handle applies one backend event to the store. Errors are recorded without
// disturbing the last good definition.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	if evt.Err != nil {
		d.defs.SetErr(evt.Err)
		return Result{Err: evt.Err}
	}
	d.defs.SetDefinition(evt.Def)
	return Result{StructureChanged: true}
}
