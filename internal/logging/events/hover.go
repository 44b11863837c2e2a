package events

import "github.com/cascadeui/cascade/internal/logging"

type HoverTracer struct{}

var Hover = HoverTracer{}

func (HoverTracer) Enter(itemID string) {
	logging.Trace("hover.enter", map[string]interface{}{"item": itemID})
}

func (HoverTracer) Leave(itemID string) {
	logging.Trace("hover.leave", map[string]interface{}{"item": itemID})
}

func (HoverTracer) DwellFired(itemID, kind string) {
	logging.Trace("hover.dwell", map[string]interface{}{"item": itemID, "kind": kind})
}

func (HoverTracer) DwellCancelled(itemID, kind string) {
	logging.Trace("hover.cancel", map[string]interface{}{"item": itemID, "kind": kind})
}
