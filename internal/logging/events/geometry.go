package events

import "github.com/cascadeui/cascade/internal/logging"

type GeometryTracer struct{}

var Geometry = GeometryTracer{}

func (GeometryTracer) Placed(menuID string, top, left, width, height int, edge string) {
	logging.Trace("geometry.place", map[string]interface{}{
		"menu":   menuID,
		"top":    top,
		"left":   left,
		"width":  width,
		"height": height,
		"edge":   edge,
	})
}

func (GeometryTracer) Aborted(menuID, reason string) {
	logging.Trace("geometry.abort", map[string]interface{}{"menu": menuID, "reason": reason})
}

func (GeometryTracer) PassSkipped(menuID string) {
	logging.Trace("geometry.skip", map[string]interface{}{"menu": menuID})
}
