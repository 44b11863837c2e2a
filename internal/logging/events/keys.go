package events

import "github.com/cascadeui/cascade/internal/logging"

type KeysTracer struct{}

var Keys = KeysTracer{}

func (KeysTracer) Focus(itemID string) {
	logging.Trace("keys.focus", map[string]interface{}{"item": itemID})
}

func (KeysTracer) PendingFocus(menuID string) {
	logging.Trace("keys.pending-focus", map[string]interface{}{"menu": menuID})
}

func (KeysTracer) Ignored(key string) {
	logging.Trace("keys.ignored", map[string]interface{}{"key": key})
}
