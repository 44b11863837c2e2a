package events

import "github.com/cascadeui/cascade/internal/logging"

type MenuTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	Menu    = MenuTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (MenuTracer) PathChanged(path []string, reason string) {
	logging.Trace("menu.path", map[string]interface{}{"path": path, "reason": reason})
}

func (MenuTracer) OpenDeferred(target string) {
	logging.Trace("menu.open-deferred", map[string]interface{}{"target": target})
}

func (MenuTracer) LookupFailed(op, id string) {
	logging.Trace("menu.lookup-failed", map[string]interface{}{"op": op, "id": id})
}

func (MenuTracer) TreeRebuilt(nodes int) {
	logging.Trace("menu.rebuild", map[string]interface{}{"nodes": nodes})
}

func (MenuTracer) ItemEnter(menuID, itemID, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"menu":   menuID,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (MenuTracer) Cursor(menuID string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": menuID, "cursor": cursor})
}

func (FilterTracer) Cleared(menuID string) {
	logging.Trace("filter.clear", map[string]interface{}{"menu": menuID})
}

func (FilterTracer) Changed(menuID, filter string) {
	logging.Trace("filter.change", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
