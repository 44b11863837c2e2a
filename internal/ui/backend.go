package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/cascadeui/cascade/internal/backend"
	"github.com/cascadeui/cascade/internal/logging"
	"github.com/cascadeui/cascade/internal/menu"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent folds a definition reload into the stores. Structure
// changes only rebuild the live tree on the next coalesced layout pass, so a
// burst of file edits costs one rebuild.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.backendLastErr = res.Err.Error()
		m.errMsg = res.Err.Error()
		return
	}
	m.backendLastErr = ""
	if m.errMsg != "" {
		m.errMsg = ""
	}
	if res.StructureChanged {
		m.requestRebuild()
	}
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if res.Err != nil {
		logging.Error(res.Err)
		m.errMsg = res.Err.Error()
		return nil
	}
	m.errMsg = ""
	if res.Info != "" {
		m.setInfo(res.Info)
	}
	return nil
}
