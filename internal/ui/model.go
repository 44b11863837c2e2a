package ui

import (
	"reflect"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/cascadeui/cascade/internal/backend"
	"github.com/cascadeui/cascade/internal/data/dispatcher"
	"github.com/cascadeui/cascade/internal/geometry"
	"github.com/cascadeui/cascade/internal/keynav"
	"github.com/cascadeui/cascade/internal/menu"
	"github.com/cascadeui/cascade/internal/schedule"
	"github.com/cascadeui/cascade/internal/session"
	"github.com/cascadeui/cascade/internal/state"
	"github.com/cascadeui/cascade/internal/theme"
	"github.com/cascadeui/cascade/internal/ui/command"
	uistate "github.com/cascadeui/cascade/internal/ui/state"
)

type pane = uistate.Pane

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newPane(menuID string, items []menu.Item) *pane {
	return uistate.NewPane(menuID, items)
}

// Model implements the Bubble Tea model for the cascading menu surface.
type Model struct {
	sess *session.Session
	nav  *keynav.Navigator
	bus  *command.Bus
	keys Keymap

	panes       map[string]*pane
	placements  map[string]geometry.Placement
	captured    map[string]int // submenu ID, parent scroll recorded at open
	insets      geometry.Insets
	path        []string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	padding     int

	menuFile   string
	verbose    bool
	showFooter bool

	backend        *backend.Watcher
	backendLastErr string
	defs           state.DefinitionStore
	dispatcher     *dispatcher.Dispatcher

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	queued   []tea.Cmd
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state around a prepared session.
func NewModel(sess *session.Session, width, height int, padding int, showFooter, verbose bool, watcher *backend.Watcher, menuFile string) *Model {
	defs := state.NewDefinitionStore()
	m := &Model{
		sess:       sess,
		bus:        command.New(),
		keys:       defaultKeymap(),
		panes:      make(map[string]*pane),
		placements: make(map[string]geometry.Placement),
		captured:   make(map[string]int),
		insets:     geometry.PlatformInsets(),
		padding:    padding,
		menuFile:   menuFile,
		verbose:    verbose,
		showFooter: showFooter,
		backend:    watcher,
		defs:       defs,
		dispatcher: dispatcher.New(defs),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.panes[session.RootID] = newPane(session.RootID, sess.MenuItems(session.RootID))
	m.nav = keynav.New(sess.Ctrl, m, m)
	m.nav.SetOnActivate(m.activateItem)
	sess.Ctrl.SetRootDecider(m.decideRoot)
	sess.Ctrl.SetOnChange(m.onPathChange)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):    m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseClickMsg{}):  m.handleMouseClickMsg,
		reflect.TypeOf(tea.MouseMotionMsg{}): m.handleMouseMotionMsg,
		reflect.TypeOf(tea.MouseWheelMsg{}):  m.handleMouseWheelMsg,
		reflect.TypeOf(schedule.LayoutMsg{}): m.handleLayoutMsg,
		reflect.TypeOf(hoverTickMsg{}):       m.handleHoverTickMsg,
		reflect.TypeOf(menu.ActionResult{}):  m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.queued) > 0 {
		cmds = append(cmds, m.queued...)
		m.queued = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// decideRoot is the controller's request-to-change hook. Deferred submenu
// opens (hover over a toggle while the bar is closed) stay pending until an
// explicit toggle click or keyboard open arrives; every other transition is
// approved.
func (m *Model) decideRoot(open bool, reason menu.Reason) bool {
	if !open {
		return true
	}
	return reason != menu.ReasonOpenSubmenu
}

// onPathChange reconciles per-menu panes with the new open path and schedules
// a layout pass. It fires once at mount and after every committed transition.
func (m *Model) onPathChange(path []string) {
	prev := make(map[string]struct{}, len(m.path))
	for _, id := range m.path {
		prev[id] = struct{}{}
	}
	open := make(map[string]struct{}, len(path))
	for depth, id := range path {
		open[id] = struct{}{}
		if m.panes[id] == nil {
			m.panes[id] = newPane(id, m.sess.MenuItems(id))
		}
		if depth >= 2 {
			if _, existed := prev[id]; !existed {
				if parent := m.panes[path[depth-1]]; parent != nil {
					m.captured[id] = parent.ScrollOffset
				}
			}
		}
	}
	for id := range m.panes {
		if _, ok := open[id]; ok {
			continue
		}
		// The menu bar pane survives close so toggle focus state persists.
		if id == session.RootID {
			continue
		}
		// Hover containment for the pane's items would otherwise survive a
		// branch switch and swallow the next logical entry.
		for _, it := range m.panes[id].Full {
			m.sess.Hover.Forget(it.ID)
		}
		delete(m.panes, id)
		delete(m.captured, id)
		delete(m.placements, id)
		m.sess.Solver.Forget(id)
	}
	m.path = append(m.path[:0:0], path...)

	if pf := m.sess.Ctrl.TakePendingFocus(); pf != "" && m.sess.Ctrl.Contains(pf) {
		if p := m.panes[pf]; p != nil && len(p.Items) > 0 {
			m.nav.SetFocus(pf, p.Items[0].ID)
			m.FocusItem(pf, p.Items[0].ID)
		}
	}
	m.requestLayout()
}

// MenuItems implements keynav.ItemSource over the live panes, so keyboard
// navigation walks the filtered view when a type-ahead query is active.
func (m *Model) MenuItems(menuID string) []menu.Item {
	if p := m.panes[menuID]; p != nil {
		return p.Items
	}
	return m.sess.MenuItems(menuID)
}

// FocusItem implements keynav.FocusSink: it moves the pane cursor to the
// focused item and keeps it visible.
func (m *Model) FocusItem(menuID, itemID string) {
	p := m.panes[menuID]
	if p == nil {
		return
	}
	if idx := p.IndexOf(itemID); idx >= 0 {
		p.Cursor = idx
		p.EnsureCursorVisible(m.visibleRowsFor(menuID))
		m.requestLayout()
	}
}

func (m *Model) requestLayout() {
	if msg, ok := m.sess.Frames.RequestReposition(); ok {
		m.queued = append(m.queued, layoutCmd(msg))
	}
}

func (m *Model) requestRebuild() {
	if msg, ok := m.sess.Frames.RequestRebuild(); ok {
		m.queued = append(m.queued, layoutCmd(msg))
	}
}

func layoutCmd(msg schedule.LayoutMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// openToggle opens (or switches to) the dropdown under a menu bar toggle.
// While the bar is closed this routes through the pending-open protocol so
// the whole chain appears in one transition.
func (m *Model) openToggle(id string) {
	ctrl := m.sess.Ctrl
	if ctrl.IsOpen() {
		if ctrl.Contains(id) {
			ctrl.CloseRoot(menu.ReasonClickToggle)
			return
		}
		ctrl.OpenSubmenu(id)
		return
	}
	ctrl.OpenSubmenu(id) // recorded as pending, deferred by the root decider
	ctrl.OpenRoot(menu.ReasonClickToggle)
}

// activateItem runs a leaf item's action through the command bus and closes
// the chain.
func (m *Model) activateItem(item menu.Item) {
	ctx := m.menuContext()
	cmd := m.bus.Execute(ctx, command.Request{
		ID:    item.ID,
		Label: item.Label,
		Item:  item,
	})
	m.queued = append(m.queued, cmd)
	m.sess.Ctrl.CloseRoot(menu.ReasonClickDropdown)
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{
		MenuFile: m.menuFile,
		Verbose:  m.verbose,
	}
}

// Session exposes the underlying session for the debug facade and tests.
func (m *Model) Session() *session.Session {
	return m.sess
}

func (m *Model) currentPane() *pane {
	deepest := m.sess.Ctrl.Deepest()
	if deepest == "" {
		return nil
	}
	return m.panes[deepest]
}
