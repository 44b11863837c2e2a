// Package ui contains the Bubble Tea program that powers the cascading menu
// surface. The Model type focuses on message orchestration while dedicated
// helpers own layout, pointer handling, keyboard input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (pointer events, key presses,
//     layout ticks, backend reloads).
//   - Open-path transitions run through menu.Controller; the model only reacts
//     to committed paths via its onPathChange hook, reconciling per-menu panes
//     and scheduling a coalesced layout pass.
//
// State ownership:
//   - Per-menu view state (items, type-ahead filter, cursor, scroll) lives in
//     internal/ui/state.Pane.
//   - The open path, pending-open and pending-focus records live in
//     menu.Controller; popup frames come from geometry.Solver; hover dwell
//     timing from hover.Coordinator. All of these are bundled by
//     internal/session.
//   - Item activation runs through the internal/ui/command bus so actions
//     execute asynchronously as tea.Cmd values.
//
// Layout runs outside Update's hot path: mutations request a frame through
// schedule.Frame and the single in-flight LayoutMsg resolves every placement
// at once, so a burst of hover and scroll activity costs one geometry pass.
package ui
