// Package ui implements the terminal user interface for ats.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. A single Model value holds the whole
// session: the active view, the navigation stack, input mode, theme, and the
// coarse loading flag. Update handles four message kinds:
//
//   - tea.KeyMsg: keyboard input, dispatched by input mode
//   - tea.WindowSizeMsg: terminal dimensions
//   - tickMsg: the 1s clock driving copy-status expiry and auto-refresh
//   - dataMsg: a completed (or failed) resource load
//
// # Package Structure
//
//   - app.go: Model, Update loop, tick and load commands, Run
//   - input.go: per-mode key handling, commands, navigation transitions
//   - chrome.go: header, input bar, content pane, and footer rendering
//   - keys.go: key bindings
//   - help.go: fullscreen help overlay
//
// # Navigation
//
// The active view is a service.ViewState; forward navigation pushes the
// current state onto a stack and asks the owning service for the target
// state via HandleEnter. Escape pops. A ":" command that names a service
// alias resets to that service's root list view and discards the stack.
//
// # Input Modes
//
// Normal mode routes keys to bindings. ":" enters command mode and "/"
// enters search mode; both hand keystrokes to a shared textinput. Search
// edits filter the cached data live without touching the network; Escape
// cancels and clears the filter, Enter commits it.
//
// # Loading and Refresh
//
// At most one load is in flight at a time. The Model sets loading when it
// issues a load command and clears it when the dataMsg arrives; ticks start
// an automatic reload of the active view once the refresh interval has
// elapsed and nothing is outstanding. Results are written to the slot the
// load was issued for (see the state package), never the active view.
//
// # Errors
//
// A failed load replaces the content pane with an error pane for the whole
// session until any later load succeeds. The UI keeps running; refresh
// retries on the usual schedule.
package ui
