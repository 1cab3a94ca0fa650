// Package tui is the root of the brandos terminal dashboard. The code lives
// in subpackages following a model/view/controller split:
//
//   - model: the Bubble Tea state (session handle, cursor, overlays,
//     status bar, activity log), key map, messages and commands.
//   - controller: the tea.Model implementation. Key presses become session
//     events (open client, back to overview, brand toggle, parameter
//     changes); log entries and window sizes update the model.
//   - view: pure rendering of the derived view model for the agency
//     overview, agency detail, brand view and overlays.
//   - components, design, utils: reusable panels, the palette and width
//     helpers.
//
// The view never reads tenant data directly; every frame is rendered from
// viewmodel.Derive over the current session snapshot.
//
// # Key Bindings
//
//	j/k, ↑/↓        move through the client list (overview)
//	enter           open the highlighted client
//	esc             back to the overview from agency detail
//	tab, shift+tab  next or previous tenant (detail and brand view)
//	b               toggle agency and brand view
//	+ / -           more or fewer variations
//	] / [           raise or lower the consistency threshold
//	a               toggle automation
//	y               copy the tenant dashboard URL
//	L, h, D, z      log overlay, help, dark mode, debug line
//	q, ctrl+c       quit
package tui
