// Package ui renders the financial assistance guide as a Bubble Tea program.
//
// Core pieces:
//   - AppModel: top-level controller; owns the view selector and passes its
//     projection to the renderers
//   - renderOverview / renderProcedure: pure functions of a projection and a width
//   - Keymap / KeyDispatcher: single keys plus SPC-prefixed sequences,
//     optionally restricted to a view mode
//   - OverlayStack / ConfirmModal: the confirmation shown before opening the
//     application link
//   - RenderMarkdown: the same content as Markdown, for non-interactive output
package ui
