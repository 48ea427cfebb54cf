// Package ui is the Bubble Tea storefront.
//
// Core abstractions:
//   - View: a screen or modal with its own model, update, view (Elm-style)
//   - OverlayStack: modals stacked over the catalog; the top one receives input
//   - FocusManager: tab order across form fields
//   - KeybindRegistry / KeyHandler: single keys and SPC-leader sequences
//
// AppModel is the single owned state object: the loaded catalog, the query
// state held by CatalogView, the tip rotator, and the overlay stack.
package ui
