package ui

import (
	"itemstore/internal/catalog"
	"itemstore/internal/feedback"
)

// CatalogLoadedMsg is sent when the initial catalog fetch finishes.
// Err non-nil means the storefront cannot start.
type CatalogLoadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// CatalogReloadedMsg is sent by the file watcher after the source changed.
// A failed reload keeps the current catalog.
type CatalogReloadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// FocusSearchMsg focuses the search box ("/").
type FocusSearchMsg struct{}

// CycleCategoryMsg moves the category selector by Delta (c / C).
type CycleCategoryMsg struct {
	Delta int
}

// CycleSortMsg moves the sort selector by Delta (s / S).
type CycleSortMsg struct {
	Delta int
}

// ShowCalculatorMsg opens the calculator for the selected row (enter).
type ShowCalculatorMsg struct{}

// ShowMoneyGuideMsg opens the money-making guide (SPC g).
type ShowMoneyGuideMsg struct{}

// ShowFeedbackMsg opens the feedback form (SPC f).
type ShowFeedbackMsg struct{}

// NextTipMsg shows another tip now (SPC t).
type NextTipMsg struct{}

// SubmitFeedbackMsg is sent by the feedback form when the user submits it.
type SubmitFeedbackMsg struct {
	Form feedback.Form
}

// FeedbackSentMsg reports the outcome of a webhook POST.
type FeedbackSentMsg struct {
	ID  string
	Err error
}

// DismissModalMsg closes the topmost modal.
type DismissModalMsg struct{}

// tipTickMsg rotates the tip. Ticks from an older generation are dropped
// so a reload does not leave two timers running.
type tipTickMsg struct {
	gen int
}
