// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns a plain string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a plain string to fit within maxWidth visual columns,
// appending "…" when something was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads a plain string with spaces to targetWidth columns,
// truncating it if it is wider.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}

// PadRightStyled pads an already styled string to targetWidth columns.
// ANSI sequences are not counted. Wider strings are returned unchanged.
func PadRightStyled(s string, targetWidth int) string {
	w := lipgloss.Width(s)
	if w >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// Stars renders a filled/empty star rating of total stars.
// filled is clamped to [0, total].
func Stars(filled, total int) string {
	if total <= 0 {
		return ""
	}
	filled = min(max(filled, 0), total)
	return strings.Repeat("★", filled) + strings.Repeat("☆", total-filled)
}
