package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a bubbles/help model in the UI palette.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	return h
}

// RenderKeybindHelp produces the transient help box shown after SPC.
// When keyHandler holds a partial sequence (e.g. "SPC x"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := ""
	if len(keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(keyHandler.Buffer, " ")
	}
	hints := keyHandler.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	bindings := append(hintBindings(hints), key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
	helpContent := newHelpModel().ShortHelpView(bindings)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	return Styles.BoxCompact.MarginTop(1).Render(Styles.Muted.Render(prefix) + " " + helpContent)
}

// RenderFooterHelp renders the single-key bindings for mode on one line.
func RenderFooterHelp(keyHandler *KeyHandler, mode AppMode, width int) string {
	if keyHandler == nil {
		return ""
	}
	h := newHelpModel()
	h.Width = width
	return h.View(NewKeyMap(keyHandler.Registry, keyHandler, mode))
}
