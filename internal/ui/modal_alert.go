package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AlertModal shows an error. A blocking alert ends the program on any key;
// a non-blocking one closes with Enter or Esc and leaves the screen below intact.
type AlertModal struct {
	Title    string
	Message  string
	Blocking bool
	boxStyle lipgloss.Style
}

// Ensure AlertModal implements View.
var _ View = (*AlertModal)(nil)

// NewAlertModal creates a non-blocking alert.
func NewAlertModal(title, message string) *AlertModal {
	return &AlertModal{Title: title, Message: message, boxStyle: Styles.BoxDanger}
}

// NewBlockingAlertModal creates an alert after which the program exits.
func NewBlockingAlertModal(title, message string) *AlertModal {
	m := NewAlertModal(title, message)
	m.Blocking = true
	return m
}

// Init implements View.
func (m *AlertModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AlertModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.Blocking {
			return m, tea.Quit
		}
		switch msg.String() {
		case "esc", "enter":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *AlertModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Details.Width(60).Render(m.Message)
	hint := "Enter/Esc: close"
	if m.Blocking {
		hint = "Press any key to exit"
	}
	content += "\n\n" + Styles.Hint.Render(hint)
	return m.boxStyle.Render(content)
}
