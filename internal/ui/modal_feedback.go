package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"itemstore/internal/feedback"
)

// Feedback form field IDs, in tab order.
const (
	fieldName    = "name"
	fieldType    = "type"
	fieldMessage = "message"
	fieldSubmit  = "submit"
)

// FeedbackModal is the feedback form: optional name, type selector, message.
// The form keeps its contents when a submission fails so it can be retried.
type FeedbackModal struct {
	name       textinput.Model
	message    textarea.Model
	typeIdx    int
	focus      *FocusManager
	submitting bool
	err        string
}

// Ensure FeedbackModal implements View.
var _ View = (*FeedbackModal)(nil)

// NewFeedbackModal creates an empty form with the name field focused.
func NewFeedbackModal() *FeedbackModal {
	name := textinput.New()
	name.Placeholder = feedback.AnonymousName
	name.CharLimit = 64
	name.Width = 40

	msg := textarea.New()
	msg.Placeholder = "What's on your mind?"
	msg.CharLimit = 2000
	msg.SetWidth(56)
	msg.SetHeight(6)
	msg.ShowLineNumbers = false

	m := &FeedbackModal{name: name, message: msg}
	m.focus = &FocusManager{
		Order:    []string{fieldName, fieldType, fieldMessage, fieldSubmit},
		OnChange: m.onFocusChange,
	}
	m.focus.SetFocus(fieldName)
	return m
}

func (m *FeedbackModal) onFocusChange(from, to string) {
	switch from {
	case fieldName:
		m.name.Blur()
	case fieldMessage:
		m.message.Blur()
	}
	switch to {
	case fieldName:
		m.name.Focus()
	case fieldMessage:
		m.message.Focus()
	}
}

// Form returns the form contents.
func (m *FeedbackModal) Form() feedback.Form {
	return feedback.Form{
		Name:    strings.TrimSpace(m.name.Value()),
		Type:    feedback.Types()[m.typeIdx],
		Message: strings.TrimSpace(m.message.Value()),
	}
}

// Focused returns the ID of the focused field.
func (m *FeedbackModal) Focused() string {
	return m.focus.Current
}

// Submitting reports whether a submission is in flight.
func (m *FeedbackModal) Submitting() bool {
	return m.submitting
}

// SetSubmitting marks a submission as started or finished.
func (m *FeedbackModal) SetSubmitting(v bool) {
	m.submitting = v
}

func (m *FeedbackModal) submit() tea.Cmd {
	form := m.Form()
	if err := form.Validate(); err != nil {
		m.err = "Please enter a message."
		m.focus.SetFocus(fieldMessage)
		return nil
	}
	m.err = ""
	m.submitting = true
	return func() tea.Msg { return SubmitFeedbackMsg{Form: form} }
}

// Init implements View.
func (m *FeedbackModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *FeedbackModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "tab":
			m.focus.Next()
			return m, nil
		case "shift+tab":
			m.focus.Prev()
			return m, nil
		case "ctrl+s":
			return m, m.submit()
		}
		switch m.focus.Current {
		case fieldName:
			if km.String() == "enter" {
				m.focus.Next()
				return m, nil
			}
		case fieldType:
			switch km.String() {
			case "left", "h":
				m.typeIdx = wrapIndex(m.typeIdx-1, len(feedback.Types()))
			case "right", "l", "enter":
				m.typeIdx = wrapIndex(m.typeIdx+1, len(feedback.Types()))
			}
			return m, nil
		case fieldSubmit:
			if km.String() == "enter" {
				return m, m.submit()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus.Current {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

// View implements View.
func (m *FeedbackModal) View() string {
	label := func(id, text string) string {
		if m.focus.Current == id {
			return Styles.Selected.Render("› " + text)
		}
		return Styles.Muted.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Send feedback") + "\n\n")
	b.WriteString(label(fieldName, "Name (optional)") + "\n")
	b.WriteString(m.name.View() + "\n\n")
	b.WriteString(label(fieldType, "Type") + "\n")
	b.WriteString(m.renderTypes() + "\n\n")
	b.WriteString(label(fieldMessage, "Message") + "\n")
	b.WriteString(m.message.View() + "\n\n")

	button := "[ Send ]"
	switch {
	case m.submitting:
		button = Styles.Muted.Render("[ Sending… ]")
	case m.focus.Current == fieldSubmit:
		button = Styles.Selected.Render(button)
	default:
		button = Styles.Normal.Render(button)
	}
	b.WriteString(button)
	if m.err != "" {
		b.WriteString("  " + Styles.Error.Render(m.err))
	}
	b.WriteString("\n\n" + Styles.Hint.Render("Tab: next field  ←/→: type  Ctrl+S: send  Esc: close"))
	return Styles.Box.Render(b.String())
}

func (m *FeedbackModal) renderTypes() string {
	types := feedback.Types()
	parts := make([]string, len(types))
	for i, t := range types {
		if i == m.typeIdx {
			parts[i] = Styles.Selected.Render("(•) " + t.Title())
		} else {
			parts[i] = Styles.Muted.Render("( ) " + t.Title())
		}
	}
	return strings.Join(parts, "  ")
}
