package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"itemstore/internal/catalog"
	"itemstore/internal/ui/textutil"
)

const (
	defaultGuideWidth  = 72
	defaultGuideHeight = 18
)

// MoneyGuideModal lists the money-making methods as rendered markdown in a
// scrollable viewport.
type MoneyGuideModal struct {
	markdown string
	viewport viewport.Model
	width    int
}

// Ensure MoneyGuideModal implements View.
var _ View = (*MoneyGuideModal)(nil)

// NewMoneyGuideModal creates the guide for methods.
func NewMoneyGuideModal(methods []catalog.MoneyMethod) *MoneyGuideModal {
	m := &MoneyGuideModal{
		markdown: MoneyGuideMarkdown(methods),
		viewport: viewport.New(defaultGuideWidth, defaultGuideHeight),
		width:    defaultGuideWidth,
	}
	m.render()
	return m
}

// MoneyGuideMarkdown renders the methods as a markdown document.
func MoneyGuideMarkdown(methods []catalog.MoneyMethod) string {
	if len(methods) == 0 {
		return "_No money-making methods listed yet._\n"
	}
	var b strings.Builder
	for i, mm := range methods {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", mm.Title)
		fmt.Fprintf(&b, "%s %s\n\n", textutil.Stars(mm.Stars(), catalog.MaxDifficulty), mm.DifficultyText)
		if mm.Description != "" {
			b.WriteString(mm.Description + "\n\n")
		}
		fmt.Fprintf(&b, "- **Time:** %s\n- **Earning:** %s\n\n", mm.Time, mm.Earning)
		if len(mm.Requirements) > 0 {
			b.WriteString("**Requirements**\n\n")
			for _, r := range mm.Requirements {
				fmt.Fprintf(&b, "- %s\n", r)
			}
			b.WriteString("\n")
		}
		if mm.Tip != "" {
			fmt.Fprintf(&b, "> 💡 %s\n", mm.Tip)
		}
	}
	return b.String()
}

// render converts the markdown for the current width. Falls back to the raw
// markdown if glamour fails.
func (m *MoneyGuideModal) render() {
	content := m.markdown
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(m.width-4),
	)
	if err == nil {
		if out, err := r.Render(m.markdown); err == nil {
			content = out
		}
	}
	m.viewport.SetContent(content)
}

// Markdown returns the unrendered guide.
func (m *MoneyGuideModal) Markdown() string {
	return m.markdown
}

// Init implements View.
func (m *MoneyGuideModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *MoneyGuideModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(min(msg.Width-8, 100), 40)
		m.viewport.Width = m.width
		m.viewport.Height = max(msg.Height-10, 8)
		m.render()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "q" {
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements View.
func (m *MoneyGuideModal) View() string {
	content := Styles.Title.Render("Making money") + "\n\n"
	content += m.viewport.View() + "\n\n"
	content += Styles.Hint.Render(fmt.Sprintf("j/k: scroll  Esc/q: close  %3.f%%", m.viewport.ScrollPercent()*100))
	return Styles.Box.Render(content)
}
