package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"itemstore/internal/catalog"
)

// CalculatorModal prices a quantity of one item. The result is recomputed on
// every keystroke; Tab / Shift+Tab step through the quick amounts.
type CalculatorModal struct {
	item     catalog.Item
	currency string
	input    textinput.Model
	preset   int // index into catalog.QuickAmounts; -1 when typed by hand
	calc     catalog.Calculation
}

// Ensure CalculatorModal implements View.
var _ View = (*CalculatorModal)(nil)

// NewCalculatorModal opens the calculator for item with quantity 1.
func NewCalculatorModal(item catalog.Item, currency string) *CalculatorModal {
	ti := textinput.New()
	ti.Prompt = "Quantity: "
	ti.CharLimit = 9
	ti.Width = 12
	ti.SetValue(strconv.Itoa(catalog.DefaultQuantity))
	ti.CursorEnd()
	ti.Focus()
	m := &CalculatorModal{item: item, currency: currency, input: ti, preset: -1}
	m.recalculate()
	return m
}

// Item returns the item being priced.
func (m *CalculatorModal) Item() catalog.Item {
	return m.item
}

// Calculation returns the result for the current input.
func (m *CalculatorModal) Calculation() catalog.Calculation {
	return m.calc
}

func (m *CalculatorModal) recalculate() {
	m.calc = catalog.Calculate(m.item, catalog.ParseQuantity(m.input.Value()))
}

func (m *CalculatorModal) stepPreset(delta int) {
	n := len(catalog.QuickAmounts)
	switch {
	case m.preset >= 0:
		m.preset = wrapIndex(m.preset+delta, n)
	case delta > 0:
		// Next preset above a hand-typed quantity.
		m.preset = 0
		for i, q := range catalog.QuickAmounts {
			if q > m.calc.Quantity {
				m.preset = i
				break
			}
		}
	default:
		m.preset = n - 1
		for i := n - 1; i >= 0; i-- {
			if catalog.QuickAmounts[i] < m.calc.Quantity {
				m.preset = i
				break
			}
		}
	}
	m.input.SetValue(strconv.Itoa(catalog.QuickAmounts[m.preset]))
	m.input.CursorEnd()
	m.recalculate()
}

// Init implements View.
func (m *CalculatorModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *CalculatorModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			m.stepPreset(1)
			return m, nil
		case "shift+tab":
			m.stepPreset(-1)
			return m, nil
		case "enter":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.preset = -1
		m.recalculate()
	}
	return m, cmd
}

// View implements View.
func (m *CalculatorModal) View() string {
	c := m.calc
	price := func(v float64) string { return Styles.Price.Render(catalog.FormatPrice(v, m.currency)) }

	var b strings.Builder
	b.WriteString(Styles.Title.Render(m.item.Name))
	if m.item.Category != "" {
		b.WriteString("  " + Styles.Muted.Render(m.item.Category))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(Styles.Hint.Render(quickAmountsHint()) + "\n\n")
	fmt.Fprintf(&b, "Unit price:   %s\n", price(c.Item.Price))
	fmt.Fprintf(&b, "Total:        %s  (%d × %s)\n", price(c.Total), c.Quantity, catalog.FormatPrice(c.Item.Price, m.currency))
	fmt.Fprintf(&b, "Stacks:       %s\n", stacksLabel(c))
	fmt.Fprintf(&b, "Stack price:  %s  (%d per stack)\n", price(c.StackPrice), c.Item.Stack)
	b.WriteString("\n" + Styles.Hint.Render("Tab/Shift+Tab: quick amounts  Enter/Esc: close"))
	return Styles.Box.Render(b.String())
}

func quickAmountsHint() string {
	parts := make([]string, len(catalog.QuickAmounts))
	for i, q := range catalog.QuickAmounts {
		parts[i] = strconv.Itoa(q)
	}
	return "Quick: " + strings.Join(parts, " · ")
}

// stacksLabel renders e.g. "1 stack + 36".
func stacksLabel(c catalog.Calculation) string {
	unit := "stacks"
	if c.Stacks == 1 {
		unit = "stack"
	}
	if c.Remainder == 0 {
		return fmt.Sprintf("%d %s", c.Stacks, unit)
	}
	return fmt.Sprintf("%d %s + %d", c.Stacks, unit, c.Remainder)
}
