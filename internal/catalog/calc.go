package catalog

import (
	"strconv"
	"strings"
)

// DefaultQuantity is used whenever a requested quantity is missing or invalid.
const DefaultQuantity = 1

// QuickAmounts are the preset quantities offered by the calculator.
var QuickAmounts = []int{1, 16, 32, 64, 128, 576}

// Calculation is the calculator output for one item and quantity.
type Calculation struct {
	Item       Item
	Quantity   int
	Total      float64 // Price × Quantity
	Stacks     int     // whole stacks in Quantity
	Remainder  int     // loose items left over, 0 ≤ Remainder < Item.Stack
	StackPrice float64 // price of one full stack
}

// ParseQuantity coerces user input into a quantity. Leading whitespace and an
// optional '+' are skipped and the leading run of digits is used, so "12abc"
// yields 12. Input without digits, zero, negative values and values that
// overflow an int all yield DefaultQuantity.
func ParseQuantity(s string) int {
	s = strings.TrimLeft(s, " \t\r\n")
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return DefaultQuantity
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 1 {
		return DefaultQuantity
	}
	return n
}

// Calculate prices quantity units of item and splits the quantity into whole
// stacks plus a remainder. Quantities below 1 are treated as DefaultQuantity.
// Catalog validation guarantees a positive stack size; a non-positive one is
// treated as 1 so the decomposition stays well defined.
func Calculate(item Item, quantity int) Calculation {
	if quantity < 1 {
		quantity = DefaultQuantity
	}
	stack := item.Stack
	if stack <= 0 {
		stack = 1
	}
	return Calculation{
		Item:       item,
		Quantity:   quantity,
		Total:      item.Price * float64(quantity),
		Stacks:     quantity / stack,
		Remainder:  quantity % stack,
		StackPrice: item.Price * float64(stack),
	}
}

// FormatPrice renders an amount with two decimals followed by the currency symbol.
func FormatPrice(amount float64, currency string) string {
	return strconv.FormatFloat(amount, 'f', 2, 64) + currency
}
