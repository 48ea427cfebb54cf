package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllCategories is the category wildcard: it matches every item.
const AllCategories = "all"

// SortKey selects the result ordering.
type SortKey string

const (
	SortName      SortKey = "name"       // lexicographic by name (collated)
	SortPriceAsc  SortKey = "price-asc"  // cheapest first
	SortPriceDesc SortKey = "price-desc" // most expensive first
	SortStack     SortKey = "stack"      // largest stack first
)

// SortKeys returns the sort keys in selector order.
func SortKeys() []SortKey {
	return []SortKey{SortName, SortPriceAsc, SortPriceDesc, SortStack}
}

// ParseSortKey maps a selector value to a SortKey. Unknown values sort by name.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case SortPriceAsc, SortPriceDesc, SortStack:
		return k
	default:
		return SortName
	}
}

// Label is the human-readable selector text.
func (k SortKey) Label() string {
	switch k {
	case SortPriceAsc:
		return "Price ↑"
	case SortPriceDesc:
		return "Price ↓"
	case SortStack:
		return "Stack size"
	default:
		return "Name"
	}
}

// Query is the ephemeral view state a result set is derived from.
type Query struct {
	Search   string  // case-insensitive name substring; empty matches all
	Category string  // exact category, or AllCategories / "" for every category
	Sort     SortKey // unknown keys sort by name
}

func (q Query) matchesCategory(category string) bool {
	return q.Category == "" || q.Category == AllCategories || q.Category == category
}

// Apply returns the items whose name contains q.Search (case-insensitive) and
// whose category matches q.Category, ordered by q.Sort. The input is not
// modified. Ties keep their input order. An empty result is a non-nil empty slice.
func Apply(items []Item, q Query) []Item {
	search := strings.ToLower(q.Search)
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		if !q.matchesCategory(it.Category) {
			continue
		}
		out = append(out, it)
	}
	Sort(out, q.Sort)
	return out
}

// Sort orders items in place by key. The sort is stable, so repeated sorting
// with the same key is a no-op.
func Sort(items []Item, key SortKey) {
	switch ParseSortKey(string(key)) {
	case SortPriceAsc:
		slices.SortStableFunc(items, func(a, b Item) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(items, func(a, b Item) int { return cmp.Compare(b.Price, a.Price) })
	case SortStack:
		slices.SortStableFunc(items, func(a, b Item) int { return cmp.Compare(b.Stack, a.Stack) })
	default:
		// Collator carries scratch buffers; one per sort keeps Sort reentrant.
		col := collate.New(language.Und)
		slices.SortStableFunc(items, func(a, b Item) int { return col.CompareString(a.Name, b.Name) })
	}
}
