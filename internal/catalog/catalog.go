// Package catalog owns the storefront data: the item list, tips, money-making
// guide and site config loaded from one JSON document, plus the query
// (filter/sort) and calculator logic that operates on it.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"itemstore/internal/jsonutil"
)

// ErrInvalidItem is returned (joined, one per offending item) when a document
// carries items that violate the catalog invariants.
var ErrInvalidItem = errors.New("invalid item")

// Catalog is the loaded, validated document. It is immutable after New;
// accessors return copies so callers cannot mutate shared state.
type Catalog struct {
	items      []Item
	tips       []string
	methods    []MoneyMethod
	config     SiteConfig
	categories []string
}

// New validates doc and builds a Catalog from it.
// Missing collections become empty, missing config fields take defaults.
func New(doc Document) (*Catalog, error) {
	doc = doc.normalize()
	if err := validateItems(doc.Items); err != nil {
		return nil, err
	}
	return &Catalog{
		items:      doc.Items,
		tips:       doc.Tips,
		methods:    doc.MoneyMethods,
		config:     doc.Config,
		categories: collectCategories(doc.Items),
	}, nil
}

// Parse decodes a JSON document and builds a Catalog from it.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := jsonutil.UnmarshalWithContext(data, &doc, "parse catalog document"); err != nil {
		return nil, err
	}
	return New(doc)
}

func validateItems(items []Item) error {
	var errs []error
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			errs = append(errs, fmt.Errorf("%w: items[%d]: empty name", ErrInvalidItem, i))
		}
		if it.Stack <= 0 {
			errs = append(errs, fmt.Errorf("%w: items[%d] %q: stack must be positive, got %d", ErrInvalidItem, i, it.Name, it.Stack))
		}
		if it.Price < 0 {
			errs = append(errs, fmt.Errorf("%w: items[%d] %q: price must not be negative, got %g", ErrInvalidItem, i, it.Name, it.Price))
		}
	}
	return errors.Join(errs...)
}

// collectCategories returns distinct categories in first-seen order.
func collectCategories(items []Item) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return jsonutil.NonNil(out)
}

// Items returns all items in document order.
func (c *Catalog) Items() []Item { return slices.Clone(c.items) }

// Tips returns the tip strings.
func (c *Catalog) Tips() []string { return slices.Clone(c.tips) }

// MoneyMethods returns the money-making guide entries.
func (c *Catalog) MoneyMethods() []MoneyMethod { return slices.Clone(c.methods) }

// Config returns the site config with defaults applied.
func (c *Catalog) Config() SiteConfig { return c.config }

// Categories returns the distinct item categories in first-seen order.
func (c *Catalog) Categories() []string { return slices.Clone(c.categories) }

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Find looks an item up by name, ignoring case.
func (c *Catalog) Find(name string) (Item, bool) {
	name = strings.TrimSpace(name)
	for _, it := range c.items {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return Item{}, false
}

// Query filters and sorts the items. See Apply.
func (c *Catalog) Query(q Query) []Item {
	return Apply(c.items, q)
}
