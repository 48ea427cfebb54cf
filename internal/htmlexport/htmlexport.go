// Package htmlexport renders a catalog query as a standalone HTML page.
package htmlexport

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"itemstore/internal/catalog"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

type page struct {
	Config     catalog.SiteConfig
	TotalItems int
	Filter     string
	Items      []catalog.Item
	Methods    []catalog.MoneyMethod
	Tips       []string
}

// Export writes the page for cat filtered and sorted by q.
func Export(w io.Writer, cat *catalog.Catalog, q catalog.Query) error {
	cfg := cat.Config()
	tmpl, err := template.New("page.html.tmpl").Funcs(template.FuncMap{
		"price": func(v float64) string { return catalog.FormatPrice(v, cfg.Currency) },
		"stars": func(n int) string {
			return strings.Repeat("★", n) + strings.Repeat("☆", catalog.MaxDifficulty-n)
		},
	}).ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	p := page{
		Config:     cfg,
		TotalItems: cat.Len(),
		Filter:     describe(q),
		Items:      cat.Query(q),
		Methods:    cat.MoneyMethods(),
		Tips:       cat.Tips(),
	}
	if err := tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func describe(q catalog.Query) string {
	var parts []string
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", q.Search))
	}
	if q.Category != "" && q.Category != catalog.AllCategories {
		parts = append(parts, "category "+q.Category)
	}
	if k := catalog.ParseSortKey(string(q.Sort)); k != catalog.SortName {
		parts = append(parts, "sorted by "+k.Label())
	}
	return strings.Join(parts, ", ")
}
