package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"itemstore/internal/catalog"
	"itemstore/internal/ui/textutil"
)

const (
	defaultCatalogWidth  = 80
	defaultCatalogHeight = 24
	// Rows taken by header, stats, controls, table header and status line.
	catalogChromeHeight = 9
	popularMarker       = "★"
)

// CatalogView is the main storefront screen: site header, search box,
// category and sort selectors, and the item table.
type CatalogView struct {
	catalog     *catalog.Catalog
	search      textinput.Model
	categories  []string // AllCategories first
	categoryIdx int
	sortIdx     int
	table       table.Model
	results     []catalog.Item
	width       int
	height      int
}

// Ensure CatalogView implements View.
var _ View = (*CatalogView)(nil)

// NewCatalogView creates the view over cat with an empty query.
func NewCatalogView(cat *catalog.Catalog) *CatalogView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search items…"
	ti.CharLimit = 64
	ti.Width = 30

	t := table.New(table.WithFocused(true))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	t.SetStyles(styles)

	v := &CatalogView{
		search: ti,
		table:  t,
		width:  defaultCatalogWidth,
		height: defaultCatalogHeight,
	}
	v.SetCatalog(cat)
	return v
}

// SetCatalog swaps in a new catalog, keeping the query where it still applies.
func (v *CatalogView) SetCatalog(cat *catalog.Catalog) {
	current := v.Category()
	v.catalog = cat
	v.categories = []string{catalog.AllCategories}
	if cat != nil {
		v.categories = append(v.categories, cat.Categories()...)
	}
	v.categoryIdx = 0
	for i, c := range v.categories {
		if c == current {
			v.categoryIdx = i
		}
	}
	v.layout()
	v.refresh()
}

// Catalog returns the catalog on display.
func (v *CatalogView) Catalog() *catalog.Catalog {
	return v.catalog
}

// Query returns the current query state.
func (v *CatalogView) Query() catalog.Query {
	return catalog.Query{
		Search:   v.search.Value(),
		Category: v.Category(),
		Sort:     catalog.SortKeys()[v.sortIdx],
	}
}

// Category returns the selected category (AllCategories for every category).
func (v *CatalogView) Category() string {
	if v.categoryIdx < len(v.categories) {
		return v.categories[v.categoryIdx]
	}
	return catalog.AllCategories
}

// Results returns the rows currently shown.
func (v *CatalogView) Results() []catalog.Item {
	return v.results
}

// SelectedItem returns the item under the cursor.
func (v *CatalogView) SelectedItem() (catalog.Item, bool) {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.results) {
		return catalog.Item{}, false
	}
	return v.results[i], true
}

// SetSearch replaces the search text.
func (v *CatalogView) SetSearch(s string) {
	v.search.SetValue(s)
	v.refresh()
}

// FocusSearch moves keyboard input to the search box.
func (v *CatalogView) FocusSearch() tea.Cmd {
	v.table.Blur()
	return v.search.Focus()
}

// SearchFocused reports whether typing goes to the search box.
func (v *CatalogView) SearchFocused() bool {
	return v.search.Focused()
}

func (v *CatalogView) blurSearch() {
	v.search.Blur()
	v.table.Focus()
}

// CycleCategory moves the category selector by delta, wrapping around.
func (v *CatalogView) CycleCategory(delta int) {
	v.categoryIdx = wrapIndex(v.categoryIdx+delta, len(v.categories))
	v.refresh()
}

// CycleSort moves the sort selector by delta, wrapping around.
func (v *CatalogView) CycleSort(delta int) {
	v.sortIdx = wrapIndex(v.sortIdx+delta, len(catalog.SortKeys()))
	v.refresh()
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Init implements View.
func (v *CatalogView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *CatalogView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.layout()
		return v, nil
	case tea.KeyMsg:
		if v.search.Focused() {
			switch msg.String() {
			case "enter", "esc":
				v.blurSearch()
				return v, nil
			}
			before := v.search.Value()
			var cmd tea.Cmd
			v.search, cmd = v.search.Update(msg)
			if v.search.Value() != before {
				v.refresh()
			}
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// refresh recomputes the result set from the query and rebuilds the rows.
func (v *CatalogView) refresh() {
	if v.catalog == nil {
		v.results = nil
		v.table.SetRows(nil)
		return
	}
	v.results = v.catalog.Query(v.Query())
	currency := v.catalog.Config().Currency
	rows := make([]table.Row, len(v.results))
	for i, it := range v.results {
		marker := ""
		if it.Popular {
			marker = popularMarker
		}
		rows[i] = table.Row{
			marker,
			it.Name,
			it.Category,
			catalog.FormatPrice(it.Price, currency),
			strconv.Itoa(it.Stack),
			catalog.FormatPrice(it.StackPrice(), currency),
		}
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(max(len(rows)-1, 0))
	}
}

// layout sizes the table columns to the window.
func (v *CatalogView) layout() {
	const (
		markerW = 2
		priceW  = 12
		stackW  = 6
	)
	// Each column has one cell of padding on either side.
	fixed := markerW + 2*priceW + stackW + 6*2
	flex := max(v.width-fixed, 20)
	nameW := flex * 3 / 5
	categoryW := flex - nameW
	v.table.SetColumns([]table.Column{
		{Title: "", Width: markerW},
		{Title: "Item", Width: nameW},
		{Title: "Category", Width: categoryW},
		{Title: "Price", Width: priceW},
		{Title: "Stack", Width: stackW},
		{Title: "Stack price", Width: priceW},
	})
	v.table.SetWidth(v.width)
	v.table.SetHeight(max(v.height-catalogChromeHeight, 3))
}

// View implements View.
func (v *CatalogView) View() string {
	if v.catalog == nil {
		return Styles.Empty.Render("No catalog loaded.")
	}
	cfg := v.catalog.Config()

	var b strings.Builder
	b.WriteString(Styles.Title.Render(cfg.SiteName) + "  " + Styles.Muted.Render(cfg.Subtitle) + "\n")
	b.WriteString(v.renderStats(cfg) + "\n\n")
	b.WriteString(v.renderControls() + "\n\n")

	if len(v.results) == 0 {
		b.WriteString(Styles.Empty.Render("No items found. Try another search or category.") + "\n")
	} else {
		b.WriteString(v.table.View() + "\n")
	}
	status := fmt.Sprintf("%d of %d items", len(v.results), v.catalog.Len())
	b.WriteString(Styles.Muted.Render(status))
	return b.String()
}

func (v *CatalogView) renderStats(cfg catalog.SiteConfig) string {
	stat := func(label, value string) string {
		return Styles.Muted.Render(label+": ") + Styles.Stat.Render(value)
	}
	return strings.Join([]string{
		stat("Items", strconv.Itoa(v.catalog.Len())),
		stat("Categories", strconv.Itoa(cfg.TotalCategories)),
		stat("Popular", Styles.Popular.Render(cfg.PopularItem)),
	}, "   ")
}

func (v *CatalogView) renderControls() string {
	category := v.Category()
	if category == catalog.AllCategories {
		category = "All"
	}
	selector := func(label, value string) string {
		return Styles.Muted.Render(label+" ") + Styles.Section.Render("‹ "+textutil.Truncate(value, 18)+" ›")
	}
	search := v.search.View()
	if !v.search.Focused() && v.search.Value() == "" {
		search = Styles.Muted.Render("/ search")
	}
	return strings.Join([]string{
		textutil.PadRightStyled(search, 34),
		selector("[c] Category", category),
		selector("[s] Sort", catalog.SortKeys()[v.sortIdx].Label()),
	}, "  ")
}
