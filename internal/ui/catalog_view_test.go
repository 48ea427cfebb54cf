package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"itemstore/internal/catalog"
)

func loadFixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "catalog", "testdata", "data.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	cat, err := catalog.Parse(data)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return cat
}

func resultNames(items []catalog.Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

func TestCatalogView_InitialQuery(t *testing.T) {
	v := NewCatalogView(loadFixtureCatalog(t))
	q := v.Query()
	if q.Search != "" || q.Category != catalog.AllCategories || q.Sort != catalog.SortName {
		t.Errorf("initial query = %+v", q)
	}
	want := []string{"Bread", "Diamond", "diamond Sword", "Emerald", "Ender Pearl", "Iron Ingot"}
	if got := resultNames(v.Results()); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("results = %v, want %v", got, want)
	}
	item, ok := v.SelectedItem()
	if !ok || item.Name != "Bread" {
		t.Errorf("SelectedItem = %v, %v", item.Name, ok)
	}
}

func TestCatalogView_SearchIsLiveAndCaseInsensitive(t *testing.T) {
	v := NewCatalogView(loadFixtureCatalog(t))
	v.FocusSearch()
	if !v.SearchFocused() {
		t.Fatal("search should be focused")
	}
	typeText(v, "DIA")

	got := resultNames(v.Results())
	if len(got) != 2 || got[0] != "Diamond" || got[1] != "diamond Sword" {
		t.Errorf("results = %v", got)
	}

	v.Update(keyMsg("enter"))
	if v.SearchFocused() {
		t.Error("enter should leave the search box")
	}
	if v.Query().Search != "DIA" {
		t.Errorf("search text lost: %q", v.Query().Search)
	}
}

func TestCatalogView_CycleCategory(t *testing.T) {
	v := NewCatalogView(loadFixtureCatalog(t))
	v.CycleCategory(1)
	if v.Category() != "Ores" {
		t.Fatalf("category = %q, want Ores", v.Category())
	}
	for _, it := range v.Results() {
		if it.Category != "Ores" {
			t.Errorf("unexpected %s in Ores", it.Name)
		}
	}
	if len(v.Results()) != 3 {
		t.Errorf("Ores results = %d, want 3", len(v.Results()))
	}

	v.CycleCategory(-2)
	if v.Category() != "Food" {
		t.Errorf("category after wrapping back = %q, want Food", v.Category())
	}
}

func TestCatalogView_CycleSort(t *testing.T) {
	v := NewCatalogView(loadFixtureCatalog(t))
	v.CycleSort(1)
	if v.Query().Sort != catalog.SortPriceAsc {
		t.Fatalf("sort = %q", v.Query().Sort)
	}
	if first := v.Results()[0].Name; first != "Bread" {
		t.Errorf("cheapest = %q, want Bread", first)
	}
	v.CycleSort(1)
	if first := v.Results()[0].Name; first != "diamond Sword" {
		t.Errorf("most expensive = %q, want diamond Sword", first)
	}
	v.CycleSort(-3)
	if v.Query().Sort != catalog.SortStack {
		t.Errorf("sort after wrapping back = %q, want stack", v.Query().Sort)
	}
}

func TestCatalogView_EmptyResult(t *testing.T) {
	v := NewCatalogView(loadFixtureCatalog(t))
	v.SetSearch("netherite")
	if len(v.Results()) != 0 {
		t.Fatalf("results = %v", resultNames(v.Results()))
	}
	if _, ok := v.SelectedItem(); ok {
		t.Error("no selection expected on empty result")
	}
	out := v.View()
	if !strings.Contains(out, "No items found") || !strings.Contains(out, "0 of 6 items") {
		t.Errorf("empty state not rendered:\n%s", out)
	}
}

func TestCatalogView_TableNavigation(t *testing.T) {
	v := NewCatalogView(loadFixtureCatalog(t))
	v.Update(keyMsg("j"))
	item, _ := v.SelectedItem()
	if item.Name != "Diamond" {
		t.Errorf("after j selected = %q, want Diamond", item.Name)
	}
}

func TestCatalogView_RendersHeaderAndRows(t *testing.T) {
	v := NewCatalogView(loadFixtureCatalog(t))
	v.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := v.View()
	for _, want := range []string{"HugoSMP", "Shop prices", "Items: 6", "Categories: 4", "Popular: Diamond", "12.50€", "800.00€", popularMarker} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCatalogView_SetCatalogKeepsCategory(t *testing.T) {
	cat := loadFixtureCatalog(t)
	v := NewCatalogView(cat)
	v.CycleCategory(1) // Ores
	v.SetCatalog(cat)
	if v.Category() != "Ores" {
		t.Errorf("category after reload = %q", v.Category())
	}

	smaller, err := catalog.New(catalog.Document{Items: []catalog.Item{{Name: "Bread", Category: "Food", Stack: 64}}})
	if err != nil {
		t.Fatal(err)
	}
	v.SetCatalog(smaller)
	if v.Category() != catalog.AllCategories {
		t.Errorf("vanished category should reset to all, got %q", v.Category())
	}
}
