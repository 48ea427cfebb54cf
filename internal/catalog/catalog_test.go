package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Catalog {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "data.json"))
	require.NoError(t, err)
	cat, err := Parse(data)
	require.NoError(t, err)
	return cat
}

func TestParse_Fixture(t *testing.T) {
	cat := loadFixture(t)

	assert.Equal(t, 6, cat.Len())
	assert.Len(t, cat.Tips(), 2)
	require.Len(t, cat.MoneyMethods(), 1)
	assert.Equal(t, []string{"Iron pickaxe", "Torches"}, cat.MoneyMethods()[0].Requirements)

	cfg := cat.Config()
	assert.Equal(t, "€", cfg.Currency)
	assert.Equal(t, "HugoSMP", cfg.SiteName)
	assert.Equal(t, "HugoSMP Feedback System", cfg.FeedbackFooter())
	assert.Equal(t, 4, cfg.TotalCategories)
	assert.Equal(t, int64(5000), cfg.TipInterval().Milliseconds())
}

func TestParse_MissingFieldsDefaultToEmpty(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"explicit nulls", `{"items": null, "tips": null, "moneyMethods": null, "config": null}`},
		{"empty arrays", `{"items": [], "tips": [], "moneyMethods": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Parse([]byte(tt.data))
			require.NoError(t, err)

			assert.NotNil(t, cat.Items())
			assert.Empty(t, cat.Items())
			assert.NotNil(t, cat.Tips())
			assert.Empty(t, cat.Tips())
			assert.NotNil(t, cat.MoneyMethods())
			assert.Empty(t, cat.MoneyMethods())
			assert.NotNil(t, cat.Categories())
			assert.Empty(t, cat.Query(Query{}))

			cfg := cat.Config()
			assert.Equal(t, DefaultCurrency, cfg.Currency)
			assert.Equal(t, DefaultSiteName, cfg.SiteName)
			assert.Equal(t, DefaultSubtitle, cfg.Subtitle)
			assert.Equal(t, DefaultTotalCategories, cfg.TotalCategories)
			assert.Equal(t, DefaultPopularItem, cfg.PopularItem)
			assert.Equal(t, int64(DefaultTipIntervalMs), cfg.TipInterval().Milliseconds())
			assert.Empty(t, cfg.DiscordWebhook)
		})
	}
}

func TestParse_MethodWithoutRequirements(t *testing.T) {
	cat, err := Parse([]byte(`{"moneyMethods": [{"title": "Fishing"}]}`))
	require.NoError(t, err)
	methods := cat.MoneyMethods()
	require.Len(t, methods, 1)
	assert.NotNil(t, methods[0].Requirements)
	assert.Empty(t, methods[0].Requirements)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"items": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog document")
}

func TestNew_RejectsInvalidItems(t *testing.T) {
	doc := Document{Items: []Item{
		{Name: "Ok", Price: 1, Stack: 64},
		{Name: "Zero stack", Price: 1, Stack: 0},
		{Name: "Negative", Price: -1, Stack: 16},
		{Name: "  ", Price: 1, Stack: 1},
	}}

	_, err := New(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidItem))
	assert.Contains(t, err.Error(), "Zero stack")
	assert.Contains(t, err.Error(), "Negative")
	assert.Contains(t, err.Error(), "empty name")
	assert.NotContains(t, err.Error(), `"Ok"`)
}

func TestCatalog_Categories(t *testing.T) {
	cat := loadFixture(t)
	assert.Equal(t, []string{"Ores", "Mob Drops", "Weapons", "Food"}, cat.Categories())
}

func TestCatalog_Find(t *testing.T) {
	cat := loadFixture(t)

	it, ok := cat.Find("  ender pearl ")
	require.True(t, ok)
	assert.Equal(t, "Ender Pearl", it.Name)

	_, ok = cat.Find("Netherite")
	assert.False(t, ok)
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	cat := loadFixture(t)

	items := cat.Items()
	items[0].Name = "mutated"
	assert.NotEqual(t, "mutated", cat.Items()[0].Name)

	tips := cat.Tips()
	tips[0] = "mutated"
	assert.NotEqual(t, "mutated", cat.Tips()[0])
}

func TestMoneyMethod_Stars(t *testing.T) {
	assert.Equal(t, 0, MoneyMethod{Difficulty: -2}.Stars())
	assert.Equal(t, 3, MoneyMethod{Difficulty: 3}.Stars())
	assert.Equal(t, MaxDifficulty, MoneyMethod{Difficulty: 9}.Stars())
}

func TestItem_StackPrice(t *testing.T) {
	assert.InDelta(t, 800.0, Item{Price: 12.5, Stack: 64}.StackPrice(), 1e-9)
}
