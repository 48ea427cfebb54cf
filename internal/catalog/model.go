package catalog

import (
	"time"

	"itemstore/internal/jsonutil"
)

// Defaults applied to a SiteConfig for fields the document leaves out.
const (
	DefaultCurrency          = "$"
	DefaultTipIntervalMs     = 10000
	DefaultSiteName          = "Item Calculator"
	DefaultSubtitle          = "Calculate the cost"
	DefaultTotalCategories   = 9
	DefaultPopularItem       = "Diamond"
	feedbackFooterNameSuffix = " Feedback System"
)

// Item is a single purchasable entry in the catalog.
type Item struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stack    int     `json:"stack"`
	Icon     string  `json:"icon"`
	Popular  bool    `json:"popular"`
}

// StackPrice is the cost of one full stack of the item.
func (i Item) StackPrice() float64 {
	return i.Price * float64(i.Stack)
}

// MoneyMethod is one entry of the money-making guide.
type MoneyMethod struct {
	Title          string   `json:"title"`
	Icon           string   `json:"icon"`
	IconColor      string   `json:"iconColor"`
	Difficulty     int      `json:"difficulty"`
	DifficultyText string   `json:"difficultyText"`
	Description    string   `json:"description"`
	Time           string   `json:"time"`
	Earning        string   `json:"earning"`
	Requirements   []string `json:"requirements"`
	Tip            string   `json:"tip"`
}

// MaxDifficulty is the number of stars a difficulty rating is drawn against.
const MaxDifficulty = 5

// Stars clamps Difficulty to [0, MaxDifficulty].
func (m MoneyMethod) Stars() int {
	return min(max(m.Difficulty, 0), MaxDifficulty)
}

// SiteConfig holds display and behaviour options shipped with the document.
type SiteConfig struct {
	Currency          string `json:"currency"`
	TipChangeInterval int    `json:"tipChangeInterval"` // milliseconds
	DiscordWebhook    string `json:"discordWebhook"`
	SiteName          string `json:"siteName"`
	Subtitle          string `json:"subtitle"`
	TotalCategories   int    `json:"totalCategories"`
	PopularItem       string `json:"popularItem"`
}

// TipInterval returns the tip rotation interval.
func (c SiteConfig) TipInterval() time.Duration {
	return time.Duration(c.TipChangeInterval) * time.Millisecond
}

// FeedbackFooter is the footer text attached to feedback submissions.
func (c SiteConfig) FeedbackFooter() string {
	return c.SiteName + feedbackFooterNameSuffix
}

// withDefaults fills unset (zero) fields. Zero and absent are treated alike,
// so an explicit 0 interval or category count also falls back.
func (c SiteConfig) withDefaults() SiteConfig {
	c.Currency = jsonutil.FirstNonZero(c.Currency, DefaultCurrency)
	if c.TipChangeInterval <= 0 {
		c.TipChangeInterval = DefaultTipIntervalMs
	}
	c.SiteName = jsonutil.FirstNonZero(c.SiteName, DefaultSiteName)
	c.Subtitle = jsonutil.FirstNonZero(c.Subtitle, DefaultSubtitle)
	c.TotalCategories = jsonutil.FirstNonZero(c.TotalCategories, DefaultTotalCategories)
	c.PopularItem = jsonutil.FirstNonZero(c.PopularItem, DefaultPopularItem)
	return c
}

// Document is the on-disk / on-wire catalog format.
type Document struct {
	Items        []Item        `json:"items"`
	Tips         []string      `json:"tips"`
	MoneyMethods []MoneyMethod `json:"moneyMethods"`
	Config       SiteConfig    `json:"config"`
}

// normalize replaces absent collections with empty ones and applies config defaults.
func (d Document) normalize() Document {
	d.Items = jsonutil.NonNil(d.Items)
	d.Tips = jsonutil.NonNil(d.Tips)
	d.MoneyMethods = jsonutil.NonNil(d.MoneyMethods)
	for i := range d.MoneyMethods {
		d.MoneyMethods[i].Requirements = jsonutil.NonNil(d.MoneyMethods[i].Requirements)
	}
	d.Config = d.Config.withDefaults()
	return d
}
