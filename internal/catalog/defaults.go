// Package catalog holds the default category keyword table: a static mapping
// from canonical category keys to the surface keywords users are likely to
// utter, plus the icon and color each default category is seeded with.
//
// The table is initialized at process start (optionally extended by
// LoadOverrides) and never mutated afterwards, so unbounded concurrent reads
// are safe.
package catalog

import (
	"strings"

	"ecakir/fintext/internal/models"
)

// Entry bridges surface keywords to the canonical name a default category was
// seeded with, so tier-0 resolution can locate the user's live copy by name.
type Entry struct {
	Key      string                 `yaml:"key"`
	Type     models.TransactionType `yaml:"type"`
	Keywords []string               `yaml:"keywords"`
	Icon     string                 `yaml:"icon"`
	Color    string                 `yaml:"color"`
}

// Fallback category keys, one per transaction type. Every bootstrapped
// account carries both.
const (
	FallbackExpenseKey = "other_expense"
	FallbackIncomeKey  = "other_income"
)

var entries = []Entry{
	{
		Key:      "market",
		Type:     models.TypeExpense,
		Keywords: []string{"market", "migros", "bim", "a101", "şok", "carrefour", "bakkal", "manav"},
		Icon:     "shopping-cart",
		Color:    "#22C55E",
	},
	{
		Key:      "food",
		Type:     models.TypeExpense,
		Keywords: []string{"yemek", "restoran", "lokanta", "kafe", "cafe", "kahve", "fastfood"},
		Icon:     "utensils",
		Color:    "#F97316",
	},
	{
		Key:      "transport",
		Type:     models.TypeExpense,
		Keywords: []string{"ulaşım", "ulasim", "taksi", "otobüs", "otobus", "metro", "benzin", "yakıt", "yakit", "akbil"},
		Icon:     "bus",
		Color:    "#3B82F6",
	},
	{
		Key:      "bills",
		Type:     models.TypeExpense,
		Keywords: []string{"fatura", "elektrik", "su", "doğalgaz", "dogalgaz", "internet", "telefon", "aidat"},
		Icon:     "file-text",
		Color:    "#EAB308",
	},
	{
		Key:      "rent",
		Type:     models.TypeExpense,
		Keywords: []string{"kira", "ev kirası", "ev kirasi"},
		Icon:     "home",
		Color:    "#8B5CF6",
	},
	{
		Key:      "health",
		Type:     models.TypeExpense,
		Keywords: []string{"sağlık", "saglik", "eczane", "hastane", "doktor", "ilaç", "ilac"},
		Icon:     "heart-pulse",
		Color:    "#EF4444",
	},
	{
		Key:      "entertainment",
		Type:     models.TypeExpense,
		Keywords: []string{"eğlence", "eglence", "sinema", "konser", "oyun", "netflix", "spotify"},
		Icon:     "clapperboard",
		Color:    "#EC4899",
	},
	{
		Key:      "clothing",
		Type:     models.TypeExpense,
		Keywords: []string{"giyim", "kıyafet", "kiyafet", "ayakkabı", "ayakkabi", "mağaza", "magaza"},
		Icon:     "shirt",
		Color:    "#14B8A6",
	},
	{
		Key:      "education",
		Type:     models.TypeExpense,
		Keywords: []string{"eğitim", "egitim", "kurs", "kitap", "okul", "üniversite", "universite"},
		Icon:     "graduation-cap",
		Color:    "#6366F1",
	},
	{
		Key:      FallbackExpenseKey,
		Type:     models.TypeExpense,
		Keywords: []string{"diğer", "diger"},
		Icon:     "circle-ellipsis",
		Color:    "#94A3B8",
	},
	{
		Key:      "salary",
		Type:     models.TypeIncome,
		Keywords: []string{"maaş", "maas", "ücret", "ucret", "mesai"},
		Icon:     "banknote",
		Color:    "#16A34A",
	},
	{
		Key:      "freelance",
		Type:     models.TypeIncome,
		Keywords: []string{"serbest", "freelance", "danışmanlık", "danismanlik", "proje"},
		Icon:     "laptop",
		Color:    "#0EA5E9",
	},
	{
		Key:      "investment",
		Type:     models.TypeIncome,
		Keywords: []string{"yatırım", "yatirim", "borsa", "hisse", "temettü", "temettu", "faiz"},
		Icon:     "trending-up",
		Color:    "#A855F7",
	},
	{
		Key:      FallbackIncomeKey,
		Type:     models.TypeIncome,
		Keywords: []string{"diğer", "diger"},
		Icon:     "circle-ellipsis",
		Color:    "#94A3B8",
	},
}

// Entries returns the default category table. Callers must treat the returned
// slice as read-only.
func Entries() []Entry {
	return entries
}

// HasKeyword reports whether the entry's keyword set contains the normalized
// keyword (exact, case-insensitive).
func (e Entry) HasKeyword(normalized string) bool {
	for _, kw := range e.Keywords {
		if strings.EqualFold(kw, normalized) {
			return true
		}
	}
	return false
}

// FallbackKey returns the canonical key of the catch-all category for the
// given transaction type.
func FallbackKey(txType models.TransactionType) string {
	if txType == models.TypeIncome {
		return FallbackIncomeKey
	}
	return FallbackExpenseKey
}
