package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecakir/fintext/internal/logging"
	"ecakir/fintext/internal/models"
)

func defaultCategories() []models.Category {
	return []models.Category{
		{ID: "cat-market", UserID: "u1", Name: "market", Type: models.TypeExpense, IsDefault: true, IsActive: true},
		{ID: "cat-food", UserID: "u1", Name: "food", Type: models.TypeExpense, IsDefault: true, IsActive: true},
		{ID: "cat-bills", UserID: "u1", Name: "bills", Type: models.TypeExpense, IsDefault: true, IsActive: true},
		{ID: "cat-other-expense", UserID: "u1", Name: "other_expense", Type: models.TypeExpense, IsDefault: true, IsActive: true},
		{ID: "cat-salary", UserID: "u1", Name: "salary", Type: models.TypeIncome, IsDefault: true, IsActive: true},
	}
}

func TestResolve_DefaultKeywordTier(t *testing.T) {
	r := New(&logging.MockLogger{})

	tests := []struct {
		name       string
		keyword    string
		txType     models.TransactionType
		expectedID string
	}{
		{
			name:       "merchant keyword maps through the default table",
			keyword:    "migros",
			txType:     models.TypeExpense,
			expectedID: "cat-market",
		},
		{
			name:       "suffixed keyword is normalized before lookup",
			keyword:    "market alışverişi",
			txType:     models.TypeExpense,
			expectedID: "cat-market",
		},
		{
			name:       "income keyword maps to the income default",
			keyword:    "maaş",
			txType:     models.TypeIncome,
			expectedID: "cat-salary",
		},
		{
			name:       "bill keyword maps to bills",
			keyword:    "elektrik faturası",
			txType:     models.TypeExpense,
			expectedID: "cat-bills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.Resolve(tt.keyword, tt.txType, defaultCategories())
			assert.True(t, result.Found)
			assert.Equal(t, tt.expectedID, result.CategoryID)
		})
	}
}

func TestResolve_DefaultKeywordBeatsExactName(t *testing.T) {
	r := New(&logging.MockLogger{})

	// A custom category literally named "migros" loses to the default table
	// mapping of that keyword onto "market".
	candidates := append(defaultCategories(), models.Category{
		ID: "cat-custom", UserID: "u1", Name: "migros", Type: models.TypeExpense, IsActive: true,
	})

	result := r.Resolve("migros", models.TypeExpense, candidates)
	assert.True(t, result.Found)
	assert.Equal(t, "cat-market", result.CategoryID)
}

func TestResolve_ExactNameTier(t *testing.T) {
	r := New(&logging.MockLogger{})

	candidates := []models.Category{
		{ID: "cat-pets", UserID: "u1", Name: "Evcil Hayvan", Type: models.TypeExpense, IsActive: true},
		{ID: "cat-coffee", UserID: "u1", Name: "Kahve", Type: models.TypeExpense, IsActive: true},
	}

	result := r.Resolve("kahve", models.TypeExpense, candidates)
	assert.True(t, result.Found)
	assert.Equal(t, "cat-coffee", result.CategoryID)
}

func TestResolve_ExactNameBeatsSubstring(t *testing.T) {
	r := New(&logging.MockLogger{})

	// "spor" is a substring of the first candidate's name but equals the
	// second's; exact equality wins regardless of supplied order.
	candidates := []models.Category{
		{ID: "cat-sportswear", UserID: "u1", Name: "spor giyim", Type: models.TypeExpense, IsActive: true},
		{ID: "cat-sport", UserID: "u1", Name: "spor", Type: models.TypeExpense, IsActive: true},
	}

	result := r.Resolve("spor", models.TypeExpense, candidates)
	assert.True(t, result.Found)
	assert.Equal(t, "cat-sport", result.CategoryID)
}

func TestResolve_SubstringTier(t *testing.T) {
	r := New(&logging.MockLogger{})

	candidates := []models.Category{
		{ID: "cat-subs", UserID: "u1", Name: "abonelikler", Type: models.TypeExpense, IsActive: true},
	}

	result := r.Resolve("abonelik", models.TypeExpense, candidates)
	assert.True(t, result.Found)
	assert.Equal(t, "cat-subs", result.CategoryID)
}

func TestResolve_TokenTier(t *testing.T) {
	r := New(&logging.MockLogger{})

	// Neither full string contains the other; only the "kahve" token does.
	candidates := []models.Category{
		{ID: "cat-coffee", UserID: "u1", Name: "kahvehane", Type: models.TypeExpense, IsActive: true},
	}

	result := r.Resolve("starbucks kahve siparişi", models.TypeExpense, candidates)
	assert.True(t, result.Found)
	assert.Equal(t, "cat-coffee", result.CategoryID)
}

// Very short category names over-match in the substring and token tiers. The
// behavior is deliberate; this test pins it so a change shows up in review.
func TestResolve_ShortNameOverMatch(t *testing.T) {
	r := New(&logging.MockLogger{})

	candidates := []models.Category{
		{ID: "cat-water", UserID: "u1", Name: "su", Type: models.TypeExpense, IsActive: true},
	}

	result := r.Resolve("sushi", models.TypeExpense, candidates)
	assert.True(t, result.Found)
	assert.Equal(t, "cat-water", result.CategoryID)
}

func TestResolve_NoMatch(t *testing.T) {
	r := New(&logging.MockLogger{})

	result := r.Resolve("petrol", models.TypeExpense, []models.Category{
		{ID: "cat-coffee", UserID: "u1", Name: "kahve", Type: models.TypeExpense, IsActive: true},
	})
	assert.False(t, result.Found)
	assert.Empty(t, result.CategoryID)
}

func TestResolve_Guards(t *testing.T) {
	r := New(&logging.MockLogger{})
	candidates := defaultCategories()

	tests := []struct {
		name    string
		keyword string
		txType  models.TransactionType
	}{
		{name: "empty keyword", keyword: "", txType: models.TypeExpense},
		{name: "whitespace keyword", keyword: "   ", txType: models.TypeExpense},
		{name: "suffix-only keyword", keyword: "harcaması", txType: models.TypeExpense},
		{name: "invalid type", keyword: "market", txType: "transfer"},
		{name: "empty type", keyword: "market", txType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.Resolve(tt.keyword, tt.txType, candidates)
			assert.False(t, result.Found)
		})
	}
}

func TestResolve_FiltersTypeAndActive(t *testing.T) {
	r := New(&logging.MockLogger{})

	candidates := []models.Category{
		{ID: "cat-inactive", UserID: "u1", Name: "kahve", Type: models.TypeExpense, IsActive: false},
		{ID: "cat-income", UserID: "u1", Name: "kahve", Type: models.TypeIncome, IsActive: true},
	}

	result := r.Resolve("kahve", models.TypeExpense, candidates)
	assert.False(t, result.Found, "inactive and wrong-type candidates must not match")

	result = r.Resolve("kahve", models.TypeIncome, candidates)
	assert.True(t, result.Found)
	assert.Equal(t, "cat-income", result.CategoryID)
}

func TestResolve_Deterministic(t *testing.T) {
	r := New(&logging.MockLogger{})
	candidates := defaultCategories()

	first := r.Resolve("market harcaması", models.TypeExpense, candidates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Resolve("market harcaması", models.TypeExpense, candidates))
	}
}

func TestResolve_SuppliedOrderBreaksTies(t *testing.T) {
	r := New(&logging.MockLogger{})

	candidates := []models.Category{
		{ID: "cat-a", UserID: "u1", Name: "kahve dükkanı", Type: models.TypeExpense, IsActive: true},
		{ID: "cat-b", UserID: "u1", Name: "kahve makinesi", Type: models.TypeExpense, IsActive: true},
	}

	result := r.Resolve("kahve", models.TypeExpense, candidates)
	assert.True(t, result.Found)
	assert.Equal(t, "cat-a", result.CategoryID)
}
