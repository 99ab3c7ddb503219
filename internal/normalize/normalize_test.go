package normalize

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestKeyword(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips harcaması suffix",
			input:    "Market harcaması",
			expected: "market",
		},
		{
			name:     "strips ASCII-folded harcamasi suffix",
			input:    "market harcamasi",
			expected: "market",
		},
		{
			name:     "strips alışverişi suffix",
			input:    "market alışverişi",
			expected: "market",
		},
		{
			name:     "strips faturası suffix",
			input:    "Elektrik faturası",
			expected: "elektrik",
		},
		{
			name:     "strips ödemesi suffix",
			input:    "  kira ödemesi  ",
			expected: "kira",
		},
		{
			name:     "strips geliri suffix",
			input:    "kira geliri",
			expected: "kira",
		},
		{
			name:     "lowercases and trims without suffix",
			input:    "  Benzin  ",
			expected: "benzin",
		},
		{
			name:     "merchant name passes through",
			input:    "Migros",
			expected: "migros",
		},
		{
			name:     "suffix-only input normalizes to empty",
			input:    "harcaması",
			expected: "",
		},
		{
			name:     "empty input stays empty",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace-only input normalizes to empty",
			input:    "   ",
			expected: "",
		},
		{
			name:     "strips stacked suffixes",
			input:    "su faturası ödemesi",
			expected: "su",
		},
		{
			name:     "strips stacked mixed suffixes",
			input:    "kira ödemesi harcaması",
			expected: "kira",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Keyword(tt.input))
		})
	}
}

// TestKeyword_Idempotent verifies that a normalized keyword does not change
// under a second normalization pass.
func TestKeyword_Idempotent(t *testing.T) {
	inputs := []string{
		"Market harcaması",
		"Elektrik faturası",
		"kira ödemesi",
		"Benzin",
		"maaş",
		"yemek",
		"Migros",
		"",
		// Stacked suffixes: the once-stripped form still ends in a suffix.
		"su faturası ödemesi",
		"kira ödemesi harcaması",
		"harcaması harcaması",
	}

	for _, input := range inputs {
		once := Keyword(input)
		assert.Equal(t, once, Keyword(once), "normalization of %q is not idempotent", input)
	}
}

func TestSuffixes_LongestFirstWithinFamilies(t *testing.T) {
	suffixes := Suffixes()
	assert.NotEmpty(t, suffixes)

	// "gideri" must not shadow longer suffixes that end in it.
	for i, s := range suffixes {
		for _, longer := range suffixes[:i] {
			assert.GreaterOrEqual(t, utf8.RuneCountInString(longer), utf8.RuneCountInString(s),
				"suffix %q listed after shorter %q", longer, s)
		}
	}
}
