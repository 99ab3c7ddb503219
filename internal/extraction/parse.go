package extraction

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"ecakir/fintext/internal/models"
	"ecakir/fintext/internal/parseerror"

	"github.com/shopspring/decimal"
)

const snippetLength = 120

// rawTransaction mirrors the JSON object the model is instructed to return.
// Every field is a pointer so absence is distinguishable from a zero value.
type rawTransaction struct {
	Amount          *decimal.Decimal `json:"amount"`
	Type            *string          `json:"type"`
	Description     *string          `json:"description"`
	CategoryKeyword *string          `json:"category_keyword"`
	Date            *string          `json:"date"`
	Notes           *string          `json:"notes"`
	Confidence      *float64         `json:"confidence"`
}

// ParseResponse decodes the extraction response into a ParsedTransaction.
// It fails with UnparseableError when the response is not the expected shape
// and with IncompleteError when `type` or `amount` is missing — there is
// nothing to classify without them.
func ParseResponse(raw string) (*models.ParsedTransaction, error) {
	clean := cleanModelJSON(raw)

	var rt rawTransaction
	if err := json.Unmarshal([]byte(clean), &rt); err != nil {
		return nil, &parseerror.UnparseableError{Snippet: snippet(clean), Err: err}
	}

	if rt.Type == nil {
		return nil, &parseerror.IncompleteError{Field: "type"}
	}
	txType, err := models.ParseTransactionType(*rt.Type)
	if err != nil {
		return nil, &parseerror.IncompleteError{Field: "type"}
	}

	if rt.Amount == nil || !rt.Amount.IsPositive() {
		return nil, &parseerror.IncompleteError{Field: "amount"}
	}

	parsed := &models.ParsedTransaction{
		Amount:          rt.Amount,
		Type:            &txType,
		Description:     trimmed(rt.Description),
		CategoryKeyword: trimmed(rt.CategoryKeyword),
		Notes:           trimmed(rt.Notes),
		Confidence:      clampConfidence(rt.Confidence),
	}

	if rt.Date != nil {
		// An unparseable date is treated as absent; the assembler falls
		// back to today.
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(*rt.Date)); err == nil {
			parsed.Date = &d
		}
	}

	return parsed, nil
}

// cleanModelJSON strips markdown fences and surrounding junk the model may
// emit despite instructions, keeping the outermost JSON object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func clampConfidence(c *float64) float64 {
	if c == nil {
		return 0
	}
	switch {
	case *c < 0:
		return 0
	case *c > 1:
		return 1
	default:
		return *c
	}
}

// snippet truncates s for error messages, backing up to a rune boundary so
// the result stays valid UTF-8.
func snippet(s string) string {
	if len(s) <= snippetLength {
		return s
	}
	cut := snippetLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
