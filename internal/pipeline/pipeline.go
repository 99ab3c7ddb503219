// Package pipeline orchestrates one parse-and-create invocation: extraction,
// keyword resolution, the confidence gate, and entry assembly. Invocations
// are independent and stateless; nothing is retried internally.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ecakir/fintext/internal/catalog"
	"ecakir/fintext/internal/extraction"
	"ecakir/fintext/internal/logging"
	"ecakir/fintext/internal/models"
	"ecakir/fintext/internal/parseerror"
	"ecakir/fintext/internal/resolver"

	"github.com/shopspring/decimal"
)

// Input validation errors, surfaced before any outbound call.
var (
	ErrEmptyText   = errors.New("text is empty")
	ErrTextTooLong = errors.New("text exceeds maximum length")
)

// Pipeline wires the extraction client, the resolver, and the store
// boundaries behind a single ParseAndCreate operation.
type Pipeline struct {
	extractor     extraction.Client
	categories    CategoryStore
	ledger        LedgerStore
	resolver      *resolver.Resolver
	threshold     float64
	maxInputChars int
	logger        logging.Logger
}

// New creates a Pipeline. The confidence threshold and input cap are resolved
// once here, not read from the environment at call time.
func New(extractor extraction.Client, categories CategoryStore, ledger LedgerStore, res *resolver.Resolver, threshold float64, maxInputChars int, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Pipeline{
		extractor:     extractor,
		categories:    categories,
		ledger:        ledger,
		resolver:      res,
		threshold:     threshold,
		maxInputChars: maxInputChars,
		logger:        logger,
	}
}

// ParseAndCreate turns a free-form utterance into either a committed ledger
// entry or a confirmation payload when the extraction confidence falls below
// the threshold. Errors carry stable codes via the parseerror package.
func (p *Pipeline) ParseAndCreate(ctx context.Context, userID, text string) (*models.ParseResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if n := utf8.RuneCountInString(text); n > p.maxInputChars {
		return nil, fmt.Errorf("%w: %d characters (max %d)", ErrTextTooLong, n, p.maxInputChars)
	}

	raw, err := p.extractor.Extract(ctx, text)
	if err != nil {
		return nil, err
	}

	parsed, err := extraction.ParseResponse(raw)
	if err != nil {
		return nil, err
	}

	// Unreachable while ParseResponse rejects a missing type, but guarded
	// before the fallback-category lookup depends on it.
	if parsed.Type == nil || !parsed.Type.Valid() {
		return nil, &parseerror.TypeUndeterminedError{}
	}
	txType := *parsed.Type

	keyword := ""
	if parsed.CategoryKeyword != nil {
		keyword = *parsed.CategoryKeyword
	}

	candidates, err := p.categories.ListActiveCategories(ctx, userID, txType)
	if err != nil {
		return nil, fmt.Errorf("listing categories for user %s: %w", userID, err)
	}

	resolution := p.resolver.Resolve(keyword, txType, candidates)
	categoryID := resolution.CategoryID
	if !resolution.Found {
		fallbackName := catalog.FallbackKey(txType)
		fallback, err := p.categories.FindDefaultCategoryByName(ctx, userID, txType, fallbackName)
		if err != nil {
			return nil, fmt.Errorf("looking up fallback category for user %s: %w", userID, err)
		}
		if fallback == nil {
			intErr := &parseerror.DefaultCategoryMissingError{UserID: userID, Type: txType, Name: fallbackName}
			p.logger.WithFields(
				logging.Field{Key: logging.FieldUser, Value: userID},
				logging.Field{Key: logging.FieldType, Value: string(txType)},
				logging.Field{Key: logging.FieldCategory, Value: fallbackName},
			).Error("Seeded default category missing, account needs operator attention")
			return nil, intErr
		}
		categoryID = fallback.ID
	}

	if parsed.Description == nil {
		parsed.Description = &text
	}

	if parsed.Confidence < p.threshold {
		p.logger.WithFields(
			logging.Field{Key: logging.FieldUser, Value: userID},
			logging.Field{Key: logging.FieldConfidence, Value: parsed.Confidence},
		).Debug("Confidence below threshold, returning confirmation payload")
		return &models.ParseResult{
			NeedsConfirmation: true,
			Parsed:            parsed,
		}, nil
	}

	entry, err := p.ledger.CreateEntry(ctx, p.assembleCommit(userID, parsed, categoryID))
	if err != nil {
		return nil, fmt.Errorf("creating ledger entry for user %s: %w", userID, err)
	}

	return &models.ParseResult{
		Transaction: entry,
		Parsing: &models.ParsingInfo{
			Method:        "ai",
			Confidence:    parsed.Confidence,
			CategoryFound: resolution.Found,
		},
	}, nil
}

// assembleCommit builds the entry-creation request once the gate has passed.
func (p *Pipeline) assembleCommit(userID string, parsed *models.ParsedTransaction, categoryID string) models.CommitRequest {
	// Unreachable while ParseResponse rejects a missing amount; kept as a
	// defensive fallback rather than a panic path.
	amount := decimal.Zero
	if parsed.Amount != nil {
		amount = *parsed.Amount
	}

	date := time.Now()
	if parsed.Date != nil {
		date = *parsed.Date
	}

	description := ""
	if parsed.Description != nil {
		description = *parsed.Description
	}

	return models.CommitRequest{
		UserID:      userID,
		Type:        *parsed.Type,
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		Date:        date,
		Notes:       parsed.Notes,
	}
}
