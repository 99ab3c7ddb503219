// Package resolver maps a category keyword onto one of the caller's live
// categories through a fixed order of matching tiers:
// 1. Default-keyword table lookup against the user's seeded default categories
// 2. Exact name equality
// 3. Substring containment, either direction
// 4. Per-token substring containment, either direction
//
// This is a best-effort heuristic matcher, not a scored ranking: ties break by
// tier order, then by the order candidates are supplied.
package resolver

import (
	"strings"

	"ecakir/fintext/internal/catalog"
	"ecakir/fintext/internal/logging"
	"ecakir/fintext/internal/models"
	"ecakir/fintext/internal/normalize"
)

// Resolver resolves keywords against category snapshots. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	logger logging.Logger
}

// New creates a Resolver.
func New(logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Resolver{logger: logger}
}

// Resolve finds the category the keyword belongs to among the supplied
// candidates. A missing keyword or type resolves to Found=false immediately;
// the caller owns the fallback to the type's default category.
func (r *Resolver) Resolve(keyword string, txType models.TransactionType, candidates []models.Category) models.ResolutionResult {
	if strings.TrimSpace(keyword) == "" || !txType.Valid() {
		return models.ResolutionResult{}
	}

	filtered := filterCandidates(txType, candidates)
	if len(filtered) == 0 {
		return models.ResolutionResult{}
	}

	normalized := normalize.Keyword(keyword)
	if normalized == "" {
		// A keyword that was nothing but a descriptive suffix carries no
		// category signal; an empty string would substring-match everything.
		return models.ResolutionResult{}
	}

	tiers := []struct {
		name  string
		match func(string, models.TransactionType, []models.Category) (models.Category, bool)
	}{
		{"default_keyword", r.matchDefaultKeyword},
		{"exact_name", r.matchExactName},
		{"substring", r.matchSubstring},
		{"token", r.matchTokens},
	}

	for _, tier := range tiers {
		if category, ok := tier.match(normalized, txType, filtered); ok {
			r.logger.WithFields(
				logging.Field{Key: logging.FieldTier, Value: tier.name},
				logging.Field{Key: logging.FieldKeyword, Value: normalized},
				logging.Field{Key: logging.FieldCategory, Value: category.Name},
			).Debug("Keyword resolved to category")
			return models.ResolutionResult{CategoryID: category.ID, Found: true}
		}
	}

	return models.ResolutionResult{}
}

// filterCandidates keeps active candidates of the matching type, preserving
// the supplied order so resolution stays deterministic.
func filterCandidates(txType models.TransactionType, candidates []models.Category) []models.Category {
	filtered := make([]models.Category, 0, len(candidates))
	for _, c := range candidates {
		if c.Type == txType && c.IsActive {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// matchDefaultKeyword bridges the keyword to the canonical name a default
// category was seeded with, then looks for the user's live copy by name.
func (r *Resolver) matchDefaultKeyword(normalized string, txType models.TransactionType, candidates []models.Category) (models.Category, bool) {
	for _, entry := range catalog.Entries() {
		if entry.Type != txType || !entry.HasKeyword(normalized) {
			continue
		}
		for _, c := range candidates {
			if c.IsDefault && strings.EqualFold(c.Name, entry.Key) {
				return c, true
			}
		}
	}
	return models.Category{}, false
}

func (r *Resolver) matchExactName(normalized string, _ models.TransactionType, candidates []models.Category) (models.Category, bool) {
	for _, c := range candidates {
		if strings.ToLower(strings.TrimSpace(c.Name)) == normalized {
			return c, true
		}
	}
	return models.Category{}, false
}

func (r *Resolver) matchSubstring(normalized string, _ models.TransactionType, candidates []models.Category) (models.Category, bool) {
	for _, c := range candidates {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if strings.Contains(name, normalized) || strings.Contains(normalized, name) {
			return c, true
		}
	}
	return models.Category{}, false
}

// matchTokens tries each whitespace-separated token of the keyword in order.
// Very short category names over-match here; that trade-off is inherited
// behavior and deliberately preserved.
func (r *Resolver) matchTokens(normalized string, _ models.TransactionType, candidates []models.Category) (models.Category, bool) {
	for _, token := range strings.Fields(normalized) {
		for _, c := range candidates {
			name := strings.ToLower(strings.TrimSpace(c.Name))
			if strings.Contains(name, token) || strings.Contains(token, name) {
				return c, true
			}
		}
	}
	return models.Category{}, false
}
