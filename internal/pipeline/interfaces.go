package pipeline

import (
	"context"

	"ecakir/fintext/internal/models"
)

// CategoryStore is the read-side boundary to category persistence. The
// pipeline only ever reads the snapshot it is handed; it never re-queries
// mid-resolution.
type CategoryStore interface {
	ListActiveCategories(ctx context.Context, userID string, txType models.TransactionType) ([]models.Category, error)

	// FindDefaultCategoryByName returns the user's seeded default category
	// with the given name, or nil when no such category exists.
	FindDefaultCategoryByName(ctx context.Context, userID string, txType models.TransactionType, name string) (*models.Category, error)
}

// LedgerStore persists assembled entries. Implementations re-validate that
// the chosen category's type matches the entry's type (defense in depth).
type LedgerStore interface {
	CreateEntry(ctx context.Context, req models.CommitRequest) (*models.Entry, error)
}
