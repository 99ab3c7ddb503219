// Package store provides the Postgres-backed implementations of the
// pipeline's category and ledger boundaries, plus per-user bootstrap of the
// default category set.
package store

import (
	"context"
	"errors"
	"fmt"

	"ecakir/fintext/internal/logging"
	"ecakir/fintext/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Store implements pipeline.CategoryStore and pipeline.LedgerStore.
type Store struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// New creates a Store on an existing connection pool.
func New(pool *pgxpool.Pool, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Store{pool: pool, logger: logger}
}

// Connect opens and pings a pgx pool for the given DSN.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id         UUID PRIMARY KEY,
	user_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	type       TEXT NOT NULL CHECK (type IN ('income', 'expense')),
	icon       TEXT NOT NULL DEFAULT '',
	color      TEXT NOT NULL DEFAULT '',
	is_default BOOLEAN NOT NULL DEFAULT FALSE,
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, type, name)
);

CREATE TABLE IF NOT EXISTS entries (
	id          UUID PRIMARY KEY,
	user_id     TEXT NOT NULL,
	type        TEXT NOT NULL CHECK (type IN ('income', 'expense')),
	amount      NUMERIC(14, 2) NOT NULL,
	description TEXT NOT NULL,
	category_id UUID NOT NULL REFERENCES categories(id),
	entry_date  DATE NOT NULL,
	notes       TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_entries_user_date ON entries (user_id, entry_date);
`

// EnsureSchema creates the tables this store needs if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

// ListActiveCategories returns the user's active categories of the given
// type, ordered by creation so resolution sees a stable candidate order.
func (s *Store) ListActiveCategories(ctx context.Context, userID string, txType models.TransactionType) ([]models.Category, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, name, type, icon, color, is_default, is_active
		FROM categories
		WHERE user_id = $1 AND type = $2 AND is_active
		ORDER BY created_at, id
	`, userID, string(txType))
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// FindDefaultCategoryByName returns the user's seeded default category with
// the given name, or nil when it does not exist.
func (s *Store) FindDefaultCategoryByName(ctx context.Context, userID string, txType models.TransactionType, name string) (*models.Category, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, user_id, name, type, icon, color, is_default, is_active
		FROM categories
		WHERE user_id = $1 AND type = $2 AND lower(name) = lower($3)
		  AND is_default AND is_active
		LIMIT 1
	`, userID, string(txType), name)

	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// CreateEntry persists an assembled commit request. The chosen category's
// type is re-validated against the entry's type before insertion.
func (s *Store) CreateEntry(ctx context.Context, req models.CommitRequest) (*models.Entry, error) {
	var categoryType string
	err := s.pool.QueryRow(ctx, `
		SELECT type FROM categories WHERE id = $1 AND user_id = $2
	`, req.CategoryID, req.UserID).Scan(&categoryType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("category %s not found for user %s", req.CategoryID, req.UserID)
		}
		return nil, fmt.Errorf("checking category: %w", err)
	}
	if categoryType != string(req.Type) {
		return nil, fmt.Errorf("category %s is %s, entry is %s", req.CategoryID, categoryType, req.Type)
	}

	entry := models.Entry{
		ID:          uuid.New(),
		UserID:      req.UserID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Date:        req.Date,
		Notes:       req.Notes,
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO entries (id, user_id, type, amount, description, category_id, entry_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, entry.ID, entry.UserID, string(entry.Type), entry.Amount.String(), entry.Description,
		entry.CategoryID, entry.Date, entry.Notes).Scan(&entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting entry: %w", err)
	}

	return &entry, nil
}

// ListEntries returns the user's entries, newest first.
func (s *Store) ListEntries(ctx context.Context, userID string) ([]models.Entry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, type, amount::text, description, category_id, entry_date, notes, created_at
		FROM entries
		WHERE user_id = $1
		ORDER BY entry_date DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		var typeStr, amountStr string
		if err := rows.Scan(&e.ID, &e.UserID, &typeStr, &amountStr, &e.Description,
			&e.CategoryID, &e.Date, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Type = models.TransactionType(typeStr)
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q: %w", amountStr, err)
		}
		e.Amount = amount
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// scanCategory reads one category row; works for both Query and QueryRow.
func scanCategory(row pgx.Row) (models.Category, error) {
	var c models.Category
	var typeStr string
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &typeStr, &c.Icon, &c.Color,
		&c.IsDefault, &c.IsActive); err != nil {
		return models.Category{}, err
	}
	c.Type = models.TransactionType(typeStr)
	return c, nil
}
