package store

import (
	"context"
	"fmt"

	"ecakir/fintext/internal/catalog"
	"ecakir/fintext/internal/logging"

	"github.com/google/uuid"
)

// SeedDefaultCategories materializes the default category table for one user,
// naming each category by its canonical key so tier-0 resolution can find it.
// Already-seeded categories are left untouched.
func (s *Store) SeedDefaultCategories(ctx context.Context, userID string) error {
	seeded := 0
	for _, entry := range catalog.Entries() {
		tag, err := s.pool.Exec(ctx, `
			INSERT INTO categories (id, user_id, name, type, icon, color, is_default, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE, TRUE)
			ON CONFLICT (user_id, type, name) DO NOTHING
		`, uuid.New(), userID, entry.Key, string(entry.Type), entry.Icon, entry.Color)
		if err != nil {
			return fmt.Errorf("seeding category %q for user %s: %w", entry.Key, userID, err)
		}
		seeded += int(tag.RowsAffected())
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldUser, Value: userID},
		logging.Field{Key: logging.FieldCount, Value: seeded},
	).Info("Seeded default categories")

	return nil
}
