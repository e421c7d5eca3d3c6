package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/saladbowl/internal/models"
)

// ListExclusionsByIngredient groups the template's exclusions by ingredient
// key, resolving each user to the name of their roster entry. Users who are
// not enrolled this week are skipped.
func (s *SQLiteStore) ListExclusionsByIngredient(ctx context.Context, templateID string) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT e.ingredient_key, p.name
		 FROM ingredient_exclusions e
		 JOIN participants p ON p.user_id = e.user_id
		 WHERE e.template_id = ?
		 ORDER BY e.created_at, e.rowid, p.created_at, p.rowid`,
		templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exclusions: %w", err)
	}
	defer rows.Close()

	byKey := make(map[string][]string)
	for rows.Next() {
		var key, name string
		if err := rows.Scan(&key, &name); err != nil {
			return nil, fmt.Errorf("failed to scan exclusion: %w", err)
		}
		byKey[key] = append(byKey[key], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exclusions: %w", err)
	}
	return byKey, nil
}

// ListUserExclusions returns the user's exclusions for one template ordered
// by display name.
func (s *SQLiteStore) ListUserExclusions(ctx context.Context, userID, templateID string) ([]*models.IngredientExclusion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, template_id, ingredient_key, ingredient_name, created_at
		 FROM ingredient_exclusions
		 WHERE user_id = ? AND template_id = ?
		 ORDER BY ingredient_name COLLATE NOCASE, ingredient_key`,
		userID, templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list user exclusions: %w", err)
	}
	defer rows.Close()

	exclusions := []*models.IngredientExclusion{}
	for rows.Next() {
		e := &models.IngredientExclusion{}
		if err := rows.Scan(&e.UserID, &e.TemplateID, &e.IngredientKey, &e.IngredientName, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exclusion: %w", err)
		}
		exclusions = append(exclusions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exclusions: %w", err)
	}
	return exclusions, nil
}

// ReplaceExclusions deletes the user's exclusions for the template and
// inserts the given ones in a single transaction.
func (s *SQLiteStore) ReplaceExclusions(ctx context.Context, userID, templateID string, exclusions []*models.IngredientExclusion) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"DELETE FROM ingredient_exclusions WHERE user_id = ? AND template_id = ?",
		userID, templateID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear exclusions: %w", err)
	}

	now := time.Now().Unix()
	for _, e := range exclusions {
		e.UserID = userID
		e.TemplateID = templateID
		if e.CreatedAt == 0 {
			e.CreatedAt = now
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO ingredient_exclusions (user_id, template_id, ingredient_key, ingredient_name, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			e.UserID, e.TemplateID, e.IngredientKey, e.IngredientName, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert exclusion: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
