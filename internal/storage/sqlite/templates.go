package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/storage"
)

const templateColumns = "id, title, servings, created_by_user_id, updated_at"

func scanTemplate(row rowScanner) (*models.Template, error) {
	t := &models.Template{Ingredients: []models.Ingredient{}}
	var createdBy sql.NullString
	if err := row.Scan(&t.ID, &t.Title, &t.Servings, &createdBy, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.CreatedByUserID = createdBy.String
	return t, nil
}

// ListTemplates returns every template, most recently updated first.
func (s *SQLiteStore) ListTemplates(ctx context.Context) ([]*models.Template, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+templateColumns+" FROM recipe_templates ORDER BY updated_at DESC, rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	templates := []*models.Template{}
	byID := make(map[string]*models.Template)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate templates: %w", err)
	}
	rows.Close()

	ingRows, err := s.db.QueryContext(ctx,
		"SELECT template_id, name, quantity, unit FROM template_ingredients ORDER BY template_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer ingRows.Close()

	for ingRows.Next() {
		var templateID string
		var ing models.Ingredient
		if err := ingRows.Scan(&templateID, &ing.Name, &ing.Quantity, &ing.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		if t, ok := byID[templateID]; ok {
			t.Ingredients = append(t.Ingredients, ing)
		}
	}
	if err := ingRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingredients: %w", err)
	}

	return templates, nil
}

// GetTemplate retrieves a template with its ingredients.
func (s *SQLiteStore) GetTemplate(ctx context.Context, id string) (*models.Template, error) {
	t, err := scanTemplate(s.db.QueryRowContext(ctx,
		"SELECT "+templateColumns+" FROM recipe_templates WHERE id = ?", id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("template %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	if err := s.loadIngredients(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetActiveTemplate returns the active template, or nil if none is set.
func (s *SQLiteStore) GetActiveTemplate(ctx context.Context) (*models.Template, error) {
	var activeID sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT active_template_id FROM settings WHERE id = 1").Scan(&activeID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to read active template: %w", err)
	}
	if !activeID.Valid {
		return nil, nil
	}
	return s.GetTemplate(ctx, activeID.String)
}

// CreateTemplate persists a new template and its ingredients.
func (s *SQLiteStore) CreateTemplate(ctx context.Context, t *models.Template) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.UpdatedAt == 0 {
		t.UpdatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO recipe_templates (id, title, servings, created_by_user_id, updated_at) VALUES (?, ?, ?, ?, ?)",
		t.ID, t.Title, t.Servings, nullString(t.CreatedByUserID), t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert template: %w", err)
	}

	if err := insertIngredients(ctx, tx, t); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateTemplate replaces title, servings and the ingredient list.
func (s *SQLiteStore) UpdateTemplate(ctx context.Context, t *models.Template) error {
	t.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE recipe_templates SET title = ?, servings = ?, updated_at = ? WHERE id = ?",
		t.Title, t.Servings, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	if err := requireAffected(result, "template", t.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM template_ingredients WHERE template_id = ?", t.ID); err != nil {
		return fmt.Errorf("failed to clear ingredients: %w", err)
	}
	if err := insertIngredients(ctx, tx, t); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteTemplate removes a template; ingredients and exclusions cascade.
func (s *SQLiteStore) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM recipe_templates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return requireAffected(result, "template", id)
}

func (s *SQLiteStore) loadIngredients(ctx context.Context, t *models.Template) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, quantity, unit FROM template_ingredients WHERE template_id = ? ORDER BY position",
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get ingredients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ing models.Ingredient
		if err := rows.Scan(&ing.Name, &ing.Quantity, &ing.Unit); err != nil {
			return fmt.Errorf("failed to scan ingredient: %w", err)
		}
		t.Ingredients = append(t.Ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate ingredients: %w", err)
	}
	return nil
}

func insertIngredients(ctx context.Context, tx *sql.Tx, t *models.Template) error {
	for i, ing := range t.Ingredients {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO template_ingredients (template_id, position, name, quantity, unit) VALUES (?, ?, ?, ?, ?)",
			t.ID, i, ing.Name, ing.Quantity, ing.Unit,
		)
		if err != nil {
			return fmt.Errorf("failed to insert ingredient: %w", err)
		}
	}
	return nil
}
