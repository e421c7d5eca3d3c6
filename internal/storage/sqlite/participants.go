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

const participantColumns = "id, name, email, user_id, created_by_user_id, created_at"

// linkedUserID resolves the account registered under the participant's email.
const linkedUserID = "(SELECT id FROM users WHERE email = ?)"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row rowScanner) (*models.Participant, error) {
	p := &models.Participant{}
	var userID, createdBy sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &userID, &createdBy, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.UserID = userID.String
	p.CreatedByUserID = createdBy.String
	return p, nil
}

// ListParticipants returns the roster in join order.
func (s *SQLiteStore) ListParticipants(ctx context.Context) ([]*models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+participantColumns+" FROM participants ORDER BY created_at, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	participants := []*models.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}

// CountParticipants returns the number of enrolled participants.
func (s *SQLiteStore) CountParticipants(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM participants").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return n, nil
}

// CreateParticipant enrolls a participant. ID and CreatedAt are filled in
// when empty, UserID is set from the account with the same email.
func (s *SQLiteStore) CreateParticipant(ctx context.Context, p *models.Participant) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}

	var userID sql.NullString
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO participants (id, name, email, user_id, created_by_user_id, created_at)
		 VALUES (?, ?, ?, `+linkedUserID+`, ?, ?)
		 RETURNING user_id`,
		p.ID, p.Name, p.Email, p.Email, nullString(p.CreatedByUserID), p.CreatedAt,
	).Scan(&userID)
	if isUniqueViolation(err) {
		return fmt.Errorf("participant with email %s: %w", p.Email, storage.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}

	p.UserID = userID.String
	return nil
}

// GetParticipant retrieves a participant by ID.
func (s *SQLiteStore) GetParticipant(ctx context.Context, id string) (*models.Participant, error) {
	p, err := scanParticipant(s.db.QueryRowContext(ctx,
		"SELECT "+participantColumns+" FROM participants WHERE id = ?", id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("participant %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// GetParticipantByEmail retrieves a participant by email, case-insensitively.
func (s *SQLiteStore) GetParticipantByEmail(ctx context.Context, email string) (*models.Participant, error) {
	p, err := scanParticipant(s.db.QueryRowContext(ctx,
		"SELECT "+participantColumns+" FROM participants WHERE email = ?", email,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("participant with email %s: %w", email, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// UpdateParticipant rewrites name and email and re-links the account.
func (s *SQLiteStore) UpdateParticipant(ctx context.Context, p *models.Participant) error {
	var userID sql.NullString
	err := s.db.QueryRowContext(ctx,
		"UPDATE participants SET name = ?, email = ?, user_id = "+linkedUserID+" WHERE id = ? RETURNING user_id",
		p.Name, p.Email, p.Email, p.ID,
	).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("participant %s: %w", p.ID, storage.ErrNotFound)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("participant with email %s: %w", p.Email, storage.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}

	p.UserID = userID.String
	return nil
}

// DeleteParticipant removes one participant.
func (s *SQLiteStore) DeleteParticipant(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM participants WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	return requireAffected(result, "participant", id)
}

// DeleteAllParticipants clears the roster.
func (s *SQLiteStore) DeleteAllParticipants(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM participants")
	if err != nil {
		return 0, fmt.Errorf("failed to clear participants: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared participants: %w", err)
	}
	return n, nil
}

func requireAffected(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}
