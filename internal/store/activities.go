package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

// Activities is the activity catalog provider.
type Activities struct {
	pool *pgxpool.Pool
}

// List returns the catalog ordered by name, filtered to one season when
// season is non-empty. Rating counters come back aggregated on each row,
// so callers can compute selection weights without touching the ratings
// table.
func (s *Activities) List(ctx context.Context, season string) ([]models.Activity, error) {
	query := `
		SELECT id, name, type, description, seasons, is_default, thumbs_up, thumbs_down, created_at
		FROM activities
	`
	args := []interface{}{}
	if season != "" {
		query += ` WHERE $1 = ANY(seasons)`
		args = append(args, season)
	}
	query += ` ORDER BY name ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Type,
			&a.Description,
			&a.Seasons,
			&a.IsDefault,
			&a.ThumbsUp,
			&a.ThumbsDown,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// Create validates the draft and inserts it as a non-default catalog entry.
func (s *Activities) Create(ctx context.Context, draft models.ActivityDraft) (*models.Activity, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	a := models.Activity{
		ID:          uuid.New(),
		Name:        draft.Name,
		Type:        draft.Type,
		Description: draft.Description,
		Seasons:     draft.Seasons,
	}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO activities (id, name, type, description, seasons, is_default)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING created_at
	`, a.ID, a.Name, a.Type, a.Description, a.Seasons).Scan(&a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert activity: %w", err)
	}
	return &a, nil
}

// Delete removes a user-added activity. Default catalog entries are
// protected; unknown ids report ErrActivityNotFound.
func (s *Activities) Delete(ctx context.Context, id uuid.UUID) error {
	var isDefault bool
	err := s.pool.QueryRow(ctx, `SELECT is_default FROM activities WHERE id = $1`, id).Scan(&isDefault)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrActivityNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up activity: %w", err)
	}
	if isDefault {
		return ErrDefaultActivity
	}

	_, err = s.pool.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// Seed inserts the default catalog when the table is empty. Safe to run on
// every boot.
func (s *Activities) Seed(ctx context.Context, defaults []models.ActivityDraft) error {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count activities: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, d := range defaults {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO activities (id, name, type, description, seasons, is_default)
			VALUES ($1, $2, $3, $4, $5, true)
		`, uuid.New(), d.Name, d.Type, d.Description, d.Seasons)
		if err != nil {
			return fmt.Errorf("failed to seed activity %s: %w", d.Name, err)
		}
	}
	return nil
}
