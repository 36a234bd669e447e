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

// Ratings accumulates per-activity thumbs votes, one per activity per date.
type Ratings struct {
	pool *pgxpool.Pool
}

// RatingResult reports the activity's counters after a vote is applied.
type RatingResult struct {
	ActivityID uuid.UUID `json:"activity_id"`
	ThumbsUp   int       `json:"thumbs_up"`
	ThumbsDown int       `json:"thumbs_down"`
	Weight     int       `json:"weight"`
}

// ratingDelta computes the counter adjustments for applying value on top of
// a previous vote (nil when no vote exists for the key). Re-applying the
// same value is a no-op; flipping removes the old contribution before
// adding the new one, so counters never drift negative under correct
// sequencing.
func ratingDelta(prev *int, value int) (dUp, dDown int, changed bool) {
	if prev != nil && *prev == value {
		return 0, 0, false
	}
	if prev != nil {
		if *prev > 0 {
			dUp--
		} else {
			dDown--
		}
	}
	if value > 0 {
		dUp++
	} else {
		dDown++
	}
	return dUp, dDown, true
}

// Apply records a +1/-1 vote for (activityID, date) and adjusts the
// activity's aggregate counters inside one transaction. Idempotent for
// repeated same-value votes; a changed vote flips the counters.
func (s *Ratings) Apply(ctx context.Context, activityID uuid.UUID, date string, value int) (*RatingResult, error) {
	if value != 1 && value != -1 {
		return nil, &models.ValidationError{Field: "value", Reason: "rating must be +1 or -1"}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM activities WHERE id = $1)`, activityID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check activity: %w", err)
	}
	if !exists {
		return nil, ErrActivityNotFound
	}

	var prev *int
	var stored int
	err = tx.QueryRow(ctx, `
		SELECT rating FROM activity_ratings
		WHERE activity_id = $1 AND date = $2
		FOR UPDATE
	`, activityID, date).Scan(&stored)
	if err == nil {
		prev = &stored
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to read existing rating: %w", err)
	}

	dUp, dDown, changed := ratingDelta(prev, value)
	if changed {
		_, err = tx.Exec(ctx, `
			INSERT INTO activity_ratings (activity_id, date, rating)
			VALUES ($1, $2, $3)
			ON CONFLICT (activity_id, date) DO UPDATE SET rating = $3
		`, activityID, date, value)
		if err != nil {
			return nil, fmt.Errorf("failed to store rating: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE activities
			SET thumbs_up = thumbs_up + $2, thumbs_down = thumbs_down + $3
			WHERE id = $1
		`, activityID, dUp, dDown)
		if err != nil {
			return nil, fmt.Errorf("failed to adjust counters: %w", err)
		}
	}

	result := &RatingResult{ActivityID: activityID}
	err = tx.QueryRow(ctx, `SELECT thumbs_up, thumbs_down FROM activities WHERE id = $1`, activityID).
		Scan(&result.ThumbsUp, &result.ThumbsDown)
	if err != nil {
		return nil, fmt.Errorf("failed to read counters: %w", err)
	}
	result.Weight = models.Activity{ThumbsUp: result.ThumbsUp, ThumbsDown: result.ThumbsDown}.Weight()

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit rating: %w", err)
	}
	return result, nil
}

// ForDate returns the votes recorded on one date, keyed by activity id.
func (s *Ratings) ForDate(ctx context.Context, date string) (map[string]int, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT activity_id, rating FROM activity_ratings WHERE date = $1
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	ratings := map[string]int{}
	for rows.Next() {
		var id uuid.UUID
		var value int
		if err := rows.Scan(&id, &value); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings[id.String()] = value
	}
	return ratings, rows.Err()
}
