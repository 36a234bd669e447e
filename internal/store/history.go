package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

// History is the activity-started log used for the last-7-days view.
type History struct {
	pool *pgxpool.Pool
}

// Log appends one started-activity entry.
func (s *History) Log(ctx context.Context, activityID, name, activityType string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO activity_history (activity_id, activity_name, activity_type)
		VALUES ($1, $2, $3)
	`, activityID, name, activityType)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}
	return nil
}

// Recent returns entries from the last 7 days, newest first.
func (s *History) Recent(ctx context.Context) ([]models.HistoryEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, activity_id, activity_name, activity_type, started_at
		FROM activity_history
		WHERE started_at >= NOW() - INTERVAL '7 days'
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.ActivityID, &e.ActivityName, &e.ActivityType, &e.StartedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteOlderThan prunes entries beyond the retention window.
func (s *History) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM activity_history WHERE started_at < NOW() - make_interval(days => $1)`, days)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}
	return tag.RowsAffected(), nil
}
