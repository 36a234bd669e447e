package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

const dateLayout = "2006-01-02"

// Schedules persists the generated slot assignments per (date, day type).
type Schedules struct {
	pool *pgxpool.Pool
}

// Read returns the stored schedule for the key, or nil when none exists.
func (s *Schedules) Read(ctx context.Context, date, dayType string) (*models.DailySchedule, error) {
	var raw []byte
	var createdAt time.Time
	err := s.pool.QueryRow(ctx, `
		SELECT activities, created_at
		FROM schedules
		WHERE date = $1 AND day_type = $2
	`, date, dayType).Scan(&raw, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}

	activities := map[string]models.ActivitySnapshot{}
	if err := json.Unmarshal(raw, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode stored schedule: %w", err)
	}
	return &models.DailySchedule{
		Date:       date,
		DayType:    dayType,
		Activities: activities,
		CreatedAt:  createdAt,
	}, nil
}

// CreateIfAbsent inserts the mapping unless a row for the key already
// exists, then reads back whichever row won. The unique (date, day_type)
// constraint makes this the at-most-one-generation-per-key point: of two
// racing first requests, exactly one insert lands and both callers see it.
func (s *Schedules) CreateIfAbsent(ctx context.Context, date, dayType string, activities map[string]models.ActivitySnapshot) (*models.DailySchedule, error) {
	raw, err := json.Marshal(activities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedule: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO schedules (date, day_type, activities)
		VALUES ($1, $2, $3)
		ON CONFLICT (date, day_type) DO NOTHING
	`, date, dayType, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to insert schedule: %w", err)
	}

	winner, err := s.Read(ctx, date, dayType)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		// Inserted then deleted out from under us; treat ours as current.
		return &models.DailySchedule{Date: date, DayType: dayType, Activities: activities, CreatedAt: time.Now()}, nil
	}
	return winner, nil
}

// Write upserts the full mapping for the key, last write wins.
func (s *Schedules) Write(ctx context.Context, date, dayType string, activities map[string]models.ActivitySnapshot) error {
	raw, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO schedules (date, day_type, activities)
		VALUES ($1, $2, $3)
		ON CONFLICT (date, day_type) DO UPDATE SET activities = $3, created_at = NOW()
	`, date, dayType, raw)
	if err != nil {
		return fmt.Errorf("failed to upsert schedule: %w", err)
	}
	return nil
}

// ReplaceSlot swaps a single slot's assignment in the stored mapping,
// leaving every other slot untouched. Used by the single-activity refresh.
func (s *Schedules) ReplaceSlot(ctx context.Context, date, dayType, slotKey string, activity models.ActivitySnapshot) error {
	raw, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("failed to encode slot activity: %w", err)
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE schedules
		SET activities = jsonb_set(activities, ARRAY[$3], $4::jsonb)
		WHERE date = $1 AND day_type = $2
	`, date, dayType, slotKey, raw)
	if err != nil {
		return fmt.Errorf("failed to replace slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

// Delete clears the mapping for the key so the next read regenerates.
func (s *Schedules) Delete(ctx context.Context, date, dayType string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM schedules WHERE date = $1 AND day_type = $2`, date, dayType)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

// ListWeek returns the stored mappings for 7 consecutive dates starting at
// startDate. Days without a stored schedule map to nil; listing never
// triggers generation.
func (s *Schedules) ListWeek(ctx context.Context, startDate, dayType string) (map[string]map[string]models.ActivitySnapshot, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end := start.AddDate(0, 0, 7)

	rows, err := s.pool.Query(ctx, `
		SELECT date, activities
		FROM schedules
		WHERE date >= $1 AND date < $2 AND day_type = $3
		ORDER BY date ASC
	`, start.Format(dateLayout), end.Format(dateLayout), dayType)
	if err != nil {
		return nil, fmt.Errorf("failed to query week: %w", err)
	}
	defer rows.Close()

	week := make(map[string]map[string]models.ActivitySnapshot, 7)
	for i := 0; i < 7; i++ {
		week[start.AddDate(0, 0, i).Format(dateLayout)] = nil
	}
	for rows.Next() {
		var day time.Time
		var raw []byte
		if err := rows.Scan(&day, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan week row: %w", err)
		}
		activities := map[string]models.ActivitySnapshot{}
		if err := json.Unmarshal(raw, &activities); err != nil {
			return nil, fmt.Errorf("failed to decode schedule for %s: %w", day.Format(dateLayout), err)
		}
		week[day.Format(dateLayout)] = activities
	}
	return week, rows.Err()
}

// DeleteOlderThan removes schedules more than the given number of days old
// and reports how many rows went away.
func (s *Schedules) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM schedules WHERE date < CURRENT_DATE - $1::int`, days)
	if err != nil {
		return 0, fmt.Errorf("failed to prune schedules: %w", err)
	}
	return tag.RowsAffected(), nil
}
