package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// One statement per entry: pgx's extended protocol rejects multi-statement
// strings.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS kids (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		age INT NOT NULL,
		color TEXT NOT NULL DEFAULT '#4D96FF',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		seasons TEXT[] NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT false,
		thumbs_up INT NOT NULL DEFAULT 0 CHECK (thumbs_up >= 0),
		thumbs_down INT NOT NULL DEFAULT 0 CHECK (thumbs_down >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id SERIAL PRIMARY KEY,
		date DATE NOT NULL,
		day_type TEXT NOT NULL,
		activities JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (date, day_type)
	)`,
	`CREATE TABLE IF NOT EXISTS activity_ratings (
		activity_id UUID NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		rating SMALLINT NOT NULL CHECK (rating IN (-1, 1)),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (activity_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS activity_history (
		id SERIAL PRIMARY KEY,
		activity_id TEXT NOT NULL,
		activity_name TEXT NOT NULL,
		activity_type TEXT NOT NULL,
		started_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_date ON schedules(date)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_history_started ON activity_history(started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_ratings_date ON activity_ratings(date)`,
}

// defaultSettings mirrors the values a fresh install ships with.
var defaultSettings = map[string]string{
	"home_assistant_url":         "http://homeassistant.local:8123",
	"webhook_id":                 "toddler-schedule",
	"enable_home_assistant":      "false",
	"enable_voice_announcements": "true",
	"enable_light_automations":   "true",
	"current_season":             "winter",
	"location":                   "Wisconsin",
	"latitude":                   "44.5",
	"longitude":                  "-89.5",
	"school_days":                "[1,3,5]",
	"school_start":               "08:45",
	"school_end":                 "11:45",
	"wake_time":                  "06:30",
	"bedtime":                    "19:30",
	"baby_nap_start":             "12:30",
	"baby_nap_duration":          "150",
	"toddler_nap_start":          "13:30",
	"toddler_nap_duration":       "90",
	"theme":                      "purple",
}

// Init creates the schema and seeds default settings and kids. Every
// statement is idempotent, so this runs unconditionally at boot.
func Init(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	for key, value := range defaultSettings {
		_, err := pool.Exec(ctx,
			`INSERT INTO settings (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
			key, value)
		if err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
	}

	var kidCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM kids`).Scan(&kidCount); err != nil {
		return fmt.Errorf("failed to count kids: %w", err)
	}
	if kidCount == 0 {
		_, err := pool.Exec(ctx, `
			INSERT INTO kids (name, age, color) VALUES
			('Big Brother', 3, '#4D96FF'),
			('Little Brother', 1, '#6BCB77')
		`)
		if err != nil {
			return fmt.Errorf("failed to seed kids: %w", err)
		}
	}

	return nil
}
