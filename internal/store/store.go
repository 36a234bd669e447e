// Package store implements the persistence providers over a single pgx
// connection pool: activity catalog, daily schedules, ratings, settings,
// and the activity history log.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors surfaced to handlers.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrDefaultActivity  = errors.New("default activities cannot be deleted")
	ErrScheduleNotFound = errors.New("schedule not found")
)

// Stores bundles all providers sharing one pool.
type Stores struct {
	Activities *Activities
	Schedules  *Schedules
	Ratings    *Ratings
	Settings   *Settings
	History    *History
}

// New wires every provider to the given pool.
func New(pool *pgxpool.Pool) *Stores {
	return &Stores{
		Activities: &Activities{pool: pool},
		Schedules:  &Schedules{pool: pool},
		Ratings:    &Ratings{pool: pool},
		Settings:   &Settings{pool: pool},
		History:    &History{pool: pool},
	}
}
