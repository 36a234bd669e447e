package schedule

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

// SchedulePersister is the storage contract the generator needs. Read
// returns nil (not an error) when no schedule exists for the key.
// CreateIfAbsent must be an insert-if-absent on the (date, dayType) unique
// key and return the row that won, whether or not it was ours: that unique
// constraint is the serialization point guaranteeing two concurrent first
// requests cannot both persist different schedules.
type SchedulePersister interface {
	Read(ctx context.Context, date, dayType string) (*models.DailySchedule, error)
	CreateIfAbsent(ctx context.Context, date, dayType string, activities map[string]models.ActivitySnapshot) (*models.DailySchedule, error)
}

// ActivityCatalog supplies the season-filtered activity pool with
// rating counters already aggregated into each entry.
type ActivityCatalog interface {
	List(ctx context.Context, season string) ([]models.Activity, error)
}

// Generator ties the template builder and selector to storage: reuse the
// persisted schedule when one exists, otherwise fill the day's slots and
// persist the result.
type Generator struct {
	Store   SchedulePersister
	Catalog ActivityCatalog
	Log     *zap.Logger

	// Rand, when set, makes generation deterministic for tests.
	Rand *rand.Rand
}

// GetOrCreate returns the slot assignments for (date, dayType). A persisted
// schedule is returned unchanged so repeat views never reshuffle the day.
// On a miss it generates, persists, and returns whichever mapping won the
// insert race. The second return value reports whether generation ran.
//
// A failed write is logged and the in-memory result returned anyway:
// showing the family a schedule beats surfacing a storage error on this
// path.
func (g *Generator) GetOrCreate(ctx context.Context, date, dayType string, settings models.DailySettings) (map[string]models.ActivitySnapshot, bool, error) {
	existing, err := g.Store.Read(ctx, date, dayType)
	if err != nil {
		g.log().Warn("schedule read failed, regenerating", zap.String("date", date), zap.Error(err))
	} else if existing != nil {
		return existing.Activities, false, nil
	}

	template, err := BuildTemplate(settings, dayType == models.DayTypeSchool)
	if err != nil {
		return nil, false, err
	}

	pool, err := g.Catalog.List(ctx, settings.CurrentSeason)
	if err != nil {
		g.log().Warn("activity catalog unavailable, using fallback table", zap.Error(err))
		pool = nil
	}

	assignments := FillSlots(g.rng(), template.SlotKeys(), pool, settings.CurrentSeason)

	winner, err := g.Store.CreateIfAbsent(ctx, date, dayType, assignments)
	if err != nil {
		g.log().Warn("schedule write failed, returning unsaved result",
			zap.String("date", date), zap.String("day_type", dayType), zap.Error(err))
		return assignments, true, nil
	}
	return winner.Activities, true, nil
}

func (g *Generator) rng() *rand.Rand {
	if g.Rand != nil {
		return g.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (g *Generator) log() *zap.Logger {
	if g.Log != nil {
		return g.Log
	}
	return zap.NewNop()
}
