package schedule

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

type fakeStore struct {
	schedules map[string]*models.DailySchedule
	writes    int
	readErr   error
	writeErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{schedules: map[string]*models.DailySchedule{}}
}

func (f *fakeStore) Read(_ context.Context, date, dayType string) (*models.DailySchedule, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.schedules[date+"/"+dayType], nil
}

func (f *fakeStore) CreateIfAbsent(_ context.Context, date, dayType string, activities map[string]models.ActivitySnapshot) (*models.DailySchedule, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.writes++
	key := date + "/" + dayType
	if existing, ok := f.schedules[key]; ok {
		return existing, nil
	}
	stored := &models.DailySchedule{
		Date:       date,
		DayType:    dayType,
		Activities: activities,
		CreatedAt:  time.Now(),
	}
	f.schedules[key] = stored
	return stored, nil
}

type fakeCatalog struct {
	pool  []models.Activity
	calls int
	err   error
}

func (f *fakeCatalog) List(_ context.Context, _ string) ([]models.Activity, error) {
	f.calls++
	return f.pool, f.err
}

func testGenerator(store *fakeStore, catalog *fakeCatalog) *Generator {
	return &Generator{
		Store:   store,
		Catalog: catalog,
		Rand:    rand.New(rand.NewSource(5)),
	}
}

func TestGetOrCreateGeneratesOnce(t *testing.T) {
	store := newFakeStore()
	catalog := &fakeCatalog{pool: []models.Activity{
		activity("Blocks", 0, 0),
		activity("Puzzles", 0, 0),
	}}
	gen := testGenerator(store, catalog)

	first, generated, err := gen.GetOrCreate(context.Background(), "2026-01-05", models.DayTypeHome, testSettings())
	require.NoError(t, err)
	assert.True(t, generated)
	require.Len(t, first, 7)

	second, generated, err := gen.GetOrCreate(context.Background(), "2026-01-05", models.DayTypeHome, testSettings())
	require.NoError(t, err)
	assert.False(t, generated)
	assert.Equal(t, first, second)
	// The second request must not re-draw from the catalog.
	assert.Equal(t, 1, catalog.calls)
	assert.Equal(t, 1, store.writes)
}

func TestGetOrCreateSchoolDaySlots(t *testing.T) {
	store := newFakeStore()
	catalog := &fakeCatalog{pool: []models.Activity{activity("Blocks", 0, 0)}}
	gen := testGenerator(store, catalog)

	out, _, err := gen.GetOrCreate(context.Background(), "2026-01-05", models.DayTypeSchool, testSettings())
	require.NoError(t, err)

	for _, key := range []string{"morning-play", "baby-morning", "late-morning", "quiet-time", "afternoon-activity", "wind-down"} {
		assert.Contains(t, out, key)
	}
	assert.NotContains(t, out, "outing")
}

func TestGetOrCreateReturnsResultWhenWriteFails(t *testing.T) {
	store := newFakeStore()
	store.writeErr = errors.New("disk on fire")
	catalog := &fakeCatalog{pool: []models.Activity{activity("Blocks", 0, 0)}}
	gen := testGenerator(store, catalog)

	out, generated, err := gen.GetOrCreate(context.Background(), "2026-01-05", models.DayTypeHome, testSettings())
	require.NoError(t, err)
	assert.True(t, generated)
	assert.Len(t, out, 7)
}

func TestGetOrCreateCatalogFailureUsesFallback(t *testing.T) {
	store := newFakeStore()
	catalog := &fakeCatalog{err: errors.New("catalog offline")}
	gen := testGenerator(store, catalog)

	out, _, err := gen.GetOrCreate(context.Background(), "2026-01-05", models.DayTypeHome, testSettings())
	require.NoError(t, err)
	assert.Equal(t, "Target Adventure", out["outing"].Name)
}

func TestGetOrCreateBadSettingsAbort(t *testing.T) {
	store := newFakeStore()
	catalog := &fakeCatalog{pool: []models.Activity{activity("Blocks", 0, 0)}}
	gen := testGenerator(store, catalog)

	settings := testSettings()
	settings.Bedtime = "late"
	_, _, err := gen.GetOrCreate(context.Background(), "2026-01-05", models.DayTypeHome, settings)
	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	// Nothing was persisted for the failed attempt.
	assert.Equal(t, 0, store.writes)
}

func TestGetOrCreateRaceReturnsWinner(t *testing.T) {
	// Simulate losing the insert race: the store already holds a different
	// mapping by the time our write lands.
	store := newFakeStore()
	catalog := &fakeCatalog{pool: []models.Activity{activity("Blocks", 0, 0)}}
	gen := testGenerator(store, catalog)

	winner := map[string]models.ActivitySnapshot{"outing": {Name: "Library Trip", Type: "errand"}}
	store.schedules["2026-01-05/home"] = &models.DailySchedule{
		Date: "2026-01-05", DayType: models.DayTypeHome, Activities: winner,
	}
	store.readErr = errors.New("transient read failure")

	out, generated, err := gen.GetOrCreate(context.Background(), "2026-01-05", models.DayTypeHome, testSettings())
	require.NoError(t, err)
	assert.True(t, generated)
	// CreateIfAbsent surfaced the pre-existing row, not our fresh draw.
	assert.Equal(t, winner, out)
}
