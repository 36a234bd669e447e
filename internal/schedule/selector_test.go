package schedule

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

func activity(name string, up, down int) models.Activity {
	return models.Activity{
		ID:         uuid.New(),
		Name:       name,
		Type:       "activity",
		Seasons:    []string{models.SeasonWinter},
		ThumbsUp:   up,
		ThumbsDown: down,
	}
}

var homeSlots = []string{"early-morning", "morning-activity", "outing", "pre-lunch", "quiet-time", "afternoon-activity", "wind-down"}

func TestFillSlotsOneEntryPerSlot(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := []models.Activity{
		activity("Blocks", 0, 0),
		activity("Puzzles", 0, 0),
		activity("Dancing", 0, 0),
	}

	out := FillSlots(rng, homeSlots, pool, models.SeasonWinter)
	require.Len(t, out, len(homeSlots))
	for _, key := range homeSlots {
		assert.NotEmpty(t, out[key].Name, "slot %s", key)
	}
}

func TestFillSlotsAvoidsRepeatsWhilePoolLasts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := []models.Activity{
		activity("A", 0, 0),
		activity("B", 0, 0),
		activity("C", 0, 0),
		activity("D", 0, 0),
		activity("E", 0, 0),
		activity("F", 0, 0),
		activity("G", 0, 0),
	}

	out := FillSlots(rng, homeSlots, pool, models.SeasonWinter)
	seen := map[string]int{}
	for _, a := range out {
		seen[a.Name]++
	}
	// Seven slots, seven names: every pick must be distinct.
	assert.Len(t, seen, 7)
}

func TestFillSlotsSingleActivityRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := []models.Activity{activity("Only Option", 0, 0)}

	out := FillSlots(rng, []string{"outing", "quiet-time", "wind-down"}, pool, models.SeasonWinter)
	require.Len(t, out, 3)
	for key, a := range out {
		assert.Equal(t, "Only Option", a.Name, "slot %s", key)
	}
}

func TestFillSlotsEmptyPoolFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	winter := FillSlots(rng, homeSlots, nil, models.SeasonWinter)
	require.Len(t, winter, len(homeSlots))
	assert.Equal(t, "Target Adventure", winter["outing"].Name)
	assert.Equal(t, "Puzzle Time", winter["quiet-time"].Name)

	summer := FillSlots(rng, homeSlots, nil, models.SeasonSummer)
	assert.Equal(t, "Splash Pad", summer["outing"].Name)

	// Seasons other than summer use the winter table.
	fall := FillSlots(rng, homeSlots, nil, models.SeasonFall)
	assert.Equal(t, winter["outing"].Name, fall["outing"].Name)
}

func TestFillSlotsUniformWhenWeightsEqual(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	pool := []models.Activity{
		activity("A", 0, 0),
		activity("B", 0, 0),
		activity("C", 0, 0),
	}

	counts := map[string]int{}
	trials := 10000
	for i := 0; i < trials; i++ {
		out := FillSlots(rng, []string{"outing"}, pool, models.SeasonWinter)
		counts[out["outing"].Name]++
	}

	expected := float64(trials) / 3
	for name, n := range counts {
		assert.InDelta(t, expected, float64(n), expected*0.1, "activity %s drawn %d times", name, n)
	}
}

func TestFillSlotsWeightBias(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	// Weights 20 vs 10: the favorite should win about twice as often.
	favorite := activity("Favorite", 5, 0) // 10 + 2*5 = 20
	plain := activity("Plain", 0, 0)       // 10
	pool := []models.Activity{favorite, plain}

	counts := map[string]int{}
	trials := 10000
	for i := 0; i < trials; i++ {
		out := FillSlots(rng, []string{"outing"}, pool, models.SeasonWinter)
		counts[out["outing"].Name]++
	}

	ratio := float64(counts["Favorite"]) / float64(counts["Plain"])
	assert.InDelta(t, 2.0, ratio, 0.3)
}

func TestRefreshOneExcludes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pool := []models.Activity{
		activity("A", 0, 0),
		activity("B", 0, 0),
	}

	for i := 0; i < 50; i++ {
		picked, ok := RefreshOne(rng, pool, map[string]bool{"A": true})
		require.True(t, ok)
		assert.Equal(t, "B", picked.Name)
	}
}

func TestRefreshOneExhaustedExclusionsUsesFullPool(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	pool := []models.Activity{activity("A", 0, 0)}

	picked, ok := RefreshOne(rng, pool, map[string]bool{"A": true})
	require.True(t, ok)
	assert.Equal(t, "A", picked.Name)
}

func TestRefreshOneEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	_, ok := RefreshOne(rng, nil, nil)
	assert.False(t, ok)
}
