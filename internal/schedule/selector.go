package schedule

import (
	"math/rand"

	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

// FillSlots assigns one activity per slot key by weighted random sampling.
// Names already used in this fill are excluded from later draws until the
// unused pool runs out, at which point picks fall back to a uniform draw
// over the whole pool (repeats are an accepted outcome when the pool is
// smaller than the slot count, not an error).
//
// An empty pool degrades to the static per-season table. The function never
// fails: the returned map always has exactly one entry per slot key.
func FillSlots(rng *rand.Rand, slotKeys []string, pool []models.Activity, season string) map[string]models.ActivitySnapshot {
	if len(pool) == 0 {
		return FallbackAssignments(slotKeys, season)
	}

	out := make(map[string]models.ActivitySnapshot, len(slotKeys))
	used := make(map[string]bool, len(slotKeys))
	for _, key := range slotKeys {
		picked := pickWeighted(rng, pool, used)
		used[picked.Name] = true
		out[key] = picked.Snapshot()
	}
	return out
}

// pickWeighted draws one activity with probability proportional to its
// rating weight, skipping names in used. When every name is used it picks
// uniformly from the full pool instead.
func pickWeighted(rng *rand.Rand, pool []models.Activity, used map[string]bool) models.Activity {
	candidates := make([]models.Activity, 0, len(pool))
	total := 0
	for _, a := range pool {
		if used[a.Name] {
			continue
		}
		candidates = append(candidates, a)
		total += a.Weight()
	}
	if len(candidates) == 0 {
		return pool[rng.Intn(len(pool))]
	}

	r := rng.Float64() * float64(total)
	for _, a := range candidates {
		r -= float64(a.Weight())
		if r <= 0 {
			return a
		}
	}
	// Rounding can leave a sliver of r; the last candidate takes it.
	return candidates[len(candidates)-1]
}

// RefreshOne picks a replacement for a single slot: a uniform, non-weighted
// draw from the pool excluding the given names. If the exclusions empty the
// pool the draw runs over the full pool instead. Returns false only when
// the pool itself is empty.
func RefreshOne(rng *rand.Rand, pool []models.Activity, exclude map[string]bool) (models.Activity, bool) {
	if len(pool) == 0 {
		return models.Activity{}, false
	}

	available := make([]models.Activity, 0, len(pool))
	for _, a := range pool {
		if !exclude[a.Name] {
			available = append(available, a)
		}
	}
	if len(available) == 0 {
		return pool[rng.Intn(len(pool))], true
	}
	return available[rng.Intn(len(available))], true
}
