package schedule

import (
	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

// fallbackWinter and fallbackSummer are the bootstrap assignments used when
// the activity catalog is completely empty. Normal operation never reaches
// them: the database is seeded with a default catalog on first boot.
var fallbackWinter = map[string]models.ActivitySnapshot{
	"morning-play":       {Name: "Block Tower Building", Type: "building", Description: "Build tall towers together"},
	"early-morning":      {Name: "Dance Party", Type: "dance", Description: "Morning wiggles out"},
	"baby-morning":       {Name: "Sensory Bins", Type: "sensory", Description: "Rice and scoop play"},
	"morning-activity":   {Name: "Playdough Fun", Type: "craft", Description: "Squish and create"},
	"late-morning":       {Name: "Library Trip", Type: "errand", Description: "Story time and books"},
	"outing":             {Name: "Target Adventure", Type: "errand", Description: "Walk around, get out of house"},
	"pre-lunch":          {Name: "Basement Play", Type: "basement", Description: "Burn energy downstairs"},
	"quiet-time":         {Name: "Puzzle Time", Type: "puzzle", Description: "Calm puzzle solving"},
	"afternoon-activity": {Name: "Blanket Fort", Type: "fort", Description: "Build a cozy hideout"},
	"wind-down":          {Name: "Story Time", Type: "reading", Description: "Calm reading together"},
}

var fallbackSummer = map[string]models.ActivitySnapshot{
	"morning-play":       {Name: "Backyard Bubbles", Type: "outdoor", Description: "Chase bubbles outside"},
	"early-morning":      {Name: "Sidewalk Chalk", Type: "outdoor", Description: "Draw on the driveway"},
	"baby-morning":       {Name: "Water Table", Type: "sensory", Description: "Splash and pour"},
	"morning-activity":   {Name: "Nature Walk", Type: "outdoor", Description: "Explore the neighborhood"},
	"late-morning":       {Name: "Playground", Type: "outdoor", Description: "Slides and swings"},
	"outing":             {Name: "Splash Pad", Type: "outdoor", Description: "Cool off with water play"},
	"pre-lunch":          {Name: "Bug Hunt", Type: "outdoor", Description: "Find crawly friends"},
	"quiet-time":         {Name: "Coloring Books", Type: "craft", Description: "Quiet coloring time"},
	"afternoon-activity": {Name: "Kiddie Pool", Type: "outdoor", Description: "Backyard water fun"},
	"wind-down":          {Name: "Popsicles & Books", Type: "reading", Description: "Cool treat and stories"},
}

// FallbackAssignments returns the static per-season table for the given
// slot keys. Every known slot key has a table entry; anything else gets a
// generic free-play placeholder so the one-entry-per-slot guarantee holds.
func FallbackAssignments(slotKeys []string, season string) map[string]models.ActivitySnapshot {
	table := fallbackWinter
	if season == models.SeasonSummer {
		table = fallbackSummer
	}
	out := make(map[string]models.ActivitySnapshot, len(slotKeys))
	for _, key := range slotKeys {
		if a, ok := table[key]; ok {
			out[key] = a
			continue
		}
		out[key] = models.ActivitySnapshot{Name: "Free Play", Type: "freeplay", Description: "Unstructured play"}
	}
	return out
}

// DefaultCatalog is the activity set seeded into an empty database. Indoor
// activities carry all four seasons; the outdoor set is tagged for the warm
// half of the year.
func DefaultCatalog() []models.ActivityDraft {
	allSeasons := []string{models.SeasonWinter, models.SeasonSpring, models.SeasonSummer, models.SeasonFall}
	warm := []string{models.SeasonSpring, models.SeasonSummer}

	return []models.ActivityDraft{
		{Name: "Block Tower Building", Type: "building", Description: "Build tall towers together", Seasons: allSeasons},
		{Name: "Dance Party", Type: "dance", Description: "Morning wiggles out", Seasons: allSeasons},
		{Name: "Sensory Bins", Type: "sensory", Description: "Rice and scoop play", Seasons: allSeasons},
		{Name: "Playdough Fun", Type: "craft", Description: "Squish and create", Seasons: allSeasons},
		{Name: "Library Trip", Type: "errand", Description: "Story time and books", Seasons: allSeasons},
		{Name: "Target Adventure", Type: "errand", Description: "Walk around, get out of house", Seasons: allSeasons},
		{Name: "Basement Play", Type: "basement", Description: "Burn energy downstairs", Seasons: allSeasons},
		{Name: "Puzzle Time", Type: "puzzle", Description: "Calm puzzle solving", Seasons: allSeasons},
		{Name: "Blanket Fort", Type: "fort", Description: "Build a cozy hideout", Seasons: allSeasons},
		{Name: "Story Time", Type: "reading", Description: "Calm reading together", Seasons: allSeasons},
		{Name: "Coloring Books", Type: "craft", Description: "Quiet coloring time", Seasons: allSeasons},
		{Name: "Backyard Bubbles", Type: "outdoor", Description: "Chase bubbles outside", Seasons: warm},
		{Name: "Sidewalk Chalk", Type: "outdoor", Description: "Draw on the driveway", Seasons: warm},
		{Name: "Water Table", Type: "sensory", Description: "Splash and pour", Seasons: warm},
		{Name: "Nature Walk", Type: "outdoor", Description: "Explore the neighborhood", Seasons: []string{models.SeasonSpring, models.SeasonSummer, models.SeasonFall}},
		{Name: "Playground", Type: "outdoor", Description: "Slides and swings", Seasons: []string{models.SeasonSpring, models.SeasonSummer, models.SeasonFall}},
		{Name: "Splash Pad", Type: "outdoor", Description: "Cool off with water play", Seasons: []string{models.SeasonSummer}},
		{Name: "Bug Hunt", Type: "outdoor", Description: "Find crawly friends", Seasons: warm},
		{Name: "Kiddie Pool", Type: "outdoor", Description: "Backyard water fun", Seasons: []string{models.SeasonSummer}},
		{Name: "Popsicles & Books", Type: "reading", Description: "Cool treat and stories", Seasons: allSeasons},
	}
}
