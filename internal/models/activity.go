package models

import (
	"time"

	"github.com/google/uuid"
)

// Season values accepted on activities.
const (
	SeasonWinter = "winter"
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonFall   = "fall"
)

// ValidSeason reports whether s is one of the four known seasons.
func ValidSeason(s string) bool {
	switch s {
	case SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall:
		return true
	}
	return false
}

// Activity is a catalog entry eligible for schedule slots
type Activity struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Seasons     []string  `json:"seasons"`
	IsDefault   bool      `json:"is_default"`
	ThumbsUp    int       `json:"thumbs_up"`
	ThumbsDown  int       `json:"thumbs_down"`
	CreatedAt   time.Time `json:"created_at"`
}

// Weight is the selection weight derived from accumulated ratings.
// Well-rated activities are drawn more often; the floor of 1 keeps
// every activity reachable no matter how badly it was rated.
func (a Activity) Weight() int {
	w := 10 + 2*a.ThumbsUp - 3*a.ThumbsDown
	if w < 1 {
		return 1
	}
	return w
}

// InSeason reports whether the activity is tagged with the given season.
func (a Activity) InSeason(season string) bool {
	for _, s := range a.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

// Snapshot returns the denormalized form stored inside a daily schedule.
func (a Activity) Snapshot() ActivitySnapshot {
	return ActivitySnapshot{
		ID:          a.ID.String(),
		Name:        a.Name,
		Type:        a.Type,
		Description: a.Description,
	}
}

// ActivitySnapshot is the per-slot assignment persisted with a schedule.
// It is a copy, not a reference: deleting the catalog entry later must not
// change schedules that already used it.
type ActivitySnapshot struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ActivityDraft is the request body for creating a catalog entry.
type ActivityDraft struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Seasons     []string `json:"seasons"`
}

// Validate checks the draft against the catalog rules.
func (d ActivityDraft) Validate() error {
	if d.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if d.Type == "" {
		return &ValidationError{Field: "type", Reason: "type is required"}
	}
	if len(d.Seasons) == 0 {
		return &ValidationError{Field: "seasons", Reason: "at least one season is required"}
	}
	for _, s := range d.Seasons {
		if !ValidSeason(s) {
			return &ValidationError{Field: "seasons", Reason: "unknown season " + s}
		}
	}
	return nil
}

// ValidationError describes a rejected activity draft or rating value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
