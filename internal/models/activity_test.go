package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityWeight(t *testing.T) {
	tests := []struct {
		up, down int
		want     int
	}{
		{0, 0, 10},
		{3, 0, 16},
		{0, 2, 4},
		{0, 3, 1},
		{0, 10, 1}, // floored, never below 1
		{5, 5, 5},
	}
	for _, tt := range tests {
		a := Activity{ThumbsUp: tt.up, ThumbsDown: tt.down}
		assert.Equal(t, tt.want, a.Weight(), "up=%d down=%d", tt.up, tt.down)
		assert.GreaterOrEqual(t, a.Weight(), 1)
	}
}

func TestActivityInSeason(t *testing.T) {
	a := Activity{Seasons: []string{SeasonWinter, SeasonSpring}}
	assert.True(t, a.InSeason(SeasonWinter))
	assert.False(t, a.InSeason(SeasonSummer))
}

func TestActivityDraftValidate(t *testing.T) {
	valid := ActivityDraft{
		Name:    "Finger Painting",
		Type:    "craft",
		Seasons: []string{SeasonWinter, SeasonFall},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		draft ActivityDraft
		field string
	}{
		{"missing name", ActivityDraft{Type: "craft", Seasons: []string{SeasonWinter}}, "name"},
		{"missing type", ActivityDraft{Name: "X", Seasons: []string{SeasonWinter}}, "type"},
		{"no seasons", ActivityDraft{Name: "X", Type: "craft"}, "seasons"},
		{"bad season", ActivityDraft{Name: "X", Type: "craft", Seasons: []string{"monsoon"}}, "seasons"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSnapshotCopiesFields(t *testing.T) {
	a := Activity{Name: "Puzzle Time", Type: "puzzle", Description: "Calm puzzle solving"}
	s := a.Snapshot()
	assert.Equal(t, a.Name, s.Name)
	assert.Equal(t, a.Type, s.Type)
	assert.Equal(t, a.Description, s.Description)
}
