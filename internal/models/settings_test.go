package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailySettingsFromMap(t *testing.T) {
	m := map[string]interface{}{
		"wake_time":            "07:00",
		"bedtime":              "20:00",
		"school_start":         "09:00",
		"school_end":           "12:00",
		"baby_nap_start":       "12:45",
		"baby_nap_duration":    float64(120), // JSON numbers decode as float64
		"toddler_nap_start":    "13:15",
		"toddler_nap_duration": "75", // legacy string value
		"current_season":       SeasonSummer,
		"school_days":          []interface{}{float64(2), float64(4)},
	}

	s := DailySettingsFromMap(m)
	assert.Equal(t, "07:00", s.WakeTime)
	assert.Equal(t, "20:00", s.Bedtime)
	assert.Equal(t, 120, s.BabyNapDuration)
	assert.Equal(t, 75, s.ToddlerNapDuration)
	assert.Equal(t, SeasonSummer, s.CurrentSeason)
	assert.Equal(t, []int{2, 4}, s.SchoolDays)
}

func TestDailySettingsFromMapDefaults(t *testing.T) {
	s := DailySettingsFromMap(map[string]interface{}{})
	assert.Equal(t, "06:30", s.WakeTime)
	assert.Equal(t, "19:30", s.Bedtime)
	assert.Equal(t, 150, s.BabyNapDuration)
	assert.Equal(t, 90, s.ToddlerNapDuration)
	assert.Equal(t, SeasonWinter, s.CurrentSeason)
	assert.Equal(t, []int{1, 3, 5}, s.SchoolDays)
}

func TestIsSchoolDay(t *testing.T) {
	s := DailySettings{SchoolDays: []int{1, 3, 5}}
	assert.True(t, s.IsSchoolDay(1))  // Monday
	assert.False(t, s.IsSchoolDay(0)) // Sunday
	assert.False(t, s.IsSchoolDay(6))
}

func TestValidDayType(t *testing.T) {
	assert.True(t, ValidDayType(DayTypeSchool))
	assert.True(t, ValidDayType(DayTypeHome))
	assert.False(t, ValidDayType("weekend"))
	assert.False(t, ValidDayType(""))
}

func TestValidSeason(t *testing.T) {
	for _, s := range []string{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall} {
		assert.True(t, ValidSeason(s))
	}
	assert.False(t, ValidSeason("autumn"))
}
