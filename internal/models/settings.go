package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// SettingsResponse is the response format for GET /api/settings
type SettingsResponse map[string]interface{}

// Kid is one child configured in settings.
type Kid struct {
	ID        int       `json:"id,omitempty"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// DailySettings are the typed settings the template builder consumes.
// They are read-only to the schedule core; the settings store owns them.
type DailySettings struct {
	WakeTime           string
	Bedtime            string
	SchoolStart        string
	SchoolEnd          string
	BabyNapStart       string
	BabyNapDuration    int
	ToddlerNapStart    string
	ToddlerNapDuration int
	CurrentSeason      string
	SchoolDays         []int
}

// IsSchoolDay reports whether the given weekday (time.Weekday numbering,
// Sunday = 0) is a configured school day.
func (s DailySettings) IsSchoolDay(weekday int) bool {
	for _, d := range s.SchoolDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// DailySettingsFromMap extracts the schedule-relevant fields from a raw
// settings map, falling back to the shipped defaults for missing keys.
func DailySettingsFromMap(m map[string]interface{}) DailySettings {
	s := DailySettings{
		WakeTime:           stringSetting(m, "wake_time", "06:30"),
		Bedtime:            stringSetting(m, "bedtime", "19:30"),
		SchoolStart:        stringSetting(m, "school_start", "08:45"),
		SchoolEnd:          stringSetting(m, "school_end", "11:45"),
		BabyNapStart:       stringSetting(m, "baby_nap_start", "12:30"),
		BabyNapDuration:    intSetting(m, "baby_nap_duration", 150),
		ToddlerNapStart:    stringSetting(m, "toddler_nap_start", "13:30"),
		ToddlerNapDuration: intSetting(m, "toddler_nap_duration", 90),
		CurrentSeason:      stringSetting(m, "current_season", SeasonWinter),
		SchoolDays:         intListSetting(m, "school_days", []int{1, 3, 5}),
	}
	return s
}

func stringSetting(m map[string]interface{}, key, fallback string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func intSetting(m map[string]interface{}, key string, fallback int) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return fallback
}

func intListSetting(m map[string]interface{}, key string, fallback []int) []int {
	raw, ok := m[key]
	if !ok {
		return fallback
	}
	switch v := raw.(type) {
	case []int:
		return v
	case []interface{}:
		out := make([]int, 0, len(v))
		for _, item := range v {
			if f, ok := item.(float64); ok {
				out = append(out, int(f))
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
