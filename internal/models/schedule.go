package models

import (
	"fmt"
	"time"
)

// Day types a schedule can be generated for.
const (
	DayTypeSchool = "school"
	DayTypeHome   = "home"
)

// ValidDayType reports whether t is a known day type.
func ValidDayType(t string) bool {
	return t == DayTypeSchool || t == DayTypeHome
}

// TimeBlock is one entry in a day's template. Fixed blocks keep their name
// and type; customizable blocks carry a slot key and get an activity
// substituted in when the template is merged with a generated schedule.
type TimeBlock struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartMinute  int    `json:"start_minute"`
	EndMinute    int    `json:"end_minute"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Type         string `json:"type"`
	Fixed        bool   `json:"fixed,omitempty"`
	Customizable bool   `json:"customizable,omitempty"`
	Slot         string `json:"slot,omitempty"`
	For          string `json:"for,omitempty"`
	Description  string `json:"description,omitempty"`
}

// ScheduleTemplate is the ordered block sequence for one day type.
type ScheduleTemplate []TimeBlock

// SlotKeys returns the slot keys of the customizable blocks in template order.
func (t ScheduleTemplate) SlotKeys() []string {
	keys := make([]string, 0, len(t))
	for _, b := range t {
		if b.Customizable && b.Slot != "" {
			keys = append(keys, b.Slot)
		}
	}
	return keys
}

// Validate is an opt-in check for degenerate block spans. Template
// generation itself never clamps or rejects: very early bedtimes produce
// overlapping or negative-duration blocks silently, and callers that care
// run this afterwards.
func (t ScheduleTemplate) Validate() error {
	for _, b := range t {
		if b.EndMinute <= b.StartMinute {
			return fmt.Errorf("block %s has non-positive duration (%d-%d)", b.ID, b.StartMinute, b.EndMinute)
		}
	}
	return nil
}

// Merge substitutes generated activities into the customizable blocks,
// leaving fixed blocks and unassigned slots untouched.
func (t ScheduleTemplate) Merge(assignments map[string]ActivitySnapshot) ScheduleTemplate {
	merged := make(ScheduleTemplate, len(t))
	copy(merged, t)
	for i, b := range merged {
		if !b.Customizable || b.Slot == "" {
			continue
		}
		a, ok := assignments[b.Slot]
		if !ok {
			continue
		}
		merged[i].Name = a.Name
		merged[i].Type = a.Type
		merged[i].Description = a.Description
	}
	return merged
}

// DailySchedule is the persisted slot assignment for one (date, day type).
type DailySchedule struct {
	Date       string                      `json:"date"`
	DayType    string                      `json:"day_type"`
	Activities map[string]ActivitySnapshot `json:"activities"`
	CreatedAt  time.Time                   `json:"created_at"`
}

// Rating is one thumbs vote for an activity on a given date.
type Rating struct {
	ActivityID string `json:"activity_id"`
	Date       string `json:"date"`
	Value      int    `json:"value"` // +1 or -1
}

// HistoryEntry records that an activity was started, for the last-7-days view.
type HistoryEntry struct {
	ID           int64     `json:"id"`
	ActivityID   string    `json:"activity_id"`
	ActivityName string    `json:"activity_name"`
	ActivityType string    `json:"activity_type"`
	StartedAt    time.Time `json:"started_at"`
}
