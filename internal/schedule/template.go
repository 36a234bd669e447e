package schedule

import (
	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

// BuildTemplate lays out the day's time blocks from the configured wake,
// school, nap, and bedtime anchors. School and home days diverge between
// breakfast and lunch and converge into a shared afternoon/evening tail.
//
// Offsets are additive constants from the anchors; no bounds checking is
// done against bedtime or midnight, so pathological settings (a bedtime
// within two hours of the afternoon snack, say) yield overlapping blocks.
// Use ScheduleTemplate.Validate for callers that want to reject those.
func BuildTemplate(settings models.DailySettings, isSchoolDay bool) (models.ScheduleTemplate, error) {
	wake, err := ParseClock(settings.WakeTime)
	if err != nil {
		return nil, err
	}
	bedtime, err := ParseClock(settings.Bedtime)
	if err != nil {
		return nil, err
	}

	var t models.ScheduleTemplate

	t = append(t, fixed("wake", "Wake Up", wake, wake+30, "wake"))
	t = append(t, fixed("breakfast", "Breakfast", wake+30, wake+60, "breakfast"))

	var lunchTime int
	if isSchoolDay {
		schoolStart, err := ParseClock(settings.SchoolStart)
		if err != nil {
			return nil, err
		}
		schoolEnd, err := ParseClock(settings.SchoolEnd)
		if err != nil {
			return nil, err
		}

		t = append(t, slot("morning-play", "Play Time", wake+60, schoolStart-15, "freeplay", "morning-play"))
		t = append(t, fixed("school-dropoff", "School Drop-off", schoolStart-15, schoolStart, "drive"))
		t = append(t, slot("baby-morning", "Baby Play", schoolStart, schoolStart+75, "freeplay", "baby-morning"))
		t = append(t, fixed("snack1", "Snack", schoolStart+75, schoolStart+105, "snack"))
		t = append(t, slot("late-morning", "Outing", schoolStart+105, schoolEnd-15, "errand", "late-morning"))
		t = append(t, fixed("school-pickup", "School Pick-up", schoolEnd-15, schoolEnd+15, "drive"))

		lunchTime = schoolEnd + 15
	} else {
		t = append(t, slot("morning-play", "Play Time", wake+60, wake+90, "freeplay", "early-morning"))
		t = append(t, slot("morning-activity", "Morning Activity", wake+90, wake+150, "activity", "morning-activity"))
		t = append(t, fixed("snack1", "Snack", wake+150, wake+180, "snack"))
		t = append(t, slot("outing", "Outing", wake+180, wake+270, "errand", "outing"))
		t = append(t, slot("pre-lunch", "Indoor Play", wake+270, wake+330, "freeplay", "pre-lunch"))

		lunchTime = wake + 330
	}

	t = append(t, fixed("lunch", "Lunch", lunchTime, lunchTime+30, "lunch"))

	babyNapStart, err := ParseClock(settings.BabyNapStart)
	if err != nil {
		return nil, err
	}
	babyNap := fixed("baby-nap", "Baby Nap", babyNapStart, babyNapStart+60, "nap")
	babyNap.For = "baby"
	t = append(t, babyNap)

	// Quiet time for the older kid runs alongside the baby's nap.
	quiet := slot("quiet-time", "Quiet Time", babyNapStart, babyNapStart+60, "quiettime", "quiet-time")
	quiet.For = "3yo"
	t = append(t, quiet)

	toddlerNapStart, err := ParseClock(settings.ToddlerNapStart)
	if err != nil {
		return nil, err
	}
	t = append(t, fixed("both-nap", "Nap Time", toddlerNapStart, toddlerNapStart+settings.ToddlerNapDuration, "nap"))

	afternoonSnack := toddlerNapStart + settings.ToddlerNapDuration
	dinnerTime := bedtime - 120

	t = append(t, fixed("snack2", "Snack", afternoonSnack, afternoonSnack+30, "snack"))
	t = append(t, slot("afternoon-activity", "Activity", afternoonSnack+30, afternoonSnack+90, "activity", "afternoon-activity"))
	t = append(t, slot("wind-down", "Wind Down", afternoonSnack+90, dinnerTime, "freeplay", "wind-down"))
	t = append(t, fixed("dinner", "Dinner", dinnerTime, dinnerTime+45, "dinner"))
	t = append(t, fixed("bath", "Bath Time", dinnerTime+45, dinnerTime+75, "bath"))
	t = append(t, fixed("bedtime", "Bedtime", dinnerTime+75, bedtime, "bedtime"))

	return t, nil
}

func fixed(id, name string, start, end int, blockType string) models.TimeBlock {
	return models.TimeBlock{
		ID:          id,
		Name:        name,
		StartMinute: start,
		EndMinute:   end,
		Start:       FormatClock(start),
		End:         FormatClock(end),
		Type:        blockType,
		Fixed:       true,
	}
}

func slot(id, name string, start, end int, blockType, slotKey string) models.TimeBlock {
	return models.TimeBlock{
		ID:           id,
		Name:         name,
		StartMinute:  start,
		EndMinute:    end,
		Start:        FormatClock(start),
		End:          FormatClock(end),
		Type:         blockType,
		Customizable: true,
		Slot:         slotKey,
	}
}
