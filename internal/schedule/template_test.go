package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

func testSettings() models.DailySettings {
	return models.DailySettings{
		WakeTime:           "06:30",
		Bedtime:            "19:30",
		SchoolStart:        "08:45",
		SchoolEnd:          "11:45",
		BabyNapStart:       "12:30",
		BabyNapDuration:    150,
		ToddlerNapStart:    "13:30",
		ToddlerNapDuration: 90,
		CurrentSeason:      models.SeasonWinter,
		SchoolDays:         []int{1, 3, 5},
	}
}

type blockGolden struct {
	id    string
	start string
	end   string
}

func assertBlocks(t *testing.T, template models.ScheduleTemplate, want []blockGolden) {
	t.Helper()
	require.Len(t, template, len(want))
	for i, w := range want {
		assert.Equal(t, w.id, template[i].ID, "block %d id", i)
		assert.Equal(t, w.start, template[i].Start, "block %s start", w.id)
		assert.Equal(t, w.end, template[i].End, "block %s end", w.id)
	}
}

func TestBuildTemplateHomeDay(t *testing.T) {
	template, err := BuildTemplate(testSettings(), false)
	require.NoError(t, err)

	assertBlocks(t, template, []blockGolden{
		{"wake", "06:30", "07:00"},
		{"breakfast", "07:00", "07:30"},
		{"morning-play", "07:30", "08:00"},
		{"morning-activity", "08:00", "09:00"},
		{"snack1", "09:00", "09:30"},
		{"outing", "09:30", "11:00"},
		{"pre-lunch", "11:00", "12:00"},
		{"lunch", "12:00", "12:30"},
		{"baby-nap", "12:30", "13:30"},
		{"quiet-time", "12:30", "13:30"},
		{"both-nap", "13:30", "15:00"},
		{"snack2", "15:00", "15:30"},
		{"afternoon-activity", "15:30", "16:30"},
		{"wind-down", "16:30", "17:30"},
		{"dinner", "17:30", "18:15"},
		{"bath", "18:15", "18:45"},
		{"bedtime", "18:45", "19:30"},
	})

	assert.Equal(t,
		[]string{"early-morning", "morning-activity", "outing", "pre-lunch", "quiet-time", "afternoon-activity", "wind-down"},
		template.SlotKeys())
}

func TestBuildTemplateSchoolDay(t *testing.T) {
	template, err := BuildTemplate(testSettings(), true)
	require.NoError(t, err)

	assertBlocks(t, template, []blockGolden{
		{"wake", "06:30", "07:00"},
		{"breakfast", "07:00", "07:30"},
		{"morning-play", "07:30", "08:30"},
		{"school-dropoff", "08:30", "08:45"},
		{"baby-morning", "08:45", "10:00"},
		{"snack1", "10:00", "10:30"},
		{"late-morning", "10:30", "11:30"},
		{"school-pickup", "11:30", "12:00"},
		{"lunch", "12:00", "12:30"},
		{"baby-nap", "12:30", "13:30"},
		{"quiet-time", "12:30", "13:30"},
		{"both-nap", "13:30", "15:00"},
		{"snack2", "15:00", "15:30"},
		{"afternoon-activity", "15:30", "16:30"},
		{"wind-down", "16:30", "17:30"},
		{"dinner", "17:30", "18:15"},
		{"bath", "18:15", "18:45"},
		{"bedtime", "18:45", "19:30"},
	})

	assert.Equal(t,
		[]string{"morning-play", "baby-morning", "late-morning", "quiet-time", "afternoon-activity", "wind-down"},
		template.SlotKeys())
}

func TestBuildTemplateMorningContiguity(t *testing.T) {
	// The pre-nap sequence chains block k's end into block k+1's start.
	// The afternoon re-anchors on the nap settings, so contiguity is only
	// guaranteed through lunch.
	template, err := BuildTemplate(testSettings(), false)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		assert.Equal(t, template[i].EndMinute, template[i+1].StartMinute,
			"block %s should end where %s starts", template[i].ID, template[i+1].ID)
		assert.Less(t, template[i].StartMinute, template[i].EndMinute,
			"block %s should have positive duration", template[i].ID)
	}
}

func TestBuildTemplateParallelNapBlocks(t *testing.T) {
	template, err := BuildTemplate(testSettings(), false)
	require.NoError(t, err)

	var babyNap, quietTime models.TimeBlock
	for _, b := range template {
		switch b.ID {
		case "baby-nap":
			babyNap = b
		case "quiet-time":
			quietTime = b
		}
	}
	// Quiet time for the older kid spans the baby's nap exactly.
	assert.Equal(t, babyNap.StartMinute, quietTime.StartMinute)
	assert.Equal(t, babyNap.EndMinute, quietTime.EndMinute)
	assert.Equal(t, "baby", babyNap.For)
	assert.Equal(t, "3yo", quietTime.For)
	assert.True(t, babyNap.Fixed)
	assert.True(t, quietTime.Customizable)
}

func TestBuildTemplateEarlyBedtimeIsAcceptedSilently(t *testing.T) {
	// A bedtime near the afternoon snack produces an overlapping,
	// negative-duration wind-down block. Generation accepts it; Validate
	// is the opt-in rejection hook.
	settings := testSettings()
	settings.Bedtime = "17:00"

	template, err := BuildTemplate(settings, false)
	require.NoError(t, err)
	assert.Error(t, template.Validate())

	// Sane settings pass validation.
	normal, err := BuildTemplate(testSettings(), false)
	require.NoError(t, err)
	assert.NoError(t, normal.Validate())
}

func TestBuildTemplateBadSettings(t *testing.T) {
	settings := testSettings()
	settings.WakeTime = "sunrise"
	_, err := BuildTemplate(settings, false)
	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)

	settings = testSettings()
	settings.SchoolStart = "8.45"
	_, err = BuildTemplate(settings, true)
	require.Error(t, err)

	// School times are not parsed on home days, so they cannot fail there.
	_, err = BuildTemplate(settings, false)
	require.NoError(t, err)
}

func TestTemplateMerge(t *testing.T) {
	template, err := BuildTemplate(testSettings(), false)
	require.NoError(t, err)

	merged := template.Merge(map[string]models.ActivitySnapshot{
		"outing":     {Name: "Library Trip", Type: "errand", Description: "Story time and books"},
		"quiet-time": {Name: "Puzzle Time", Type: "puzzle", Description: "Calm puzzle solving"},
	})

	byID := map[string]models.TimeBlock{}
	for _, b := range merged {
		byID[b.ID] = b
	}
	assert.Equal(t, "Library Trip", byID["outing"].Name)
	assert.Equal(t, "puzzle", byID["quiet-time"].Type)
	// Fixed blocks and unassigned slots keep their template values.
	assert.Equal(t, "Lunch", byID["lunch"].Name)
	assert.Equal(t, "Play Time", byID["morning-play"].Name)
	// Merging never mutates the original template.
	for _, b := range template {
		if b.ID == "outing" {
			assert.Equal(t, "Outing", b.Name)
		}
	}
}
