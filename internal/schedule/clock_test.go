package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"06:30", 390},
		{"08:45", 525},
		{"12:00", 720},
		{"19:30", 1170},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseClockErrors(t *testing.T) {
	for _, input := range []string{"", "6", "6:30:00", "ab:cd", "12:", "noon"} {
		_, err := ParseClock(input)
		require.Error(t, err, input)
		var ferr *FormatError
		assert.ErrorAs(t, err, &ferr, input)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "06:30", FormatClock(390))
	assert.Equal(t, "19:30", FormatClock(1170))
	assert.Equal(t, "09:05", FormatClock(545))
}

func TestFormatClockWraps(t *testing.T) {
	// Offsets past midnight must stay printable.
	assert.Equal(t, "00:10", FormatClock(1450))
	assert.Equal(t, "23:45", FormatClock(-15))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m += 7 {
		parsed, err := ParseClock(FormatClock(m))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestFormat12h(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"00:15", "12:15 AM"},
		{"06:30", "6:30 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"19:30", "7:30 PM"},
	}
	for _, tt := range tests {
		got, err := Format12h(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := Format12h("bogus")
	assert.Error(t, err)
}

func TestFormatDurationMinutes(t *testing.T) {
	assert.Equal(t, "45 min", FormatDurationMinutes(45))
	assert.Equal(t, "1h 30m", FormatDurationMinutes(90))
	assert.Equal(t, "2h 0m", FormatDurationMinutes(120))
}
