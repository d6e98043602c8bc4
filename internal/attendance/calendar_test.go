package attendance

import (
	"testing"

	"cbrarecords/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month, year, want int
	}{
		{2, 2024, 29},
		{2, 2023, 28},
		{2, 2100, 28},
		{2, 2000, 29},
		{1, 2025, 31},
		{4, 2025, 30},
		{12, 2030, 31},
		{0, 2025, 0},
		{13, 2025, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysInMonth(tt.month, tt.year), "month %d year %d", tt.month, tt.year)
	}
}

func TestMarkRejectsOutOfRange(t *testing.T) {
	c := New()

	tests := []struct {
		name             string
		year, month, day int
	}{
		{"month 13", 2025, 13, 1},
		{"feb 30", 2025, 2, 30},
		{"feb 29 non-leap", 2025, 2, 29},
		{"year before range", 2023, 5, 1},
		{"year after range", 2035, 5, 1},
		{"day zero", 2025, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Mark(tt.year, tt.month, tt.day, true)
			assert.ErrorIs(t, err, apperr.ErrOutOfRange)
		})
	}
	assert.Equal(t, 0, c.TotalMarkedDays())
}

func TestMarkAndQuery(t *testing.T) {
	c := New()

	require.NoError(t, c.Mark(2024, 2, 29, true))
	require.NoError(t, c.Mark(2025, 3, 1, false))
	require.NoError(t, c.Mark(2025, 3, 2, true))

	assert.True(t, c.Query(2024, 2, 29))
	assert.False(t, c.Query(2025, 3, 1))
	assert.False(t, c.Query(2025, 3, 3), "unmarked day reads as absent")
	assert.False(t, c.IsMarked(2025, 3, 3))

	assert.Equal(t, 2, c.TotalPresent())
	assert.Equal(t, 1, c.TotalAbsent())
	assert.Equal(t, 3, c.TotalMarkedDays())
}

func TestMarkOverwrites(t *testing.T) {
	c := New()

	require.NoError(t, c.Mark(2025, 6, 10, true))
	require.NoError(t, c.Mark(2025, 6, 10, false))

	assert.False(t, c.Query(2025, 6, 10))
	assert.Equal(t, 1, c.TotalMarkedDays())
	assert.Equal(t, 0, c.TotalPresent())
}

func TestZeroValueCalendar(t *testing.T) {
	var c Calendar

	assert.False(t, c.Query(2025, 1, 1))
	require.NoError(t, c.Mark(2025, 1, 1, true))
	assert.Equal(t, 1, c.TotalPresent())
}

func TestEntriesSorted(t *testing.T) {
	c := New()
	require.NoError(t, c.Mark(2026, 1, 5, true))
	require.NoError(t, c.Mark(2025, 12, 31, false))
	require.NoError(t, c.Mark(2026, 1, 4, true))

	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "2025-12-31", entries[0].Date.String())
	assert.Equal(t, "2026-01-04", entries[1].Date.String())
	assert.Equal(t, "2026-01-05", entries[2].Date.String())
	assert.False(t, entries[0].Present)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2028-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2028, Month: 2, Day: 29}, d)

	_, err = ParseDate("2025-02-30")
	assert.ErrorIs(t, err, apperr.ErrInvalidFormat)

	_, err = ParseDate("2040-01-01")
	assert.ErrorIs(t, err, apperr.ErrOutOfRange)

	_, err = ParseDate("yesterday")
	assert.ErrorIs(t, err, apperr.ErrInvalidFormat)
}
