package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid_June2024(t *testing.T) {
	anchor := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	weeks := MonthGrid(anchor, nil, func(r datedRecord) any { return r.Date })

	require.NotEmpty(t, weeks)

	first := weeks[0][0]
	last := weeks[len(weeks)-1][6]

	// June 1 2024 is a Saturday, so the grid opens on Monday May 27.
	assert.Equal(t, time.Monday, first.Day.Weekday())
	assert.Equal(t, time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC), first.Day)
	assert.False(t, first.InMonth)

	// June 30 2024 is a Sunday, so the grid closes exactly on it.
	assert.Equal(t, time.Sunday, last.Day.Weekday())
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), last.Day)
	assert.True(t, last.InMonth)

	// Every day of June appears exactly once, and days are consecutive.
	seen := map[int]int{}
	var prev time.Time
	for _, week := range weeks {
		for _, cell := range week {
			if !prev.IsZero() {
				assert.Equal(t, prev.AddDate(0, 0, 1), cell.Day)
			}
			prev = cell.Day
			if cell.InMonth {
				seen[cell.Day.Day()]++
			}
		}
	}
	require.Len(t, seen, 30)
	for day, count := range seen {
		assert.Equal(t, 1, count, "day %d", day)
	}
}

func TestMonthGrid_PlacesRecordsOnTheirDay(t *testing.T) {
	anchor := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []datedRecord{
		{Name: "feast", Date: "2024-06-15T18:00:00"},
		{Name: "brunch", Date: "2024-06-15T10:00:00"},
		{Name: "padding-day", Date: "2024-05-27T12:00:00"},
		{Name: "other-month", Date: "2024-04-01T12:00:00"},
	}

	weeks := MonthGrid(anchor, records, func(r datedRecord) any { return r.Date })

	var june15, may27 DayCell[datedRecord]
	for _, week := range weeks {
		for _, cell := range week {
			switch {
			case cell.Day.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)):
				june15 = cell
			case cell.Day.Equal(time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC)):
				may27 = cell
			}
		}
	}

	// Both same-day records kept in input order, full list retained.
	require.Len(t, june15.Records, 2)
	assert.Equal(t, "feast", june15.Records[0].Name)
	assert.Equal(t, "brunch", june15.Records[1].Name)

	// Padding days of the adjacent month still show their records.
	require.Len(t, may27.Records, 1)
	assert.False(t, may27.InMonth)
}

func TestWeekGrid_PlacementByHour(t *testing.T) {
	anchor := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC) // Wednesday
	records := []datedRecord{
		{Name: "morning", Date: "2024-06-10T09:45:00"}, // Monday, minutes ignored
		{Name: "evening", Date: "2024-06-16T20:00:00"}, // Sunday
		{Name: "outside", Date: "2024-06-17T10:00:00"}, // next Monday
	}

	view := WeekGrid(anchor, records, func(r datedRecord) any { return r.Date })

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), view.Start)

	require.Len(t, view.Days[0][9].Records, 1)
	assert.Equal(t, "morning", view.Days[0][9].Records[0].Name)
	assert.Empty(t, view.Days[0][10].Records)

	require.Len(t, view.Days[6][20].Records, 1)
	assert.Equal(t, "evening", view.Days[6][20].Records[0].Name)

	total := 0
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			total += len(view.Days[d][h].Records)
		}
	}
	assert.Equal(t, 2, total, "records outside the week must not appear")
}

func TestYearOverview(t *testing.T) {
	anchor := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []datedRecord{
		{Name: "first", Date: "2024-06-15T10:00:00"},
		{Name: "second", Date: "2024-06-15T18:00:00"},
		{Name: "lone", Date: "2024-12-24T20:00:00"},
	}

	months := YearOverview(anchor, records, func(r datedRecord) any { return r.Date })
	require.Len(t, months, 12)

	june := months[5]
	require.Len(t, june.Days, 1)
	assert.Equal(t, 15, june.Days[0].Day.Day())
	// Both records kept; the first one is the deep-link target.
	require.Len(t, june.Days[0].Records, 2)
	assert.Equal(t, "first", june.Days[0].Records[0].Name)

	december := months[11]
	require.Len(t, december.Days, 1)
	assert.Equal(t, 24, december.Days[0].Day.Day())

	for i, m := range months {
		assert.Equal(t, time.Month(i+1), m.Month.Month())
		if i != 5 && i != 11 {
			assert.Empty(t, m.Days)
		}
	}
}

func TestShiftAnchor(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), ShiftAnchor(anchor, GranularityMonth, 1))
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), ShiftAnchor(anchor, GranularityMonth, -1))
	assert.Equal(t, time.Date(2024, 6, 22, 0, 0, 0, 0, time.UTC), ShiftAnchor(anchor, GranularityWeek, 1))
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), ShiftAnchor(anchor, GranularityYear, 1))
}
