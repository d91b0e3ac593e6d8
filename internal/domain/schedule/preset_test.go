package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Today(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC) // Saturday
	sel := Resolve(PresetToday, now, Selection{})

	require.NotNil(t, sel.From)
	require.NotNil(t, sel.To)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *sel.From)
	assert.True(t, SameDay(*sel.To, now))

	// 23:59:59 today is inside, 00:00:01 tomorrow is not.
	records := []datedRecord{
		{Name: "late-tonight", Date: "2024-06-15T23:59:59"},
		{Name: "early-tomorrow", Date: "2024-06-16T00:00:01"},
	}
	out := FilterByRange(records, dateOf, sel)
	require.Len(t, out, 1)
	assert.Equal(t, "late-tonight", out[0].Name)
}

func TestResolve_WeekStartsMonday(t *testing.T) {
	// Wednesday June 12 2024 -> Monday June 10 .. Sunday June 16
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	sel := Resolve(PresetWeek, now, Selection{})

	require.NotNil(t, sel.From)
	require.NotNil(t, sel.To)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), *sel.From)
	assert.Equal(t, time.Monday, sel.From.Weekday())
	assert.True(t, SameDay(*sel.To, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Sunday, sel.To.Weekday())
}

func TestResolve_WeekOnSunday(t *testing.T) {
	// A Sunday belongs to the week that started the previous Monday.
	now := time.Date(2024, 6, 16, 9, 0, 0, 0, time.UTC)
	sel := Resolve(PresetWeek, now, Selection{})

	require.NotNil(t, sel.From)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), *sel.From)
}

func TestResolve_Month(t *testing.T) {
	now := time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC) // leap February
	sel := Resolve(PresetMonth, now, Selection{})

	require.NotNil(t, sel.From)
	require.NotNil(t, sel.To)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *sel.From)
	assert.True(t, SameDay(*sel.To, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
}

func TestResolve_Year(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	sel := Resolve(PresetYear, now, Selection{})

	require.NotNil(t, sel.From)
	require.NotNil(t, sel.To)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *sel.From)
	assert.True(t, SameDay(*sel.To, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestResolve_CustomKeepsCallerRange(t *testing.T) {
	from := ts("2024-03-01T00:00:00")
	to := ts("2024-03-10T23:59:59")
	custom := WithCustomRange(&from, &to)

	sel := Resolve(PresetCustom, time.Now(), custom)
	assert.Equal(t, PresetCustom, sel.Preset)
	assert.Equal(t, &from, sel.From)
	assert.Equal(t, &to, sel.To)
}

func TestResolve_PresetOverwritesCustomRange(t *testing.T) {
	from := ts("2020-01-01T00:00:00")
	custom := WithCustomRange(&from, nil)

	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	sel := Resolve(PresetToday, now, custom)

	require.NotNil(t, sel.From)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *sel.From)
}

func TestNoFilter(t *testing.T) {
	sel := NoFilter()
	assert.Nil(t, sel.From)
	assert.Nil(t, sel.To)
}
