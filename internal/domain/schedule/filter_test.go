package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type datedRecord struct {
	Name string `json:"name"`
	Date any    `json:"date"`
}

func dateOf(r datedRecord) any { return r.Date }

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFilterByRange_NoFilterIsIdentity(t *testing.T) {
	records := []datedRecord{
		{Name: "a", Date: "2024-06-15T12:00:00"},
		{Name: "b", Date: nil},
		{Name: "c", Date: "garbage"},
	}

	out := FilterByRange(records, dateOf, NoFilter())

	// The exact input slice comes back, unparsable dates included.
	assert.Equal(t, reflect.ValueOf(records).Pointer(), reflect.ValueOf(out).Pointer())
	assert.Equal(t, records, out)
}

func TestFilterByRange_InclusiveBounds(t *testing.T) {
	from := ts("2024-06-01T00:00:00")
	to := ts("2024-06-30T23:59:59")
	sel := WithCustomRange(&from, &to)

	records := []datedRecord{
		{Name: "before", Date: "2024-05-31T23:59:00"},
		{Name: "middle", Date: "2024-06-15T12:00:00"},
		{Name: "edge", Date: "2024-06-30T23:59:00"},
		{Name: "after", Date: "2024-07-01T00:00:00"},
	}

	out := FilterByRange(records, dateOf, sel)

	require.Len(t, out, 2)
	assert.Equal(t, "middle", out[0].Name)
	assert.Equal(t, "edge", out[1].Name)
}

func TestFilterByRange_ExactBoundInstantsRetained(t *testing.T) {
	from := ts("2024-06-01T00:00:00")
	to := ts("2024-06-30T00:00:00")
	sel := WithCustomRange(&from, &to)

	records := []datedRecord{
		{Name: "on-from", Date: "2024-06-01T00:00:00"},
		{Name: "on-to", Date: "2024-06-30T00:00:00"},
	}

	out := FilterByRange(records, dateOf, sel)
	assert.Len(t, out, 2)
}

func TestFilterByRange_DropsMissingAndUnparsable(t *testing.T) {
	from := ts("2024-06-01T00:00:00")
	to := ts("2024-06-30T23:59:59")
	sel := WithCustomRange(&from, &to)

	records := []datedRecord{
		{Name: "ok", Date: "2024-06-10T10:00:00"},
		{Name: "missing", Date: nil},
		{Name: "garbage", Date: "not-a-date"},
		{Name: "wrong-type", Date: struct{}{}},
	}

	out := FilterByRange(records, dateOf, sel)
	require.Len(t, out, 1)
	assert.Equal(t, "ok", out[0].Name)
}

func TestFilterByRange_AbsentToCollapsesToSameDay(t *testing.T) {
	from := ts("2024-06-15T00:00:00")
	sel := WithCustomRange(&from, nil)

	records := []datedRecord{
		{Name: "same-day-morning", Date: "2024-06-15T08:00:00"},
		{Name: "same-day-last-second", Date: "2024-06-15T23:59:59"},
		{Name: "next-day", Date: "2024-06-16T00:00:01"},
	}

	out := FilterByRange(records, dateOf, sel)
	require.Len(t, out, 2)
	assert.Equal(t, "same-day-morning", out[0].Name)
	assert.Equal(t, "same-day-last-second", out[1].Name)
}

func TestFilterByRange_PreservesOrder(t *testing.T) {
	from := ts("2024-06-01T00:00:00")
	to := ts("2024-06-30T23:59:59")
	sel := WithCustomRange(&from, &to)

	records := []datedRecord{
		{Name: "z", Date: "2024-06-20T00:00:00"},
		{Name: "a", Date: "2024-06-10T00:00:00"},
		{Name: "m", Date: "2024-06-15T00:00:00"},
	}

	out := FilterByRange(records, dateOf, sel)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"z", "a", "m"}, []string{out[0].Name, out[1].Name, out[2].Name})
}

func TestFilterByPath_NestedField(t *testing.T) {
	type inner struct {
		Date string `json:"date"`
	}
	type outer struct {
		Event inner `json:"event"`
	}

	from := ts("2024-06-01T00:00:00")
	to := ts("2024-06-30T23:59:59")
	sel := WithCustomRange(&from, &to)

	records := []outer{
		{Event: inner{Date: "2024-06-10T10:00:00"}},
		{Event: inner{Date: "2024-07-10T10:00:00"}},
	}

	out := FilterByPath(records, "event.date", sel)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-06-10T10:00:00", out[0].Event.Date)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  time.Time
		ok    bool
	}{
		{"rfc3339", "2024-06-15T12:00:00Z", time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), true},
		{"no zone", "2024-06-15T12:00:00", time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), true},
		{"date only", "2024-06-15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"time value", time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), true},
		{"unix millis", int64(1718452800000), time.UnixMilli(1718452800000), true},
		{"empty string", "", time.Time{}, false},
		{"garbage", "15/06/2024", time.Time{}, false},
		{"nil", nil, time.Time{}, false},
		{"bool", true, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize_NilTimePointer(t *testing.T) {
	var p *time.Time
	_, ok := Normalize(p)
	assert.False(t, ok)

	v := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	got, ok := Normalize(&v)
	require.True(t, ok)
	assert.True(t, got.Equal(v))
}
