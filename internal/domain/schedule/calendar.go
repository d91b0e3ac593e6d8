package schedule

import "time"

// Granularity selects the agenda view and the unit of prev/next navigation.
type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// DayCell is one calendar day in a month grid.
type DayCell[T any] struct {
	Day     time.Time
	InMonth bool // false on the padding days of adjacent months
	Records []T
}

// MonthWeek is one Monday-to-Sunday row of a month grid.
type MonthWeek[T any] [7]DayCell[T]

// MonthGrid lays out the anchor's month as full Monday-to-Sunday weeks.
// The grid starts on the Monday on/before the 1st and ends on the Sunday
// on/after the last day, so adjacent-month padding days carry records too.
// Display truncation ("+K more") is a rendering concern; every cell keeps
// the full record list.
func MonthGrid[T any](anchor time.Time, records []T, dateOf func(T) any) []MonthWeek[T] {
	first := StartOfMonth(anchor)
	last := first.AddDate(0, 1, -1)
	gridStart := StartOfWeek(first)
	gridEnd := StartOfWeek(last).AddDate(0, 0, 6)

	byDay := bucketByDay(records, dateOf)

	var weeks []MonthWeek[T]
	for day := gridStart; !day.After(gridEnd); {
		var week MonthWeek[T]
		for i := 0; i < 7; i++ {
			week[i] = DayCell[T]{
				Day:     day,
				InMonth: day.Month() == first.Month() && day.Year() == first.Year(),
				Records: byDay[dayKey(day)],
			}
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// HourSlot is one hour row of one day column in the week view.
type HourSlot[T any] struct {
	Day     time.Time
	Hour    int
	Records []T
}

// WeekView is 7 day columns of 24 hourly slots, Monday first.
type WeekView[T any] struct {
	Start time.Time // Monday 00:00
	Days  [7][24]HourSlot[T]
}

// WeekGrid places records into hourly slots of the anchor's week.
// Placement uses only the hour component; minutes stay on the record for
// the display label.
func WeekGrid[T any](anchor time.Time, records []T, dateOf func(T) any) WeekView[T] {
	start := StartOfWeek(anchor)
	view := WeekView[T]{Start: start}

	for d := 0; d < 7; d++ {
		day := start.AddDate(0, 0, d)
		for h := 0; h < 24; h++ {
			view.Days[d][h] = HourSlot[T]{Day: day, Hour: h}
		}
	}

	weekEnd := EndOfDay(start.AddDate(0, 0, 6))
	for _, rec := range records {
		instant, ok := Normalize(dateOf(rec))
		if !ok || !Within(instant, start, weekEnd) {
			continue
		}
		d := daysBetween(start, instant)
		h := instant.Hour()
		slot := &view.Days[d][h]
		slot.Records = append(slot.Records, rec)
	}
	return view
}

// MiniMonth is one month of the year overview: only the days that carry at
// least one record are listed. The full per-day record list is retained so
// the caller can deep-link (by convention, to the first record of the day).
type MiniMonth[T any] struct {
	Month time.Time // first day of the month
	Days  []DayCell[T]
}

// YearOverview produces 12 mini-calendars for the anchor's year.
func YearOverview[T any](anchor time.Time, records []T, dateOf func(T) any) []MiniMonth[T] {
	byDay := bucketByDay(records, dateOf)

	months := make([]MiniMonth[T], 0, 12)
	for m := time.January; m <= time.December; m++ {
		first := time.Date(anchor.Year(), m, 1, 0, 0, 0, 0, anchor.Location())
		mini := MiniMonth[T]{Month: first}
		last := first.AddDate(0, 1, -1)
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			if recs := byDay[dayKey(day)]; len(recs) > 0 {
				mini.Days = append(mini.Days, DayCell[T]{Day: day, InMonth: true, Records: recs})
			}
		}
		months = append(months, mini)
	}
	return months
}

// ShiftAnchor moves the navigation anchor by delta units of the granularity.
// The "today" action is simply the caller replacing the anchor with now.
func ShiftAnchor(anchor time.Time, g Granularity, delta int) time.Time {
	switch g {
	case GranularityWeek:
		return anchor.AddDate(0, 0, 7*delta)
	case GranularityYear:
		return anchor.AddDate(delta, 0, 0)
	default:
		return anchor.AddDate(0, delta, 0)
	}
}

func bucketByDay[T any](records []T, dateOf func(T) any) map[string][]T {
	byDay := make(map[string][]T)
	for _, rec := range records {
		instant, ok := Normalize(dateOf(rec))
		if !ok {
			continue
		}
		key := dayKey(instant)
		byDay[key] = append(byDay[key], rec)
	}
	return byDay
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func daysBetween(start, t time.Time) int {
	d := int(StartOfDay(t).Sub(StartOfDay(start)).Hours() / 24)
	if d < 0 {
		return 0
	}
	if d > 6 {
		return 6
	}
	return d
}
