package schedule

import "time"

// Preset is a named shorthand for a date interval anchored on "now".
type Preset string

const (
	PresetToday  Preset = "today"
	PresetWeek   Preset = "week"
	PresetMonth  Preset = "month"
	PresetYear   Preset = "year"
	PresetCustom Preset = "custom"
)

// Selection is the active date filter. Exactly one representation is
// authoritative: resolving a named preset recomputes From/To, while editing
// the range directly switches the tag to custom. A nil From means no filter.
type Selection struct {
	Preset Preset     `json:"preset"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}

// NoFilter returns the default selection that passes every record.
func NoFilter() Selection {
	return Selection{Preset: PresetCustom}
}

// Resolve maps a preset to a concrete inclusive interval anchored at now.
// Weeks start on Monday, the Brazilian convention used across the product.
// For PresetCustom the caller-supplied bounds are kept untouched.
func Resolve(preset Preset, now time.Time, custom Selection) Selection {
	switch preset {
	case PresetToday:
		from := StartOfDay(now)
		return interval(preset, from, EndOfDay(now))
	case PresetWeek:
		from := StartOfWeek(now)
		return interval(preset, from, EndOfDay(from.AddDate(0, 0, 6)))
	case PresetMonth:
		from := StartOfMonth(now)
		return interval(preset, from, EndOfDay(from.AddDate(0, 1, -1)))
	case PresetYear:
		from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return interval(preset, from, EndOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())))
	default:
		custom.Preset = PresetCustom
		return custom
	}
}

// WithCustomRange discards any preset and installs an explicit range.
func WithCustomRange(from, to *time.Time) Selection {
	return Selection{Preset: PresetCustom, From: from, To: to}
}

func interval(p Preset, from, to time.Time) Selection {
	return Selection{Preset: p, From: &from, To: &to}
}

// --- day/week/month boundary helpers ---

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns Monday 00:00 of t's week.
func StartOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 { // time.Sunday
		wd = 7
	}
	return StartOfDay(t.AddDate(0, 0, -(wd - 1)))
}

// StartOfMonth returns the first day of t's month at 00:00.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
