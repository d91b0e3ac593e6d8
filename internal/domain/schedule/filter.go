package schedule

import "time"

// FilterByRange keeps the records whose date falls inside the selection.
//
// With no active filter (nil From) the input slice itself is returned, so the
// dominant "no filter" case costs nothing. Otherwise membership is inclusive
// on both bounds; a record whose date cannot be normalized is dropped, and
// the order of survivors is preserved.
//
// When To is absent the interval collapses to From's calendar day.
func FilterByRange[T any](records []T, dateOf func(T) any, sel Selection) []T {
	if sel.From == nil {
		return records
	}

	from := *sel.From
	var to time.Time
	if sel.To != nil {
		to = *sel.To
	} else {
		to = EndOfDay(from)
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		instant, ok := Normalize(dateOf(rec))
		if !ok {
			continue
		}
		if Within(instant, from, to) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByPath is FilterByRange with the date read off a dot-path field.
func FilterByPath[T any](records []T, path string, sel Selection) []T {
	accessor := FieldPath(path)
	return FilterByRange(records, func(rec T) any { return accessor(rec) }, sel)
}

// Within reports whether t lies in [from, to], inclusive on both ends.
func Within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
