// Package schedule implements the date logic behind list filters and the
// agenda: normalization of mixed date representations, preset resolution,
// range filtering and calendar bucketing.
package schedule

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"
)

// Layouts accepted for string dates, tried in order.
var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize converts a raw value into a comparable instant.
// Accepted inputs: time.Time and *time.Time, ISO-8601 strings, and numeric
// Unix milliseconds. Everything else reports ok=false.
//
// Callers drop the owning record on a false result; normalization never
// produces an error.
func Normalize(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case string:
		return parseString(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return time.UnixMilli(i), true
		}
		return time.Time{}, false
	case int64:
		return time.UnixMilli(t), true
	case int:
		return time.UnixMilli(int64(t)), true
	case float64:
		return time.UnixMilli(int64(t)), true
	case nil:
		return time.Time{}, false
	}
	return time.Time{}, false
}

func parseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FieldPath builds an accessor reading a date value off a record by name.
// One level of dot nesting is supported ("event.date" reads record.event.date);
// lookups go by `json` tag first, then by exported field name, and descend
// through pointers and maps. A missing path yields nil, which Normalize
// treats as invalid.
func FieldPath(path string) func(record any) any {
	head, tail, nested := strings.Cut(path, ".")
	return func(record any) any {
		v := lookup(record, head)
		if !nested {
			return v
		}
		return lookup(v, tail)
	}
}

func lookup(record any, name string) any {
	if record == nil {
		return nil
	}
	if m, ok := record.(map[string]any); ok {
		return m[name]
	}

	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name || (tag == "" && f.Name == name) || strings.EqualFold(f.Name, name) {
			return rv.Field(i).Interface()
		}
	}
	return nil
}
