package content

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// coerceString stringifies a decoded JSON value. Absent values become "".
func coerceString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(t)
	}
}

func optionalText(v interface{}) *string {
	s := strings.TrimSpace(coerceString(v))
	if s == "" {
		return nil
	}
	return &s
}

// stringList accepts only arrays. Elements are stringified and trimmed and
// empty ones are dropped; the result is nil when nothing survives.
func stringList(v interface{}) []string {
	var items []interface{}
	switch t := v.(type) {
	case []interface{}:
		items = t
	case []string:
		items = make([]interface{}, len(t))
		for i, s := range t {
			items[i] = s
		}
	default:
		return nil
	}

	var out []string
	for _, item := range items {
		s := strings.TrimSpace(coerceString(item))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// truthy follows the loose truthiness rules browsers apply to form values.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate accepts ISO-8601 timestamps and plain dates. Values without a
// zone are read as UTC.
func parseDate(v interface{}) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t.UTC(), true
	}
	s := strings.TrimSpace(coerceString(v))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseOrder reads an optional non-negative integer.
func parseOrder(v interface{}) (*int, bool) {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil, true
	case int:
		f = float64(t)
	case float64:
		f = t
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		f = parsed
	default:
		return nil, false
	}
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil, false
	}
	n := int(f)
	return &n, true
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
