package calc

import (
	"strconv"
	"strings"
	"time"
)

// ToDate normalizes heterogeneous date representations to a calendar date.
// It accepts time.Time values and ISO strings (yyyy-mm-dd or a full
// timestamp) and reports ok=false for anything it cannot convert; callers
// treat that as absent data and skip dependent calculations.
func ToDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return truncate(d), true
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return ToDate(*d)
	case string:
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return truncate(t), true
		}
		if t, err := time.Parse("2006-01-02T15:04:05", d); err == nil {
			return truncate(t), true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// ParseISODate parses a strict yyyy-mm-dd string.
func ParseISODate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysBetween returns the whole days from a to b, negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(truncate(b).Sub(truncate(a)).Hours() / 24)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseCurrency converts locale-formatted currency text ("R$ 1.234,56",
// thousands "." and decimal ",") into a numeric value. Empty or
// unparseable input yields 0.
func ParseCurrency(s string) float64 {
	cleaned := strings.NewReplacer("R$", "", " ", "", " ", "").Replace(s)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0
	}
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// CoerceAmount turns an arbitrary JSON value into a non-negative amount.
// Non-numeric input counts as zero.
func CoerceAmount(v any) float64 {
	var amount float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		amount = n
	case float32:
		amount = float64(n)
	case int:
		amount = float64(n)
	case int32:
		amount = float64(n)
	case int64:
		amount = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		amount = parsed
	default:
		return 0
	}
	if amount < 0 {
		return 0
	}
	return amount
}
