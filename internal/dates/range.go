package dates

import (
	"fmt"
	"time"
)

// Range is an inclusive span of calendar days.
type Range struct{ From, To Day }

// NewRange returns the range [from, to]. Callers are responsible for
// from <= to; the range is used as given.
func NewRange(from, to Day) Range { return Range{From: from, To: to} }

// Contains reports whether day falls within the range, boundaries included.
func (r Range) Contains(day Day) bool { return !day.Before(r.From) && !day.After(r.To) }

// String formats the range as "YYYY-MM-DD..YYYY-MM-DD".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }

// ThisMonth returns the calendar month containing today.
func ThisMonth(today Day) Range {
	first := New(today.Year(), today.Month(), 1)
	last := New(today.Year(), today.Month()+1, 0)
	return Range{From: first, To: last}
}

// LastMonth returns the calendar month before the one containing today.
func LastMonth(today Day) Range {
	first := New(today.Year(), today.Month()-1, 1)
	last := New(today.Year(), today.Month(), 0)
	return Range{From: first, To: last}
}

// Last30Days returns the trailing 30 days ending today.
func Last30Days(today Day) Range {
	return Range{From: today.AddDays(-30), To: today}
}

// ThisYear returns the calendar year containing today.
func ThisYear(today Day) Range {
	return Range{
		From: New(today.Year(), time.January, 1),
		To:   New(today.Year(), time.December, 31),
	}
}

// Preset names accepted by ParsePreset.
const (
	PresetThisMonth  = "this-month"
	PresetLastMonth  = "last-month"
	PresetLast30Days = "last-30-days"
	PresetThisYear   = "this-year"
)

// ParsePreset resolves a named preset relative to today.
func ParsePreset(name string, today Day) (Range, error) {
	switch name {
	case PresetThisMonth:
		return ThisMonth(today), nil
	case PresetLastMonth:
		return LastMonth(today), nil
	case PresetLast30Days:
		return Last30Days(today), nil
	case PresetThisYear:
		return ThisYear(today), nil
	default:
		return Range{}, fmt.Errorf("unknown range preset %q", name)
	}
}
