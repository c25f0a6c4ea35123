package dates

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical on-disk representation of a day (ISO-8601).
const Format = "2006-01-02"

// Day represents a calendar day with no time component.
type Day struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Day for the given year, month and day of month.
// Out-of-range values are carried over the way time.Date does.
func New(year int, month time.Month, day int) Day {
	d := Day{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime returns the Day on which t falls, in t's location.
func FromTime(t time.Time) Day { return New(t.Date()) }

// Today returns the current Day in local time.
func Today() Day { return FromTime(time.Now()) }

// Parse parses a Day from its canonical "YYYY-MM-DD" form.
func Parse(s string) (Day, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q (want %s): %w", s, Format, err)
	}
	return FromTime(t), nil
}

// MustParse is like Parse but panics on error. Intended for tests and literals.
func MustParse(s string) Day {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// time returns the canonical time.Time for the day (midnight UTC).
func (d Day) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the day's year.
func (d Day) Year() int { return d.y }

// Month returns the day's month.
func (d Day) Month() time.Month { return d.m }

// DayOfMonth returns the day of the month.
func (d Day) DayOfMonth() int { return d.d }

// Before reports whether d is strictly before x.
func (d Day) Before(x Day) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Day) After(x Day) bool { return d.time().After(x.time()) }

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day { return New(d.y, d.m, d.d+n) }

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool { return d == Day{} }

// String formats the day as "YYYY-MM-DD". Lexicographic order on the
// result matches chronological order.
func (d Day) String() string { return d.time().Format(Format) }

// MarshalJSON encodes the day as a "YYYY-MM-DD" JSON string.
func (d Day) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	day, err := Parse(s)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

var _ json.Marshaler = (*Day)(nil)
var _ json.Unmarshaler = (*Day)(nil)
