// Package date provides a naive calendar date, with no lower than day granularity
// and no time zone, as used by the trading calendar.
package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format is the layout used to represent dates as text: month/day/year with no zero padding.
const Format = "1/2/2006"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
//
// Out of range values are normalized the way time.Date does: New(2025, 4, 31) is May 1st.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// IsWeekend reports whether the date is a Saturday or a Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ShortWeekday returns the three letters name of the weekday (e.g. "Mon").
func (d Date) ShortWeekday() string { return d.time().Format("Mon") }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String format the date as M/D/YYYY.
func (d Date) String() string { return d.time().Format(Format) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// DaysIn returns the number of days in the month of the given year, leap years included.
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one.
	return New(year, month+1, 0).Day()
}

// Parse parses a Date in the M/D/YYYY format.
//
// It is lenient: surrounding spaces are ignored and zero padded numbers are accepted ("01/02/2025").
// Out of range days are rejected instead of being normalized.
func Parse(str string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(str), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q want format %q", str, Format)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, err)
		}
		n[i] = v
	}
	month, day, year := time.Month(n[0]), n[1], n[2]
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("invalid date %q: month %d out of range", str, month)
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, fmt.Errorf("invalid date %q: day %d out of range", str, day)
	}
	return New(year, month, day), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler, so that dates can be read from config files.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
