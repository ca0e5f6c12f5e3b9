package tradecal

import (
	"fmt"
	"slices"
	"time"

	"github.com/etnz/tradecal/date"
)

// DayStatus tells whether a day is collected in the statistics.
type DayStatus int

const (
	Active DayStatus = iota
	Future
	Holiday
	Weekend
)

func (s DayStatus) String() string {
	switch s {
	case Active:
		return "active"
	case Future:
		return "future"
	case Holiday:
		return "holiday"
	case Weekend:
		return "weekend"
	default:
		panic(fmt.Sprintf("unknown day status %d", s))
	}
}

// MarketHoliday is a day the market is closed.
type MarketHoliday struct {
	Date date.Date `toml:"date"`
	Name string    `toml:"name"`
}

// Holidays2025 is the list of market closures for 2025.
var Holidays2025 = []MarketHoliday{
	{date.New(2025, time.January, 1), "New Year's Day"},
	{date.New(2025, time.January, 9), "National Day of Mourning"},
	{date.New(2025, time.January, 20), "Martin Luther King Jr. Day"},
	{date.New(2025, time.February, 17), "Presidents' Day"},
	{date.New(2025, time.April, 18), "Good Friday"},
	{date.New(2025, time.May, 26), "Memorial Day"},
	{date.New(2025, time.June, 19), "Juneteenth National Independence Day"},
	{date.New(2025, time.July, 4), "Independence Day"},
	{date.New(2025, time.September, 1), "Labor Day"},
	{date.New(2025, time.November, 27), "Thanksgiving Day"},
	{date.New(2025, time.December, 25), "Christmas Day"},
}

// Underlyings is the set of instruments offered when editing a day.
// It is a suggestion only, any text is accepted as an underlying.
var Underlyings = []string{"", "-", "SPY", "QQQ", "NVDA", "AAPL", "AMD", "META", "TSLA"}

// Calendar is the trading calendar of a single year.
type Calendar struct {
	year     int
	holidays []MarketHoliday
	closed   map[date.Date]string
}

// NewCalendar returns the calendar of 'year' with the given market holidays.
//
// Holidays outside of 'year' are ignored.
func NewCalendar(year int, holidays []MarketHoliday) *Calendar {
	c := &Calendar{year: year, closed: make(map[date.Date]string)}
	for _, h := range holidays {
		if h.Date.Year() != year {
			continue
		}
		if _, dup := c.closed[h.Date]; dup {
			continue
		}
		c.closed[h.Date] = h.Name
		c.holidays = append(c.holidays, h)
	}
	slices.SortFunc(c.holidays, func(a, b MarketHoliday) int { return a.Date.Compare(b.Date) })
	return c
}

// DefaultCalendar returns the 2025 calendar.
func DefaultCalendar() *Calendar { return NewCalendar(2025, Holidays2025) }

// Year returns the calendar year.
func (c *Calendar) Year() int { return c.year }

// Holidays returns the market holidays in chronological order.
func (c *Calendar) Holidays() []MarketHoliday { return slices.Clone(c.holidays) }

// HolidayName returns the name of the holiday at 'd' and true, or "" and false.
func (c *Calendar) HolidayName(d date.Date) (string, bool) {
	name, ok := c.closed[d]
	return name, ok
}

// IsHoliday reports whether the market is closed on 'd' for a holiday.
func (c *Calendar) IsHoliday(d date.Date) bool {
	_, ok := c.closed[d]
	return ok
}

// Classify returns the status of 'd' as seen on 'today'.
//
// Future takes precedence over Holiday, which takes precedence over Weekend.
func (c *Calendar) Classify(d, today date.Date) DayStatus {
	if d.After(today) {
		return Future
	}
	return c.Label(d)
}

// Label returns the status of 'd' regardless of today: Holiday, Weekend or Active.
func (c *Calendar) Label(d date.Date) DayStatus {
	switch {
	case c.IsHoliday(d):
		return Holiday
	case d.IsWeekend():
		return Weekend
	default:
		return Active
	}
}

// IsEditable reports whether trading data can be entered for 'd'.
// The market is closed on holidays and weekends.
func (c *Calendar) IsEditable(d date.Date) bool { return c.Label(d) == Active }

// Month returns the range of days of 'month' in the calendar year.
func (c *Calendar) Month(month time.Month) date.Range { return date.NewMonthRange(c.year, month) }
