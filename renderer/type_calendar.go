package renderer

import (
	"fmt"
	"time"

	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/date"
	"github.com/shopspring/decimal"
)

// Day is a single day of the calendar, ready for rendering.
type Day struct {
	Date       date.Date
	Label      string // e.g. "Wed 1 (Holiday)"
	Status     tradecal.DayStatus
	Underlying string
	Profit     string // raw text prefixed by a marker of the sign of the profit
	Trades     string
}

// Month is a month of the calendar with its statistics.
type Month struct {
	Name     string
	Currency string
	Stats    tradecal.MonthlyStats
	Days     []Day
}

// Summary returns the month statistics as shown in the month header.
func (m Month) Summary() string { return m.Stats.Summary(m.Currency) }

// Calendar is the view of a trading calendar.
type Calendar struct {
	Year     int
	Currency string
	Months   []Month
	// Records that are not in the calendar year.
	Others []OtherRecord
}

// OtherRecord is a record found in the store for a date outside the calendar year.
type OtherRecord struct {
	Date   date.Date
	Record tradecal.Record
}

// NewDay builds the view of a single day.
func NewDay(cal *tradecal.Calendar, d date.Date, r tradecal.Record) Day {
	label := cal.Label(d)
	day := Day{
		Date:       d,
		Label:      fmt.Sprintf("%s %d", d.ShortWeekday(), d.Day()),
		Status:     label,
		Underlying: r.Underlying,
		Profit:     r.Profit,
		Trades:     r.Trades,
	}
	switch label {
	case tradecal.Holiday:
		day.Label += " (Holiday)"
	case tradecal.Weekend:
		day.Label = "_" + day.Label + "_"
	case tradecal.Active:
		switch r.ProfitValue().Sign() {
		case 1:
			day.Profit = "▲ " + r.Profit
		case -1:
			day.Profit = "▼ " + r.Profit
		}
	}
	return day
}

// NewMonth builds the view of a month.
func NewMonth(cal *tradecal.Calendar, s *tradecal.Store, stats tradecal.MonthlyStats, currency string) Month {
	m := Month{Name: stats.Month.String(), Currency: currency, Stats: stats}
	for d := range cal.Month(stats.Month).Days() {
		m.Days = append(m.Days, NewDay(cal, d, s.Get(d)))
	}
	return m
}

// NewCalendar builds the view of the months in 'stats', in that order.
func NewCalendar(cal *tradecal.Calendar, s *tradecal.Store, stats []tradecal.MonthlyStats, currency string) *Calendar {
	c := &Calendar{Year: cal.Year(), Currency: currency}
	for _, st := range stats {
		c.Months = append(c.Months, NewMonth(cal, s, st, currency))
	}
	year := date.NewYearRange(cal.Year())
	for d, r := range s.Entries() {
		if !year.Contains(d) {
			c.Others = append(c.Others, OtherRecord{Date: d, Record: r})
		}
	}
	return c
}

// MonthStats is a row of the statistics table.
type MonthStats struct {
	Name          string
	Profit        string
	ZeroTradeDays int
	ProfitDays    int
	LossDays      int
}

// Stats is the view of the statistics of a year.
type Stats struct {
	Year   int
	Months []MonthStats
	Total  MonthStats
}

// NewStats builds the statistics table, with a total row.
func NewStats(year int, stats []tradecal.MonthlyStats, currency string) *Stats {
	v := &Stats{Year: year}
	total := tradecal.M(decimal.Zero, currency)
	for _, st := range stats {
		v.Months = append(v.Months, MonthStats{
			Name:          st.Month.String(),
			Profit:        st.Profit(currency).String(),
			ZeroTradeDays: st.ZeroTradeDays,
			ProfitDays:    st.ProfitDays,
			LossDays:      st.LossDays,
		})
		total = total.Add(st.TotalProfit)
		v.Total.ZeroTradeDays += st.ZeroTradeDays
		v.Total.ProfitDays += st.ProfitDays
		v.Total.LossDays += st.LossDays
	}
	v.Total.Name = "Total"
	v.Total.Profit = total.String()
	return v
}

// Holiday is a row of the holidays table.
type Holiday struct {
	Date    date.Date
	Weekday time.Weekday
	Name    string
}

// Holidays is the view of the market holidays of a year.
type Holidays struct {
	Year     int
	Holidays []Holiday
}

// NewHolidays builds the holidays table.
func NewHolidays(cal *tradecal.Calendar) *Holidays {
	v := &Holidays{Year: cal.Year()}
	for _, h := range cal.Holidays() {
		v.Holidays = append(v.Holidays, Holiday{Date: h.Date, Weekday: h.Date.Weekday(), Name: h.Name})
	}
	return v
}
