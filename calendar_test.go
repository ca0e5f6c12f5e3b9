package tradecal

import (
	"testing"
	"time"

	"github.com/etnz/tradecal/date"
)

func TestClassify(t *testing.T) {
	cal := DefaultCalendar()
	today := date.New(2025, time.July, 10)

	testCases := []struct {
		name string
		day  date.Date
		want DayStatus
	}{
		{"new year is a holiday", date.New(2025, time.January, 1), Holiday},
		{"saturday", date.New(2025, time.January, 4), Weekend},
		{"sunday", date.New(2025, time.January, 5), Weekend},
		{"regular thursday", date.New(2025, time.January, 2), Active},
		{"today is active", today, Active},
		{"tomorrow is future", today.Add(1), Future},
		{"future holiday is future", date.New(2025, time.December, 25), Future},
		{"future weekend is future", date.New(2025, time.July, 12), Future},
		{"independence day", date.New(2025, time.July, 4), Holiday},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.Classify(tc.day, today); got != tc.want {
				t.Errorf("Classify(%v) = %v, want %v", tc.day, got, tc.want)
			}
		})
	}
}

func TestLabelIgnoresFuture(t *testing.T) {
	cal := DefaultCalendar()
	if got := cal.Label(date.New(2025, time.December, 25)); got != Holiday {
		t.Errorf("Label(12/25/2025) = %v, want %v", got, Holiday)
	}
	if got := cal.Label(date.New(2025, time.December, 27)); got != Weekend {
		t.Errorf("Label(12/27/2025) = %v, want %v", got, Weekend)
	}
	if !cal.IsEditable(date.New(2025, time.December, 26)) {
		t.Errorf("IsEditable(12/26/2025) = false, want true")
	}
	if cal.IsEditable(date.New(2025, time.December, 25)) {
		t.Errorf("IsEditable(12/25/2025) = true, want false")
	}
}

func TestHolidays2025(t *testing.T) {
	cal := DefaultCalendar()
	want := []string{
		"1/1/2025", "1/9/2025", "1/20/2025", "2/17/2025", "4/18/2025", "5/26/2025",
		"6/19/2025", "7/4/2025", "9/1/2025", "11/27/2025", "12/25/2025",
	}
	got := cal.Holidays()
	if len(got) != len(want) {
		t.Fatalf("len(Holidays()) = %d, want %d", len(got), len(want))
	}
	for i, h := range got {
		if h.Date.String() != want[i] {
			t.Errorf("Holidays()[%d] = %v, want %v", i, h.Date, want[i])
		}
		if h.Date.IsWeekend() {
			t.Errorf("holiday %v falls on a weekend", h.Date)
		}
	}
	if name, ok := cal.HolidayName(date.New(2025, time.April, 18)); !ok || name != "Good Friday" {
		t.Errorf("HolidayName(4/18/2025) = %q, %v, want %q, true", name, ok, "Good Friday")
	}
}

func TestNewCalendarIgnoresOtherYears(t *testing.T) {
	cal := NewCalendar(2024, Holidays2025)
	if len(cal.Holidays()) != 0 {
		t.Errorf("Holidays() = %v, want none", cal.Holidays())
	}
	if cal.Year() != 2024 {
		t.Errorf("Year() = %d, want 2024", cal.Year())
	}
}

func TestNewCalendarSortsAndDedupes(t *testing.T) {
	cal := NewCalendar(2025, []MarketHoliday{
		{date.New(2025, time.December, 25), "Christmas Day"},
		{date.New(2025, time.January, 1), "New Year's Day"},
		{date.New(2025, time.December, 25), "Christmas again"},
	})
	got := cal.Holidays()
	if len(got) != 2 {
		t.Fatalf("len(Holidays()) = %d, want 2", len(got))
	}
	if got[0].Date != date.New(2025, time.January, 1) || got[1].Name != "Christmas Day" {
		t.Errorf("Holidays() = %v, want New Year then Christmas Day", got)
	}
}
