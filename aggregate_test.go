package tradecal

import (
	"testing"
	"time"

	"github.com/etnz/tradecal/date"
	"github.com/shopspring/decimal"
)

func checkStats(t *testing.T, got MonthlyStats, total string, zero, profit, loss int) {
	t.Helper()
	if !got.TotalProfit.Equal(decimal.RequireFromString(total)) {
		t.Errorf("TotalProfit = %v, want %v", got.TotalProfit, total)
	}
	if got.ZeroTradeDays != zero {
		t.Errorf("ZeroTradeDays = %d, want %d", got.ZeroTradeDays, zero)
	}
	if got.ProfitDays != profit {
		t.Errorf("ProfitDays = %d, want %d", got.ProfitDays, profit)
	}
	if got.LossDays != loss {
		t.Errorf("LossDays = %d, want %d", got.LossDays, loss)
	}
}

func TestAggregate(t *testing.T) {
	// August 2025 starts on a Friday followed by a weekend.
	cal := DefaultCalendar()
	s := NewStore()
	s.Set(date.New(2025, time.August, 1), Profit, "100")
	s.Set(date.New(2025, time.August, 1), Trades, "0")
	s.Set(date.New(2025, time.August, 2), Profit, "1000") // saturday, ignored
	s.Set(date.New(2025, time.August, 4), Profit, "-50")
	s.Set(date.New(2025, time.August, 4), Trades, "5")
	s.Set(date.New(2025, time.August, 5), Profit, "70") // future, ignored

	got := cal.Aggregate(s, time.August, date.New(2025, time.August, 4))

	if got.Month != time.August {
		t.Errorf("Month = %v, want August", got.Month)
	}
	checkStats(t, got, "50", 1, 1, 1)
}

func TestAggregateHolidayExclusion(t *testing.T) {
	cal := DefaultCalendar()
	s := NewStore()
	s.Set(date.New(2025, time.July, 4), Profit, "500")
	s.Set(date.New(2025, time.July, 4), Trades, "3")

	got := cal.Aggregate(s, time.July, date.New(2025, time.December, 31))

	// 23 weekdays in July 2025, minus Independence Day, all without trades.
	checkStats(t, got, "0", 22, 0, 0)
}

func TestAggregateUnparseable(t *testing.T) {
	cal := DefaultCalendar()
	today := date.New(2025, time.January, 3)

	testCases := []struct {
		name   string
		record Record
		zero   int
	}{
		{"no trades", Record{Profit: "abc"}, 2},
		{"zero trades", Record{Profit: "abc", Trades: "0"}, 2},
		{"with trades", Record{Profit: "abc", Trades: "2"}, 1},
		{"unparseable trades", Record{Profit: "abc", Trades: "many"}, 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore()
			s.Put(date.New(2025, time.January, 2), tc.record)
			// 1/1 is a holiday, 1/2 and 1/3 are active.
			got := cal.Aggregate(s, time.January, today)
			checkStats(t, got, "0", tc.zero, 0, 0)
		})
	}
}

func TestAggregateProfitWithTrades(t *testing.T) {
	// a day with trades and exactly zero profit is in no bucket.
	cal := DefaultCalendar()
	s := NewStore()
	s.Put(date.New(2025, time.January, 2), Record{Profit: "0", Trades: "4"})
	got := cal.Aggregate(s, time.January, date.New(2025, time.January, 2))
	checkStats(t, got, "0", 0, 0, 0)
}

func TestAggregateFutureMonth(t *testing.T) {
	cal := DefaultCalendar()
	s := NewStore()
	s.Set(date.New(2025, time.March, 3), Profit, "10")
	got := cal.Aggregate(s, time.March, date.New(2025, time.February, 28))
	checkStats(t, got, "0", 0, 0, 0)
}

func TestAggregateLeapDay(t *testing.T) {
	cal := NewCalendar(2024, nil)
	s := NewStore()
	s.Put(date.New(2024, time.February, 29), Record{Profit: "7.25", Trades: "1"})
	got := cal.Aggregate(s, time.February, date.New(2024, time.December, 31))
	// 21 weekdays in February 2024, one of which traded.
	checkStats(t, got, "7.25", 20, 1, 0)
}

func TestAggregateYear(t *testing.T) {
	cal := DefaultCalendar()
	s := NewStore()
	s.Set(date.New(2025, time.January, 2), Profit, "10.10")
	s.Set(date.New(2025, time.March, 3), Profit, "-0.10")
	stats := cal.AggregateYear(s, date.New(2025, time.December, 31))
	if len(stats) != 12 {
		t.Fatalf("len(AggregateYear()) = %d, want 12", len(stats))
	}
	for i, st := range stats {
		if st.Month != time.Month(i+1) {
			t.Errorf("AggregateYear()[%d].Month = %v, want %v", i, st.Month, time.Month(i+1))
		}
	}
	if !stats[0].TotalProfit.Equal(decimal.RequireFromString("10.1")) {
		t.Errorf("January TotalProfit = %v, want 10.1", stats[0].TotalProfit)
	}
	if stats[2].LossDays != 1 {
		t.Errorf("March LossDays = %d, want 1", stats[2].LossDays)
	}
}

func TestMonthlyStatsSummary(t *testing.T) {
	st := MonthlyStats{
		Month:         time.January,
		TotalProfit:   decimal.RequireFromString("50"),
		ZeroTradeDays: 1,
		ProfitDays:    1,
		LossDays:      1,
	}
	want := "Total Profit: 50.00 CAD, No Trade: 1, Profit Days: 1, Loss Days: 1"
	if got := st.Summary("CAD"); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
