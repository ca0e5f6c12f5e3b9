package tradecal

import (
	"fmt"
	"time"

	"github.com/etnz/tradecal/date"
	"github.com/shopspring/decimal"
)

// MonthlyStats summarizes the active days of a month.
type MonthlyStats struct {
	Month         time.Month
	TotalProfit   decimal.Decimal
	ZeroTradeDays int // active days without any trade
	ProfitDays    int
	LossDays      int
}

// Profit returns the total profit as Money in 'currency'.
func (s MonthlyStats) Profit(currency string) Money { return M(s.TotalProfit, currency) }

// Summary formats the statistics the way they are shown in month headers.
func (s MonthlyStats) Summary(currency string) string {
	return fmt.Sprintf("Total Profit: %s, No Trade: %d, Profit Days: %d, Loss Days: %d",
		s.Profit(currency), s.ZeroTradeDays, s.ProfitDays, s.LossDays)
}

// Aggregate computes the statistics of 'month' from scratch.
//
// Only Active days, as seen on 'today', are considered. A day without a record
// counts as a day with no profit and no trade.
func (c *Calendar) Aggregate(s *Store, month time.Month, today date.Date) MonthlyStats {
	stats := MonthlyStats{Month: month, TotalProfit: decimal.Zero}
	for day := range c.Month(month).Days() {
		if c.Classify(day, today) != Active {
			continue
		}
		r := s.Get(day)
		profit, trades := r.ProfitValue(), r.TradesValue()

		stats.TotalProfit = stats.TotalProfit.Add(profit)
		if trades == 0 {
			stats.ZeroTradeDays++
		}
		switch profit.Sign() {
		case 1:
			stats.ProfitDays++
		case -1:
			stats.LossDays++
		}
	}
	return stats
}

// AggregateYear computes the statistics of every month, January first.
func (c *Calendar) AggregateYear(s *Store, today date.Date) []MonthlyStats {
	stats := make([]MonthlyStats, 0, 12)
	for m := time.January; m <= time.December; m++ {
		stats = append(stats, c.Aggregate(s, m, today))
	}
	return stats
}
