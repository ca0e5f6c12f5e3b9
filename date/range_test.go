package date

import (
	"testing"
	"time"
)

func TestNewMonthRange(t *testing.T) {
	testCases := []struct {
		name  string
		year  int
		month time.Month
		want  Range
	}{
		{
			name:  "A leap year",
			year:  2024,
			month: time.February,
			want:  Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)},
		},
		{
			name:  "A 30 days month",
			year:  2025,
			month: time.April,
			want:  Range{From: New(2025, time.April, 1), To: New(2025, time.April, 30)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewMonthRange(tc.year, tc.month); got != tc.want {
				t.Errorf("NewMonthRange() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRangeDays(t *testing.T) {
	var days []Date
	for d := range NewMonthRange(2025, time.February).Days() {
		days = append(days, d)
	}
	if len(days) != 28 {
		t.Fatalf("len(Days()) = %d, want 28", len(days))
	}
	if days[0] != New(2025, time.February, 1) {
		t.Errorf("Days()[0] = %v, want 2/1/2025", days[0])
	}
	if days[27] != New(2025, time.February, 28) {
		t.Errorf("Days()[27] = %v, want 2/28/2025", days[27])
	}
}

func TestRangeContains(t *testing.T) {
	r := NewYearRange(2025)
	if !r.Contains(New(2025, time.December, 31)) {
		t.Errorf("year range should contain its last day")
	}
	if r.Contains(New(2026, time.January, 1)) {
		t.Errorf("year range should not contain the next year")
	}
}
