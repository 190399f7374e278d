package analytics

import (
	"testing"
	"time"
)

func TestBuildTemporalTrendsSignificantMonths(t *testing.T) {
	jan := time.Date(2024, 1, 3, 20, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 20, 0, 0, 0, time.UTC)

	var matches []Match
	// January: 6 games, 4 wins. Qualifies at the 5-game threshold.
	for i := 0; i < 6; i++ {
		matches = append(matches, testMatch("JAN_"+string(rune('0'+i)), jan.AddDate(0, 0, i), i < 4))
	}
	// February: 3 games, 1 win. Too few to qualify.
	for i := 0; i < 3; i++ {
		matches = append(matches, testMatch("FEB_"+string(rune('0'+i)), feb.AddDate(0, 0, i), i == 0))
	}

	got := buildTemporalTrends(matches)

	if len(got.MonthlyWinRate) != 2 {
		t.Fatalf("got %d month buckets, want 2", len(got.MonthlyWinRate))
	}
	if got.MonthlyWinRate[0].Month != "2024-01" || got.MonthlyWinRate[1].Month != "2024-02" {
		t.Errorf("months = [%s, %s], want ascending [2024-01, 2024-02]",
			got.MonthlyWinRate[0].Month, got.MonthlyWinRate[1].Month)
	}

	janStats := got.MonthlyWinRate[0]
	if janStats.Games != 6 || janStats.Wins != 4 || janStats.Losses != 2 {
		t.Errorf("january = %+v, want 6 games, 4 wins, 2 losses", janStats)
	}

	// February is the worse month by win rate but has too few games, so
	// January takes both slots.
	if got.BestMonth != "2024-01" {
		t.Errorf("BestMonth = %q, want 2024-01", got.BestMonth)
	}
	if got.WorstMonth != "2024-01" {
		t.Errorf("WorstMonth = %q, want 2024-01 (february does not qualify)", got.WorstMonth)
	}
}

func TestBuildTemporalTrendsNoSignificantMonth(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	matches := []Match{
		testMatch("NA1_1", base, true),
		testMatch("NA1_2", base.AddDate(0, 1, 0), false),
	}

	got := buildTemporalTrends(matches)

	if got.BestMonth != "" || got.WorstMonth != "" {
		t.Errorf("best/worst = %q/%q, want empty strings with no qualifying month",
			got.BestMonth, got.WorstMonth)
	}
}

func TestBuildTemporalTrendsKeysAreUTC(t *testing.T) {
	// 2024-01-31 23:30 UTC is already February in UTC+1 locales. The month
	// key must not depend on the host timezone.
	m := testMatch("NA1_boundary", time.Date(2024, 1, 31, 23, 30, 0, 0, time.UTC), true)

	got := buildTemporalTrends([]Match{m})

	if len(got.MonthlyWinRate) != 1 || got.MonthlyWinRate[0].Month != "2024-01" {
		t.Errorf("month buckets = %+v, want a single 2024-01 bucket", got.MonthlyWinRate)
	}
}

func TestBuildTemporalTrendsWeekKeys(t *testing.T) {
	tests := []struct {
		name   string
		played time.Time
		want   string
	}{
		{"first day of year", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), "2024-W01"},
		{"day seven", time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC), "2024-W01"},
		{"day eight", time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC), "2024-W02"},
		{"late december", time.Date(2024, 12, 30, 10, 0, 0, 0, time.UTC), "2024-W53"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildTemporalTrends([]Match{testMatch("NA1_wk", tt.played, true)})
			if len(got.WeeklyPerformance) != 1 {
				t.Fatalf("got %d week buckets, want 1", len(got.WeeklyPerformance))
			}
			if got.WeeklyPerformance[0].Week != tt.want {
				t.Errorf("week key = %q, want %q", got.WeeklyPerformance[0].Week, tt.want)
			}
		})
	}
}
