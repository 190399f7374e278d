package analytics

import (
	"fmt"
	"sort"
	"time"
)

// MinSignificantGames is the minimum games a month needs before it can be
// named best or worst month. Smaller samples are too noisy to rank.
const MinSignificantGames = 5

// bucket accumulates win/loss counts for one calendar period.
type bucket struct {
	games int
	wins  int
}

func record(buckets map[string]*bucket, key string, win bool) {
	b := buckets[key]
	if b == nil {
		b = &bucket{}
		buckets[key] = b
	}
	b.games++
	if win {
		b.wins++
	}
}

// buildTemporalTrends buckets matches into calendar months and week numbers
// and derives the best and worst significant month. All keys are derived in
// UTC regardless of host timezone, so recap boundaries do not shift with
// deployment locale.
func buildTemporalTrends(matches []Match) TemporalTrends {
	months := make(map[string]*bucket)
	weeks := make(map[string]*bucket)

	for _, m := range matches {
		t := time.UnixMilli(m.GameCreation).UTC()

		monthKey := t.Format("2006-01")
		weekKey := fmt.Sprintf("%d-W%02d", t.Year(), (t.YearDay()+6)/7)

		record(months, monthKey, m.Participant.Win)
		record(weeks, weekKey, m.Participant.Win)
	}

	monthly := make([]MonthlyStats, 0, len(months))
	for key, b := range months {
		monthly = append(monthly, MonthlyStats{
			Month:   key,
			Games:   b.games,
			Wins:    b.wins,
			Losses:  b.games - b.wins,
			WinRate: float64(b.wins) / float64(b.games) * 100,
		})
	}
	// Zero-padded keys sort chronologically as strings.
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })

	weekly := make([]WeeklyStats, 0, len(weeks))
	for key, b := range weeks {
		weekly = append(weekly, WeeklyStats{
			Week:    key,
			Games:   b.games,
			Wins:    b.wins,
			Losses:  b.games - b.wins,
			WinRate: float64(b.wins) / float64(b.games) * 100,
		})
	}
	sort.Slice(weekly, func(i, j int) bool { return weekly[i].Week < weekly[j].Week })

	best, worst := rankMonths(monthly)

	return TemporalTrends{
		MonthlyWinRate:    monthly,
		WeeklyPerformance: weekly,
		BestMonth:         best,
		WorstMonth:        worst,
	}
}

// rankMonths picks the highest and lowest win-rate months among those with
// enough games. Stable sort over the chronologically ordered input makes
// win-rate ties deterministic. Returns empty strings when no month qualifies.
func rankMonths(monthly []MonthlyStats) (best, worst string) {
	var significant []MonthlyStats
	for _, ms := range monthly {
		if ms.Games >= MinSignificantGames {
			significant = append(significant, ms)
		}
	}
	if len(significant) == 0 {
		return "", ""
	}

	ranked := make([]MonthlyStats, len(significant))
	copy(ranked, significant)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WinRate > ranked[j].WinRate
	})

	return ranked[0].Month, ranked[len(ranked)-1].Month
}
