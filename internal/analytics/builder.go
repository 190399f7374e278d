package analytics

// Aggregate computes the full statistical profile for a batch of ranked
// matches plus the player's champion mastery records. This is the main
// orchestrator; the reducers it calls are independent of one another and
// each reads only the input slices.
//
// The function is pure: no I/O, no shared state, safe for concurrent calls
// with different inputs.
func Aggregate(matches []Match, masteries []Mastery) PlayerAnalytics {
	// Single explicit branch for the degenerate case instead of zero guards
	// scattered across every reducer.
	if len(matches) == 0 {
		return emptyAnalytics()
	}

	return PlayerAnalytics{
		Overview:           buildOverview(matches),
		ChampionStats:      buildChampionStats(matches, masteries),
		TemporalTrends:     buildTemporalTrends(matches),
		PerformanceMetrics: buildPerformanceMetrics(matches),
		Streaks:            detectStreaks(matches),
		RoleDistribution:   buildRoleDistribution(matches),
		HighlightMatches:   scanHighlights(matches),
	}
}

// emptyAnalytics is the defined all-zero profile for zero input matches.
func emptyAnalytics() PlayerAnalytics {
	return PlayerAnalytics{
		ChampionStats: []ChampionStats{},
		TemporalTrends: TemporalTrends{
			MonthlyWinRate:    []MonthlyStats{},
			WeeklyPerformance: []WeeklyStats{},
		},
		Streaks: Streaks{
			CurrentStreak: Streak{Type: StreakWin, Count: 0},
		},
		RoleDistribution: map[string]int{},
	}
}
