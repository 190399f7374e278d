package analytics

// buildOverview aggregates season-wide totals, rates and playtime.
func buildOverview(matches []Match) Overview {
	var wins, kills, deaths, assists, durationSeconds int

	for _, m := range matches {
		if m.Participant.Win {
			wins++
		}
		kills += m.Participant.Kills
		deaths += m.Participant.Deaths
		assists += m.Participant.Assists
		durationSeconds += m.GameDuration
	}

	games := len(matches)

	return Overview{
		TotalGames:         games,
		TotalWins:          wins,
		TotalLosses:        games - wins,
		WinRate:            float64(wins) / float64(games) * 100,
		AvgKDA:             KDA(kills, deaths, assists),
		AvgKills:           float64(kills) / float64(games),
		AvgDeaths:          float64(deaths) / float64(games),
		AvgAssists:         float64(assists) / float64(games),
		TotalPlaytimeHours: float64(durationSeconds) / 3600,
	}
}
