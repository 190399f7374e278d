package analytics

import "sort"

// buildChampionStats groups matches by champion id, computes per-champion
// totals and rates, and left-joins against the mastery lookup. Output is
// sorted descending by games played; groups with equal games keep the order
// in which their champion was first encountered.
func buildChampionStats(matches []Match, masteries []Mastery) []ChampionStats {
	masteryByChampion := make(map[int]Mastery, len(masteries))
	for _, ms := range masteries {
		masteryByChampion[ms.ChampionID] = ms
	}

	// Group by champion id, remembering first-seen order. Grouping is by id,
	// never by display name.
	groups := make(map[int][]Match)
	var order []int
	for _, m := range matches {
		id := m.Participant.ChampionID
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], m)
	}

	stats := make([]ChampionStats, 0, len(order))

	for _, id := range order {
		group := groups[id]

		var wins, kills, deaths, assists, durationSeconds int
		for _, m := range group {
			if m.Participant.Win {
				wins++
			}
			kills += m.Participant.Kills
			deaths += m.Participant.Deaths
			assists += m.Participant.Assists
			durationSeconds += m.GameDuration
		}

		games := len(group)

		cs := ChampionStats{
			ChampionID:         id,
			ChampionName:       group[0].Participant.ChampionName,
			Games:              games,
			Wins:               wins,
			Losses:             games - wins,
			WinRate:            float64(wins) / float64(games) * 100,
			AvgKDA:             KDA(kills, deaths, assists),
			AvgKills:           float64(kills) / float64(games),
			AvgDeaths:          float64(deaths) / float64(games),
			AvgAssists:         float64(assists) / float64(games),
			TotalPlaytimeHours: float64(durationSeconds) / 3600,
		}

		// Mastery join is optional: missing record means unknown, not zero.
		if ms, ok := masteryByChampion[id]; ok {
			level := ms.Level
			points := ms.Points
			cs.MasteryLevel = &level
			cs.MasteryPoints = &points
		}

		stats = append(stats, cs)
	}

	// Stable keeps first-seen order among equal game counts.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Games > stats[j].Games
	})

	return stats
}
