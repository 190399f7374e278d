package analytics

// runningBest tracks the best value seen so far and the match that set it.
type runningBest struct {
	value float64
	match *Match
}

// improve replaces the stored best only on strictly greater values, so the
// earliest match in the input wins ties.
func (r runningBest) improve(value float64, m *Match) runningBest {
	if value > r.value {
		return runningBest{value: value, match: m}
	}
	return r
}

// scanHighlights finds the single best match for each of the four highlight
// metrics in one forward pass. The seeds are below any valid score, so the
// first match always wins the initial comparison. The returned pointers
// alias elements of the input slice.
func scanHighlights(matches []Match) HighlightMatches {
	bestKDA := runningBest{value: -1}
	mostKills := runningBest{value: -1}
	longestGame := runningBest{value: -1}
	highestDamage := runningBest{value: -1}

	for i := range matches {
		m := &matches[i]
		p := m.Participant

		bestKDA = bestKDA.improve(KDA(p.Kills, p.Deaths, p.Assists), m)
		mostKills = mostKills.improve(float64(p.Kills), m)
		longestGame = longestGame.improve(float64(m.GameDuration), m)
		highestDamage = highestDamage.improve(float64(p.TotalDamageDealt), m)
	}

	return HighlightMatches{
		BestKDA:       bestKDA.match,
		MostKills:     mostKills.match,
		LongestGame:   longestGame.match,
		HighestDamage: highestDamage.match,
	}
}
