package analytics

import "sort"

// detectStreaks scans matches in chronological order and tracks the longest
// win and loss runs plus the run still open at the last match. The input
// slice is copied before sorting; caller-supplied order is not trusted and
// not mutated.
func detectStreaks(matches []Match) Streaks {
	ordered := make([]Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].GameCreation < ordered[j].GameCreation
	})

	var winRun, lossRun, longestWin, longestLoss int

	for _, m := range ordered {
		if m.Participant.Win {
			winRun++
			lossRun = 0
			if winRun > longestWin {
				longestWin = winRun
			}
		} else {
			lossRun++
			winRun = 0
			if lossRun > longestLoss {
				longestLoss = lossRun
			}
		}
	}

	// The trailing run decides the current streak. Zero matches reports a
	// zero-length win streak, a defined degenerate value.
	current := Streak{Type: StreakWin, Count: winRun}
	if winRun == 0 && lossRun > 0 {
		current = Streak{Type: StreakLoss, Count: lossRun}
	}

	return Streaks{
		LongestWinStreak:  longestWin,
		LongestLossStreak: longestLoss,
		CurrentStreak:     current,
	}
}
