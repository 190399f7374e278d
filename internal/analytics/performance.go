package analytics

// buildPerformanceMetrics computes normalized performance rates. Damage,
// gold and CS are divided by total game minutes across the whole batch, not
// averaged per match. Vision score is a plain per-game average; keeping that
// asymmetry is part of the numeric contract.
func buildPerformanceMetrics(matches []Match) PerformanceMetrics {
	var damage, gold, cs, vision, durationSeconds int

	for _, m := range matches {
		damage += m.Participant.TotalDamageDealt
		gold += m.Participant.GoldEarned
		cs += m.Participant.TotalMinionsKilled
		vision += m.Participant.VisionScore
		durationSeconds += m.GameDuration
	}

	metrics := PerformanceMetrics{
		AvgVisionScore: float64(vision) / float64(len(matches)),
	}

	totalMinutes := float64(durationSeconds) / 60
	if totalMinutes > 0 {
		metrics.AvgDamagePerMinute = float64(damage) / totalMinutes
		metrics.AvgGoldPerMinute = float64(gold) / totalMinutes
		metrics.AvgCSPerMinute = float64(cs) / totalMinutes
	}

	return metrics
}
