package analytics

import (
	"math"
	"testing"
	"time"
)

func TestBuildPerformanceMetrics(t *testing.T) {
	base := time.Date(2024, 9, 1, 17, 0, 0, 0, time.UTC)

	matches := []Match{
		testMatch("NA1_1", base, true),
		testMatch("NA1_2", base.Add(time.Hour), false),
	}
	matches[0].GameDuration = 1800 // 30 min
	matches[1].GameDuration = 2400 // 40 min
	matches[0].Participant.TotalDamageDealt = 21000
	matches[1].Participant.TotalDamageDealt = 28000
	matches[0].Participant.GoldEarned = 12000
	matches[1].Participant.GoldEarned = 16000
	matches[0].Participant.TotalMinionsKilled = 210
	matches[1].Participant.TotalMinionsKilled = 280
	matches[0].Participant.VisionScore = 30
	matches[1].Participant.VisionScore = 10

	got := buildPerformanceMetrics(matches)

	// 70 total minutes across both games.
	if math.Abs(got.AvgDamagePerMinute-49000.0/70) > 1e-9 {
		t.Errorf("AvgDamagePerMinute = %v, want %v", got.AvgDamagePerMinute, 49000.0/70)
	}
	if math.Abs(got.AvgGoldPerMinute-28000.0/70) > 1e-9 {
		t.Errorf("AvgGoldPerMinute = %v, want %v", got.AvgGoldPerMinute, 28000.0/70)
	}
	if math.Abs(got.AvgCSPerMinute-490.0/70) > 1e-9 {
		t.Errorf("AvgCSPerMinute = %v, want %v", got.AvgCSPerMinute, 490.0/70)
	}
}

// Vision score averages per game, not per minute. The asymmetry with the
// other three metrics is intentional; this test pins it so any change is
// deliberate.
func TestVisionScoreIsPerGame(t *testing.T) {
	base := time.Date(2024, 9, 1, 17, 0, 0, 0, time.UTC)

	matches := []Match{
		testMatch("NA1_1", base, true),
		testMatch("NA1_2", base.Add(time.Hour), false),
	}
	matches[0].Participant.VisionScore = 30
	matches[1].Participant.VisionScore = 10
	// Long games: a per-minute reading would be far below 20.
	matches[0].GameDuration = 3600
	matches[1].GameDuration = 3600

	got := buildPerformanceMetrics(matches)

	if got.AvgVisionScore != 20 {
		t.Errorf("AvgVisionScore = %v, want 20 (per game, not per minute)", got.AvgVisionScore)
	}
}
