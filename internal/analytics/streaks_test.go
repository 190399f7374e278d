package analytics

import (
	"testing"
	"time"
)

func TestDetectStreaks(t *testing.T) {
	base := time.Date(2024, 8, 1, 18, 0, 0, 0, time.UTC)

	// Chronological results: W, W, L, W.
	matches := []Match{
		testMatch("NA1_1", base, true),
		testMatch("NA1_2", base.Add(1*time.Hour), true),
		testMatch("NA1_3", base.Add(2*time.Hour), false),
		testMatch("NA1_4", base.Add(3*time.Hour), true),
	}

	got := detectStreaks(matches)

	if got.LongestWinStreak != 2 {
		t.Errorf("LongestWinStreak = %d, want 2", got.LongestWinStreak)
	}
	if got.LongestLossStreak != 1 {
		t.Errorf("LongestLossStreak = %d, want 1", got.LongestLossStreak)
	}
	want := Streak{Type: StreakWin, Count: 1}
	if got.CurrentStreak != want {
		t.Errorf("CurrentStreak = %+v, want %+v", got.CurrentStreak, want)
	}
}

func TestDetectStreaksSortsDefensively(t *testing.T) {
	base := time.Date(2024, 8, 1, 18, 0, 0, 0, time.UTC)

	// Same W, W, L, W chronology delivered out of order.
	matches := []Match{
		testMatch("NA1_4", base.Add(3*time.Hour), true),
		testMatch("NA1_2", base.Add(1*time.Hour), true),
		testMatch("NA1_1", base, true),
		testMatch("NA1_3", base.Add(2*time.Hour), false),
	}

	got := detectStreaks(matches)

	if got.LongestWinStreak != 2 || got.LongestLossStreak != 1 {
		t.Errorf("streaks = %d/%d, want 2/1 regardless of input order",
			got.LongestWinStreak, got.LongestLossStreak)
	}
	if got.CurrentStreak.Type != StreakWin || got.CurrentStreak.Count != 1 {
		t.Errorf("CurrentStreak = %+v, want win/1", got.CurrentStreak)
	}

	// Input slice must be left untouched.
	if matches[0].MatchID != "NA1_4" {
		t.Error("detectStreaks mutated the caller's slice order")
	}
}

func TestDetectStreaksTrailingLosses(t *testing.T) {
	base := time.Date(2024, 8, 1, 18, 0, 0, 0, time.UTC)
	matches := []Match{
		testMatch("NA1_1", base, true),
		testMatch("NA1_2", base.Add(1*time.Hour), false),
		testMatch("NA1_3", base.Add(2*time.Hour), false),
		testMatch("NA1_4", base.Add(3*time.Hour), false),
	}

	got := detectStreaks(matches)

	if got.LongestLossStreak != 3 {
		t.Errorf("LongestLossStreak = %d, want 3", got.LongestLossStreak)
	}
	want := Streak{Type: StreakLoss, Count: 3}
	if got.CurrentStreak != want {
		t.Errorf("CurrentStreak = %+v, want %+v", got.CurrentStreak, want)
	}
}
