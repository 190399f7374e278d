package analytics

import (
	"testing"
	"time"
)

func TestScanHighlightsTieBreak(t *testing.T) {
	base := time.Date(2024, 7, 1, 19, 0, 0, 0, time.UTC)

	matches := []Match{
		testMatch("NA1_first", base, true),
		testMatch("NA1_second", base.Add(time.Hour), true),
	}
	// Identical kill counts: the earlier match must keep the highlight.
	matches[0].Participant.Kills = 14
	matches[1].Participant.Kills = 14

	got := scanHighlights(matches)

	if got.MostKills == nil {
		t.Fatal("MostKills is nil")
	}
	if got.MostKills.MatchID != "NA1_first" {
		t.Errorf("MostKills = %s, want NA1_first (earlier match wins ties)", got.MostKills.MatchID)
	}
}

func TestScanHighlightsPicksMaxima(t *testing.T) {
	base := time.Date(2024, 7, 1, 19, 0, 0, 0, time.UTC)

	matches := []Match{
		testMatch("NA1_1", base, true),
		testMatch("NA1_2", base.Add(time.Hour), false),
		testMatch("NA1_3", base.Add(2*time.Hour), true),
	}
	matches[0].Participant.Kills = 3
	matches[0].Participant.Deaths = 0
	matches[0].Participant.Assists = 12 // KDA 15, deathless
	matches[1].Participant.Kills = 18
	matches[1].Participant.Deaths = 9
	matches[1].GameDuration = 3600
	matches[2].Participant.TotalDamageDealt = 61000

	got := scanHighlights(matches)

	if got.BestKDA == nil || got.BestKDA.MatchID != "NA1_1" {
		t.Errorf("BestKDA = %v, want NA1_1", got.BestKDA)
	}
	if got.MostKills == nil || got.MostKills.MatchID != "NA1_2" {
		t.Errorf("MostKills = %v, want NA1_2", got.MostKills)
	}
	if got.LongestGame == nil || got.LongestGame.MatchID != "NA1_2" {
		t.Errorf("LongestGame = %v, want NA1_2", got.LongestGame)
	}
	if got.HighestDamage == nil || got.HighestDamage.MatchID != "NA1_3" {
		t.Errorf("HighestDamage = %v, want NA1_3", got.HighestDamage)
	}
}

func TestScanHighlightsAliasesInput(t *testing.T) {
	base := time.Date(2024, 7, 1, 19, 0, 0, 0, time.UTC)
	matches := []Match{testMatch("NA1_only", base, true)}

	got := scanHighlights(matches)

	if got.BestKDA != &matches[0] {
		t.Error("BestKDA should point at the input slice element, not a copy")
	}
}

func TestScanHighlightsSingleZeroMatch(t *testing.T) {
	// A 0/0/0 match still wins every highlight: the seed is below any valid score.
	m := testMatch("NA1_afk", time.Date(2024, 7, 1, 19, 0, 0, 0, time.UTC), false)
	m.Participant.Kills = 0
	m.Participant.Deaths = 0
	m.Participant.Assists = 0
	m.Participant.TotalDamageDealt = 0
	m.GameDuration = 0

	got := scanHighlights([]Match{m})

	if got.BestKDA == nil || got.MostKills == nil || got.LongestGame == nil || got.HighestDamage == nil {
		t.Error("all four highlights should be set with one input match")
	}
}
