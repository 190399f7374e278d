package insights

import (
	"context"
	"fmt"

	"recap/internal/analytics"
)

// Win-rate cutoffs for the rule-based generator.
const (
	strongWinRate = 55.0
	weakWinRate   = 45.0

	strongKDA = 3.0
	weakKDA   = 2.0

	lowVisionScore = 20.0
)

// FallbackGenerator builds insights from fixed threshold rules. It is
// deterministic, needs no network, and is the path taken whenever the model
// endpoint is unconfigured or failing.
type FallbackGenerator struct{}

// NewFallbackGenerator returns the rule-based generator.
func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{}
}

// Generate never fails; the error return only satisfies the Generator
// interface.
func (g *FallbackGenerator) Generate(_ context.Context, profile *analytics.PlayerAnalytics) (*Insights, error) {
	ov := profile.Overview

	if ov.TotalGames == 0 {
		return &Insights{
			Summary:      "No ranked games this year. Queue up and next year's recap will have plenty to say.",
			Strengths:    []string{"A clean slate: no tilted losses on record"},
			Improvements: []string{"Play some ranked games to unlock a full recap"},
			FunFact:      "The recap engine processed your season in well under a millisecond.",
		}, nil
	}

	out := &Insights{
		Summary: fmt.Sprintf("You played %d ranked games with a %.1f%% win rate and a %.2f KDA.",
			ov.TotalGames, ov.WinRate, ov.AvgKDA),
	}

	switch {
	case ov.WinRate >= strongWinRate:
		out.Strengths = append(out.Strengths,
			fmt.Sprintf("A %.1f%% win rate puts you firmly on the climbing side of the ladder", ov.WinRate))
	case ov.WinRate <= weakWinRate:
		out.Improvements = append(out.Improvements,
			fmt.Sprintf("A %.1f%% win rate suggests reviewing your champion pool or role focus", ov.WinRate))
	default:
		out.Strengths = append(out.Strengths, "A near-even win rate means you are playing at your rating")
	}

	switch {
	case ov.AvgKDA >= strongKDA:
		out.Strengths = append(out.Strengths,
			fmt.Sprintf("A season KDA of %.2f shows consistently clean play", ov.AvgKDA))
	case ov.AvgKDA < weakKDA:
		out.Improvements = append(out.Improvements,
			fmt.Sprintf("A %.2f KDA leaves room to pick safer fights and respect death timers", ov.AvgKDA))
	}

	if profile.PerformanceMetrics.AvgVisionScore < lowVisionScore {
		out.Improvements = append(out.Improvements,
			fmt.Sprintf("Average vision score of %.1f is low; buying more control wards is free win rate",
				profile.PerformanceMetrics.AvgVisionScore))
	}

	if len(profile.ChampionStats) > 0 {
		top := profile.ChampionStats[0]
		out.Strengths = append(out.Strengths,
			fmt.Sprintf("%s is your workhorse: %d games at %.1f%% win rate", top.ChampionName, top.Games, top.WinRate))
	}

	if profile.Streaks.LongestWinStreak >= 5 {
		out.Strengths = append(out.Strengths,
			fmt.Sprintf("A %d-game win streak was the high point of your season", profile.Streaks.LongestWinStreak))
	}
	if profile.Streaks.LongestLossStreak >= 5 {
		out.Improvements = append(out.Improvements,
			fmt.Sprintf("A %d-game loss streak suggests stepping away from the queue when tilted",
				profile.Streaks.LongestLossStreak))
	}

	if best := profile.TemporalTrends.BestMonth; best != "" {
		out.FunFact = fmt.Sprintf("Your best month was %s; your worst was %s.",
			best, profile.TemporalTrends.WorstMonth)
	} else if hl := profile.HighlightMatches.MostKills; hl != nil {
		out.FunFact = fmt.Sprintf("Your bloodiest game: %d kills on %s.",
			hl.Participant.Kills, hl.Participant.ChampionName)
	} else {
		out.FunFact = fmt.Sprintf("You spent %.1f hours on the Rift this year.", ov.TotalPlaytimeHours)
	}

	// Both lists always carry at least one entry so the recap card renders.
	if len(out.Strengths) == 0 {
		out.Strengths = []string{"Showing up: every game this season is in the books"}
	}
	if len(out.Improvements) == 0 {
		out.Improvements = []string{"Keep doing what you are doing"}
	}

	return out, nil
}
