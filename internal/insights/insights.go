// Package insights turns an aggregated player profile into coaching text.
// A hosted model generates the text when configured; a local rule-based
// generator produces an equivalent shape with no network access.
package insights

import (
	"context"

	"recap/internal/analytics"
)

// Insights is the coaching payload attached to a recap. Every field is
// derived from the aggregated profile alone.
type Insights struct {
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	FunFact      string   `json:"funFact"`
}

// Generator produces insights for a profile. Implementations must treat the
// profile as read-only.
type Generator interface {
	Generate(ctx context.Context, profile *analytics.PlayerAnalytics) (*Insights, error)
}
