package recap

import (
	"fmt"
	"strings"
	"time"

	"recap/internal/analytics"
	"recap/internal/insights"
)

// Insight source labels recorded on the recap.
const (
	InsightsFromModel = "model"
	InsightsFromLocal = "local"
)

// Request identifies whose recap to build and for which year. Force
// bypasses the cache read so the recap is rebuilt from fresh data; the
// rebuilt recap still overwrites the cache and archive.
type Request struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Platform string `json:"platform"` // na1, euw1, ...
	Year     int    `json:"year"`
	Force    bool   `json:"force,omitempty"`
}

// Normalize validates the request, defaulting platform to na1 and year to
// the current UTC year.
func (r *Request) Normalize(now time.Time) error {
	r.GameName = strings.TrimSpace(r.GameName)
	r.TagLine = strings.TrimSpace(strings.TrimPrefix(r.TagLine, "#"))

	if r.GameName == "" {
		return fmt.Errorf("gameName is required")
	}
	if r.TagLine == "" {
		return fmt.Errorf("tagLine is required")
	}

	if r.Platform == "" {
		r.Platform = "na1"
	}
	r.Platform = strings.ToLower(r.Platform)

	if r.Year == 0 {
		r.Year = now.UTC().Year()
	}
	// Match-v5 history does not reach further back than 2021.
	if r.Year < 2021 || r.Year > now.UTC().Year() {
		return fmt.Errorf("year %d out of range", r.Year)
	}

	return nil
}

// Player identifies the recap's subject.
type Player struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Platform string `json:"platform"`
	PUUID    string `json:"puuid"`
}

// Recap is the finished year-in-review payload: the aggregated profile plus
// coaching text. This is the value that gets cached, archived and rendered.
type Recap struct {
	Player         Player                    `json:"player"`
	Year           int                       `json:"year"`
	Analytics      analytics.PlayerAnalytics `json:"analytics"`
	Insights       insights.Insights         `json:"insights"`
	InsightsSource string                    `json:"insightsSource"`
	GeneratedAt    time.Time                 `json:"generatedAt"`
}
