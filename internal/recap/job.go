package recap

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"recap/internal/logging"
)

// JobPayload is a recap precompute job from the Redis queue. The worker
// builds these recaps ahead of time so the web request is a cache hit.
// Force makes the rebuild bypass the cache read; refresh jobs set it, since
// a refresh that can be satisfied by the cache would never refresh anything.
type JobPayload struct {
	GameName string `json:"game_name"`
	TagLine  string `json:"tag_line"`
	Platform string `json:"platform"`
	Year     int    `json:"year"`
	Force    bool   `json:"force"`
}

// Processor handles recap jobs.
type Processor struct {
	ctx context.Context
	svc *Service
}

// NewProcessor creates a queue job processor over the recap service.
func NewProcessor(ctx context.Context, svc *Service) *Processor {
	return &Processor{ctx: ctx, svc: svc}
}

// Handle processes a single job from the queue.
func (p *Processor) Handle(payload []byte) error {
	logger := logging.Logger()
	startTime := time.Now()

	var job JobPayload
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("unmarshal job payload: %w", err)
	}

	logger.Infof("processing recap job for %s#%s year %d", job.GameName, job.TagLine, job.Year)

	rec, err := p.svc.Build(p.ctx, Request{
		GameName: job.GameName,
		TagLine:  job.TagLine,
		Platform: job.Platform,
		Year:     job.Year,
		Force:    job.Force,
	})
	if err != nil {
		return fmt.Errorf("build recap: %w", err)
	}

	logger.Infof("recap job completed for %s#%s: %d games, insights from %s, in %v",
		rec.Player.GameName, rec.Player.TagLine,
		rec.Analytics.Overview.TotalGames, rec.InsightsSource, time.Since(startTime))

	return nil
}
