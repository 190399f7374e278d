package recap

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"recap/internal/analytics"
	"recap/internal/cache"
	"recap/internal/insights"
	"recap/internal/logging"
	"recap/internal/riot"
)

// MatchSource supplies player identity, ranked matches and masteries. The
// Riot client implements it; tests use fakes.
type MatchSource interface {
	AccountByRiotID(ctx context.Context, routing, gameName, tagLine string) (*riot.Account, error)
	RankedMatches(ctx context.Context, routing, puuid string, from, to time.Time) ([]analytics.Match, error)
	Masteries(ctx context.Context, platform, puuid string) ([]analytics.Mastery, error)
}

// Cache stores serialized recaps with an expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}

// Archive persists serialized recaps without expiry.
type Archive interface {
	Save(ctx context.Context, puuid string, year int, payload []byte) error
}

// ChampionNamer resolves champion ids to display names.
type ChampionNamer interface {
	Name(ctx context.Context, championID int) string
}

// Service builds recaps: fetch, aggregate, generate insights, cache and
// archive. Cache, archive and model are optional; the service degrades to
// fetching fresh, skipping the archive and using local insights.
type Service struct {
	source   MatchSource
	cache    Cache
	archive  Archive
	names    ChampionNamer
	model    insights.Generator
	fallback insights.Generator
	now      func() time.Time
}

// NewService wires a recap service. model may be nil to always use the
// local insight generator; cache and archive may be nil to disable them.
func NewService(source MatchSource, c Cache, archive Archive, names ChampionNamer, model insights.Generator) *Service {
	return &Service{
		source:   source,
		cache:    c,
		archive:  archive,
		names:    names,
		model:    model,
		fallback: insights.NewFallbackGenerator(),
		now:      time.Now,
	}
}

// Build produces the recap for one request, serving from cache when a fresh
// entry exists.
func (s *Service) Build(ctx context.Context, req Request) (*Recap, error) {
	logger := logging.Logger()
	started := s.now()

	if err := req.Normalize(s.now()); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	routing := riot.Routing(req.Platform)
	account, err := s.source.AccountByRiotID(ctx, routing, req.GameName, req.TagLine)
	if err != nil {
		return nil, fmt.Errorf("resolve riot id %s#%s: %w", req.GameName, req.TagLine, err)
	}

	key := cache.Key(account.PUUID, req.Year)
	if s.cache != nil && !req.Force {
		if payload, ok, err := s.cache.Get(ctx, key); err != nil {
			logger.Warnf("cache lookup failed for %s: %v", key, err)
		} else if ok {
			var cached Recap
			if err := json.Unmarshal(payload, &cached); err == nil {
				logger.Infof("served recap %s from cache", key)
				return &cached, nil
			}
			logger.Warnf("discarding corrupt cache entry %s", key)
		}
	}

	from, to := yearWindow(req.Year, s.now().UTC())

	matches, err := s.source.RankedMatches(ctx, routing, account.PUUID, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch ranked matches: %w", err)
	}

	// Mastery records are an optional join; a recap without them is still
	// complete, so a fetch failure only logs.
	masteries, err := s.source.Masteries(ctx, req.Platform, account.PUUID)
	if err != nil {
		logger.Warnf("mastery fetch failed for %s: %v", account.PUUID, err)
		masteries = nil
	}

	s.fillChampionNames(ctx, matches)

	profile := analytics.Aggregate(matches, masteries)

	ins, source := s.generateInsights(ctx, &profile)

	rec := &Recap{
		Player: Player{
			GameName: account.GameName,
			TagLine:  account.TagLine,
			Platform: req.Platform,
			PUUID:    account.PUUID,
		},
		Year:           req.Year,
		Analytics:      profile,
		Insights:       *ins,
		InsightsSource: source,
		GeneratedAt:    s.now().UTC(),
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal recap: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, payload); err != nil {
			logger.Warnf("cache write failed for %s: %v", key, err)
		}
	}
	if s.archive != nil {
		if err := s.archive.Save(ctx, account.PUUID, req.Year, payload); err != nil {
			logger.Warnf("archive write failed for %s/%d: %v", account.PUUID, req.Year, err)
		}
	}

	logger.Infof("built recap for %s#%s year %d: %d matches in %v",
		account.GameName, account.TagLine, req.Year, len(matches), time.Since(started))

	return rec, nil
}

// generateInsights prefers the model and falls back to the local rules on
// any failure. The local generator cannot fail.
func (s *Service) generateInsights(ctx context.Context, profile *analytics.PlayerAnalytics) (*insights.Insights, string) {
	if s.model != nil {
		ins, err := s.model.Generate(ctx, profile)
		if err == nil {
			return ins, InsightsFromModel
		}
		logging.Logger().Warnf("model insights failed, using local generator: %v", err)
	}

	ins, _ := s.fallback.Generate(ctx, profile)
	return ins, InsightsFromLocal
}

// fillChampionNames backfills display names the match payload did not
// carry. Recaps from before champion names were added to match-v5 hit this.
func (s *Service) fillChampionNames(ctx context.Context, matches []analytics.Match) {
	if s.names == nil {
		return
	}
	for i := range matches {
		if matches[i].Participant.ChampionName == "" {
			matches[i].Participant.ChampionName = s.names.Name(ctx, matches[i].Participant.ChampionID)
		}
	}
}

// yearWindow bounds the fetch window to the requested calendar year,
// clipped at now for the current year.
func yearWindow(year int, now time.Time) (from, to time.Time) {
	from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(1, 0, 0)
	if to.After(now) {
		to = now
	}
	return from, to
}
