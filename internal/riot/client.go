package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"recap/internal/analytics"
	"recap/internal/logging"
)

// Ranked queue ids. Everything else is filtered out before aggregation.
const (
	QueueSoloDuo = 420
	QueueFlex    = 440

	matchPageSize = 100
)

var queueNames = map[int]string{
	QueueSoloDuo: "RANKED_SOLO_5x5",
	QueueFlex:    "RANKED_FLEX_SR",
}

// routingHosts maps a platform (na1, euw1, ...) to its match-v5/account-v1
// regional routing cluster.
var routingHosts = map[string]string{
	"na1": "americas", "br1": "americas", "la1": "americas", "la2": "americas",
	"euw1": "europe", "eun1": "europe", "tr1": "europe", "ru": "europe",
	"kr": "asia", "jp1": "asia",
	"oc1": "sea", "ph2": "sea", "sg2": "sea", "th2": "sea", "tw2": "sea", "vn2": "sea",
}

// Routing returns the regional routing value for a platform id, defaulting
// to americas for unrecognized platforms.
func Routing(platform string) string {
	if host, ok := routingHosts[platform]; ok {
		return host
	}
	return "americas"
}

// Client talks to the Riot API. Requests share a rate limiter sized for the
// standard development key budget (100 requests per 2 minutes).
type Client struct {
	http    *http.Client
	apiKey  string
	limiter *rate.Limiter
}

// NewClient builds a Riot API client.
func NewClient(apiKey string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Every(1250*time.Millisecond), 10),
	}
}

func (c *Client) get(ctx context.Context, rawURL string, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("riot api returned %s for %s", resp.Status, rawURL)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// AccountByRiotID resolves a Riot ID (game name + tag line) to a PUUID.
func (c *Client) AccountByRiotID(ctx context.Context, routing, gameName, tagLine string) (*Account, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		routing, url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := c.get(ctx, u, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// MatchIDs returns one page of ranked match ids for a player inside the
// given time window.
func (c *Client) MatchIDs(ctx context.Context, routing, puuid string, startTs, endTs int64, start int) ([]string, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?type=ranked&startTime=%d&endTime=%d&count=%d&start=%d",
		routing, puuid, startTs, endTs, matchPageSize, start)

	var ids []string
	if err := c.get(ctx, u, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Match fetches one match detail by id.
func (c *Client) Match(ctx context.Context, routing, matchID string) (*MatchResponse, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", routing, matchID)

	var match MatchResponse
	if err := c.get(ctx, u, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// Masteries fetches all champion mastery records for a player.
func (c *Client) Masteries(ctx context.Context, platform, puuid string) ([]analytics.Mastery, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/champion-mastery/v4/champion-masteries/by-puuid/%s",
		platform, puuid)

	var entries []MasteryEntry
	if err := c.get(ctx, u, &entries); err != nil {
		return nil, err
	}

	masteries := make([]analytics.Mastery, 0, len(entries))
	for _, e := range entries {
		masteries = append(masteries, analytics.Mastery{
			ChampionID: e.ChampionID,
			Level:      e.ChampionLevel,
			Points:     e.ChampionPoints,
		})
	}
	return masteries, nil
}

// RankedMatches pages through a player's match history for the window and
// returns the tracked player's view of every ranked game, deduplicated by
// match id. This is where the upstream contract for the aggregation engine
// is enforced: only ranked queues, one participant view, no duplicates.
func (c *Client) RankedMatches(ctx context.Context, routing, puuid string, from, to time.Time) ([]analytics.Match, error) {
	logger := logging.Logger()

	seen := make(map[string]bool)
	var matches []analytics.Match

	for start := 0; ; start += matchPageSize {
		ids, err := c.MatchIDs(ctx, routing, puuid, from.Unix(), to.Unix(), start)
		if err != nil {
			return nil, fmt.Errorf("list match ids (start=%d): %w", start, err)
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true

			detail, err := c.Match(ctx, routing, id)
			if err != nil {
				return nil, fmt.Errorf("fetch match %s: %w", id, err)
			}

			m, ok := ExtractMatch(detail, puuid)
			if !ok {
				logger.Debugf("skipping match %s: not ranked or player missing", id)
				continue
			}
			matches = append(matches, m)
		}

		if len(ids) < matchPageSize {
			break
		}
	}

	logger.Infof("fetched %d ranked matches for window %s..%s",
		len(matches), from.Format("2006-01-02"), to.Format("2006-01-02"))

	return matches, nil
}

// ExtractMatch reduces a full match payload to the tracked player's view.
// Returns false for non-ranked queues or when the player is not in the
// match (remakes, transfer edge cases).
func ExtractMatch(resp *MatchResponse, puuid string) (analytics.Match, bool) {
	queueType, ranked := queueNames[resp.Info.QueueID]
	if !ranked {
		return analytics.Match{}, false
	}

	for _, p := range resp.Info.Participants {
		if p.PUUID != puuid {
			continue
		}
		return analytics.Match{
			MatchID:      resp.Metadata.MatchID,
			GameCreation: resp.Info.GameCreation,
			GameDuration: resp.Info.GameDuration,
			QueueType:    queueType,
			Participant: analytics.Participant{
				ChampionID:         p.ChampionID,
				ChampionName:       p.ChampionName,
				Kills:              p.Kills,
				Deaths:             p.Deaths,
				Assists:            p.Assists,
				Win:                p.Win,
				VisionScore:        p.VisionScore,
				TotalDamageDealt:   p.TotalDamageDealt,
				GoldEarned:         p.GoldEarned,
				TotalMinionsKilled: p.TotalMinionsKilled,
				Role:               p.TeamPosition,
			},
		}, true
	}

	return analytics.Match{}, false
}
