package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"recap/internal/logging"
)

const ddragonVersionsURL = "https://ddragon.leagueoflegends.com/api/versions.json"

// staticChampionNames covers the most-played champions so recaps stay
// readable when Data Dragon is unreachable.
var staticChampionNames = map[int]string{
	1: "Annie", 11: "Master Yi", 21: "Miss Fortune", 22: "Ashe", 51: "Caitlyn",
	55: "Katarina", 64: "Lee Sin", 67: "Vayne", 81: "Ezreal", 84: "Akali",
	86: "Garen", 89: "Leona", 92: "Riven", 99: "Lux", 103: "Ahri",
	104: "Graves", 119: "Draven", 157: "Yasuo", 200: "Bel'Veth", 202: "Jhin",
	221: "Zeri", 222: "Jinx", 235: "Senna", 238: "Zed", 245: "Ekko",
	246: "Qiyana", 350: "Yuumi", 412: "Thresh", 497: "Rakan", 498: "Xayah",
	517: "Sylas", 526: "Rell", 555: "Pyke", 777: "Yone", 875: "Sett",
	895: "Nilah", 897: "K'Sante", 902: "Milio",
}

// ChampionNames is a read-through cache of champion id to display name,
// populated lazily from Data Dragon with the static table as fallback. It
// lives with the callers of the aggregation engine; the engine itself only
// sees names already attached to match records.
type ChampionNames struct {
	http *http.Client

	mu    sync.RWMutex
	names map[int]string
}

// NewChampionNames builds an empty resolver.
func NewChampionNames() *ChampionNames {
	return &ChampionNames{
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name resolves a champion id. Unknown ids fall back to "Champion {id}"
// rather than erroring; a missing display name never blocks a recap.
func (c *ChampionNames) Name(ctx context.Context, championID int) string {
	c.mu.RLock()
	loaded := c.names != nil
	name := c.names[championID]
	c.mu.RUnlock()

	if !loaded {
		if err := c.load(ctx); err != nil {
			logging.Logger().Warnf("ddragon load failed, using static champion table: %v", err)
			c.mu.Lock()
			if c.names == nil {
				c.names = staticChampionNames
			}
			c.mu.Unlock()
		}
		c.mu.RLock()
		name = c.names[championID]
		c.mu.RUnlock()
	}

	if name == "" {
		if name = staticChampionNames[championID]; name == "" {
			name = fmt.Sprintf("Champion %d", championID)
		}
	}
	return name
}

// load fetches the latest Data Dragon version and its champion index.
func (c *ChampionNames) load(ctx context.Context) error {
	var versions []string
	if err := c.getJSON(ctx, ddragonVersionsURL, &versions); err != nil {
		return fmt.Errorf("fetch versions: %w", err)
	}
	if len(versions) == 0 {
		return fmt.Errorf("empty version list")
	}

	var index struct {
		Data map[string]struct {
			Key  string `json:"key"` // numeric id as a string
			Name string `json:"name"`
		} `json:"data"`
	}
	u := fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/data/en_US/champion.json", versions[0])
	if err := c.getJSON(ctx, u, &index); err != nil {
		return fmt.Errorf("fetch champion index: %w", err)
	}

	names := make(map[int]string, len(index.Data))
	for _, entry := range index.Data {
		id, err := strconv.Atoi(entry.Key)
		if err != nil {
			continue
		}
		names[id] = entry.Name
	}

	c.mu.Lock()
	c.names = names
	c.mu.Unlock()

	logging.Logger().Infof("loaded %d champion names from ddragon %s", len(names), versions[0])
	return nil
}

func (c *ChampionNames) getJSON(ctx context.Context, rawURL string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}
