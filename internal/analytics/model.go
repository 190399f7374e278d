package analytics

// Match holds one ranked game from the tracked player's point of view.
// Upstream fetching is responsible for filtering to ranked queues and
// deduplicating by match ID; the engine takes the slice as-is.
type Match struct {
	MatchID      string      `json:"matchId"`
	GameCreation int64       `json:"gameCreation"` // epoch milliseconds
	GameDuration int         `json:"gameDuration"` // seconds
	QueueType    string      `json:"queueType"`
	Participant  Participant `json:"participant"`
}

// Participant holds the tracked player's stat line for a single match.
// The full 10-player roster is never carried here.
type Participant struct {
	ChampionID         int    `json:"championId"`
	ChampionName       string `json:"championName"`
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	Win                bool   `json:"win"`
	VisionScore        int    `json:"visionScore"`
	TotalDamageDealt   int    `json:"totalDamageDealt"`
	GoldEarned         int    `json:"goldEarned"`
	TotalMinionsKilled int    `json:"totalMinionsKilled"`
	Role               string `json:"role"`
}

// Mastery holds one champion mastery record. At most one per champion id.
type Mastery struct {
	ChampionID int `json:"championId"`
	Level      int `json:"championLevel"`
	Points     int `json:"championPoints"`
}

// PlayerAnalytics is the complete statistical profile built from a year of
// ranked matches. Constructed fresh on every Aggregate call and owned by the
// caller. The highlight fields alias entries of the input match slice.
type PlayerAnalytics struct {
	Overview           Overview           `json:"overview"`
	ChampionStats      []ChampionStats    `json:"championStats"`
	TemporalTrends     TemporalTrends     `json:"temporalTrends"`
	PerformanceMetrics PerformanceMetrics `json:"performanceMetrics"`
	Streaks            Streaks            `json:"streaks"`
	RoleDistribution   map[string]int     `json:"roleDistribution"`
	HighlightMatches   HighlightMatches   `json:"highlightMatches"`
}

// Overview holds season-wide totals and rates.
type Overview struct {
	TotalGames         int     `json:"totalGames"`
	TotalWins          int     `json:"totalWins"`
	TotalLosses        int     `json:"totalLosses"`
	WinRate            float64 `json:"winRate"` // 0-100
	AvgKDA             float64 `json:"avgKDA"`
	AvgKills           float64 `json:"avgKills"`
	AvgDeaths          float64 `json:"avgDeaths"`
	AvgAssists         float64 `json:"avgAssists"`
	TotalPlaytimeHours float64 `json:"totalPlaytimeHours"`
}

// ChampionStats holds the overview-shaped stats scoped to one champion.
// Mastery fields are nil when the player has no mastery record for the
// champion; unknown is not the same as zero.
type ChampionStats struct {
	ChampionID         int     `json:"championId"`
	ChampionName       string  `json:"championName"`
	Games              int     `json:"games"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	WinRate            float64 `json:"winRate"`
	AvgKDA             float64 `json:"avgKDA"`
	AvgKills           float64 `json:"avgKills"`
	AvgDeaths          float64 `json:"avgDeaths"`
	AvgAssists         float64 `json:"avgAssists"`
	TotalPlaytimeHours float64 `json:"totalPlaytimeHours"`
	MasteryLevel       *int    `json:"masteryLevel,omitempty"`
	MasteryPoints      *int    `json:"masteryPoints,omitempty"`
}

// MonthlyStats holds win/loss counts for one calendar month ("2006-01", UTC).
type MonthlyStats struct {
	Month   string  `json:"month"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`
}

// WeeklyStats holds win/loss counts for one week bucket ("2024-W05").
type WeeklyStats struct {
	Week    string  `json:"week"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`
}

// TemporalTrends holds the calendar breakdown of results. Month and week
// sequences are sorted ascending by key. BestMonth and WorstMonth only ever
// name months with at least MinSignificantGames games, and are empty strings
// when no month qualifies.
type TemporalTrends struct {
	MonthlyWinRate    []MonthlyStats `json:"monthlyWinRate"`
	WeeklyPerformance []WeeklyStats  `json:"weeklyPerformance"`
	BestMonth         string         `json:"bestMonth"`
	WorstMonth        string         `json:"worstMonth"`
}

// PerformanceMetrics holds normalized performance rates. Damage, gold and CS
// are per minute of game time; vision score is per game.
type PerformanceMetrics struct {
	AvgVisionScore     float64 `json:"avgVisionScore"`
	AvgDamagePerMinute float64 `json:"avgDamagePerMinute"`
	AvgGoldPerMinute   float64 `json:"avgGoldPerMinute"`
	AvgCSPerMinute     float64 `json:"avgCSPerMinute"`
}

// Streak run types.
const (
	StreakWin  = "win"
	StreakLoss = "loss"
)

// Streak is a run of consecutive results of one type.
type Streak struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Streaks holds the longest runs of the season plus the run still open at
// the chronologically last match.
type Streaks struct {
	LongestWinStreak  int    `json:"longestWinStreak"`
	LongestLossStreak int    `json:"longestLossStreak"`
	CurrentStreak     Streak `json:"currentStreak"`
}

// HighlightMatches points at the single best match per metric. All four are
// nil when there were no input matches. The pointers alias elements of the
// slice passed to Aggregate, so callers must treat inputs as immutable for
// the profile's lifetime.
type HighlightMatches struct {
	BestKDA       *Match `json:"bestKDA,omitempty"`
	MostKills     *Match `json:"mostKills,omitempty"`
	LongestGame   *Match `json:"longestGame,omitempty"`
	HighestDamage *Match `json:"highestDamage,omitempty"`
}

// KDA returns (kills + assists) / deaths. Deathless games return the raw
// kill + assist total; deaths are never fudged to deaths+1.
func KDA(kills, deaths, assists int) float64 {
	if deaths == 0 {
		return float64(kills + assists)
	}
	return float64(kills+assists) / float64(deaths)
}
