package riot

// Account is the response from /riot/account/v1/accounts/by-riot-id.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// MatchResponse is the response from /lol/match/v5/matches/{matchId},
// trimmed to the fields the recap needs.
type MatchResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameCreation int64              `json:"gameCreation"` // epoch ms
	GameDuration int                `json:"gameDuration"` // seconds
	QueueID      int                `json:"queueId"`
	Participants []MatchParticipant `json:"participants"`
}

type MatchParticipant struct {
	PUUID              string `json:"puuid"`
	ChampionID         int    `json:"championId"`
	ChampionName       string `json:"championName"`
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	Win                bool   `json:"win"`
	VisionScore        int    `json:"visionScore"`
	TotalDamageDealt   int    `json:"totalDamageDealtToChampions"`
	GoldEarned         int    `json:"goldEarned"`
	TotalMinionsKilled int    `json:"totalMinionsKilled"`
	TeamPosition       string `json:"teamPosition"` // TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY
}

// MasteryEntry is one record from
// /lol/champion-mastery/v4/champion-masteries/by-puuid/{puuid}.
type MasteryEntry struct {
	ChampionID     int `json:"championId"`
	ChampionLevel  int `json:"championLevel"`
	ChampionPoints int `json:"championPoints"`
}
