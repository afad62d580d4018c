package riot

import "strconv"

// AccountResponse represents the response from /riot/account/v1/accounts/by-riot-id
type AccountResponse struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// MatchResponse represents the response from /lol/match/v5/matches/{matchId}
type MatchResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameCreation     int64              `json:"gameCreation"`
	GameDuration     int                `json:"gameDuration"`
	GameEndTimestamp int64              `json:"gameEndTimestamp"`
	GameVersion      string             `json:"gameVersion"`
	QueueID          int                `json:"queueId"`
	Participants     []MatchParticipant `json:"participants"`
}

type MatchParticipant struct {
	ParticipantID      int    `json:"participantId"`
	PUUID              string `json:"puuid"`
	RiotIdGameName     string `json:"riotIdGameName"`
	RiotIdTagline      string `json:"riotIdTagline"`
	TeamID             int    `json:"teamId"` // 100 = blue, 200 = red
	ChampionID         int    `json:"championId"`
	ChampionName       string `json:"championName"`
	TeamPosition       string `json:"teamPosition"`       // TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY
	IndividualPosition string `json:"individualPosition"` // fallback when teamPosition is empty
	Win                bool   `json:"win"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`
	GoldEarned           int `json:"goldEarned"`
	GoldSpent            int `json:"goldSpent"`

	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int `json:"totalDamageTaken"`
	DamageSelfMitigated         int `json:"damageSelfMitigated"`

	VisionScore         int `json:"visionScore"`
	WardsPlaced         int `json:"wardsPlaced"`
	WardsKilled         int `json:"wardsKilled"`
	DetectorWardsPlaced int `json:"detectorWardsPlaced"`

	TurretKills    int `json:"turretKills"`
	InhibitorKills int `json:"inhibitorKills"`
	DragonKills    int `json:"dragonKills"`
	BaronKills     int `json:"baronKills"`

	FirstBloodKill   bool `json:"firstBloodKill"`
	FirstBloodAssist bool `json:"firstBloodAssist"`
	FirstTowerKill   bool `json:"firstTowerKill"`
	FirstTowerAssist bool `json:"firstTowerAssist"`

	Challenges ParticipantChallenges `json:"challenges"`
}

// ParticipantChallenges is the subset of the challenges block the analyzer consumes.
type ParticipantChallenges struct {
	KillParticipation    float64 `json:"killParticipation"`
	TeamDamagePercentage float64 `json:"teamDamagePercentage"`
	GoldPerMinute        float64 `json:"goldPerMinute"`
	SoloKills            int     `json:"soloKills"`
	TurretPlatesTaken    int     `json:"turretPlatesTaken"`
	BaronTakedowns       int     `json:"baronTakedowns"`
	DragonTakedowns      int     `json:"dragonTakedowns"`
	RiftHeraldTakedowns  int     `json:"riftHeraldTakedowns"`
}

// TimelineResponse represents the response from /lol/match/v5/matches/{matchId}/timeline
type TimelineResponse struct {
	Metadata TimelineMetadata `json:"metadata"`
	Info     TimelineInfo     `json:"info"`
}

type TimelineMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type TimelineInfo struct {
	FrameInterval int             `json:"frameInterval"`
	Frames        []TimelineFrame `json:"frames"`
}

// TimelineFrame is one periodic snapshot (~60s apart, monotonically increasing
// timestamps) of all participants plus the discrete events since the previous frame.
type TimelineFrame struct {
	Timestamp         int                         `json:"timestamp"` // milliseconds
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Events            []TimelineEvent             `json:"events"`
}

// Participant returns the frame snapshot for a participant ID.
// Riot keys participantFrames by the stringified ID ("1".."10").
func (f *TimelineFrame) Participant(id int) (ParticipantFrame, bool) {
	pf, ok := f.ParticipantFrames[strconv.Itoa(id)]
	return pf, ok
}

type ParticipantFrame struct {
	Position            Position    `json:"position"`
	TotalGold           int         `json:"totalGold"`
	XP                  int         `json:"xp"`
	Level               int         `json:"level"`
	MinionsKilled       int         `json:"minionsKilled"`
	JungleMinionsKilled int         `json:"jungleMinionsKilled"`
	DamageStats         DamageStats `json:"damageStats"`
}

// CS returns the creep score (lane plus jungle minions). Non-decreasing across frames.
func (pf *ParticipantFrame) CS() int {
	return pf.MinionsKilled + pf.JungleMinionsKilled
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type DamageStats struct {
	TotalDamageDoneToChampions int `json:"totalDamageDoneToChampions"`
	TotalDamageTaken           int `json:"totalDamageTaken"`
}

// EventType discriminates timeline events. The extractor switches exhaustively over
// the kinds it consumes; anything else is ignored.
type EventType string

const (
	EventChampionKill     EventType = "CHAMPION_KILL"
	EventEliteMonsterKill EventType = "ELITE_MONSTER_KILL"
	EventBuildingKill     EventType = "BUILDING_KILL"
	EventWardPlaced       EventType = "WARD_PLACED"
	EventWardKill         EventType = "WARD_KILL"
	EventItemPurchased    EventType = "ITEM_PURCHASED"
	EventLevelUp          EventType = "LEVEL_UP"
)

type TimelineEvent struct {
	Type          EventType `json:"type"`
	Timestamp     int       `json:"timestamp"`
	ParticipantID int       `json:"participantId,omitempty"`
	ItemID        int       `json:"itemId,omitempty"`

	// CHAMPION_KILL
	KillerID                int      `json:"killerId,omitempty"`
	VictimID                int      `json:"victimId,omitempty"`
	AssistingParticipantIDs []int    `json:"assistingParticipantIds,omitempty"`
	Position                Position `json:"position,omitempty"`

	// ELITE_MONSTER_KILL
	MonsterType  string `json:"monsterType,omitempty"` // BARON_NASHOR, DRAGON, RIFTHERALD
	KillerTeamID int    `json:"killerTeamId,omitempty"`

	// BUILDING_KILL
	BuildingType string `json:"buildingType,omitempty"` // TOWER_BUILDING, INHIBITOR_BUILDING
	TeamID       int    `json:"teamId,omitempty"`       // team the building belonged to
}

// Involves reports whether the event is attributed to the participant: as actor,
// killer, victim, or assister.
func (e *TimelineEvent) Involves(participantID int) bool {
	if e.ParticipantID == participantID || e.KillerID == participantID || e.VictimID == participantID {
		return true
	}
	for _, id := range e.AssistingParticipantIDs {
		if id == participantID {
			return true
		}
	}
	return false
}

// LeagueEntryResponse represents a ranked league entry from /lol/league/v4/entries
type LeagueEntryResponse struct {
	LeagueID     string `json:"leagueId"`
	SummonerID   string `json:"summonerId"`
	PUUID        string `json:"puuid"`
	QueueType    string `json:"queueType"` // RANKED_SOLO_5x5, RANKED_FLEX_SR
	Tier         string `json:"tier"`
	Rank         string `json:"rank"` // I, II, III, IV
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// RankTiers in ladder order, lowest first.
var RankTiers = []string{
	"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM",
	"EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER",
}

// Tier order for comparison (higher index = higher rank)
var TierOrder = map[string]int{
	"IRON":        0,
	"BRONZE":      1,
	"SILVER":      2,
	"GOLD":        3,
	"PLATINUM":    4,
	"EMERALD":     5,
	"DIAMOND":     6,
	"MASTER":      7,
	"GRANDMASTER": 8,
	"CHALLENGER":  9,
}

// Division order (higher index = higher rank within tier)
var DivisionOrder = map[string]int{
	"IV":  0,
	"III": 1,
	"II":  2,
	"I":   3,
}

// Roles is the set of positions benchmarks and role analytics are keyed by.
var Roles = []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}

// DetectRole normalizes a participant's position, preferring teamPosition and
// falling back to individualPosition. Unknown positions map to "UNKNOWN".
func DetectRole(p *MatchParticipant) string {
	role := p.TeamPosition
	if role == "" {
		role = p.IndividualPosition
	}

	switch role {
	case "TOP":
		return "TOP"
	case "JUNGLE":
		return "JUNGLE"
	case "MIDDLE", "MID":
		return "MIDDLE"
	case "BOTTOM", "BOT":
		return "BOTTOM"
	case "UTILITY", "SUPPORT":
		return "UTILITY"
	}
	return "UNKNOWN"
}

// TeamSide returns "blue" for team 100 and "red" otherwise.
func TeamSide(teamID int) string {
	if teamID == 100 {
		return "blue"
	}
	return "red"
}

// IsCompletedItem returns true for item IDs in the completed-item range.
// Completed items have IDs >= 3000; everything below is a component or consumable.
func IsCompletedItem(itemID int) bool {
	return itemID >= 3000
}

// RankString formats the solo queue entry as TIER_DIVISION, or UNRANKED.
func RankString(entries []LeagueEntryResponse) string {
	for _, e := range entries {
		if e.QueueType == "RANKED_SOLO_5x5" {
			return e.Tier + "_" + e.Rank
		}
	}
	return "UNRANKED"
}
