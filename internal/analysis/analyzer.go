// Package analysis turns a Riot match and its timeline into per-player
// analytics: laning-phase wave and trading breakdowns, movement and roaming
// patterns, event extraction, and milestone snapshots.
package analysis

import (
	"fmt"

	"timeline-analyzer/internal/riot"
)

// CoreStats are the headline match numbers pulled from the match response.
type CoreStats struct {
	Kills             int     `json:"kills"`
	Deaths            int     `json:"deaths"`
	Assists           int     `json:"assists"`
	KDA               float64 `json:"kda"`
	CS                int     `json:"cs"`
	CSPerMin          float64 `json:"cs_per_min"`
	GoldEarned        int     `json:"gold_earned"`
	GoldPerMin        float64 `json:"gold_per_min"`
	DamageToChampions int     `json:"damage_to_champions"`
	DamagePerMin      float64 `json:"damage_per_min"`
	VisionScore       int     `json:"vision_score"`
	WardsPlaced       int     `json:"wards_placed"`
	WardsKilled       int     `json:"wards_killed"`
	ControlWards      int     `json:"control_wards"`
	KillParticipation float64 `json:"kill_participation"`
	DamageShare       float64 `json:"damage_share"`
	SoloKills         int     `json:"solo_kills"`
	TurretPlates      int     `json:"turret_plates"`
	TurretKills       int     `json:"turret_kills"`
}

// Milestones are frame snapshots at fixed minute marks plus differentials to
// the lane opponent.
type Milestones struct {
	CSAt10       int            `json:"cs_at_10"`
	GoldAt10     int            `json:"gold_at_10"`
	XPAt10       int            `json:"xp_at_10"`
	LevelAt10    int            `json:"level_at_10"`
	CSAt15       int            `json:"cs_at_15"`
	GoldAt15     int            `json:"gold_at_15"`
	XPAt15       int            `json:"xp_at_15"`
	LevelAt15    int            `json:"level_at_15"`
	CSAt20       int            `json:"cs_at_20"`
	GoldDiffAt10 int            `json:"gold_diff_at_10"`
	XPDiffAt10   int            `json:"xp_diff_at_10"`
	GoldDiffAt15 int            `json:"gold_diff_at_15"`
	XPDiffAt15   int            `json:"xp_diff_at_15"`
	CSByPhase    map[string]int `json:"cs_by_phase"`
}

// MatchAnalysisResult is the complete per-player analysis of one match.
type MatchAnalysisResult struct {
	MatchID          string  `json:"match_id"`
	GameCreation     int64   `json:"game_creation"`
	GameDurationMin  float64 `json:"game_duration_min"`
	GameVersion      string  `json:"game_version"`
	QueueID          int     `json:"queue_id"`
	PUUID            string  `json:"puuid"`
	ChampionName     string  `json:"champion_name"`
	Role             string  `json:"role"`
	TeamSide         string  `json:"team_side"`
	Win              bool    `json:"win"`
	OpponentChampion string  `json:"opponent_champion,omitempty"`

	Core         CoreStats        `json:"core"`
	Milestones   Milestones       `json:"milestones"`
	Wave         *WaveManagement  `json:"wave_management,omitempty"`
	Trading      *TradingAnalysis `json:"trading,omitempty"`
	RoleMetrics  RoleMetrics      `json:"role_metrics"`
	Events       MatchEvents      `json:"events"`
	DeathMetrics DeathMetrics     `json:"death_metrics"`
	Locations    LocationAnalysis `json:"locations"`
}

// findParticipant resolves the match participant by PUUID.
func findParticipant(match *riot.MatchResponse, puuid string) *riot.MatchParticipant {
	for i := range match.Info.Participants {
		if match.Info.Participants[i].PUUID == puuid {
			return &match.Info.Participants[i]
		}
	}
	return nil
}

// findOpponent resolves the lane opponent: same role, opposite team.
func findOpponent(match *riot.MatchResponse, participant *riot.MatchParticipant, role string) *riot.MatchParticipant {
	for i := range match.Info.Participants {
		p := &match.Info.Participants[i]
		if p.TeamID != participant.TeamID && riot.DetectRole(p) == role {
			return p
		}
	}
	return nil
}

// frameSnapshot returns the participant frame within [minute-1, minute],
// preferring the latest frame in the window.
func frameSnapshot(frames []riot.TimelineFrame, participantID int, minute float64) (riot.ParticipantFrame, bool) {
	var snapshot riot.ParticipantFrame
	found := false
	for i := range frames {
		tsMin := float64(frames[i].Timestamp) / 60000
		if tsMin > minute {
			break
		}
		if tsMin < minute-1 {
			continue
		}
		if pf, ok := frames[i].Participant(participantID); ok {
			snapshot = pf
			found = true
		}
	}
	return snapshot, found
}

// extractMilestones snapshots CS, gold, XP, and level at the 10/15/20 minute
// marks and computes differentials against the lane opponent.
func extractMilestones(timeline *riot.TimelineResponse, participantID, opponentID int) Milestones {
	milestones := Milestones{CSByPhase: map[string]int{"0-10": 0, "10-20": 0, "20-30": 0}}
	if timeline == nil {
		return milestones
	}
	frames := timeline.Info.Frames

	if pf, ok := frameSnapshot(frames, participantID, 10); ok {
		milestones.CSAt10 = pf.CS()
		milestones.GoldAt10 = pf.TotalGold
		milestones.XPAt10 = pf.XP
		milestones.LevelAt10 = pf.Level
		if opponentID > 0 {
			if of, ok := frameSnapshot(frames, opponentID, 10); ok {
				milestones.GoldDiffAt10 = pf.TotalGold - of.TotalGold
				milestones.XPDiffAt10 = pf.XP - of.XP
			}
		}
	}

	if pf, ok := frameSnapshot(frames, participantID, 15); ok {
		milestones.CSAt15 = pf.CS()
		milestones.GoldAt15 = pf.TotalGold
		milestones.XPAt15 = pf.XP
		milestones.LevelAt15 = pf.Level
		if opponentID > 0 {
			if of, ok := frameSnapshot(frames, opponentID, 15); ok {
				milestones.GoldDiffAt15 = pf.TotalGold - of.TotalGold
				milestones.XPDiffAt15 = pf.XP - of.XP
			}
		}
	}

	csAt20 := 0
	if pf, ok := frameSnapshot(frames, participantID, 20); ok {
		milestones.CSAt20 = pf.CS()
		csAt20 = pf.CS()
	}

	milestones.CSByPhase["0-10"] = milestones.CSAt10
	if csAt20 > 0 {
		milestones.CSByPhase["10-20"] = csAt20 - milestones.CSAt10
	}
	if pf, ok := frameSnapshot(frames, participantID, 30); ok && csAt20 > 0 {
		milestones.CSByPhase["20-30"] = pf.CS() - csAt20
	}

	return milestones
}

// extractCoreStats derives the headline numbers from the match participant.
func extractCoreStats(p *riot.MatchParticipant, durationMin float64) CoreStats {
	cs := p.TotalMinionsKilled + p.NeutralMinionsKilled

	stats := CoreStats{
		Kills:             p.Kills,
		Deaths:            p.Deaths,
		Assists:           p.Assists,
		CS:                cs,
		GoldEarned:        p.GoldEarned,
		DamageToChampions: p.TotalDamageDealtToChampions,
		VisionScore:       p.VisionScore,
		WardsPlaced:       p.WardsPlaced,
		WardsKilled:       p.WardsKilled,
		ControlWards:      p.DetectorWardsPlaced,
		KillParticipation: round3(p.Challenges.KillParticipation),
		DamageShare:       round3(p.Challenges.TeamDamagePercentage),
		SoloKills:         p.Challenges.SoloKills,
		TurretPlates:      p.Challenges.TurretPlatesTaken,
		TurretKills:       p.TurretKills,
	}

	deaths := p.Deaths
	if deaths == 0 {
		deaths = 1
	}
	stats.KDA = round2(float64(p.Kills+p.Assists) / float64(deaths))

	if durationMin > 0 {
		stats.CSPerMin = round2(float64(cs) / durationMin)
		stats.GoldPerMin = round2(float64(p.GoldEarned) / durationMin)
		stats.DamagePerMin = round2(float64(p.TotalDamageDealtToChampions) / durationMin)
	}
	return stats
}

// Analyze runs the full analysis pipeline for one player in one match.
// A missing timeline yields core stats only; laning analysis is skipped for
// junglers since lane zones do not apply.
func Analyze(match *riot.MatchResponse, timeline *riot.TimelineResponse, puuid string) (*MatchAnalysisResult, error) {
	if match == nil {
		return nil, fmt.Errorf("analyze %s: match data is nil", puuid)
	}

	participant := findParticipant(match, puuid)
	if participant == nil {
		return nil, fmt.Errorf("analyze %s: player not found in match %s", puuid, match.Metadata.MatchID)
	}

	role := riot.DetectRole(participant)
	teamSide := riot.TeamSide(participant.TeamID)
	durationMin := float64(match.Info.GameDuration) / 60

	result := &MatchAnalysisResult{
		MatchID:         match.Metadata.MatchID,
		GameCreation:    match.Info.GameCreation,
		GameDurationMin: round1(durationMin),
		GameVersion:     match.Info.GameVersion,
		QueueID:         match.Info.QueueID,
		PUUID:           puuid,
		ChampionName:    participant.ChampionName,
		Role:            role,
		TeamSide:        teamSide,
		Win:             participant.Win,
		Core:            extractCoreStats(participant, durationMin),
		Milestones:      Milestones{CSByPhase: map[string]int{"0-10": 0, "10-20": 0, "20-30": 0}},
	}

	opponentID := 0
	if opponent := findOpponent(match, participant, role); opponent != nil {
		opponentID = opponent.ParticipantID
		result.OpponentChampion = opponent.ChampionName
	}

	if timeline == nil || len(timeline.Info.Frames) == 0 {
		return result, nil
	}

	pid := participant.ParticipantID
	result.Milestones = extractMilestones(timeline, pid, opponentID)
	result.RoleMetrics = ExtractRoleMetrics(timeline, pid, role)
	result.Events = ExtractEvents(timeline, pid, participant.TeamID)
	result.DeathMetrics = ComputeDeathMetrics(result.Events.Deaths)
	result.Locations = AnalyzeLocations(timeline, pid)

	if role != "JUNGLE" {
		wave := AnalyzeWaveManagement(timeline, pid, role, teamSide, opponentID, DefaultLaningEndTime)
		result.Wave = &wave
		trading := AnalyzeTrading(timeline, participant, opponentID, DefaultLaningEndTime)
		result.Trading = &trading
	}

	return result, nil
}
