package analysis

import (
	"bytes"
	"encoding/json"
	"testing"

	"timeline-analyzer/internal/riot"
)

func testMatch() *riot.MatchResponse {
	return &riot.MatchResponse{
		Metadata: riot.MatchMetadata{MatchID: "NA1_1000"},
		Info: riot.MatchInfo{
			GameCreation: 1700000000000,
			GameDuration: 1800,
			GameVersion:  "14.24.1",
			QueueID:      420,
			Participants: []riot.MatchParticipant{
				{
					ParticipantID: 1, PUUID: "player-1", TeamID: 100,
					ChampionName: "Garen", TeamPosition: "TOP", Win: true,
					Kills: 5, Deaths: 2, Assists: 4,
					TotalMinionsKilled: 190, NeutralMinionsKilled: 10,
					GoldEarned: 12000, TotalDamageDealtToChampions: 20000,
					VisionScore: 22,
				},
				{
					ParticipantID: 2, PUUID: "player-2", TeamID: 100,
					ChampionName: "LeeSin", TeamPosition: "JUNGLE", Win: true,
					Kills: 3, Deaths: 3, Assists: 8,
				},
				{
					ParticipantID: 6, PUUID: "player-6", TeamID: 200,
					ChampionName: "Darius", TeamPosition: "TOP", Win: false,
					Kills: 2, Deaths: 5, Assists: 1,
				},
			},
		},
	}
}

func testTimeline() *riot.TimelineResponse {
	return &riot.TimelineResponse{Info: riot.TimelineInfo{Frames: []riot.TimelineFrame{
		makeFrame(10, map[int]riot.ParticipantFrame{
			1: {Position: riot.Position{X: 3000, Y: 12500}, MinionsKilled: 80, TotalGold: 3500, XP: 4800, Level: 9},
			2: {Position: riot.Position{X: 3500, Y: 8500}, JungleMinionsKilled: 60, TotalGold: 3000, XP: 4200, Level: 8},
			6: {Position: riot.Position{X: 7000, Y: 13000}, MinionsKilled: 70, TotalGold: 3200, XP: 4500, Level: 8},
		}),
		makeFrame(15, map[int]riot.ParticipantFrame{
			1: {Position: riot.Position{X: 7000, Y: 13000}, MinionsKilled: 120, TotalGold: 5500, XP: 7500, Level: 11},
			2: {Position: riot.Position{X: 7400, Y: 7400}, JungleMinionsKilled: 90, TotalGold: 4800, XP: 6800, Level: 10},
			6: {Position: riot.Position{X: 7000, Y: 13000}, MinionsKilled: 100, TotalGold: 5000, XP: 7000, Level: 10},
		}),
	}}}
}

func TestAnalyze(t *testing.T) {
	result, err := Analyze(testMatch(), testTimeline(), "player-1")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.MatchID != "NA1_1000" || result.QueueID != 420 {
		t.Errorf("match identity = %s/%d, want NA1_1000/420", result.MatchID, result.QueueID)
	}
	if result.Role != "TOP" || result.TeamSide != "blue" {
		t.Errorf("role/side = %s/%s, want TOP/blue", result.Role, result.TeamSide)
	}
	if result.OpponentChampion != "Darius" {
		t.Errorf("OpponentChampion = %s, want Darius", result.OpponentChampion)
	}
	if !result.Win {
		t.Error("Win = false, want true")
	}

	if result.Core.KDA != 4.5 {
		t.Errorf("KDA = %.2f, want 4.5", result.Core.KDA)
	}
	if result.Core.CS != 200 {
		t.Errorf("CS = %d, want 200", result.Core.CS)
	}
	if result.Core.CSPerMin != 6.67 {
		t.Errorf("CSPerMin = %.2f, want 6.67", result.Core.CSPerMin)
	}

	if result.Milestones.CSAt10 != 80 {
		t.Errorf("CSAt10 = %d, want 80", result.Milestones.CSAt10)
	}
	if result.Milestones.GoldDiffAt10 != 300 {
		t.Errorf("GoldDiffAt10 = %d, want 300", result.Milestones.GoldDiffAt10)
	}
	if result.Milestones.GoldDiffAt15 != 500 {
		t.Errorf("GoldDiffAt15 = %d, want 500", result.Milestones.GoldDiffAt15)
	}
	if result.Milestones.LevelAt15 != 11 {
		t.Errorf("LevelAt15 = %d, want 11", result.Milestones.LevelAt15)
	}

	// Laners get the laning-phase analysis.
	if result.Wave == nil || result.Trading == nil {
		t.Error("laner should have wave and trading analysis")
	}
}

func TestAnalyzeJunglerSkipsLaning(t *testing.T) {
	result, err := Analyze(testMatch(), testTimeline(), "player-2")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.Role != "JUNGLE" {
		t.Fatalf("Role = %s, want JUNGLE", result.Role)
	}
	if result.Wave != nil || result.Trading != nil {
		t.Error("jungler should not have wave or trading analysis")
	}
	if result.RoleMetrics.JungleTimePercent == 0 {
		t.Error("jungler should have nonzero jungle time")
	}
}

func TestAnalyzeMissingTimeline(t *testing.T) {
	result, err := Analyze(testMatch(), nil, "player-1")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.Core.KDA != 4.5 {
		t.Errorf("core stats should survive a missing timeline, KDA = %.2f", result.Core.KDA)
	}
	if result.Wave != nil {
		t.Error("missing timeline should skip wave analysis")
	}
	if result.Milestones.CSAt10 != 0 {
		t.Errorf("CSAt10 = %d, want 0 without timeline", result.Milestones.CSAt10)
	}
}

func TestAnalyzeUnknownPlayer(t *testing.T) {
	if _, err := Analyze(testMatch(), testTimeline(), "nobody"); err == nil {
		t.Error("expected error for player missing from match")
	}
	if _, err := Analyze(nil, nil, "player-1"); err == nil {
		t.Error("expected error for nil match")
	}
}

// Analysis is a pure function of its inputs: repeated runs must serialize to
// the same bytes.
func TestAnalyzeDeterministic(t *testing.T) {
	first, err := Analyze(testMatch(), testTimeline(), "player-1")
	if err != nil {
		t.Fatal(err)
	}
	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		next, err := Analyze(testMatch(), testTimeline(), "player-1")
		if err != nil {
			t.Fatal(err)
		}
		nextJSON, err := json.Marshal(next)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(firstJSON, nextJSON) {
			t.Fatalf("run %d serialized differently from the first run", i+2)
		}
	}
}
