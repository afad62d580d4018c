package analysis

import (
	"testing"

	"timeline-analyzer/internal/riot"
)

func damageFrame(id, dealt, taken int) map[int]riot.ParticipantFrame {
	return map[int]riot.ParticipantFrame{
		id: {
			Position:    riot.Position{X: 7400, Y: 7400},
			DamageStats: riot.DamageStats{TotalDamageDoneToChampions: dealt, TotalDamageTaken: taken},
		},
	}
}

func TestAnalyzeTrading(t *testing.T) {
	timeline := &riot.TimelineResponse{Info: riot.TimelineInfo{Frames: []riot.TimelineFrame{
		makeFrame(1, damageFrame(1, 100, 50)),
		makeFrame(2, damageFrame(1, 150, 50)),
		makeFrame(3, damageFrame(1, 150, 50)),
		makeFrame(5, damageFrame(1, 300, 200)),
	}}}
	participant := &riot.MatchParticipant{
		ParticipantID:               1,
		TotalDamageDealtToChampions: 600,
		TotalDamageTaken:            1000,
		DamageSelfMitigated:         500,
	}

	analysis := AnalyzeTrading(timeline, participant, 0, DefaultLaningEndTime)

	// Frame 3 has no damage deltas, so only three trades.
	if analysis.TradesDetected != 3 {
		t.Fatalf("TradesDetected = %d, want 3", analysis.TradesDetected)
	}

	first := analysis.Trades[0]
	if first.DamageDealt != 100 || first.DamageTaken != 50 {
		t.Errorf("first trade = %d/%d, want 100/50", first.DamageDealt, first.DamageTaken)
	}
	if first.TradeEfficiency != 2 {
		t.Errorf("first trade efficiency = %.1f, want 2", first.TradeEfficiency)
	}

	// Second trade dealt damage without taking any.
	second := analysis.Trades[1]
	if second.TradeEfficiency != maxEfficiency {
		t.Errorf("one-sided trade efficiency = %.1f, want %.1f", second.TradeEfficiency, maxEfficiency)
	}

	if analysis.DamageDealtInLane != 300 || analysis.DamageTakenInLane != 200 {
		t.Errorf("lane totals = %d/%d, want 300/200",
			analysis.DamageDealtInLane, analysis.DamageTakenInLane)
	}
	if analysis.DamageDifferential != 100 {
		t.Errorf("DamageDifferential = %d, want 100", analysis.DamageDifferential)
	}
	if analysis.PercentDamageDealt != 50 {
		t.Errorf("PercentDamageDealt = %.1f, want 50", analysis.PercentDamageDealt)
	}
	if analysis.MitigationRatio != 0.5 {
		t.Errorf("MitigationRatio = %.2f, want 0.5", analysis.MitigationRatio)
	}

	// The minute-5 frame lands inside the 5min checkpoint window.
	checkpoint, ok := analysis.Checkpoints["5min"]
	if !ok {
		t.Fatal("missing 5min checkpoint")
	}
	if checkpoint.DamageDealt != 300 || checkpoint.Differential != 100 {
		t.Errorf("5min checkpoint = %+v, want dealt 300 differential 100", checkpoint)
	}
}

func TestAnalyzeTradingWithOpponent(t *testing.T) {
	timeline := &riot.TimelineResponse{Info: riot.TimelineInfo{Frames: []riot.TimelineFrame{
		makeFrame(1, map[int]riot.ParticipantFrame{
			1: {DamageStats: riot.DamageStats{TotalDamageDoneToChampions: 400, TotalDamageTaken: 100}},
			6: {DamageStats: riot.DamageStats{TotalDamageDoneToChampions: 200, TotalDamageTaken: 350}},
		}),
	}}}
	participant := &riot.MatchParticipant{ParticipantID: 1, TotalDamageDealtToChampions: 400, TotalDamageTaken: 100}

	analysis := AnalyzeTrading(timeline, participant, 6, DefaultLaningEndTime)
	if analysis.Opponent == nil {
		t.Fatal("expected opponent summary")
	}
	if analysis.Opponent.DamageDealt != 200 {
		t.Errorf("opponent dealt = %d, want 200", analysis.Opponent.DamageDealt)
	}
	// The opponent's own efficiency: 200 dealt over 350 taken.
	if analysis.Opponent.DamageRatio != 0.57 {
		t.Errorf("damage ratio = %.2f, want 0.57", analysis.Opponent.DamageRatio)
	}
}

func TestAnalyzeTradingEmpty(t *testing.T) {
	analysis := AnalyzeTrading(nil, &riot.MatchParticipant{ParticipantID: 1}, 0, DefaultLaningEndTime)
	if analysis.TradesDetected != 0 || analysis.DamageDealtInLane != 0 {
		t.Error("nil timeline should produce a zero summary")
	}
}
