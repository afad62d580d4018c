package analysis

import "timeline-analyzer/internal/riot"

// maxEfficiency is the sentinel for trades where damage was dealt but none
// taken. Kept finite so the value survives JSON round-trips.
const maxEfficiency = 999.0

// TradeSample is one frame-to-frame damage exchange during laning.
type TradeSample struct {
	TimestampMin    float64 `json:"timestamp"`
	DamageDealt     int     `json:"damage_dealt"`
	DamageTaken     int     `json:"damage_taken"`
	TradeEfficiency float64 `json:"trade_efficiency"`
}

// TradeCheckpoint is the cumulative damage standing at a laning checkpoint.
type TradeCheckpoint struct {
	DamageDealt  int `json:"damage_dealt"`
	DamageTaken  int `json:"damage_taken"`
	Differential int `json:"differential"`
}

// OpponentTrading is the lane opponent's cumulative damage at laning end.
// DamageRatio is the opponent's own dealt-to-taken efficiency.
type OpponentTrading struct {
	DamageDealt int     `json:"damage_dealt"`
	DamageTaken int     `json:"damage_taken"`
	DamageRatio float64 `json:"damage_ratio"`
}

// TradingAnalysis is the laning-phase trading summary.
type TradingAnalysis struct {
	DamageDealtInLane   int                        `json:"damage_dealt_in_lane"`
	DamageTakenInLane   int                        `json:"damage_taken_in_lane"`
	DamageDifferential  int                        `json:"damage_differential"`
	DamageDealtPerMin   float64                    `json:"damage_dealt_per_min"`
	DamageTakenPerMin   float64                    `json:"damage_taken_per_min"`
	PercentDamageDealt  float64                    `json:"percent_of_game_damage_dealt"`
	PercentDamageTaken  float64                    `json:"percent_of_game_damage_taken"`
	TradesDetected      int                        `json:"trades_detected"`
	Trades              []TradeSample              `json:"trades"`
	Checkpoints         map[string]TradeCheckpoint `json:"checkpoints"`
	Opponent            *OpponentTrading           `json:"opponent,omitempty"`
	DamageSelfMitigated int                        `json:"damage_self_mitigated"`
	MitigationRatio     float64                    `json:"mitigation_ratio"`
}

type checkpointWindow struct {
	label    string
	min, max float64
}

// AnalyzeTrading walks the laning-phase frames and measures damage exchanged
// with champions frame over frame. participant holds the full-game totals the
// lane share is computed against.
func AnalyzeTrading(timeline *riot.TimelineResponse, participant *riot.MatchParticipant, opponentID int, laningEndTime float64) TradingAnalysis {
	analysis := TradingAnalysis{Checkpoints: make(map[string]TradeCheckpoint)}
	if timeline == nil || len(timeline.Info.Frames) == 0 || participant == nil {
		return analysis
	}
	if laningEndTime <= 0 {
		laningEndTime = DefaultLaningEndTime
	}

	windows := []checkpointWindow{
		{"5min", 4.5, 5.5},
		{"10min", 9.5, 10.5},
		{"14min", 13.5, laningEndTime},
	}

	participantID := participant.ParticipantID
	prevDealt, prevTaken := 0, 0
	lastDealt, lastTaken := 0, 0
	oppDealt, oppTaken := 0, 0

	for i := range timeline.Info.Frames {
		frame := &timeline.Info.Frames[i]
		tsMin := float64(frame.Timestamp) / 60000
		if tsMin > laningEndTime {
			break
		}

		pf, ok := frame.Participant(participantID)
		if !ok {
			continue
		}

		dealt := pf.DamageStats.TotalDamageDoneToChampions
		taken := pf.DamageStats.TotalDamageTaken

		deltaDealt := dealt - prevDealt
		deltaTaken := taken - prevTaken
		if deltaDealt > 0 || deltaTaken > 0 {
			efficiency := 0.0
			switch {
			case deltaTaken > 0:
				efficiency = round2(float64(deltaDealt) / float64(deltaTaken))
			case deltaDealt > 0:
				efficiency = maxEfficiency
			}
			analysis.Trades = append(analysis.Trades, TradeSample{
				TimestampMin:    round1(tsMin),
				DamageDealt:     deltaDealt,
				DamageTaken:     deltaTaken,
				TradeEfficiency: efficiency,
			})
		}
		prevDealt, prevTaken = dealt, taken
		lastDealt, lastTaken = dealt, taken

		for _, w := range windows {
			if tsMin >= w.min && tsMin <= w.max {
				analysis.Checkpoints[w.label] = TradeCheckpoint{
					DamageDealt:  dealt,
					DamageTaken:  taken,
					Differential: dealt - taken,
				}
			}
		}

		if opponentID > 0 {
			if of, ok := frame.Participant(opponentID); ok {
				oppDealt = of.DamageStats.TotalDamageDoneToChampions
				oppTaken = of.DamageStats.TotalDamageTaken
			}
		}
	}

	analysis.DamageDealtInLane = lastDealt
	analysis.DamageTakenInLane = lastTaken
	analysis.DamageDifferential = lastDealt - lastTaken
	analysis.DamageDealtPerMin = round1(float64(lastDealt) / laningEndTime)
	analysis.DamageTakenPerMin = round1(float64(lastTaken) / laningEndTime)
	analysis.TradesDetected = len(analysis.Trades)

	if participant.TotalDamageDealtToChampions > 0 {
		analysis.PercentDamageDealt = round1(float64(lastDealt) / float64(participant.TotalDamageDealtToChampions) * 100)
	}
	if participant.TotalDamageTaken > 0 {
		analysis.PercentDamageTaken = round1(float64(lastTaken) / float64(participant.TotalDamageTaken) * 100)
	}

	if opponentID > 0 {
		opp := &OpponentTrading{DamageDealt: oppDealt, DamageTaken: oppTaken}
		if oppTaken > 0 {
			opp.DamageRatio = round2(float64(oppDealt) / float64(oppTaken))
		}
		analysis.Opponent = opp
	}

	analysis.DamageSelfMitigated = participant.DamageSelfMitigated
	if participant.TotalDamageTaken > 0 {
		analysis.MitigationRatio = round2(float64(participant.DamageSelfMitigated) / float64(participant.TotalDamageTaken))
	}

	return analysis
}
