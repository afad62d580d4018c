package analysis

import (
	"timeline-analyzer/internal/riftmap"
	"timeline-analyzer/internal/riot"
)

// RecallQuality grades a recall by the gold earned since the previous frame.
type RecallQuality string

const (
	RecallGoodGold   RecallQuality = "good_gold"
	RecallAcceptable RecallQuality = "acceptable"
	RecallEarly      RecallQuality = "early"
	RecallUnknown    RecallQuality = "unknown"
)

// RecallEvent is one detected base trip during the laning phase.
type RecallEvent struct {
	TimestampMin float64       `json:"timestamp_min"`
	GoldOnRecall int           `json:"gold_on_recall"`
	CSOnRecall   int           `json:"cs_on_recall"`
	Quality      RecallQuality `json:"quality"`
}

// RecallConfig holds the recall detection thresholds.
type RecallConfig struct {
	// TeleportDistance is the per-frame movement beyond which the player is
	// assumed to have recalled or teleported rather than walked.
	TeleportDistance float64
	GoodGold         int
	AcceptableGold   int
	EarlyGold        int
}

// DefaultRecallConfig matches typical laning recall timings.
var DefaultRecallConfig = RecallConfig{
	TeleportDistance: 8000,
	GoodGold:         1500,
	AcceptableGold:   800,
	EarlyGold:        500,
}

func (cfg RecallConfig) grade(gold int) RecallQuality {
	switch {
	case gold >= cfg.GoodGold:
		return RecallGoodGold
	case gold >= cfg.AcceptableGold:
		return RecallAcceptable
	case gold < cfg.EarlyGold:
		return RecallEarly
	}
	return RecallUnknown
}

// DetectRecalls finds base trips during laning by watching for fountain visits
// and frame-to-frame jumps longer than walking distance. The gold on each
// recall is the gold earned since the previous frame.
func DetectRecalls(frames []riot.TimelineFrame, participantID int, laningEndTime float64, cfg RecallConfig) []RecallEvent {
	var recalls []RecallEvent

	var lastPos *riot.Position
	lastGold := 0
	lastCS := 0
	wasAtFountain := false

	for i := range frames {
		frame := &frames[i]
		tsMin := float64(frame.Timestamp) / 60000
		if tsMin > laningEndTime {
			break
		}

		pf, ok := frame.Participant(participantID)
		if !ok {
			continue
		}

		pos := pf.Position
		atFountain := riftmap.AtFountain(pos.X, pos.Y)

		triggered := atFountain && !wasAtFountain
		if !triggered && lastPos != nil {
			triggered = riftmap.Distance(lastPos.X, lastPos.Y, pos.X, pos.Y) > cfg.TeleportDistance
		}

		if triggered {
			goldOnRecall := pf.TotalGold - lastGold
			recalls = append(recalls, RecallEvent{
				TimestampMin: round1(tsMin),
				GoldOnRecall: goldOnRecall,
				CSOnRecall:   lastCS,
				Quality:      cfg.grade(goldOnRecall),
			})
		}

		wasAtFountain = atFountain
		lastGold = pf.TotalGold
		lastCS = pf.CS()
		lastPos = &riot.Position{X: pos.X, Y: pos.Y}
	}

	return recalls
}
