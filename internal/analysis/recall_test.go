package analysis

import (
	"testing"

	"timeline-analyzer/internal/riot"
)

func TestRecallGrading(t *testing.T) {
	tests := []struct {
		gold int
		want RecallQuality
	}{
		{1800, RecallGoodGold},
		{1500, RecallGoodGold},
		{1000, RecallAcceptable},
		{800, RecallAcceptable},
		{600, RecallUnknown},
		{400, RecallEarly},
		{0, RecallEarly},
	}

	for _, tt := range tests {
		if got := DefaultRecallConfig.grade(tt.gold); got != tt.want {
			t.Errorf("grade(%d) = %s, want %s", tt.gold, got, tt.want)
		}
	}
}

func TestDetectRecallsAtFountain(t *testing.T) {
	// Red-side player farms a big wave, then shows up in the fountain.
	frames := []riot.TimelineFrame{
		makeFrame(1, map[int]riot.ParticipantFrame{1: pf(9000, 9000, 20, 500)}),
		makeFrame(2, map[int]riot.ParticipantFrame{1: pf(9500, 9500, 30, 1100)}),
		makeFrame(3, map[int]riot.ParticipantFrame{1: pf(14500, 14500, 35, 2700)}),
		makeFrame(4, map[int]riot.ParticipantFrame{1: pf(14500, 14500, 35, 2750)}),
	}

	recalls := DetectRecalls(frames, 1, DefaultLaningEndTime, DefaultRecallConfig)
	if len(recalls) != 1 {
		t.Fatalf("got %d recalls, want 1 (lingering in fountain must not re-trigger)", len(recalls))
	}

	recall := recalls[0]
	if recall.TimestampMin != 3 {
		t.Errorf("TimestampMin = %.1f, want 3", recall.TimestampMin)
	}
	// Gold since the previous frame: 2700 - 1100.
	if recall.GoldOnRecall != 1600 {
		t.Errorf("GoldOnRecall = %d, want 1600", recall.GoldOnRecall)
	}
	if recall.CSOnRecall != 30 {
		t.Errorf("CSOnRecall = %d, want 30", recall.CSOnRecall)
	}
	if recall.Quality != RecallGoodGold {
		t.Errorf("Quality = %s, want %s", recall.Quality, RecallGoodGold)
	}
}

func TestDetectRecallsByTeleportDistance(t *testing.T) {
	// Jump from bot lane to top lane without touching the fountain.
	frames := []riot.TimelineFrame{
		makeFrame(1, map[int]riot.ParticipantFrame{1: pf(12000, 3000, 25, 900)}),
		makeFrame(2, map[int]riot.ParticipantFrame{1: pf(3000, 12000, 25, 950)}),
	}

	recalls := DetectRecalls(frames, 1, DefaultLaningEndTime, DefaultRecallConfig)
	if len(recalls) != 1 {
		t.Fatalf("got %d recalls, want 1", len(recalls))
	}
	if recalls[0].GoldOnRecall != 50 {
		t.Errorf("GoldOnRecall = %d, want 50 (950 - 900)", recalls[0].GoldOnRecall)
	}
}

func TestDetectRecallsUsePreviousFrameGold(t *testing.T) {
	frames := []riot.TimelineFrame{
		makeFrame(1, map[int]riot.ParticipantFrame{1: pf(9000, 9000, 20, 500)}),
		makeFrame(2, map[int]riot.ParticipantFrame{1: pf(14500, 14500, 30, 1800)}),
		makeFrame(3, map[int]riot.ParticipantFrame{1: pf(9500, 9400, 40, 2200)}),
		makeFrame(4, map[int]riot.ParticipantFrame{1: pf(14500, 14500, 50, 2600)}),
	}

	recalls := DetectRecalls(frames, 1, DefaultLaningEndTime, DefaultRecallConfig)
	if len(recalls) != 2 {
		t.Fatalf("got %d recalls, want 2", len(recalls))
	}
	if recalls[0].GoldOnRecall != 1300 {
		t.Errorf("first GoldOnRecall = %d, want 1300 (1800 - 500)", recalls[0].GoldOnRecall)
	}
	if recalls[0].Quality != RecallAcceptable {
		t.Errorf("first Quality = %s, want %s", recalls[0].Quality, RecallAcceptable)
	}
	if recalls[1].GoldOnRecall != 400 {
		t.Errorf("second GoldOnRecall = %d, want 400 (2600 - 2200)", recalls[1].GoldOnRecall)
	}
	if recalls[1].Quality != RecallEarly {
		t.Errorf("second Quality = %s, want %s", recalls[1].Quality, RecallEarly)
	}
}

func TestDetectRecallsSteadyIncomeGradesEarly(t *testing.T) {
	// Seven minutes of steady farm at 300 gold per frame ending in a base
	// trip: only the last frame's income counts, not the cumulative total.
	frames := make([]riot.TimelineFrame, 0, 7)
	for minute := 1; minute <= 6; minute++ {
		frames = append(frames, makeFrame(float64(minute),
			map[int]riot.ParticipantFrame{1: pf(9000, 9000, minute*8, minute*300)}))
	}
	frames = append(frames, makeFrame(7,
		map[int]riot.ParticipantFrame{1: pf(14500, 14500, 56, 2100)}))

	recalls := DetectRecalls(frames, 1, DefaultLaningEndTime, DefaultRecallConfig)
	if len(recalls) != 1 {
		t.Fatalf("got %d recalls, want 1", len(recalls))
	}
	if recalls[0].GoldOnRecall != 300 {
		t.Errorf("GoldOnRecall = %d, want 300", recalls[0].GoldOnRecall)
	}
	if recalls[0].Quality != RecallEarly {
		t.Errorf("Quality = %s, want %s", recalls[0].Quality, RecallEarly)
	}
}

func TestDetectRecallsIgnoresPostLaning(t *testing.T) {
	frames := []riot.TimelineFrame{
		makeFrame(16, map[int]riot.ParticipantFrame{1: pf(14500, 14500, 120, 6000)}),
	}
	recalls := DetectRecalls(frames, 1, DefaultLaningEndTime, DefaultRecallConfig)
	if len(recalls) != 0 {
		t.Errorf("got %d recalls, want 0 past the laning cutoff", len(recalls))
	}
}
