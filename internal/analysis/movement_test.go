package analysis

import (
	"testing"

	"timeline-analyzer/internal/riftmap"
	"timeline-analyzer/internal/riot"
)

func positionsTimeline(pid int, positions ...riot.Position) *riot.TimelineResponse {
	frames := make([]riot.TimelineFrame, len(positions))
	for i, pos := range positions {
		frames[i] = makeFrame(float64(i+1), map[int]riot.ParticipantFrame{
			pid: {Position: pos},
		})
	}
	return &riot.TimelineResponse{Info: riot.TimelineInfo{Frames: frames}}
}

func TestTrackMapPresence(t *testing.T) {
	timeline := positionsTimeline(1,
		riot.Position{X: 7400, Y: 7400}, // mid
		riot.Position{X: 7400, Y: 7400}, // mid
		riot.Position{X: 2000, Y: 13000}, // top
		riot.Position{X: 0, Y: 0},        // dead, skipped
	)

	presence := TrackMapPresence(timeline, 1)

	if presence.FramesTracked != 3 {
		t.Fatalf("FramesTracked = %d, want 3", presence.FramesTracked)
	}
	if got := presence.RegionDistribution[riftmap.RegionMidLane]; got != 66.67 {
		t.Errorf("mid lane share = %.2f, want 66.67", got)
	}
	if got := presence.RegionDistribution[riftmap.RegionTopLane]; got != 33.33 {
		t.Errorf("top lane share = %.2f, want 33.33", got)
	}
	if presence.TotalDistance <= 0 {
		t.Error("expected nonzero distance traveled")
	}
}

func TestAnalyzeRoaming(t *testing.T) {
	// Mid laner: two frames home, two away, one home, one away again.
	timeline := positionsTimeline(1,
		riot.Position{X: 7400, Y: 7400},
		riot.Position{X: 7400, Y: 7400},
		riot.Position{X: 2000, Y: 13000},
		riot.Position{X: 2000, Y: 13000},
		riot.Position{X: 7400, Y: 7400},
		riot.Position{X: 13000, Y: 2000},
	)

	roaming := AnalyzeRoaming(timeline, 1, "MIDDLE")

	// Staying away does not re-count: two distinct departures.
	if roaming.RoamCount != 2 {
		t.Errorf("RoamCount = %d, want 2", roaming.RoamCount)
	}
	if roaming.TimeInLanePercent != 50 {
		t.Errorf("TimeInLanePercent = %.1f, want 50", roaming.TimeInLanePercent)
	}
	if roaming.TimeRoamingPercent != 50 {
		t.Errorf("TimeRoamingPercent = %.1f, want 50", roaming.TimeRoamingPercent)
	}
}

func TestAnalyzeRoamingUnknownRole(t *testing.T) {
	timeline := positionsTimeline(1, riot.Position{X: 7400, Y: 7400})
	roaming := AnalyzeRoaming(timeline, 1, "UNKNOWN")
	if roaming.RoamCount != 0 {
		t.Error("unknown role should produce zero roaming stats")
	}
}

func TestEarlyLanePresence(t *testing.T) {
	timeline := positionsTimeline(1,
		riot.Position{X: 7400, Y: 7400},
		riot.Position{X: 7400, Y: 7400},
		riot.Position{X: 7400, Y: 7400},
		riot.Position{X: 2000, Y: 13000},
	)

	if got := EarlyLanePresence(timeline, 1, "MIDDLE"); got != 75 {
		t.Errorf("EarlyLanePresence = %.1f, want 75", got)
	}
	if got := EarlyLanePresence(timeline, 1, "JUNGLE"); got != 0 {
		t.Errorf("jungler lane presence = %.1f, want 0", got)
	}
}

func TestJungleTime(t *testing.T) {
	timeline := positionsTimeline(1,
		riot.Position{X: 3500, Y: 8500},  // jungle
		riot.Position{X: 7400, Y: 7400},  // mid
	)

	if got := JungleTime(timeline, 1); got != 50 {
		t.Errorf("JungleTime = %.1f, want 50", got)
	}
}

func TestExtractRoleMetrics(t *testing.T) {
	timeline := positionsTimeline(1,
		riot.Position{X: 7400, Y: 7400},
		riot.Position{X: 7400, Y: 7400},
	)

	metrics := ExtractRoleMetrics(timeline, 1, "MIDDLE")
	if metrics.Role != "MIDDLE" || metrics.ParticipantID != 1 {
		t.Errorf("metrics identity = %s/%d, want MIDDLE/1", metrics.Role, metrics.ParticipantID)
	}
	if metrics.MapPresence.FramesTracked != 2 {
		t.Errorf("FramesTracked = %d, want 2", metrics.MapPresence.FramesTracked)
	}
	if metrics.EarlyLanePresencePercent != 100 {
		t.Errorf("EarlyLanePresencePercent = %.1f, want 100", metrics.EarlyLanePresencePercent)
	}
}
