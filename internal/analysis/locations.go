package analysis

import (
	"timeline-analyzer/internal/riftmap"
	"timeline-analyzer/internal/riot"
)

// AreaEvent is one event that landed inside a tracked map area and involved
// the participant.
type AreaEvent struct {
	TimestampMin float64        `json:"timestamp_min"`
	Type         riot.EventType `json:"type"`
	X            int            `json:"x"`
	Y            int            `json:"y"`
	KillerID     int            `json:"killer_id,omitempty"`
	VictimID     int            `json:"victim_id,omitempty"`
}

// AreaStats is the participant's combat record inside one map area.
type AreaStats struct {
	Kills   int     `json:"kills"`
	Deaths  int     `json:"deaths"`
	Assists int     `json:"assists"`
	Events  int     `json:"events"`
	KDA     float64 `json:"kda"`
}

// LocationAnalysis is the per-area breakdown for one match.
type LocationAnalysis struct {
	AreaEvents map[string][]AreaEvent `json:"area_events"`
	AreaStats  map[string]AreaStats   `json:"area_stats"`
}

// AnalyzeLocations buckets the participant's events into the tracked map
// areas. An event is kept only when it carries a real position, sits inside
// the area circle, and is on the area's allow-list.
func AnalyzeLocations(timeline *riot.TimelineResponse, participantID int) LocationAnalysis {
	analysis := LocationAnalysis{
		AreaEvents: make(map[string][]AreaEvent, len(riftmap.AreaNames)),
		AreaStats:  make(map[string]AreaStats, len(riftmap.AreaNames)),
	}
	if timeline == nil {
		return analysis
	}

	for i := range timeline.Info.Frames {
		for _, e := range timeline.Info.Frames[i].Events {
			if e.Position.X <= 0 || e.Position.Y <= 0 {
				continue
			}
			if !e.Involves(participantID) {
				continue
			}

			for _, name := range riftmap.AreaNames {
				area := riftmap.MapAreas[name]
				if !area.AllowsEvent(e.Type) {
					continue
				}
				if !riftmap.InArea(e.Position.X, e.Position.Y, name) {
					continue
				}

				analysis.AreaEvents[name] = append(analysis.AreaEvents[name], AreaEvent{
					TimestampMin: round1(float64(e.Timestamp) / 60000),
					Type:         e.Type,
					X:            e.Position.X,
					Y:            e.Position.Y,
					KillerID:     e.KillerID,
					VictimID:     e.VictimID,
				})

				stats := analysis.AreaStats[name]
				stats.Events++
				if e.Type == riot.EventChampionKill {
					switch {
					case e.KillerID == participantID:
						stats.Kills++
					case e.VictimID == participantID:
						stats.Deaths++
					default:
						stats.Assists++
					}
				}
				analysis.AreaStats[name] = stats
			}
		}
	}

	for name, stats := range analysis.AreaStats {
		deaths := stats.Deaths
		if deaths == 0 {
			deaths = 1
		}
		stats.KDA = round2(float64(stats.Kills+stats.Assists) / float64(deaths))
		analysis.AreaStats[name] = stats
	}

	return analysis
}
