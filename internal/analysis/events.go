package analysis

import (
	"sort"

	"timeline-analyzer/internal/riftmap"
	"timeline-analyzer/internal/riot"
)

// DeathEvent is one death of the tracked participant, annotated with the
// nearest objective when position data is present.
type DeathEvent struct {
	TimestampMin  float64                     `json:"timestamp_min"`
	X             int                         `json:"x"`
	Y             int                         `json:"y"`
	KillerID      int                         `json:"killer_id"`
	AssistCount   int                         `json:"assist_count"`
	NearObjective *riftmap.ObjectiveProximity `json:"near_objective,omitempty"`
}

// ItemCompletion records the purchase of a completed item.
type ItemCompletion struct {
	TimestampMin float64 `json:"timestamp_min"`
	ItemID       int     `json:"item_id"`
}

// ObjectiveEvent is an elite monster takedown by either team.
type ObjectiveEvent struct {
	TimestampMin float64 `json:"timestamp_min"`
	Type         string  `json:"type"` // BARON_NASHOR, DRAGON, RIFTHERALD
	Team         string  `json:"team"` // ally or enemy
}

// TurretEvent is a tower destruction. Team is "ally" when the player's team
// gained the tower. Assisted marks towers the player took part in.
type TurretEvent struct {
	TimestampMin float64 `json:"timestamp_min"`
	Team         string  `json:"team"`
	Assisted     bool    `json:"assisted"`
}

// ObjectiveThrow pairs a death with an enemy objective secured shortly after.
type ObjectiveThrow struct {
	DeathTimeMin     float64 `json:"death_time_min"`
	ObjectiveTimeMin float64 `json:"objective_time_min"`
	ObjectiveType    string  `json:"objective_type"`
}

// MatchEvents is everything extracted from the event stream for one participant.
type MatchEvents struct {
	Deaths          []DeathEvent     `json:"deaths"`
	ItemCompletions []ItemCompletion `json:"item_completions"`
	Objectives      []ObjectiveEvent `json:"objectives"`
	Turrets         []TurretEvent    `json:"turrets"`
	ObjectiveThrows []ObjectiveThrow `json:"objective_throws"`
}

// throwWindowMin is how long after a death an enemy objective still counts
// as a consequence of that death.
const throwWindowMin = 1.5

var throwObjectiveTypes = map[string]bool{
	"BARON_NASHOR": true,
	"DRAGON":       true,
	"RIFTHERALD":   true,
}

// ExtractEvents scans the full event stream for one participant's deaths,
// completed items, objective takedowns, and turret trades, then correlates
// deaths with enemy objectives to flag throws.
func ExtractEvents(timeline *riot.TimelineResponse, participantID, teamID int) MatchEvents {
	var events MatchEvents
	if timeline == nil {
		return events
	}

	for i := range timeline.Info.Frames {
		for _, e := range timeline.Info.Frames[i].Events {
			tsMin := float64(e.Timestamp) / 60000

			switch e.Type {
			case riot.EventChampionKill:
				if e.VictimID != participantID {
					continue
				}
				death := DeathEvent{
					TimestampMin: round1(tsMin),
					X:            e.Position.X,
					Y:            e.Position.Y,
					KillerID:     e.KillerID,
					AssistCount:  len(e.AssistingParticipantIDs),
				}
				if e.Position.X > 0 && e.Position.Y > 0 {
					prox := riftmap.IsNearObjective(e.Position.X, e.Position.Y, riftmap.ObjectiveProximityThreshold)
					death.NearObjective = &prox
				}
				events.Deaths = append(events.Deaths, death)

			case riot.EventItemPurchased:
				if e.ParticipantID == participantID && riot.IsCompletedItem(e.ItemID) {
					events.ItemCompletions = append(events.ItemCompletions, ItemCompletion{
						TimestampMin: round1(tsMin),
						ItemID:       e.ItemID,
					})
				}

			case riot.EventEliteMonsterKill:
				team := "enemy"
				if e.KillerTeamID == teamID {
					team = "ally"
				}
				events.Objectives = append(events.Objectives, ObjectiveEvent{
					TimestampMin: round1(tsMin),
					Type:         e.MonsterType,
					Team:         team,
				})

			case riot.EventBuildingKill:
				if e.BuildingType != "TOWER_BUILDING" {
					continue
				}
				// TeamID on the event is the building's owner, so an enemy
				// building falling is a gain for the player's team.
				team := "enemy"
				if e.TeamID != teamID {
					team = "ally"
				}
				assisted := e.KillerID == participantID
				if !assisted {
					for _, id := range e.AssistingParticipantIDs {
						if id == participantID {
							assisted = true
							break
						}
					}
				}
				events.Turrets = append(events.Turrets, TurretEvent{
					TimestampMin: round1(tsMin),
					Team:         team,
					Assisted:     assisted,
				})
			}
		}
	}

	events.ObjectiveThrows = findObjectiveThrows(events.Deaths, events.Objectives)
	return events
}

// findObjectiveThrows flags deaths that were followed within the throw window
// by an enemy baron, dragon, or herald.
func findObjectiveThrows(deaths []DeathEvent, objectives []ObjectiveEvent) []ObjectiveThrow {
	var throws []ObjectiveThrow
	for _, obj := range objectives {
		if obj.Team != "enemy" || !throwObjectiveTypes[obj.Type] {
			continue
		}
		for _, death := range deaths {
			gap := obj.TimestampMin - death.TimestampMin
			if gap > 0 && gap <= throwWindowMin {
				throws = append(throws, ObjectiveThrow{
					DeathTimeMin:     death.TimestampMin,
					ObjectiveTimeMin: obj.TimestampMin,
					ObjectiveType:    obj.Type,
				})
			}
		}
	}
	return throws
}

// DeathMetrics summarizes a participant's deaths: when they happened, how
// often they chained together, and how many were near contested objectives.
type DeathMetrics struct {
	TotalDeaths          int            `json:"total_deaths"`
	DeathTimings         map[string]int `json:"death_timings"`
	DeathClusters        int            `json:"death_clusters"`
	ClusteredDeaths      int            `json:"clustered_deaths"`
	DeathsNearObjectives int            `json:"deaths_near_objectives"`
	ObjectiveDeathRate   float64        `json:"objective_death_rate"`
}

// deathClusterGapMin is the maximum gap between consecutive deaths for them
// to count as one cluster.
const deathClusterGapMin = 2.0

// ComputeDeathMetrics buckets deaths into game phases and detects clusters of
// deaths in quick succession.
func ComputeDeathMetrics(deaths []DeathEvent) DeathMetrics {
	metrics := DeathMetrics{
		TotalDeaths: len(deaths),
		DeathTimings: map[string]int{
			"0-10": 0, "10-20": 0, "20-30": 0, "30+": 0,
		},
	}

	times := make([]float64, 0, len(deaths))
	for _, d := range deaths {
		times = append(times, d.TimestampMin)
		switch {
		case d.TimestampMin <= 10:
			metrics.DeathTimings["0-10"]++
		case d.TimestampMin <= 20:
			metrics.DeathTimings["10-20"]++
		case d.TimestampMin <= 30:
			metrics.DeathTimings["20-30"]++
		default:
			metrics.DeathTimings["30+"]++
		}

		if d.NearObjective != nil && d.NearObjective.NearObjective {
			metrics.DeathsNearObjectives++
		}
	}

	// Every consecutive pair within the gap counts as its own cluster, so a
	// chain of n quick deaths yields n-1 clusters.
	sort.Float64s(times)
	for i := 1; i < len(times); i++ {
		if times[i]-times[i-1] <= deathClusterGapMin {
			metrics.DeathClusters++
			metrics.ClusteredDeaths += 2
		}
	}

	if len(deaths) > 0 {
		metrics.ObjectiveDeathRate = round1(float64(metrics.DeathsNearObjectives) / float64(len(deaths)) * 100)
	}
	return metrics
}
