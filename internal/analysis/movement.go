package analysis

import (
	"math"

	"timeline-analyzer/internal/riftmap"
	"timeline-analyzer/internal/riot"
)

// earlyGameFrames is how many leading frames count as "early game" for lane
// presence (~15 minutes at one frame per minute).
const earlyGameFrames = 15

// MapPresence summarizes where a participant spent the match.
type MapPresence struct {
	RegionDistribution map[riftmap.Region]float64 `json:"region_distribution"` // percent per region
	TotalDistance      float64                    `json:"total_distance_traveled"`
	DistancePerMinute  float64                    `json:"distance_per_minute"`
	FramesTracked      int                        `json:"frames_tracked"`
}

// Roaming summarizes home-region vs away behavior.
type Roaming struct {
	RoamCount          int     `json:"roam_count"`
	TimeInLanePercent  float64 `json:"time_in_lane_percent"`
	TimeRoamingPercent float64 `json:"time_roaming_percent"`
	RoamsPer10Min      float64 `json:"roams_per_10min"`
}

// RoleMetrics bundles the movement analytics for one participant.
type RoleMetrics struct {
	Role                     string      `json:"role"`
	ParticipantID            int         `json:"participant_id"`
	MapPresence              MapPresence `json:"map_presence"`
	Roaming                  Roaming     `json:"roaming"`
	EarlyLanePresencePercent float64     `json:"early_lane_presence_percent"`
	JungleTimePercent        float64     `json:"jungle_time_percent"`
}

// TrackMapPresence accumulates per-region dwell time and total distance from
// the frame sequence. Frames with a zero position (dead/not spawned) are skipped.
func TrackMapPresence(timeline *riot.TimelineResponse, participantID int) MapPresence {
	presence := MapPresence{RegionDistribution: make(map[riftmap.Region]float64)}
	if timeline == nil || len(timeline.Info.Frames) == 0 {
		return presence
	}

	regionTime := make(map[riftmap.Region]int, len(riftmap.Regions))
	var totalDistance float64
	havePrev := false
	var prevX, prevY int

	for i := range timeline.Info.Frames {
		frame := &timeline.Info.Frames[i]
		pf, ok := frame.Participant(participantID)
		if !ok {
			continue
		}

		x, y := pf.Position.X, pf.Position.Y
		if x == 0 && y == 0 {
			continue
		}

		regionTime[riftmap.GetRegion(x, y)]++

		if havePrev {
			totalDistance += riftmap.Distance(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
		havePrev = true
	}

	totalFrames := 0
	for _, t := range regionTime {
		totalFrames += t
	}
	if totalFrames == 0 {
		return presence
	}

	for _, region := range riftmap.Regions {
		presence.RegionDistribution[region] = round2(float64(regionTime[region]) / float64(totalFrames) * 100)
	}
	presence.TotalDistance = round2(totalDistance)
	presence.DistancePerMinute = round2(totalDistance / float64(totalFrames))
	presence.FramesTracked = totalFrames
	return presence
}

// AnalyzeRoaming runs the two-state home/away machine over the frame sequence.
// A HOME->AWAY transition counts one roam; staying away does not re-count.
func AnalyzeRoaming(timeline *riot.TimelineResponse, participantID int, role string) Roaming {
	var roaming Roaming
	homeRegions, ok := riftmap.RoleHomeRegions[role]
	if timeline == nil || !ok {
		return roaming
	}

	roamCount := 0
	inRoam := false
	framesRoaming := 0
	framesHome := 0

	for i := range timeline.Info.Frames {
		frame := &timeline.Info.Frames[i]
		pf, ok := frame.Participant(participantID)
		if !ok {
			continue
		}

		x, y := pf.Position.X, pf.Position.Y
		if x == 0 && y == 0 {
			continue
		}

		region := riftmap.GetRegion(x, y)
		isHome := false
		for _, home := range homeRegions {
			if region == home {
				isHome = true
				break
			}
		}

		if isHome {
			framesHome++
			inRoam = false
		} else {
			framesRoaming++
			if !inRoam {
				roamCount++
				inRoam = true
			}
		}
	}

	totalFrames := framesHome + framesRoaming
	if totalFrames == 0 {
		return roaming
	}

	roaming.RoamCount = roamCount
	roaming.TimeInLanePercent = round2(float64(framesHome) / float64(totalFrames) * 100)
	roaming.TimeRoamingPercent = round2(float64(framesRoaming) / float64(totalFrames) * 100)
	roaming.RoamsPer10Min = round2(float64(roamCount) / float64(totalFrames) * 10)
	return roaming
}

// EarlyLanePresence returns the percentage of the first 15 frames spent in the
// role's home lane. Roles without a lane (jungle) return 0.
func EarlyLanePresence(timeline *riot.TimelineResponse, participantID int, role string) float64 {
	homeRegion, ok := riftmap.RoleLaneRegion[role]
	if timeline == nil || !ok {
		return 0
	}

	frames := timeline.Info.Frames
	if len(frames) > earlyGameFrames {
		frames = frames[:earlyGameFrames]
	}

	framesInLane := 0
	totalFrames := 0
	for i := range frames {
		pf, ok := frames[i].Participant(participantID)
		if !ok {
			continue
		}

		x, y := pf.Position.X, pf.Position.Y
		if x == 0 && y == 0 {
			continue
		}

		totalFrames++
		if riftmap.GetRegion(x, y) == homeRegion {
			framesInLane++
		}
	}

	if totalFrames == 0 {
		return 0
	}
	return round2(float64(framesInLane) / float64(totalFrames) * 100)
}

// JungleTime returns the percentage of tracked frames spent in the jungle.
func JungleTime(timeline *riot.TimelineResponse, participantID int) float64 {
	if timeline == nil {
		return 0
	}

	jungleFrames := 0
	totalFrames := 0
	for i := range timeline.Info.Frames {
		pf, ok := timeline.Info.Frames[i].Participant(participantID)
		if !ok {
			continue
		}

		x, y := pf.Position.X, pf.Position.Y
		if x == 0 && y == 0 {
			continue
		}

		totalFrames++
		if riftmap.GetRegion(x, y) == riftmap.RegionJungle {
			jungleFrames++
		}
	}

	if totalFrames == 0 {
		return 0
	}
	return round2(float64(jungleFrames) / float64(totalFrames) * 100)
}

// ExtractRoleMetrics runs all movement analytics for one participant.
func ExtractRoleMetrics(timeline *riot.TimelineResponse, participantID int, role string) RoleMetrics {
	return RoleMetrics{
		Role:                     role,
		ParticipantID:            participantID,
		MapPresence:              TrackMapPresence(timeline, participantID),
		Roaming:                  AnalyzeRoaming(timeline, participantID, role),
		EarlyLanePresencePercent: EarlyLanePresence(timeline, participantID, role),
		JungleTimePercent:        JungleTime(timeline, participantID),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
