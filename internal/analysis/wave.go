package analysis

import (
	"timeline-analyzer/internal/riftmap"
	"timeline-analyzer/internal/riot"
)

// DefaultLaningEndTime is the laning phase cutoff in minutes.
const DefaultLaningEndTime = 14.0

// WaveState is a heuristic classification of how the player manages the
// minion wave in their lane.
type WaveState string

const (
	WaveFreezing WaveState = "freezing"
	WaveFastPush WaveState = "fast_push"
	WaveSlowPush WaveState = "slow_push"
	WaveCrashed  WaveState = "crashed"
	WaveNeutral  WaveState = "neutral"
	WaveUnknown  WaveState = "unknown"
)

// WaveStateSample is the classification at a single frame.
type WaveStateSample struct {
	TimestampMin float64          `json:"timestamp"`
	Zone         riftmap.LaneZone `json:"zone"`
	WaveState    WaveState        `json:"wave_state"`
	CSRate       float64          `json:"cs_rate"`
}

// csRateWindowMin is the trailing window over which the CS rate is measured.
const csRateWindowMin = 2.0

// DetectWaveState applies the wave heuristics in priority order. csRate is
// CS per minute over the trailing window; timeInZone is seconds since the
// last zone transition.
func DetectWaveState(csRate float64, zone riftmap.LaneZone, timeInZone float64) WaveState {
	switch {
	case zone == riftmap.ZoneOwnTower && timeInZone > 45 && csRate < 7:
		return WaveFreezing
	case csRate > 9 && (zone == riftmap.ZoneMiddle || zone == riftmap.ZoneEnemyTower):
		return WaveFastPush
	case zone == riftmap.ZoneMiddle && csRate > 6 && csRate < 9:
		return WaveSlowPush
	case zone == riftmap.ZoneEnemyTower && timeInZone < 30:
		return WaveCrashed
	case zone == riftmap.ZoneMiddle && csRate > 5 && csRate < 8:
		return WaveNeutral
	}
	return WaveUnknown
}

type csSample struct {
	timeMin float64
	cs      int
}

// ZonePositioning is the per-zone dwell accounting plus the per-frame wave
// state samples for the laning phase.
type ZonePositioning struct {
	ZoneTime   map[riftmap.LaneZone]float64 `json:"zone_time"` // seconds per zone
	WaveStates []WaveStateSample            `json:"wave_states"`
}

// TrackZonePositioning walks the frames up to the laning cutoff, accumulating
// dwell time per lane zone and classifying the wave state at each frame using
// a 2-minute sliding CS window.
func TrackZonePositioning(frames []riot.TimelineFrame, participantID int, role, teamSide string, laningEndTime float64) ZonePositioning {
	result := ZonePositioning{
		ZoneTime: map[riftmap.LaneZone]float64{
			riftmap.ZoneOwnTower:   0,
			riftmap.ZoneMiddle:     0,
			riftmap.ZoneEnemyTower: 0,
			riftmap.ZoneUnknown:    0,
		},
	}

	currentZone := riftmap.ZoneUnknown
	zoneStartSec := 0.0
	var csWindow []csSample
	lastSec := 0.0

	for i := range frames {
		frame := &frames[i]
		tsMin := float64(frame.Timestamp) / 60000
		tsSec := float64(frame.Timestamp) / 1000

		if tsMin > laningEndTime {
			break
		}
		lastSec = tsSec

		pf, ok := frame.Participant(participantID)
		if !ok {
			continue
		}

		x, y := pf.Position.X, pf.Position.Y
		if x <= 0 || y <= 0 {
			continue
		}

		zone := riftmap.GetLaneZone(x, y, role, teamSide)
		if zone != currentZone {
			result.ZoneTime[currentZone] += tsSec - zoneStartSec
			currentZone = zone
			zoneStartSec = tsSec
		}

		// Slide the CS window to the trailing 2 minutes.
		csWindow = append(csWindow, csSample{timeMin: tsMin, cs: pf.CS()})
		keep := csWindow[:0]
		for _, s := range csWindow {
			if tsMin-s.timeMin <= csRateWindowMin {
				keep = append(keep, s)
			}
		}
		csWindow = keep

		csRate := 0.0
		if len(csWindow) >= 2 {
			dt := csWindow[len(csWindow)-1].timeMin - csWindow[0].timeMin
			dcs := csWindow[len(csWindow)-1].cs - csWindow[0].cs
			if dt > 0 {
				csRate = float64(dcs) / dt
			}
		}

		timeInZone := tsSec - zoneStartSec
		result.WaveStates = append(result.WaveStates, WaveStateSample{
			TimestampMin: tsMin,
			Zone:         zone,
			WaveState:    DetectWaveState(csRate, zone, timeInZone),
			CSRate:       round2(csRate),
		})
	}

	// Close out the final zone so dwell times sum to the elapsed window.
	result.ZoneTime[currentZone] += lastSec - zoneStartSec

	return result
}

// ZonePercentages converts zone dwell times to percentages of total time.
func ZonePercentages(zoneTime map[riftmap.LaneZone]float64) map[riftmap.LaneZone]float64 {
	total := 0.0
	for _, t := range zoneTime {
		total += t
	}

	percentages := make(map[riftmap.LaneZone]float64, len(zoneTime))
	for zone, t := range zoneTime {
		if total > 0 {
			percentages[zone] = round1(t / total * 100)
		} else {
			percentages[zone] = 0
		}
	}
	return percentages
}

// WaveStateDistribution counts samples per wave state.
func WaveStateDistribution(samples []WaveStateSample) map[WaveState]int {
	counts := make(map[WaveState]int)
	for _, s := range samples {
		counts[s.WaveState]++
	}
	return counts
}

// CSPoint is one point of the CS differential curve.
type CSPoint struct {
	TimestampMin float64 `json:"timestamp"`
	CS           int     `json:"cs"`
	CSDiff       int     `json:"cs_diff"`
}

// CSDifferentialCurve records the participant's CS (and the differential to
// the lane opponent, when known) per frame up to the laning cutoff.
func CSDifferentialCurve(frames []riot.TimelineFrame, participantID, opponentID int, laningEndTime float64) []CSPoint {
	var curve []CSPoint

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

		csDiff := 0
		if opponentID > 0 {
			if of, ok := frame.Participant(opponentID); ok {
				csDiff = pf.CS() - of.CS()
			}
		}

		curve = append(curve, CSPoint{
			TimestampMin: round1(tsMin),
			CS:           pf.CS(),
			CSDiff:       csDiff,
		})
	}

	return curve
}

// CSTrend classifies the differential curve as improving, declining, or stable
// by comparing the mean differential of the first and second halves.
func CSTrend(curve []CSPoint) string {
	if len(curve) < 4 {
		return "stable"
	}

	mid := len(curve) / 2
	earlySum, lateSum := 0, 0
	for _, p := range curve[:mid] {
		earlySum += p.CSDiff
	}
	for _, p := range curve[mid:] {
		lateSum += p.CSDiff
	}

	earlyAvg := float64(earlySum) / float64(mid)
	lateAvg := float64(lateSum) / float64(mid)

	switch {
	case lateAvg > earlyAvg+5:
		return "improving"
	case lateAvg < earlyAvg-5:
		return "declining"
	}
	return "stable"
}

// WaveManagement is the per-match laning summary assembled from zone
// positioning, recalls, and the CS curve.
type WaveManagement struct {
	LaningEndTime         float64                      `json:"laning_end_time"`
	ZoneTimePercentages   map[riftmap.LaneZone]float64 `json:"zone_time_percentages"`
	TimeNearEnemyTower    float64                      `json:"time_near_enemy_tower"`
	TimeNearOwnTower      float64                      `json:"time_near_own_tower"`
	WaveStateDistribution map[WaveState]int            `json:"wave_state_distribution"`
	Recalls               []RecallEvent                `json:"recalls_during_laning"`
	RecallCount           int                          `json:"recall_count"`
	AvgGoldOnRecall       float64                      `json:"avg_gold_on_recall"`
	GoodRecalls           int                          `json:"good_recalls"`
	EarlyRecalls          int                          `json:"early_recalls"`
	CSDifferentialCurve   []CSPoint                    `json:"cs_differential_curve"`
	AvgCSDifferential     float64                      `json:"avg_cs_differential"`
	CSTrend               string                       `json:"cs_trend"`
	LanePressureScore     float64                      `json:"lane_pressure_score"`
}

// AnalyzeWaveManagement runs the full laning-phase analysis for a participant.
// Missing or malformed timeline data yields a zero-valued summary.
func AnalyzeWaveManagement(timeline *riot.TimelineResponse, participantID int, role, teamSide string, opponentID int, laningEndTime float64) WaveManagement {
	var wm WaveManagement
	if timeline == nil || len(timeline.Info.Frames) == 0 {
		return wm
	}
	if laningEndTime <= 0 {
		laningEndTime = DefaultLaningEndTime
	}

	frames := timeline.Info.Frames

	positioning := TrackZonePositioning(frames, participantID, role, teamSide, laningEndTime)
	recalls := DetectRecalls(frames, participantID, laningEndTime, DefaultRecallConfig)
	curve := CSDifferentialCurve(frames, participantID, opponentID, laningEndTime)

	zonePercentages := ZonePercentages(positioning.ZoneTime)

	wm.LaningEndTime = laningEndTime
	wm.ZoneTimePercentages = zonePercentages
	wm.TimeNearEnemyTower = positioning.ZoneTime[riftmap.ZoneEnemyTower]
	wm.TimeNearOwnTower = positioning.ZoneTime[riftmap.ZoneOwnTower]
	wm.WaveStateDistribution = WaveStateDistribution(positioning.WaveStates)
	wm.Recalls = recalls
	wm.RecallCount = len(recalls)
	wm.CSDifferentialCurve = curve
	wm.CSTrend = CSTrend(curve)
	wm.LanePressureScore = round1(zonePercentages[riftmap.ZoneEnemyTower] - zonePercentages[riftmap.ZoneOwnTower])

	totalRecallGold := 0
	for _, r := range recalls {
		totalRecallGold += r.GoldOnRecall
		switch r.Quality {
		case RecallGoodGold:
			wm.GoodRecalls++
		case RecallEarly:
			wm.EarlyRecalls++
		}
	}
	if len(recalls) > 0 {
		wm.AvgGoldOnRecall = round1(float64(totalRecallGold) / float64(len(recalls)))
	}

	csSum := 0
	csCount := 0
	for _, p := range curve {
		if p.CSDiff != 0 {
			csSum += p.CSDiff
			csCount++
		}
	}
	if csCount > 0 {
		wm.AvgCSDifferential = round1(float64(csSum) / float64(csCount))
	}

	return wm
}
