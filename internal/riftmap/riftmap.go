// Package riftmap classifies Summoner's Rift coordinates into semantic zones:
// map regions (lanes, jungle, river), lane-relative tower zones, and proximity
// to fixed objectives. All classification is pure and side-effect free.
package riftmap

import "math"

// MapSize is the side length of Summoner's Rift in game units.
const MapSize = 14820

// Region is a coarse map region.
type Region string

const (
	RegionTopLane Region = "TOP_LANE"
	RegionMidLane Region = "MID_LANE"
	RegionBotLane Region = "BOT_LANE"
	RegionJungle  Region = "JUNGLE"
	RegionRiver   Region = "RIVER"
)

// Regions lists all map regions.
var Regions = []Region{RegionTopLane, RegionMidLane, RegionBotLane, RegionJungle, RegionRiver}

type boundingBox struct {
	xMin, xMax, yMin, yMax int
}

func (b boundingBox) contains(x, y int) bool {
	return b.xMin <= x && x <= b.xMax && b.yMin <= y && y <= b.yMax
}

var (
	topLaneBox = boundingBox{0, 6000, 10000, MapSize}
	botLaneBox = boundingBox{10000, MapSize, 0, 6000}
	midLaneBox = boundingBox{4000, 10820, 4000, 10820}
	riverBox   = boundingBox{6000, 8820, 6000, 8820}
)

// GetRegion maps a coordinate to its region. Boxes overlap, so the check order
// is fixed: top, bot, mid, river; anything else is jungle.
func GetRegion(x, y int) Region {
	switch {
	case topLaneBox.contains(x, y):
		return RegionTopLane
	case botLaneBox.contains(x, y):
		return RegionBotLane
	case midLaneBox.contains(x, y):
		return RegionMidLane
	case riverBox.contains(x, y):
		return RegionRiver
	}
	return RegionJungle
}

// RoleHomeRegions maps a role to the regions it is expected to occupy.
// Leaving all of them counts as a roam.
var RoleHomeRegions = map[string][]Region{
	"TOP":     {RegionTopLane},
	"MIDDLE":  {RegionMidLane},
	"BOTTOM":  {RegionBotLane},
	"UTILITY": {RegionBotLane, RegionRiver, RegionJungle},
	"JUNGLE":  {RegionJungle, RegionRiver},
}

// RoleLaneRegion maps a laning role to its home lane. Junglers have none.
var RoleLaneRegion = map[string]Region{
	"TOP":     RegionTopLane,
	"MIDDLE":  RegionMidLane,
	"BOTTOM":  RegionBotLane,
	"UTILITY": RegionBotLane,
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return math.Sqrt(dx*dx + dy*dy)
}

// LaneZone is a lane-relative position classification.
type LaneZone string

const (
	ZoneOwnTower   LaneZone = "own_tower"
	ZoneMiddle     LaneZone = "middle"
	ZoneEnemyTower LaneZone = "enemy_tower"
	ZoneUnknown    LaneZone = "unknown"
)

// LaneZones lists the lane-relative zones in dwell-time tracking order.
var LaneZones = []LaneZone{ZoneOwnTower, ZoneMiddle, ZoneEnemyTower, ZoneUnknown}

// Lane position thresholds. Top lane splits on x, bot lane on y, and mid lane
// on x+y since it runs along the diagonal. The comparison direction flips for
// the red side.
const (
	EarlyTowerX     = 4500
	LateTowerX      = 10300
	EarlyTowerY     = 4500
	LateTowerY      = 10300
	MidLaneEarlySum = 12000
	MidLaneLateSum  = 17640
)

func topLaneZone(x int, teamSide string) LaneZone {
	if teamSide == "blue" {
		switch {
		case x < EarlyTowerX:
			return ZoneOwnTower
		case x > LateTowerX:
			return ZoneEnemyTower
		}
		return ZoneMiddle
	}
	switch {
	case x > LateTowerX:
		return ZoneOwnTower
	case x < EarlyTowerX:
		return ZoneEnemyTower
	}
	return ZoneMiddle
}

func midLaneZone(x, y int, teamSide string) LaneZone {
	sum := x + y
	if teamSide == "blue" {
		switch {
		case sum < MidLaneEarlySum:
			return ZoneOwnTower
		case sum > MidLaneLateSum:
			return ZoneEnemyTower
		}
		return ZoneMiddle
	}
	switch {
	case sum > MidLaneLateSum:
		return ZoneOwnTower
	case sum < MidLaneEarlySum:
		return ZoneEnemyTower
	}
	return ZoneMiddle
}

func botLaneZone(y int, teamSide string) LaneZone {
	if teamSide == "blue" {
		switch {
		case y < EarlyTowerY:
			return ZoneOwnTower
		case y > LateTowerY:
			return ZoneEnemyTower
		}
		return ZoneMiddle
	}
	switch {
	case y > LateTowerY:
		return ZoneOwnTower
	case y < EarlyTowerY:
		return ZoneEnemyTower
	}
	return ZoneMiddle
}

// GetLaneZone classifies a lane position relative to the player's own tower.
// Roles without a fixed lane axis (jungle, unknown) return ZoneUnknown.
func GetLaneZone(x, y int, role, teamSide string) LaneZone {
	switch role {
	case "TOP":
		return topLaneZone(x, teamSide)
	case "MIDDLE":
		return midLaneZone(x, y, teamSide)
	case "BOTTOM":
		return botLaneZone(y, teamSide)
	}
	return ZoneUnknown
}

// Objective names.
const (
	ObjectiveBaron             = "BARON"
	ObjectiveDragon            = "DRAGON"
	ObjectiveRiftHerald        = "RIFT_HERALD"
	ObjectiveBlueNexus         = "BLUE_NEXUS"
	ObjectiveRedNexus          = "RED_NEXUS"
	ObjectiveBlueBaseTurret    = "BLUE_BASE_TURRET"
	ObjectiveRedBaseTurret     = "RED_BASE_TURRET"
	ObjectiveBlueMidInhibTower = "BLUE_MID_INHIB_TURRET"
	ObjectiveRedMidInhibTower  = "RED_MID_INHIB_TURRET"
)

// Point is a fixed map coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ObjectiveLocations holds the fixed coordinates of contestable objectives and
// key structures. Baron and Herald share a pit.
var ObjectiveLocations = map[string]Point{
	ObjectiveBaron:             {X: 5000, Y: 10400},
	ObjectiveDragon:            {X: 9800, Y: 4400},
	ObjectiveRiftHerald:        {X: 5000, Y: 10400},
	ObjectiveBlueNexus:         {X: 1748, Y: 1748},
	ObjectiveRedNexus:          {X: 13172, Y: 13172},
	ObjectiveBlueBaseTurret:    {X: 3651, Y: 3696},
	ObjectiveRedBaseTurret:     {X: 11261, Y: 11397},
	ObjectiveBlueMidInhibTower: {X: 5048, Y: 4812},
	ObjectiveRedMidInhibTower:  {X: 9767, Y: 10113},
}

// ObjectiveProximityThreshold is the default "near an objective" radius.
const ObjectiveProximityThreshold = 3000

// objectiveScanOrder fixes the scan order so ties resolve the same way on
// every call: Baron and Herald share a pit, and Baron wins it.
var objectiveScanOrder = []string{
	ObjectiveBaron, ObjectiveDragon, ObjectiveRiftHerald,
	ObjectiveBlueNexus, ObjectiveRedNexus,
	ObjectiveBlueBaseTurret, ObjectiveRedBaseTurret,
	ObjectiveBlueMidInhibTower, ObjectiveRedMidInhibTower,
}

// NearestObjective scans the objective table and returns the closest entry.
func NearestObjective(x, y int) (name string, distance float64) {
	minDist := math.Inf(1)
	for _, objName := range objectiveScanOrder {
		pos := ObjectiveLocations[objName]
		d := Distance(x, y, pos.X, pos.Y)
		if d < minDist {
			minDist = d
			name = objName
		}
	}
	return name, minDist
}

// ObjectiveProximity is the result of a near-objective check.
type ObjectiveProximity struct {
	NearObjective bool    `json:"near_objective"`
	ObjectiveName string  `json:"objective_name,omitempty"`
	Distance      float64 `json:"distance"`
}

// IsNearObjective reports whether the point lies within threshold units of the
// nearest objective. A threshold <= 0 uses the default.
func IsNearObjective(x, y, threshold int) ObjectiveProximity {
	if threshold <= 0 {
		threshold = ObjectiveProximityThreshold
	}

	name, dist := NearestObjective(x, y)
	prox := ObjectiveProximity{Distance: math.Round(dist*10) / 10}
	if dist < float64(threshold) {
		prox.NearObjective = true
		prox.ObjectiveName = name
	}
	return prox
}

// Fountain bounding boxes, used for recall detection. The blue fountain sits in
// the bottom-left corner, the red fountain in the top-right.
const (
	BlueFountainMax = 1300
	RedFountainMin  = 13500
)

// AtFountain reports whether the point is inside either team's fountain.
func AtFountain(x, y int) bool {
	return (x < BlueFountainMax && y < BlueFountainMax) ||
		(x > RedFountainMin && y > RedFountainMin)
}
