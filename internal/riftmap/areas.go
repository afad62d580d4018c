package riftmap

import "timeline-analyzer/internal/riot"

// Area is a named circular map area used by the location pipeline. Events are
// kept only when they fall inside the circle and their type is in the allow-list.
type Area struct {
	Name       string
	Center     Point
	Radius     float64
	EventTypes []riot.EventType
}

// Area names.
const (
	AreaBaronPit   = "BARON_PIT"
	AreaDragonPit  = "DRAGON_PIT"
	AreaTopLane    = "TOP_LANE"
	AreaMidLane    = "MID_LANE"
	AreaBotLane    = "BOT_LANE"
	AreaBlueJungle = "BLUE_JUNGLE"
	AreaRedJungle  = "RED_JUNGLE"
)

// AreaNames lists the areas in a stable iteration order.
var AreaNames = []string{
	AreaBaronPit, AreaDragonPit,
	AreaTopLane, AreaMidLane, AreaBotLane,
	AreaBlueJungle, AreaRedJungle,
}

var objectiveAreaEvents = []riot.EventType{
	riot.EventChampionKill, riot.EventEliteMonsterKill, riot.EventWardPlaced, riot.EventWardKill,
}

var laneAreaEvents = []riot.EventType{
	riot.EventChampionKill, riot.EventBuildingKill, riot.EventLevelUp,
}

var jungleAreaEvents = []riot.EventType{
	riot.EventChampionKill, riot.EventEliteMonsterKill, riot.EventWardPlaced,
}

// MapAreas is the area definition table.
var MapAreas = map[string]Area{
	AreaBaronPit: {
		Name:       AreaBaronPit,
		Center:     ObjectiveLocations[ObjectiveBaron],
		Radius:     2500,
		EventTypes: objectiveAreaEvents,
	},
	AreaDragonPit: {
		Name:       AreaDragonPit,
		Center:     ObjectiveLocations[ObjectiveDragon],
		Radius:     2500,
		EventTypes: objectiveAreaEvents,
	},
	AreaTopLane: {
		Name:       AreaTopLane,
		Center:     Point{X: 3000, Y: 12000},
		Radius:     4000,
		EventTypes: laneAreaEvents,
	},
	AreaMidLane: {
		Name:       AreaMidLane,
		Center:     Point{X: 7410, Y: 7410},
		Radius:     4000,
		EventTypes: laneAreaEvents,
	},
	AreaBotLane: {
		Name:       AreaBotLane,
		Center:     Point{X: 12000, Y: 3000},
		Radius:     4000,
		EventTypes: laneAreaEvents,
	},
	AreaBlueJungle: {
		Name:       AreaBlueJungle,
		Center:     Point{X: 5000, Y: 7000},
		Radius:     3500,
		EventTypes: jungleAreaEvents,
	},
	AreaRedJungle: {
		Name:       AreaRedJungle,
		Center:     Point{X: 9820, Y: 7820},
		Radius:     3500,
		EventTypes: jungleAreaEvents,
	},
}

// InArea reports whether the point lies inside the named area's circle.
func InArea(x, y int, areaName string) bool {
	area, ok := MapAreas[areaName]
	if !ok {
		return false
	}
	return Distance(x, y, area.Center.X, area.Center.Y) <= area.Radius
}

// AllowsEvent reports whether the area tracks the given event type.
func (a *Area) AllowsEvent(t riot.EventType) bool {
	for _, et := range a.EventTypes {
		if et == t {
			return true
		}
	}
	return false
}
