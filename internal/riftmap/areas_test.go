package riftmap

import (
	"testing"

	"timeline-analyzer/internal/riot"
)

func TestInArea(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		area string
		want bool
	}{
		{"dragon pit center", 9800, 4400, AreaDragonPit, true},
		{"dragon pit edge", 9800 + 2500, 4400, AreaDragonPit, true},
		{"outside dragon pit", 9800 + 2600, 4400, AreaDragonPit, false},
		{"baron pit", 5000, 10400, AreaBaronPit, true},
		{"mid lane center", 7410, 7410, AreaMidLane, true},
		{"unknown area name", 7410, 7410, "NOWHERE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InArea(tt.x, tt.y, tt.area); got != tt.want {
				t.Errorf("InArea(%d, %d, %s) = %v, want %v", tt.x, tt.y, tt.area, got, tt.want)
			}
		})
	}
}

func TestAreaAllowsEvent(t *testing.T) {
	baron := MapAreas[AreaBaronPit]
	if !baron.AllowsEvent(riot.EventEliteMonsterKill) {
		t.Error("baron pit should track elite monster kills")
	}
	if baron.AllowsEvent(riot.EventBuildingKill) {
		t.Error("baron pit should not track building kills")
	}

	mid := MapAreas[AreaMidLane]
	if !mid.AllowsEvent(riot.EventBuildingKill) {
		t.Error("mid lane should track building kills")
	}
	if mid.AllowsEvent(riot.EventWardPlaced) {
		t.Error("mid lane should not track ward placements")
	}
}

func TestMapAreasComplete(t *testing.T) {
	for _, name := range AreaNames {
		area, ok := MapAreas[name]
		if !ok {
			t.Fatalf("area %s listed but not defined", name)
		}
		if area.Radius <= 0 {
			t.Errorf("area %s has non-positive radius", name)
		}
		if len(area.EventTypes) == 0 {
			t.Errorf("area %s tracks no event types", name)
		}
	}
}
