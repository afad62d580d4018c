package riot

import "testing"

func TestDetectRole(t *testing.T) {
	tests := []struct {
		name               string
		teamPosition       string
		individualPosition string
		want               string
	}{
		{"team position set", "TOP", "", "TOP"},
		{"mid alias", "MID", "", "MIDDLE"},
		{"bot alias", "BOT", "", "BOTTOM"},
		{"support alias", "SUPPORT", "", "UTILITY"},
		{"fallback to individual", "", "JUNGLE", "JUNGLE"},
		{"both empty", "", "", "UNKNOWN"},
		{"garbage position", "FEEDER", "", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &MatchParticipant{
				TeamPosition:       tt.teamPosition,
				IndividualPosition: tt.individualPosition,
			}
			if got := DetectRole(p); got != tt.want {
				t.Errorf("DetectRole(%q, %q) = %q, want %q",
					tt.teamPosition, tt.individualPosition, got, tt.want)
			}
		})
	}
}

func TestTeamSide(t *testing.T) {
	if got := TeamSide(100); got != "blue" {
		t.Errorf("TeamSide(100) = %q, want blue", got)
	}
	if got := TeamSide(200); got != "red" {
		t.Errorf("TeamSide(200) = %q, want red", got)
	}
}

func TestIsCompletedItem(t *testing.T) {
	tests := []struct {
		itemID int
		want   bool
	}{
		{3031, true},  // Infinity Edge
		{3000, true},  // boundary
		{2999, false}, // component range
		{1001, false}, // boots
		{0, false},
	}

	for _, tt := range tests {
		if got := IsCompletedItem(tt.itemID); got != tt.want {
			t.Errorf("IsCompletedItem(%d) = %v, want %v", tt.itemID, got, tt.want)
		}
	}
}

func TestRankString(t *testing.T) {
	entries := []LeagueEntryResponse{
		{QueueType: "RANKED_FLEX_SR", Tier: "SILVER", Rank: "I"},
		{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Rank: "II"},
	}
	if got := RankString(entries); got != "GOLD_II" {
		t.Errorf("RankString = %q, want GOLD_II", got)
	}

	if got := RankString(nil); got != "UNRANKED" {
		t.Errorf("RankString(nil) = %q, want UNRANKED", got)
	}
	flexOnly := []LeagueEntryResponse{{QueueType: "RANKED_FLEX_SR", Tier: "SILVER", Rank: "I"}}
	if got := RankString(flexOnly); got != "UNRANKED" {
		t.Errorf("RankString(flex only) = %q, want UNRANKED", got)
	}
}

func TestEventInvolves(t *testing.T) {
	e := TimelineEvent{
		Type:                    EventChampionKill,
		KillerID:                3,
		VictimID:                7,
		AssistingParticipantIDs: []int{1, 2},
	}

	for _, id := range []int{1, 2, 3, 7} {
		if !e.Involves(id) {
			t.Errorf("Involves(%d) = false, want true", id)
		}
	}
	if e.Involves(5) {
		t.Error("Involves(5) = true, want false")
	}
}

func TestFrameParticipant(t *testing.T) {
	frame := TimelineFrame{
		ParticipantFrames: map[string]ParticipantFrame{
			"3": {MinionsKilled: 40, JungleMinionsKilled: 4},
		},
	}

	pf, ok := frame.Participant(3)
	if !ok {
		t.Fatal("Participant(3) not found")
	}
	if got := pf.CS(); got != 44 {
		t.Errorf("CS() = %d, want 44", got)
	}

	if _, ok := frame.Participant(5); ok {
		t.Error("Participant(5) found, want missing")
	}
}
