package aggregate

import (
	"sort"

	"timeline-analyzer/internal/analysis"
	"timeline-analyzer/internal/riftmap"
)

// AreaAggregate is the cross-match combat record inside one map area.
type AreaAggregate struct {
	Kills             int     `json:"kills"`
	Deaths            int     `json:"deaths"`
	Assists           int     `json:"assists"`
	Events            int     `json:"events"`
	KDA               float64 `json:"kda"`
	GamesWithActivity int     `json:"games_with_activity"`
}

// HeatmapPoint is one death location for heatmap rendering.
type HeatmapPoint struct {
	X            int     `json:"x"`
	Y            int     `json:"y"`
	TimestampMin float64 `json:"timestamp_min"`
}

// LaneRecord is the win record for one lane assignment.
type LaneRecord struct {
	Games                int     `json:"games"`
	Wins                 int     `json:"wins"`
	WinRate              float64 `json:"win_rate"`
	AvgEarlyLanePresence float64 `json:"avg_early_lane_presence"`
}

// Overview is the at-a-glance player summary.
type Overview struct {
	TotalGames     int      `json:"total_games"`
	Wins           int      `json:"wins"`
	WinRatePercent float64  `json:"win_rate_percent"`
	KDA            float64  `json:"kda"`
	MainRole       string   `json:"main_role"`
	TopChampions   []string `json:"top_champions"`
}

// ZoneStoryStats tells the positional story of a player's games: where they
// fight, where they die, and how they fare per lane.
type ZoneStoryStats struct {
	DeathsNearObjectives int                        `json:"deaths_near_objectives"`
	ObjectiveControlRate float64                    `json:"objective_control_rate"`
	AreaStats            map[string]AreaAggregate   `json:"area_stats"`
	DeathHeatmap         []HeatmapPoint             `json:"death_heatmap"`
	RegionTime           map[riftmap.Region]float64 `json:"region_time_percent"`
	LanePerformance      map[string]LaneRecord      `json:"lane_performance"`
	Overview             Overview                   `json:"overview"`
}

// AggregateZoneStory folds the positional parts of each match into one summary.
func AggregateZoneStory(matches []analysis.MatchAnalysisResult) ZoneStoryStats {
	stats := ZoneStoryStats{
		AreaStats:       make(map[string]AreaAggregate),
		RegionTime:      make(map[riftmap.Region]float64),
		LanePerformance: make(map[string]LaneRecord),
	}
	if len(matches) == 0 {
		return stats
	}

	secured, lost := 0, 0
	regionTotals := make(map[riftmap.Region]float64)

	type laneAcc struct {
		games, wins  int
		lanePresence []float64
	}
	lanes := make(map[string]*laneAcc)

	for i := range matches {
		m := &matches[i]

		stats.DeathsNearObjectives += m.DeathMetrics.DeathsNearObjectives
		for _, death := range m.Events.Deaths {
			if death.X > 0 && death.Y > 0 {
				stats.DeathHeatmap = append(stats.DeathHeatmap, HeatmapPoint{
					X: death.X, Y: death.Y, TimestampMin: death.TimestampMin,
				})
			}
		}

		for _, obj := range m.Events.Objectives {
			if obj.Team == "ally" {
				secured++
			} else {
				lost++
			}
		}

		for name, area := range m.Locations.AreaStats {
			agg := stats.AreaStats[name]
			agg.Kills += area.Kills
			agg.Deaths += area.Deaths
			agg.Assists += area.Assists
			agg.Events += area.Events
			if area.Events > 0 {
				agg.GamesWithActivity++
			}
			stats.AreaStats[name] = agg
		}

		for region, percent := range m.RoleMetrics.MapPresence.RegionDistribution {
			regionTotals[region] += percent
		}

		acc := lanes[m.Role]
		if acc == nil {
			acc = &laneAcc{}
			lanes[m.Role] = acc
		}
		acc.games++
		if m.Win {
			acc.wins++
		}
		acc.lanePresence = append(acc.lanePresence, m.RoleMetrics.EarlyLanePresencePercent)
	}

	if secured+lost > 0 {
		stats.ObjectiveControlRate = round1(float64(secured) / float64(secured+lost) * 100)
	}

	for name, agg := range stats.AreaStats {
		deaths := agg.Deaths
		if deaths == 0 {
			deaths = 1
		}
		agg.KDA = round2(float64(agg.Kills+agg.Assists) / float64(deaths))
		stats.AreaStats[name] = agg
	}

	for region, total := range regionTotals {
		stats.RegionTime[region] = round2(total / float64(len(matches)))
	}

	for role, acc := range lanes {
		stats.LanePerformance[role] = LaneRecord{
			Games:                acc.games,
			Wins:                 acc.wins,
			WinRate:              round3(float64(acc.wins) / float64(acc.games)),
			AvgEarlyLanePresence: round1(mean(acc.lanePresence)),
		}
	}

	stats.Overview = buildOverview(matches)
	return stats
}

// buildOverview computes the at-a-glance summary: record, combined KDA, main
// role, and the three most played champions.
func buildOverview(matches []analysis.MatchAnalysisResult) Overview {
	overview := Overview{TotalGames: len(matches)}

	kills, deaths, assists := 0, 0, 0
	roleCounts := make(map[string]int)
	championCounts := make(map[string]int)

	for i := range matches {
		m := &matches[i]
		if m.Win {
			overview.Wins++
		}
		kills += m.Core.Kills
		deaths += m.Core.Deaths
		assists += m.Core.Assists
		roleCounts[m.Role]++
		championCounts[m.ChampionName]++
	}

	overview.WinRatePercent = round1(float64(overview.Wins) / float64(len(matches)) * 100)

	if deaths > 0 {
		overview.KDA = round2(float64(kills+assists) / float64(deaths))
	} else {
		overview.KDA = float64(kills + assists)
	}

	best := 0
	for role, count := range roleCounts {
		if count > best || (count == best && role < overview.MainRole) {
			overview.MainRole = role
			best = count
		}
	}

	champions := make([]string, 0, len(championCounts))
	for champion := range championCounts {
		champions = append(champions, champion)
	}
	sort.Slice(champions, func(i, j int) bool {
		if championCounts[champions[i]] != championCounts[champions[j]] {
			return championCounts[champions[i]] > championCounts[champions[j]]
		}
		return champions[i] < champions[j]
	})
	if len(champions) > 3 {
		champions = champions[:3]
	}
	overview.TopChampions = champions

	return overview
}
