// Package aggregate folds per-match analysis results into cross-match player
// statistics: averages, trends, per-role and per-champion breakdowns, and
// positional summaries.
package aggregate

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"timeline-analyzer/internal/analysis"
)

// minGamesForRoleStats is the minimum sample size before per-role numbers
// are reported.
const minGamesForRoleStats = 3

// goldLeadThreshold splits matches into ahead/behind/even by the gold
// differential at 15 minutes.
const goldLeadThreshold = 300

// BasicStats are the headline cross-match averages.
type BasicStats struct {
	GamesAnalyzed        int     `json:"games_analyzed"`
	Wins                 int     `json:"wins"`
	WinRate              float64 `json:"win_rate"`
	AvgKDA               float64 `json:"avg_kda"`
	AvgKills             float64 `json:"avg_kills"`
	AvgDeaths            float64 `json:"avg_deaths"`
	AvgAssists           float64 `json:"avg_assists"`
	AvgKillParticipation float64 `json:"avg_kill_participation"`
	AvgDamageShare       float64 `json:"avg_damage_share"`
}

// FarmingStats aggregate creep score numbers.
type FarmingStats struct {
	AvgCSPerMin float64 `json:"avg_cs_per_min"`
	AvgCS       float64 `json:"avg_cs"`
	AvgCSAt10   float64 `json:"avg_cs_at_10"`
	AvgCSAt15   float64 `json:"avg_cs_at_15"`
}

// VisionStats aggregate warding numbers.
type VisionStats struct {
	AvgVisionScore  float64 `json:"avg_vision_score"`
	AvgWardsPlaced  float64 `json:"avg_wards_placed"`
	AvgWardsKilled  float64 `json:"avg_wards_killed"`
	AvgControlWards float64 `json:"avg_control_wards"`
}

// DamageStats aggregate damage output.
type DamageStats struct {
	AvgDamageToChampions float64 `json:"avg_damage_to_champions"`
	AvgDamagePerMin      float64 `json:"avg_damage_per_min"`
}

// EarlyGameStats aggregate the milestone differentials. Averages only cover
// matches where the underlying milestone was actually recorded.
type EarlyGameStats struct {
	AvgCSAt10       float64 `json:"avg_cs_at_10"`
	AvgGoldDiffAt10 float64 `json:"avg_gold_diff_at_10"`
	AvgGoldDiffAt15 float64 `json:"avg_gold_diff_at_15"`
	AvgXPDiffAt10   float64 `json:"avg_xp_diff_at_10"`
}

// ChampionPerformance is one champion's cross-match record.
type ChampionPerformance struct {
	Champion string  `json:"champion"`
	Games    int     `json:"games"`
	Wins     int     `json:"wins"`
	WinRate  float64 `json:"win_rate"`
	AvgKDA   float64 `json:"avg_kda"`
}

// MonthlyTrend is one calendar month's record.
type MonthlyTrend struct {
	Month   string  `json:"month"` // YYYY-MM
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
	AvgKDA  float64 `json:"avg_kda"`
}

// RolePerformance is one role's cross-match record.
type RolePerformance struct {
	Games       int     `json:"games"`
	WinRate     float64 `json:"win_rate"`
	AvgKDA      float64 `json:"avg_kda"`
	AvgCSPerMin float64 `json:"avg_cs_per_min"`
}

// ContextRecord is the win record within one early-game context bucket.
type ContextRecord struct {
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// ContextualPerformance splits outcomes by the gold standing at 15 minutes.
type ContextualPerformance struct {
	Ahead  ContextRecord `json:"when_ahead"`
	Behind ContextRecord `json:"when_behind"`
	Even   ContextRecord `json:"when_even"`
}

// TradingAggregate summarizes laning trades across matches.
type TradingAggregate struct {
	GamesWithData         int     `json:"games_with_data"`
	AvgDamageDealtInLane  float64 `json:"avg_damage_dealt_in_lane"`
	AvgDamageTakenInLane  float64 `json:"avg_damage_taken_in_lane"`
	AvgDamageDifferential float64 `json:"avg_damage_differential"`
	AvgTradesPerGame      float64 `json:"avg_trades_per_game"`
	AvgMitigationRatio    float64 `json:"avg_mitigation_ratio"`
}

// WaveAggregate summarizes wave management across matches.
type WaveAggregate struct {
	GamesWithData         int                        `json:"games_with_data"`
	AvgLanePressureScore  float64                    `json:"avg_lane_pressure_score"`
	AvgRecallsPerGame     float64                    `json:"avg_recalls_per_game"`
	GoodRecallRate        float64                    `json:"good_recall_rate"`
	AvgCSDifferential     float64                    `json:"avg_cs_differential"`
	CSTrendDistribution   map[string]int             `json:"cs_trend_distribution"`
	WaveStateDistribution map[analysis.WaveState]int `json:"wave_state_distribution"`
}

// RoleAnalytics are the movement numbers reported per role once the sample
// is large enough.
type RoleAnalytics struct {
	Games                 int     `json:"games"`
	AvgEarlyLanePresence  float64 `json:"avg_early_lane_presence"`
	AvgRoamsPer10Min      float64 `json:"avg_roams_per_10min"`
	AvgJungleTimePercent  float64 `json:"avg_jungle_time_percent"`
	AvgTimeRoamingPercent float64 `json:"avg_time_roaming_percent"`
}

// EconomicStats aggregate gold usage.
type EconomicStats struct {
	AvgGoldPerMin     float64 `json:"avg_gold_per_min"`
	AvgGoldEfficiency float64 `json:"avg_gold_efficiency"` // damage per gold earned
}

// ObjectiveControl aggregates team objective takedowns seen in the player's games.
type ObjectiveControl struct {
	AvgAllyObjectives  float64 `json:"avg_ally_objectives"`
	AvgEnemyObjectives float64 `json:"avg_enemy_objectives"`
	ControlRate        float64 `json:"control_rate"` // ally / (ally + enemy) * 100
	AvgThrows          float64 `json:"avg_objective_throws"`
}

// LaneDominance aggregates how often and how hard the player wins lane.
type LaneDominance struct {
	AvgGoldDiffAt10 float64 `json:"avg_gold_diff_at_10"`
	AvgGoldDiffAt15 float64 `json:"avg_gold_diff_at_15"`
	LaneWinRate     float64 `json:"lane_win_rate"` // share of games ahead at 15
}

// MacroStats aggregate deaths and tower play.
type MacroStats struct {
	AvgDeaths             float64        `json:"avg_deaths"`
	DeathTimings          map[string]int `json:"death_timings"`
	AvgDeathClusters      float64        `json:"avg_death_clusters"`
	AvgObjectiveDeathRate float64        `json:"avg_objective_death_rate"`
	AvgAllyTowers         float64        `json:"avg_ally_towers"`
	TowerParticipation    float64        `json:"tower_participation"` // share of ally towers assisted
}

// AggregatedPlayerStats is the full cross-match profile.
type AggregatedPlayerStats struct {
	PUUID       string    `json:"puuid"`
	GeneratedAt time.Time `json:"generated_at"`

	Basic        BasicStats                 `json:"basic"`
	Farming      FarmingStats               `json:"farming"`
	Vision       VisionStats                `json:"vision"`
	Damage       DamageStats                `json:"damage"`
	EarlyGame    EarlyGameStats             `json:"early_game"`
	Champions    []ChampionPerformance      `json:"champion_performance"`
	Roles        map[string]int             `json:"role_distribution"`
	PrimaryRole  string                     `json:"primary_role"`
	Monthly      []MonthlyTrend             `json:"monthly_trends"`
	RolePerf     map[string]RolePerformance `json:"role_performance"`
	Contextual   ContextualPerformance      `json:"contextual_performance"`
	Trading      TradingAggregate           `json:"trading"`
	Wave         WaveAggregate              `json:"wave_management"`
	RoleSpecific map[string]RoleAnalytics   `json:"role_analytics"`
	Economy      EconomicStats              `json:"economy"`
	Objectives   ObjectiveControl           `json:"objective_control"`
	Lane         LaneDominance              `json:"lane_dominance"`
	Macro        MacroStats                 `json:"macro"`
	Zones        ZoneStoryStats             `json:"zones"`
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// Aggregate folds per-match results into a single player profile. An empty
// input yields a zero profile with GamesAnalyzed 0.
func Aggregate(puuid string, matches []analysis.MatchAnalysisResult) AggregatedPlayerStats {
	agg := AggregatedPlayerStats{
		PUUID:       puuid,
		GeneratedAt: time.Now().UTC(),
		Roles:       make(map[string]int),
		RolePerf:    make(map[string]RolePerformance),
	}
	if len(matches) == 0 {
		return agg
	}

	agg.Basic = aggregateBasic(matches)
	agg.Farming = aggregateFarming(matches)
	agg.Vision = aggregateVision(matches)
	agg.Damage = aggregateDamage(matches)
	agg.EarlyGame = aggregateEarlyGame(matches)
	agg.Champions = aggregateChampions(matches)
	agg.Roles, agg.PrimaryRole = aggregateRoles(matches)
	agg.Monthly = aggregateMonthly(matches)
	agg.RolePerf = aggregateRolePerformance(matches)
	agg.Contextual = aggregateContextual(matches)
	agg.Trading = aggregateTrading(matches)
	agg.Wave = aggregateWave(matches)
	agg.RoleSpecific = aggregateRoleAnalytics(matches)
	agg.Economy = aggregateEconomy(matches)
	agg.Objectives = aggregateObjectives(matches)
	agg.Lane = aggregateLaneDominance(matches)
	agg.Macro = aggregateMacro(matches)
	agg.Zones = AggregateZoneStory(matches)
	return agg
}

func aggregateBasic(matches []analysis.MatchAnalysisResult) BasicStats {
	n := len(matches)
	var kdas, kills, deaths, assists, kp, share []float64
	wins := 0
	for i := range matches {
		m := &matches[i]
		if m.Win {
			wins++
		}
		kdas = append(kdas, m.Core.KDA)
		kills = append(kills, float64(m.Core.Kills))
		deaths = append(deaths, float64(m.Core.Deaths))
		assists = append(assists, float64(m.Core.Assists))
		kp = append(kp, m.Core.KillParticipation)
		share = append(share, m.Core.DamageShare)
	}

	return BasicStats{
		GamesAnalyzed:        n,
		Wins:                 wins,
		WinRate:              round3(float64(wins) / float64(n)),
		AvgKDA:               round2(mean(kdas)),
		AvgKills:             round2(mean(kills)),
		AvgDeaths:            round2(mean(deaths)),
		AvgAssists:           round2(mean(assists)),
		AvgKillParticipation: round3(mean(kp)),
		AvgDamageShare:       round3(mean(share)),
	}
}

func aggregateFarming(matches []analysis.MatchAnalysisResult) FarmingStats {
	var csPerMin, cs, csAt10, csAt15 []float64
	for i := range matches {
		m := &matches[i]
		csPerMin = append(csPerMin, m.Core.CSPerMin)
		cs = append(cs, float64(m.Core.CS))
		if m.Milestones.CSAt10 > 0 {
			csAt10 = append(csAt10, float64(m.Milestones.CSAt10))
		}
		if m.Milestones.CSAt15 > 0 {
			csAt15 = append(csAt15, float64(m.Milestones.CSAt15))
		}
	}
	return FarmingStats{
		AvgCSPerMin: round2(mean(csPerMin)),
		AvgCS:       round1(mean(cs)),
		AvgCSAt10:   round1(mean(csAt10)),
		AvgCSAt15:   round1(mean(csAt15)),
	}
}

func aggregateVision(matches []analysis.MatchAnalysisResult) VisionStats {
	var score, placed, killed, control []float64
	for i := range matches {
		m := &matches[i]
		score = append(score, float64(m.Core.VisionScore))
		placed = append(placed, float64(m.Core.WardsPlaced))
		killed = append(killed, float64(m.Core.WardsKilled))
		control = append(control, float64(m.Core.ControlWards))
	}
	return VisionStats{
		AvgVisionScore:  round1(mean(score)),
		AvgWardsPlaced:  round1(mean(placed)),
		AvgWardsKilled:  round1(mean(killed)),
		AvgControlWards: round1(mean(control)),
	}
}

func aggregateDamage(matches []analysis.MatchAnalysisResult) DamageStats {
	var total, perMin []float64
	for i := range matches {
		total = append(total, float64(matches[i].Core.DamageToChampions))
		perMin = append(perMin, matches[i].Core.DamagePerMin)
	}
	return DamageStats{
		AvgDamageToChampions: round1(mean(total)),
		AvgDamagePerMin:      round1(mean(perMin)),
	}
}

func aggregateEarlyGame(matches []analysis.MatchAnalysisResult) EarlyGameStats {
	var csAt10, goldDiff10, goldDiff15, xpDiff10 []float64
	for i := range matches {
		ms := &matches[i].Milestones
		if ms.CSAt10 > 0 {
			csAt10 = append(csAt10, float64(ms.CSAt10))
		}
		if ms.GoldDiffAt10 != 0 {
			goldDiff10 = append(goldDiff10, float64(ms.GoldDiffAt10))
		}
		if ms.GoldDiffAt15 != 0 {
			goldDiff15 = append(goldDiff15, float64(ms.GoldDiffAt15))
		}
		if ms.XPDiffAt10 != 0 {
			xpDiff10 = append(xpDiff10, float64(ms.XPDiffAt10))
		}
	}
	return EarlyGameStats{
		AvgCSAt10:       round1(mean(csAt10)),
		AvgGoldDiffAt10: round1(mean(goldDiff10)),
		AvgGoldDiffAt15: round1(mean(goldDiff15)),
		AvgXPDiffAt10:   round1(mean(xpDiff10)),
	}
}

func aggregateChampions(matches []analysis.MatchAnalysisResult) []ChampionPerformance {
	type record struct {
		games, wins int
		kdas        []float64
	}
	byChampion := make(map[string]*record)
	for i := range matches {
		m := &matches[i]
		rec := byChampion[m.ChampionName]
		if rec == nil {
			rec = &record{}
			byChampion[m.ChampionName] = rec
		}
		rec.games++
		if m.Win {
			rec.wins++
		}
		rec.kdas = append(rec.kdas, m.Core.KDA)
	}

	performances := make([]ChampionPerformance, 0, len(byChampion))
	for champion, rec := range byChampion {
		performances = append(performances, ChampionPerformance{
			Champion: champion,
			Games:    rec.games,
			Wins:     rec.wins,
			WinRate:  round3(float64(rec.wins) / float64(rec.games)),
			AvgKDA:   round2(mean(rec.kdas)),
		})
	}
	sort.Slice(performances, func(i, j int) bool {
		if performances[i].Games != performances[j].Games {
			return performances[i].Games > performances[j].Games
		}
		return performances[i].Champion < performances[j].Champion
	})
	if len(performances) > 10 {
		performances = performances[:10]
	}
	return performances
}

func aggregateRoles(matches []analysis.MatchAnalysisResult) (map[string]int, string) {
	distribution := make(map[string]int)
	for i := range matches {
		distribution[matches[i].Role]++
	}

	primary := ""
	best := 0
	for role, count := range distribution {
		if count > best || (count == best && role < primary) {
			primary = role
			best = count
		}
	}
	return distribution, primary
}

func aggregateMonthly(matches []analysis.MatchAnalysisResult) []MonthlyTrend {
	type record struct {
		games, wins int
		kdas        []float64
	}
	byMonth := make(map[string]*record)
	for i := range matches {
		m := &matches[i]
		month := time.UnixMilli(m.GameCreation).UTC().Format("2006-01")
		rec := byMonth[month]
		if rec == nil {
			rec = &record{}
			byMonth[month] = rec
		}
		rec.games++
		if m.Win {
			rec.wins++
		}
		rec.kdas = append(rec.kdas, m.Core.KDA)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	trends := make([]MonthlyTrend, 0, len(months))
	for _, month := range months {
		rec := byMonth[month]
		trends = append(trends, MonthlyTrend{
			Month:   month,
			Games:   rec.games,
			Wins:    rec.wins,
			WinRate: round3(float64(rec.wins) / float64(rec.games)),
			AvgKDA:  round2(mean(rec.kdas)),
		})
	}
	return trends
}

func aggregateRolePerformance(matches []analysis.MatchAnalysisResult) map[string]RolePerformance {
	type record struct {
		games, wins     int
		kdas, csPerMins []float64
	}
	byRole := make(map[string]*record)
	for i := range matches {
		m := &matches[i]
		rec := byRole[m.Role]
		if rec == nil {
			rec = &record{}
			byRole[m.Role] = rec
		}
		rec.games++
		if m.Win {
			rec.wins++
		}
		rec.kdas = append(rec.kdas, m.Core.KDA)
		rec.csPerMins = append(rec.csPerMins, m.Core.CSPerMin)
	}

	performance := make(map[string]RolePerformance)
	for role, rec := range byRole {
		if rec.games < minGamesForRoleStats {
			continue
		}
		performance[role] = RolePerformance{
			Games:       rec.games,
			WinRate:     round3(float64(rec.wins) / float64(rec.games)),
			AvgKDA:      round2(mean(rec.kdas)),
			AvgCSPerMin: round2(mean(rec.csPerMins)),
		}
	}
	return performance
}

func aggregateContextual(matches []analysis.MatchAnalysisResult) ContextualPerformance {
	var ctx ContextualPerformance
	bump := func(rec *ContextRecord, win bool) {
		rec.Games++
		if win {
			rec.Wins++
		}
	}
	for i := range matches {
		m := &matches[i]
		switch diff := m.Milestones.GoldDiffAt15; {
		case diff >= goldLeadThreshold:
			bump(&ctx.Ahead, m.Win)
		case diff <= -goldLeadThreshold:
			bump(&ctx.Behind, m.Win)
		default:
			bump(&ctx.Even, m.Win)
		}
	}
	finish := func(rec *ContextRecord) {
		if rec.Games > 0 {
			rec.WinRate = round3(float64(rec.Wins) / float64(rec.Games))
		}
	}
	finish(&ctx.Ahead)
	finish(&ctx.Behind)
	finish(&ctx.Even)
	return ctx
}

func aggregateTrading(matches []analysis.MatchAnalysisResult) TradingAggregate {
	var dealt, taken, diff, trades, mitigation []float64
	for i := range matches {
		t := matches[i].Trading
		if t == nil {
			continue
		}
		dealt = append(dealt, float64(t.DamageDealtInLane))
		taken = append(taken, float64(t.DamageTakenInLane))
		diff = append(diff, float64(t.DamageDifferential))
		trades = append(trades, float64(t.TradesDetected))
		mitigation = append(mitigation, t.MitigationRatio)
	}
	return TradingAggregate{
		GamesWithData:         len(dealt),
		AvgDamageDealtInLane:  round1(mean(dealt)),
		AvgDamageTakenInLane:  round1(mean(taken)),
		AvgDamageDifferential: round1(mean(diff)),
		AvgTradesPerGame:      round1(mean(trades)),
		AvgMitigationRatio:    round2(mean(mitigation)),
	}
}

func aggregateWave(matches []analysis.MatchAnalysisResult) WaveAggregate {
	agg := WaveAggregate{
		CSTrendDistribution:   make(map[string]int),
		WaveStateDistribution: make(map[analysis.WaveState]int),
	}
	var pressure, recalls, csDiff []float64
	goodRecalls, totalRecalls := 0, 0
	for i := range matches {
		w := matches[i].Wave
		if w == nil {
			continue
		}
		agg.GamesWithData++
		pressure = append(pressure, w.LanePressureScore)
		recalls = append(recalls, float64(w.RecallCount))
		csDiff = append(csDiff, w.AvgCSDifferential)
		goodRecalls += w.GoodRecalls
		totalRecalls += w.RecallCount
		agg.CSTrendDistribution[w.CSTrend]++
		for state, count := range w.WaveStateDistribution {
			agg.WaveStateDistribution[state] += count
		}
	}
	agg.AvgLanePressureScore = round1(mean(pressure))
	agg.AvgRecallsPerGame = round1(mean(recalls))
	agg.AvgCSDifferential = round1(mean(csDiff))
	if totalRecalls > 0 {
		agg.GoodRecallRate = round3(float64(goodRecalls) / float64(totalRecalls))
	}
	return agg
}

func aggregateRoleAnalytics(matches []analysis.MatchAnalysisResult) map[string]RoleAnalytics {
	type record struct {
		games                               int
		lane, roams, jungle, roamingPercent []float64
	}
	byRole := make(map[string]*record)
	for i := range matches {
		m := &matches[i]
		rec := byRole[m.Role]
		if rec == nil {
			rec = &record{}
			byRole[m.Role] = rec
		}
		rec.games++
		rec.lane = append(rec.lane, m.RoleMetrics.EarlyLanePresencePercent)
		rec.roams = append(rec.roams, m.RoleMetrics.Roaming.RoamsPer10Min)
		rec.jungle = append(rec.jungle, m.RoleMetrics.JungleTimePercent)
		rec.roamingPercent = append(rec.roamingPercent, m.RoleMetrics.Roaming.TimeRoamingPercent)
	}

	analytics := make(map[string]RoleAnalytics)
	for role, rec := range byRole {
		if rec.games < minGamesForRoleStats {
			continue
		}
		analytics[role] = RoleAnalytics{
			Games:                 rec.games,
			AvgEarlyLanePresence:  round1(mean(rec.lane)),
			AvgRoamsPer10Min:      round2(mean(rec.roams)),
			AvgJungleTimePercent:  round1(mean(rec.jungle)),
			AvgTimeRoamingPercent: round1(mean(rec.roamingPercent)),
		}
	}
	return analytics
}

func aggregateEconomy(matches []analysis.MatchAnalysisResult) EconomicStats {
	var goldPerMin, efficiency []float64
	for i := range matches {
		m := &matches[i]
		goldPerMin = append(goldPerMin, m.Core.GoldPerMin)
		gold := m.Core.GoldEarned
		if gold == 0 {
			gold = 1
		}
		efficiency = append(efficiency, float64(m.Core.DamageToChampions)/float64(gold))
	}
	return EconomicStats{
		AvgGoldPerMin:     round1(mean(goldPerMin)),
		AvgGoldEfficiency: round2(mean(efficiency)),
	}
}

func aggregateObjectives(matches []analysis.MatchAnalysisResult) ObjectiveControl {
	var ally, enemy, throws []float64
	allyTotal, enemyTotal := 0, 0
	for i := range matches {
		m := &matches[i]
		a, e := 0, 0
		for _, obj := range m.Events.Objectives {
			if obj.Team == "ally" {
				a++
			} else {
				e++
			}
		}
		ally = append(ally, float64(a))
		enemy = append(enemy, float64(e))
		throws = append(throws, float64(len(m.Events.ObjectiveThrows)))
		allyTotal += a
		enemyTotal += e
	}

	control := ObjectiveControl{
		AvgAllyObjectives:  round1(mean(ally)),
		AvgEnemyObjectives: round1(mean(enemy)),
		AvgThrows:          round2(mean(throws)),
	}
	if allyTotal+enemyTotal > 0 {
		control.ControlRate = round1(float64(allyTotal) / float64(allyTotal+enemyTotal) * 100)
	}
	return control
}

func aggregateLaneDominance(matches []analysis.MatchAnalysisResult) LaneDominance {
	var diff10, diff15 []float64
	laneWins, laneGames := 0, 0
	for i := range matches {
		ms := &matches[i].Milestones
		if ms.GoldDiffAt10 != 0 {
			diff10 = append(diff10, float64(ms.GoldDiffAt10))
		}
		if ms.GoldDiffAt15 != 0 {
			diff15 = append(diff15, float64(ms.GoldDiffAt15))
			laneGames++
			if ms.GoldDiffAt15 > 0 {
				laneWins++
			}
		}
	}
	dominance := LaneDominance{
		AvgGoldDiffAt10: round1(mean(diff10)),
		AvgGoldDiffAt15: round1(mean(diff15)),
	}
	if laneGames > 0 {
		dominance.LaneWinRate = round3(float64(laneWins) / float64(laneGames))
	}
	return dominance
}

func aggregateMacro(matches []analysis.MatchAnalysisResult) MacroStats {
	macro := MacroStats{
		DeathTimings: map[string]int{"0-10": 0, "10-20": 0, "20-30": 0, "30+": 0},
	}
	var deaths, clusters, objRate, allyTowers []float64
	assistedTowers, allyTowerTotal := 0, 0
	for i := range matches {
		m := &matches[i]
		deaths = append(deaths, float64(m.DeathMetrics.TotalDeaths))
		clusters = append(clusters, float64(m.DeathMetrics.DeathClusters))
		objRate = append(objRate, m.DeathMetrics.ObjectiveDeathRate)
		for bucket, count := range m.DeathMetrics.DeathTimings {
			macro.DeathTimings[bucket] += count
		}

		ally := 0
		for _, tower := range m.Events.Turrets {
			if tower.Team != "ally" {
				continue
			}
			ally++
			if tower.Assisted {
				assistedTowers++
			}
		}
		allyTowers = append(allyTowers, float64(ally))
		allyTowerTotal += ally
	}

	macro.AvgDeaths = round1(mean(deaths))
	macro.AvgDeathClusters = round2(mean(clusters))
	macro.AvgObjectiveDeathRate = round1(mean(objRate))
	macro.AvgAllyTowers = round1(mean(allyTowers))
	if allyTowerTotal > 0 {
		macro.TowerParticipation = round3(float64(assistedTowers) / float64(allyTowerTotal))
	}
	return macro
}
