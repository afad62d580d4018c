package benchmark

// Fallback benchmark tables, used when no benchmark file exists or the file
// has gone stale. Values are per-role averages observed across ranked play;
// KDA varies little by role so it is keyed by tier only.

var fallbackCSPerMin = map[string]map[string]float64{
	"TOP": {
		"IRON": 4.2, "BRONZE": 4.6, "SILVER": 5.0, "GOLD": 5.4, "PLATINUM": 5.8,
		"EMERALD": 6.1, "DIAMOND": 6.5, "MASTER": 6.9, "GRANDMASTER": 7.2, "CHALLENGER": 7.5,
	},
	"JUNGLE": {
		"IRON": 3.5, "BRONZE": 3.8, "SILVER": 4.1, "GOLD": 4.4, "PLATINUM": 4.7,
		"EMERALD": 5.0, "DIAMOND": 5.2, "MASTER": 5.5, "GRANDMASTER": 5.7, "CHALLENGER": 5.9,
	},
	"MIDDLE": {
		"IRON": 4.5, "BRONZE": 5.0, "SILVER": 5.5, "GOLD": 6.0, "PLATINUM": 6.4,
		"EMERALD": 6.8, "DIAMOND": 7.2, "MASTER": 7.5, "GRANDMASTER": 7.8, "CHALLENGER": 8.0,
	},
	"BOTTOM": {
		"IRON": 4.8, "BRONZE": 5.3, "SILVER": 5.8, "GOLD": 6.3, "PLATINUM": 6.8,
		"EMERALD": 7.2, "DIAMOND": 7.6, "MASTER": 7.9, "GRANDMASTER": 8.1, "CHALLENGER": 8.3,
	},
	"UTILITY": {
		"IRON": 1.0, "BRONZE": 1.1, "SILVER": 1.2, "GOLD": 1.3, "PLATINUM": 1.4,
		"EMERALD": 1.5, "DIAMOND": 1.6, "MASTER": 1.7, "GRANDMASTER": 1.7, "CHALLENGER": 1.8,
	},
}

var fallbackCSAt10 = map[string]map[string]float64{
	"TOP": {
		"IRON": 52, "BRONZE": 56, "SILVER": 60, "GOLD": 63, "PLATINUM": 66,
		"EMERALD": 69, "DIAMOND": 72, "MASTER": 74, "GRANDMASTER": 76, "CHALLENGER": 78,
	},
	"JUNGLE": {
		"IRON": 48, "BRONZE": 51, "SILVER": 54, "GOLD": 57, "PLATINUM": 60,
		"EMERALD": 62, "DIAMOND": 64, "MASTER": 66, "GRANDMASTER": 68, "CHALLENGER": 70,
	},
	"MIDDLE": {
		"IRON": 56, "BRONZE": 60, "SILVER": 64, "GOLD": 67, "PLATINUM": 70,
		"EMERALD": 73, "DIAMOND": 76, "MASTER": 78, "GRANDMASTER": 80, "CHALLENGER": 82,
	},
	"BOTTOM": {
		"IRON": 58, "BRONZE": 62, "SILVER": 66, "GOLD": 69, "PLATINUM": 72,
		"EMERALD": 75, "DIAMOND": 78, "MASTER": 81, "GRANDMASTER": 83, "CHALLENGER": 85,
	},
	"UTILITY": {
		"IRON": 8, "BRONZE": 9, "SILVER": 10, "GOLD": 11, "PLATINUM": 12,
		"EMERALD": 13, "DIAMOND": 13, "MASTER": 14, "GRANDMASTER": 14, "CHALLENGER": 15,
	},
}

var fallbackVisionScore = map[string]map[string]float64{
	"TOP": {
		"IRON": 18, "BRONZE": 20, "SILVER": 22, "GOLD": 24, "PLATINUM": 26,
		"EMERALD": 27, "DIAMOND": 29, "MASTER": 30, "GRANDMASTER": 31, "CHALLENGER": 32,
	},
	"JUNGLE": {
		"IRON": 28, "BRONZE": 31, "SILVER": 34, "GOLD": 37, "PLATINUM": 40,
		"EMERALD": 42, "DIAMOND": 44, "MASTER": 46, "GRANDMASTER": 47, "CHALLENGER": 48,
	},
	"MIDDLE": {
		"IRON": 20, "BRONZE": 22, "SILVER": 25, "GOLD": 27, "PLATINUM": 29,
		"EMERALD": 31, "DIAMOND": 33, "MASTER": 34, "GRANDMASTER": 35, "CHALLENGER": 36,
	},
	"BOTTOM": {
		"IRON": 22, "BRONZE": 24, "SILVER": 27, "GOLD": 29, "PLATINUM": 31,
		"EMERALD": 33, "DIAMOND": 35, "MASTER": 36, "GRANDMASTER": 37, "CHALLENGER": 38,
	},
	"UTILITY": {
		"IRON": 55, "BRONZE": 60, "SILVER": 66, "GOLD": 71, "PLATINUM": 76,
		"EMERALD": 81, "DIAMOND": 86, "MASTER": 90, "GRANDMASTER": 93, "CHALLENGER": 95,
	},
}

var fallbackKDA = map[string]float64{
	"IRON": 1.8, "BRONZE": 2.0, "SILVER": 2.2, "GOLD": 2.4, "PLATINUM": 2.6,
	"EMERALD": 2.8, "DIAMOND": 3.0, "MASTER": 3.2, "GRANDMASTER": 3.4, "CHALLENGER": 3.6,
}

// fallbackBenchmark returns the hardcoded value for a stat/role/tier, when one
// exists.
func fallbackBenchmark(statKey, role, tier string) (float64, bool) {
	var table map[string]map[string]float64
	switch statKey {
	case StatCSPerMin:
		table = fallbackCSPerMin
	case StatCSAt10:
		table = fallbackCSAt10
	case StatVisionScore:
		table = fallbackVisionScore
	case StatKDA:
		v, ok := fallbackKDA[tier]
		return v, ok
	default:
		return 0, false
	}

	byTier, ok := table[role]
	if !ok {
		return 0, false
	}
	v, ok := byTier[tier]
	return v, ok
}
