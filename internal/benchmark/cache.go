// Package benchmark builds and serves per-rank performance baselines used to
// position a player's numbers against their tier.
package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Stat keys tracked per tier and role.
const (
	StatCSPerMin          = "cs_per_min"
	StatVisionScore       = "vision_score"
	StatKDA               = "kda"
	StatCSAt10            = "cs_at_10"
	StatDamagePerMin      = "damage_per_min"
	StatGoldPerMinute     = "gold_per_minute"
	StatKillParticipation = "kill_participation"
)

// StatKeys lists every benchmarked stat.
var StatKeys = []string{
	StatCSPerMin, StatVisionScore, StatKDA, StatCSAt10,
	StatDamagePerMin, StatGoldPerMinute, StatKillParticipation,
}

// DefaultMaxAgeDays is how old a benchmark file may be before it is
// considered stale.
const DefaultMaxAgeDays = 30

// File is the on-disk benchmark format: tier -> role -> stat -> value.
type File struct {
	GeneratedAt     string                                   `json:"generated_at"`
	Region          string                                   `json:"region"`
	Platform        string                                   `json:"platform"`
	MatchesAnalyzed int                                      `json:"matches_analyzed"`
	Benchmarks      map[string]map[string]map[string]float64 `json:"benchmarks"`
}

// Cache holds a loaded benchmark file and answers lookups, falling back to
// the hardcoded tables when the file is missing, stale, or has gaps.
// Safe for concurrent use.
type Cache struct {
	mu         sync.RWMutex
	path       string
	maxAgeDays int
	file       *File
	loadedAt   time.Time
}

// NewCache prepares a cache over the given benchmark file path. maxAgeDays <= 0
// uses the default.
func NewCache(path string, maxAgeDays int) *Cache {
	if maxAgeDays <= 0 {
		maxAgeDays = DefaultMaxAgeDays
	}
	return &Cache{path: path, maxAgeDays: maxAgeDays}
}

// Load reads and parses the benchmark file. A missing file is not an error;
// lookups simply fall through to the hardcoded tables.
func (c *Cache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.file = nil
			return nil
		}
		return fmt.Errorf("read benchmark file %s: %w", c.path, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse benchmark file %s: %w", c.path, err)
	}

	c.file = &file
	c.loadedAt = time.Now()
	return nil
}

// IsStale reports whether the loaded file is older than the max age. An
// unloaded or unparseable timestamp counts as stale.
func (c *Cache) IsStale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isStaleLocked()
}

func (c *Cache) isStaleLocked() bool {
	if c.file == nil {
		return true
	}
	generatedAt, err := time.Parse(time.RFC3339, c.file.GeneratedAt)
	if err != nil {
		return true
	}
	return time.Since(generatedAt) > time.Duration(c.maxAgeDays)*24*time.Hour
}

// Invalidate drops the loaded file so the next lookup uses fallbacks until
// Load is called again.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.file = nil
}

// tierFromRank extracts the tier from a TIER_DIVISION rank string.
func tierFromRank(rank string) string {
	if i := strings.IndexByte(rank, '_'); i > 0 {
		return rank[:i]
	}
	return rank
}

// GetBenchmark returns the baseline value for a stat given the player's role
// and rank string (e.g. GOLD_II). KDA lookups with no role average across the
// tier's roles. Returns false when no baseline exists anywhere.
func (c *Cache) GetBenchmark(statKey, role, rank string) (float64, bool) {
	tier := tierFromRank(rank)

	c.mu.RLock()
	if c.file != nil && !c.isStaleLocked() {
		if byRole, ok := c.file.Benchmarks[tier]; ok {
			if byStat, ok := byRole[role]; ok {
				if v, ok := byStat[statKey]; ok && v != 0 {
					c.mu.RUnlock()
					return v, true
				}
			}
			if statKey == StatKDA {
				values := make([]float64, 0, len(byRole))
				for _, byStat := range byRole {
					if v, ok := byStat[StatKDA]; ok && v != 0 {
						values = append(values, v)
					}
				}
				if len(values) > 0 {
					c.mu.RUnlock()
					return stat.Mean(values, nil), true
				}
			}
		}
	}
	c.mu.RUnlock()

	return fallbackBenchmark(statKey, role, tier)
}

// Percentile positions a player's value against the baseline, as an integer
// percentile clamped to [1, 99]. Returns false when no baseline exists or the
// baseline is zero.
func (c *Cache) Percentile(statKey, role, rank string, playerValue float64) (int, bool) {
	benchmark, ok := c.GetBenchmark(statKey, role, rank)
	if !ok || benchmark == 0 {
		return 0, false
	}

	percentile := int(50 + (playerValue-benchmark)/benchmark*100)
	if percentile < 1 {
		percentile = 1
	}
	if percentile > 99 {
		percentile = 99
	}
	return percentile, true
}
