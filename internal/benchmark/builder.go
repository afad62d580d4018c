package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"timeline-analyzer/internal/analysis"
	"timeline-analyzer/internal/riot"
)

// BuildConfig controls the benchmark sampling run.
type BuildConfig struct {
	PlayersPerTier   int
	MatchesPerPlayer int
	MatchesPerTier   int // cap on unique matches analyzed per tier
	Workers          int
	Region           string
	Platform         string
	OutputPath       string
}

// DefaultBuildConfig is sized to stay inside dev-key rate limits for an
// overnight run.
var DefaultBuildConfig = BuildConfig{
	PlayersPerTier:   20,
	MatchesPerPlayer: 10,
	MatchesPerTier:   100,
	Workers:          4,
	Region:           "americas",
	Platform:         "na1",
	OutputPath:       "benchmarks.json",
}

// expected unique matches across a full run, for bloom sizing
const expectedMatches = 100000

type sampleJob struct {
	matchID string
	puuid   string
	tier    string
}

type statAccumulator struct {
	mu     sync.Mutex
	values map[string]map[string]map[string][]float64 // tier -> role -> stat -> samples
	count  int
}

func (a *statAccumulator) add(tier, role string, stats map[string]float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.values[tier] == nil {
		a.values[tier] = make(map[string]map[string][]float64)
	}
	if a.values[tier][role] == nil {
		a.values[tier][role] = make(map[string][]float64)
	}
	for key, v := range stats {
		a.values[tier][role][key] = append(a.values[tier][role][key], v)
	}
	a.count++
}

// Build samples ranked players per tier, analyzes their recent matches, and
// averages the tracked stats into per-tier per-role baselines.
func Build(ctx context.Context, client *riot.Client, cfg BuildConfig) (*File, error) {
	if cfg.PlayersPerTier <= 0 {
		cfg.PlayersPerTier = DefaultBuildConfig.PlayersPerTier
	}
	if cfg.MatchesPerPlayer <= 0 {
		cfg.MatchesPerPlayer = DefaultBuildConfig.MatchesPerPlayer
	}
	if cfg.MatchesPerTier <= 0 {
		cfg.MatchesPerTier = DefaultBuildConfig.MatchesPerTier
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultBuildConfig.Workers
	}

	seen := bloom.NewWithEstimates(expectedMatches, 0.01)
	acc := &statAccumulator{values: make(map[string]map[string]map[string][]float64)}

	for _, tier := range riot.RankTiers {
		jobs, err := collectTierJobs(ctx, client, seen, tier, cfg)
		if err != nil {
			log.Printf("[Benchmarks] %s: sampling failed: %v", tier, err)
			continue
		}
		log.Printf("[Benchmarks] %s: analyzing %d matches", tier, len(jobs))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Workers)
		for _, job := range jobs {
			job := job
			g.Go(func() error {
				if err := analyzeJob(gctx, client, job, acc); err != nil {
					log.Printf("[Benchmarks] %s: skipping %s: %v", job.tier, job.matchID, err)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if acc.count == 0 {
		return nil, fmt.Errorf("benchmark build produced no samples")
	}

	file := &File{
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		Region:          cfg.Region,
		Platform:        cfg.Platform,
		MatchesAnalyzed: acc.count,
		Benchmarks:      make(map[string]map[string]map[string]float64),
	}
	for tier, byRole := range acc.values {
		file.Benchmarks[tier] = make(map[string]map[string]float64)
		for role, byStat := range byRole {
			file.Benchmarks[tier][role] = make(map[string]float64)
			for key, samples := range byStat {
				file.Benchmarks[tier][role][key] = math.Round(stat.Mean(samples, nil)*100) / 100
			}
		}
	}

	if cfg.OutputPath != "" {
		if err := writeFile(cfg.OutputPath, file); err != nil {
			return nil, err
		}
		log.Printf("[Benchmarks] wrote %s (%d matches)", cfg.OutputPath, acc.count)
	}
	return file, nil
}

// collectTierJobs samples players from the tier's division I ladder page and
// gathers their recent match IDs, deduplicated across the whole run.
func collectTierJobs(ctx context.Context, client *riot.Client, seen *bloom.BloomFilter, tier string, cfg BuildConfig) ([]sampleJob, error) {
	division := "I"
	entries, err := client.GetLeagueEntries(ctx, tier, division, 1)
	if err != nil {
		return nil, fmt.Errorf("league entries %s %s: %w", tier, division, err)
	}
	if len(entries) > cfg.PlayersPerTier {
		entries = entries[:cfg.PlayersPerTier]
	}

	var jobs []sampleJob
	for _, entry := range entries {
		if len(jobs) >= cfg.MatchesPerTier {
			break
		}
		matchIDs, err := client.GetMatchHistory(ctx, entry.PUUID, cfg.MatchesPerPlayer)
		if err != nil {
			log.Printf("[Benchmarks] %s: match history for %s failed: %v", tier, entry.PUUID, err)
			continue
		}
		for _, matchID := range matchIDs {
			if len(jobs) >= cfg.MatchesPerTier {
				break
			}
			if seen.TestAndAddString(matchID) {
				continue
			}
			jobs = append(jobs, sampleJob{matchID: matchID, puuid: entry.PUUID, tier: tier})
		}
	}
	return jobs, nil
}

// analyzeJob fetches one match plus timeline and feeds the sampled player's
// numbers into the accumulator.
func analyzeJob(ctx context.Context, client *riot.Client, job sampleJob, acc *statAccumulator) error {
	match, err := client.GetMatch(ctx, job.matchID)
	if err != nil {
		return fmt.Errorf("fetch match: %w", err)
	}
	timeline, err := client.GetTimeline(ctx, job.matchID)
	if err != nil {
		return fmt.Errorf("fetch timeline: %w", err)
	}

	result, err := analysis.Analyze(match, timeline, job.puuid)
	if err != nil {
		return err
	}
	if result.Role == "UNKNOWN" {
		return nil
	}

	values := map[string]float64{
		StatCSPerMin:          result.Core.CSPerMin,
		StatVisionScore:       float64(result.Core.VisionScore),
		StatKDA:               result.Core.KDA,
		StatDamagePerMin:      result.Core.DamagePerMin,
		StatGoldPerMinute:     result.Core.GoldPerMin,
		StatKillParticipation: result.Core.KillParticipation,
	}
	if result.Milestones.CSAt10 > 0 {
		values[StatCSAt10] = float64(result.Milestones.CSAt10)
	}

	acc.add(job.tier, result.Role, values)
	return nil
}

func writeFile(path string, file *File) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal benchmarks: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write benchmarks to %s: %w", path, err)
	}
	return nil
}
