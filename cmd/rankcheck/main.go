package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"timeline-analyzer/internal/analysis"
	"timeline-analyzer/internal/benchmark"
	"timeline-analyzer/internal/riot"

	"github.com/joho/godotenv"
)

// CLI flags
var (
	riotID        = flag.String("riot-id", "", "Riot ID in format 'GameName#TagLine'")
	matchCount    = flag.Int("count", 5, "Recent matches to average for percentile checks")
	benchmarkPath = flag.String("benchmarks", "benchmarks.json", "Benchmark file to compare against")
)

func main() {
	// Load .env file
	godotenv.Load()
	flag.Parse()

	if *riotID == "" {
		fmt.Println("Usage: go run cmd/rankcheck/main.go --riot-id=\"PlayerName#NA1\"")
		os.Exit(1)
	}

	parts := strings.SplitN(*riotID, "#", 2)
	if len(parts) != 2 {
		log.Fatalf("Invalid Riot ID format. Expected 'GameName#TagLine', got: %s", *riotID)
	}
	gameName, tagLine := parts[0], parts[1]

	client, err := riot.NewClient()
	if err != nil {
		log.Fatalf("Failed to create Riot client: %v", err)
	}

	ctx := context.Background()

	fmt.Printf("\n1. Looking up account: %s#%s\n", gameName, tagLine)
	account, err := client.GetAccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		log.Fatalf("Failed to get account: %v", err)
	}

	fmt.Printf("\n2. Getting ranked entries...\n")
	entries, err := client.GetRankedEntriesByPUUID(ctx, account.PUUID)
	if err != nil {
		log.Fatalf("Failed to get ranked entries: %v", err)
	}
	rank := riot.RankString(entries)
	fmt.Printf("   Solo queue rank: %s\n", rank)
	if rank == "UNRANKED" {
		fmt.Println("   No solo queue rank, cannot compute percentiles")
		return
	}

	fmt.Printf("\n3. Analyzing last %d matches...\n", *matchCount)
	matchIDs, err := client.GetMatchHistory(ctx, account.PUUID, *matchCount)
	if err != nil {
		log.Fatalf("Failed to get match history: %v", err)
	}

	role := ""
	var csPerMin, visionScore, kda, csAt10, damagePerMin, goldPerMin, killPart []float64
	for _, matchID := range matchIDs {
		match, err := client.GetMatch(ctx, matchID)
		if err != nil {
			log.Printf("   Skipping %s: %v", matchID, err)
			continue
		}
		timeline, err := client.GetTimeline(ctx, matchID)
		if err != nil {
			log.Printf("   Skipping %s: %v", matchID, err)
			continue
		}
		result, err := analysis.Analyze(match, timeline, account.PUUID)
		if err != nil {
			log.Printf("   Skipping %s: %v", matchID, err)
			continue
		}
		if role == "" && result.Role != "UNKNOWN" {
			role = result.Role
		}
		csPerMin = append(csPerMin, result.Core.CSPerMin)
		visionScore = append(visionScore, float64(result.Core.VisionScore))
		kda = append(kda, result.Core.KDA)
		damagePerMin = append(damagePerMin, result.Core.DamagePerMin)
		goldPerMin = append(goldPerMin, result.Core.GoldPerMin)
		killPart = append(killPart, result.Core.KillParticipation)
		if result.Milestones.CSAt10 > 0 {
			csAt10 = append(csAt10, float64(result.Milestones.CSAt10))
		}
	}
	if len(csPerMin) == 0 {
		log.Fatal("No matches could be analyzed")
	}

	cache := benchmark.NewCache(*benchmarkPath, 0)
	if err := cache.Load(); err != nil {
		log.Printf("Benchmark load failed, using fallbacks: %v", err)
	}

	fmt.Printf("\n4. Percentiles vs %s %s players:\n", strings.Split(rank, "_")[0], role)
	printPercentile(cache, benchmark.StatCSPerMin, role, rank, avg(csPerMin))
	printPercentile(cache, benchmark.StatCSAt10, role, rank, avg(csAt10))
	printPercentile(cache, benchmark.StatVisionScore, role, rank, avg(visionScore))
	printPercentile(cache, benchmark.StatKDA, role, rank, avg(kda))
	printPercentile(cache, benchmark.StatDamagePerMin, role, rank, avg(damagePerMin))
	printPercentile(cache, benchmark.StatGoldPerMinute, role, rank, avg(goldPerMin))
	printPercentile(cache, benchmark.StatKillParticipation, role, rank, avg(killPart))
}

func avg(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func printPercentile(cache *benchmark.Cache, statKey, role, rank string, value float64) {
	baseline, ok := cache.GetBenchmark(statKey, role, rank)
	if !ok {
		fmt.Printf("   %-20s %8.2f  (no baseline)\n", statKey, value)
		return
	}
	percentile, ok := cache.Percentile(statKey, role, rank, value)
	if !ok {
		fmt.Printf("   %-20s %8.2f  (baseline %0.2f, no percentile)\n", statKey, value, baseline)
		return
	}
	fmt.Printf("   %-20s %8.2f  vs %6.2f -> p%d\n", statKey, value, baseline, percentile)
}
