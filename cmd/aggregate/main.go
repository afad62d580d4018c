package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"timeline-analyzer/internal/aggregate"
	"timeline-analyzer/internal/analysis"
	"timeline-analyzer/internal/db"
	"timeline-analyzer/internal/storage"

	"github.com/joho/godotenv"
)

// CLI flags
var (
	resultsDir = flag.String("results-dir", "", "Directory of JSONL result files to aggregate")
	puuid      = flag.String("puuid", "", "Player PUUID (filters file input, required for --from-db)")
	fromDB     = flag.Bool("from-db", false, "Load results from Postgres instead of files")
	storeDB    = flag.Bool("store-db", false, "Store the aggregated profile in Postgres")
	outputPath = flag.String("output", "profile.json", "Where to write the aggregated profile")
)

func main() {
	flag.Parse()

	// Load .env
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			fmt.Printf("Loaded .env from: %s\n", path)
			break
		}
	}

	ctx := context.Background()

	var database *db.DB
	if *fromDB || *storeDB {
		var err error
		database, err = db.New(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer database.Close()
	}

	results, err := loadResults(ctx, database)
	if err != nil {
		log.Fatalf("Failed to load results: %v", err)
	}
	if len(results) == 0 {
		log.Fatal("No analysis results to aggregate")
	}

	id := *puuid
	if id == "" {
		id = results[0].PUUID
	}
	fmt.Printf("Aggregating %d matches for %s...\n", len(results), id)

	profile := aggregate.Aggregate(id, results)

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal profile: %v", err)
	}
	if err := os.WriteFile(*outputPath, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outputPath, err)
	}
	fmt.Printf("Wrote profile to %s\n", *outputPath)

	if *storeDB {
		if err := database.CreateSchema(ctx); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
		if err := database.UpsertProfile(ctx, &profile); err != nil {
			log.Fatalf("Failed to store profile: %v", err)
		}
		fmt.Println("Stored profile in Postgres")
	}

	fmt.Printf("\nOverview: %d games, %.1f%% win rate, %.2f KDA, main role %s\n",
		profile.Zones.Overview.TotalGames, profile.Zones.Overview.WinRatePercent,
		profile.Zones.Overview.KDA, profile.Zones.Overview.MainRole)
}

func loadResults(ctx context.Context, database *db.DB) ([]analysis.MatchAnalysisResult, error) {
	if *fromDB {
		if *puuid == "" {
			return nil, fmt.Errorf("--from-db requires --puuid")
		}
		return database.GetAnalysesByPlayer(ctx, *puuid)
	}

	if *resultsDir == "" {
		return nil, fmt.Errorf("--results-dir or --from-db is required")
	}
	results, err := storage.LoadResults(*resultsDir)
	if err != nil {
		return nil, err
	}

	if *puuid == "" {
		return results, nil
	}
	filtered := results[:0]
	for _, r := range results {
		if r.PUUID == *puuid {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
