package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"timeline-analyzer/internal/benchmark"
	"timeline-analyzer/internal/db"
	"timeline-analyzer/internal/riot"

	"github.com/joho/godotenv"
)

// CLI flags
var (
	outputPath     = flag.String("output", "benchmarks.json", "Where to write the benchmark file")
	playersPerTier = flag.Int("players", 20, "Players sampled per rank tier")
	matchesPer     = flag.Int("matches-per-player", 10, "Recent matches pulled per sampled player")
	matchesPerTier = flag.Int("matches-per-tier", 100, "Cap on unique matches analyzed per tier")
	workers        = flag.Int("workers", 4, "Concurrent match analyses")
	pushTurso      = flag.Bool("push", false, "Push the built benchmarks to Turso")
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

	client, err := riot.NewClient()
	if err != nil {
		log.Fatalf("Failed to create Riot client: %v", err)
	}

	ctx := context.Background()

	if err := client.ValidateKey(ctx); err != nil {
		log.Fatalf("API key validation failed: %v", err)
	}

	platform := os.Getenv("RIOT_PLATFORM")
	if platform == "" {
		platform = "na1"
	}

	cfg := benchmark.BuildConfig{
		PlayersPerTier:   *playersPerTier,
		MatchesPerPlayer: *matchesPer,
		MatchesPerTier:   *matchesPerTier,
		Workers:          *workers,
		Region:           "americas",
		Platform:         platform,
		OutputPath:       *outputPath,
	}

	file, err := benchmark.Build(ctx, client, cfg)
	if err != nil {
		log.Fatalf("Benchmark build failed: %v", err)
	}
	fmt.Printf("Built benchmarks from %d matches across %d tiers\n",
		file.MatchesAnalyzed, len(file.Benchmarks))

	if *pushTurso {
		tursoURL := os.Getenv("TURSO_DATABASE_URL")
		if tursoURL == "" {
			log.Fatal("TURSO_DATABASE_URL environment variable not set")
		}
		turso, err := db.NewTursoClient(tursoURL, os.Getenv("TURSO_AUTH_TOKEN"))
		if err != nil {
			log.Fatalf("Failed to connect to Turso: %v", err)
		}
		defer turso.Close()

		if err := turso.CreateTables(ctx); err != nil {
			log.Fatalf("Failed to create Turso tables: %v", err)
		}
		if err := turso.PushBenchmarks(ctx, file); err != nil {
			log.Fatalf("Failed to push benchmarks: %v", err)
		}
		fmt.Println("Pushed benchmarks to Turso")
	}
}
