package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"timeline-analyzer/internal/analysis"
	"timeline-analyzer/internal/db"
	"timeline-analyzer/internal/riot"
	"timeline-analyzer/internal/storage"

	"github.com/joho/godotenv"
)

// CLI flags
var (
	riotID     = flag.String("riot-id", "", "Riot ID in format 'GameName#TagLine'")
	matchCount = flag.Int("count", 10, "Number of recent ranked matches to analyze")
	outputDir  = flag.String("output-dir", "./results", "Directory for JSONL result files")
	workers    = flag.Int("workers", 4, "Concurrent match analyses")
	useDB      = flag.Bool("db", false, "Also store results in Postgres")
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

	if *riotID == "" {
		fmt.Println("Usage: go run cmd/analyze/main.go --riot-id=\"PlayerName#NA1\"")
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

	account, err := client.GetAccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		log.Fatalf("Failed to get account: %v", err)
	}
	fmt.Printf("Resolved %s#%s -> %s...\n", gameName, tagLine, account.PUUID[:8])

	matchIDs, err := client.GetMatchHistory(ctx, account.PUUID, *matchCount)
	if err != nil {
		log.Fatalf("Failed to get match history: %v", err)
	}
	fmt.Printf("Analyzing %d matches\n", len(matchIDs))

	store, err := storage.NewResultStore(*outputDir)
	if err != nil {
		log.Fatalf("Failed to open result store: %v", err)
	}
	defer store.Close()

	var database *db.DB
	if *useDB {
		database, err = db.New(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer database.Close()
		if err := database.CreateSchema(ctx); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
	}

	var mu sync.Mutex
	analyzed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for _, matchID := range matchIDs {
		matchID := matchID
		g.Go(func() error {
			result, err := analyzeMatch(gctx, client, matchID, account.PUUID)
			if err != nil {
				log.Printf("[Analyze] Skipping %s: %v", matchID, err)
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			if err := store.WriteResult(result); err != nil {
				return fmt.Errorf("store result %s: %w", matchID, err)
			}
			if database != nil {
				if err := database.InsertAnalysis(gctx, result); err != nil {
					return err
				}
			}
			analyzed++
			fmt.Printf("   %s  %-12s %-7s win=%-5v kda=%.2f cs/min=%.2f\n",
				result.MatchID, result.ChampionName, result.Role, result.Win,
				result.Core.KDA, result.Core.CSPerMin)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	fmt.Printf("\nDone: %d/%d matches analyzed, results in %s\n", analyzed, len(matchIDs), *outputDir)
}

func analyzeMatch(ctx context.Context, client *riot.Client, matchID, puuid string) (*analysis.MatchAnalysisResult, error) {
	match, err := client.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("fetch match: %w", err)
	}
	timeline, err := client.GetTimeline(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("fetch timeline: %w", err)
	}
	return analysis.Analyze(match, timeline, puuid)
}
