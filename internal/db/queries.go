package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"timeline-analyzer/internal/aggregate"
	"timeline-analyzer/internal/analysis"
)

// CreateSchema creates the analyzer tables if they don't exist.
func (db *DB) CreateSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS match_analysis (
			match_id TEXT NOT NULL,
			puuid TEXT NOT NULL,
			champion TEXT NOT NULL,
			role TEXT NOT NULL,
			win BOOLEAN NOT NULL,
			game_creation BIGINT NOT NULL,
			result JSONB NOT NULL,
			PRIMARY KEY (match_id, puuid)
		)`,
		`CREATE TABLE IF NOT EXISTS player_profiles (
			puuid TEXT PRIMARY KEY,
			generated_at TIMESTAMPTZ NOT NULL,
			profile JSONB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_match_analysis_puuid ON match_analysis(puuid)`,
		`CREATE INDEX IF NOT EXISTS idx_match_analysis_creation ON match_analysis(game_creation)`,
	}

	for _, query := range queries {
		if _, err := db.pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute schema query: %w", err)
		}
	}
	return nil
}

// InsertAnalysis upserts one per-match analysis result.
func (db *DB) InsertAnalysis(ctx context.Context, result *analysis.MatchAnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result %s: %w", result.MatchID, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_analysis (match_id, puuid, champion, role, win, game_creation, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (match_id, puuid) DO UPDATE SET result = EXCLUDED.result`,
		result.MatchID, result.PUUID, result.ChampionName, result.Role,
		result.Win, result.GameCreation, data)
	if err != nil {
		return fmt.Errorf("failed to insert analysis %s: %w", result.MatchID, err)
	}
	return nil
}

// GetAnalysesByPlayer returns a player's stored results, newest first.
func (db *DB) GetAnalysesByPlayer(ctx context.Context, puuid string) ([]analysis.MatchAnalysisResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT result FROM match_analysis WHERE puuid = $1 ORDER BY game_creation DESC`, puuid)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses for %s: %w", puuid, err)
	}
	defer rows.Close()

	var results []analysis.MatchAnalysisResult
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		var result analysis.MatchAnalysisResult
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// HasAnalysis reports whether a match/player pair is already stored.
func (db *DB) HasAnalysis(ctx context.Context, matchID, puuid string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM match_analysis WHERE match_id = $1 AND puuid = $2)`,
		matchID, puuid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check analysis %s: %w", matchID, err)
	}
	return exists, nil
}

// CountAnalyses returns how many results are stored for a player.
func (db *DB) CountAnalyses(ctx context.Context, puuid string) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM match_analysis WHERE puuid = $1`, puuid).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analyses for %s: %w", puuid, err)
	}
	return count, nil
}

// UpsertProfile stores the aggregated cross-match profile for a player.
func (db *DB) UpsertProfile(ctx context.Context, profile *aggregate.AggregatedPlayerStats) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile %s: %w", profile.PUUID, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO player_profiles (puuid, generated_at, profile)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (puuid) DO UPDATE SET generated_at = EXCLUDED.generated_at, profile = EXCLUDED.profile`,
		profile.PUUID, profile.GeneratedAt, data)
	if err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", profile.PUUID, err)
	}
	return nil
}

// GetProfile loads a player's aggregated profile, or nil when none is stored.
func (db *DB) GetProfile(ctx context.Context, puuid string) (*aggregate.AggregatedPlayerStats, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT profile FROM player_profiles WHERE puuid = $1`, puuid).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query profile %s: %w", puuid, err)
	}

	var profile aggregate.AggregatedPlayerStats
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}
