package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"timeline-analyzer/internal/benchmark"
)

// TursoClient wraps a connection to Turso, used to distribute benchmark
// tables to edge readers.
type TursoClient struct {
	db *sql.DB
}

// NewTursoClient creates a new Turso client
func NewTursoClient(url, authToken string) (*TursoClient, error) {
	connStr := url
	if authToken != "" {
		connStr = fmt.Sprintf("%s?authToken=%s", url, authToken)
	}

	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Turso: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Turso: %w", err)
	}

	return &TursoClient{db: db}, nil
}

// Close closes the Turso connection
func (c *TursoClient) Close() error {
	return c.db.Close()
}

// CreateTables creates the benchmark tables if they don't exist
func (c *TursoClient) CreateTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS benchmark_meta (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			generated_at TEXT NOT NULL,
			region TEXT NOT NULL,
			platform TEXT NOT NULL,
			matches_analyzed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS benchmark_stats (
			tier TEXT NOT NULL,
			role TEXT NOT NULL,
			stat_key TEXT NOT NULL,
			value REAL NOT NULL,
			PRIMARY KEY (tier, role, stat_key)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_benchmark_stats_tier_role ON benchmark_stats(tier, role)`,
	}

	for _, query := range queries {
		if _, err := c.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// ClearData deletes all existing benchmark data
func (c *TursoClient) ClearData(ctx context.Context) error {
	tables := []string{"benchmark_meta", "benchmark_stats"}
	for _, table := range tables {
		if _, err := c.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// PushBenchmarks replaces the stored benchmark tables with a freshly built set.
func (c *TursoClient) PushBenchmarks(ctx context.Context, file *benchmark.File) error {
	if err := c.ClearData(ctx); err != nil {
		return err
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO benchmark_meta (id, generated_at, region, platform, matches_analyzed)
		 VALUES (1, ?, ?, ?, ?)`,
		file.GeneratedAt, file.Region, file.Platform, file.MatchesAnalyzed)
	if err != nil {
		return fmt.Errorf("failed to write benchmark meta: %w", err)
	}

	type row struct {
		tier, role, key string
		value           float64
	}
	var rows []row
	for tier, byRole := range file.Benchmarks {
		for role, byStat := range byRole {
			for key, value := range byStat {
				rows = append(rows, row{tier, role, key, value})
			}
		}
	}

	const batchSize = 100
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[i:end]

		tx, err := c.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO benchmark_stats (tier, role, stat_key, value) VALUES (?, ?, ?, ?)`)
		if err != nil {
			tx.Rollback()
			return err
		}

		for _, r := range batch {
			if _, err := stmt.ExecContext(ctx, r.tier, r.role, r.key, r.value); err != nil {
				stmt.Close()
				tx.Rollback()
				return err
			}
		}

		stmt.Close()
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}
