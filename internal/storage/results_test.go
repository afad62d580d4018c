package storage

import (
	"os"
	"path/filepath"
	"testing"

	"timeline-analyzer/internal/analysis"
)

func sampleResult(matchID, puuid string) *analysis.MatchAnalysisResult {
	return &analysis.MatchAnalysisResult{
		MatchID:      matchID,
		PUUID:        puuid,
		ChampionName: "Ahri",
		Role:         "MIDDLE",
		Win:          true,
		Core:         analysis.CoreStats{Kills: 5, Deaths: 2, Assists: 5, KDA: 5},
	}
}

func TestResultStoreRoundTrip(t *testing.T) {
	store, err := NewResultStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"NA1_1", "NA1_2", "NA1_3"} {
		if err := store.WriteResult(sampleResult(id, "puuid-1")); err != nil {
			t.Fatalf("WriteResult(%s): %v", id, err)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	results, err := LoadResults(store.WarmDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("loaded %d results, want 3", len(results))
	}
	if results[0].MatchID != "NA1_1" || results[0].Core.KDA != 5 {
		t.Errorf("first result = %s kda %.1f, want NA1_1 kda 5", results[0].MatchID, results[0].Core.KDA)
	}
}

func TestResultStoreCloseDropsEmptyFile(t *testing.T) {
	store, err := NewResultStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(store.WarmDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("empty store left %d warm files, want 0", len(entries))
	}
}

func TestCompressToColdRoundTrip(t *testing.T) {
	base := t.TempDir()
	store, err := NewResultStore(base)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.WriteResult(sampleResult("NA1_9", "puuid-2")); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	warmEntries, err := os.ReadDir(store.WarmDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(warmEntries) != 1 {
		t.Fatalf("warm has %d files, want 1", len(warmEntries))
	}

	coldDir := filepath.Join(base, "cold")
	warmPath := filepath.Join(store.WarmDir(), warmEntries[0].Name())
	if err := CompressToCold(warmPath, coldDir); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(warmPath); !os.IsNotExist(err) {
		t.Error("warm file should be removed after compression")
	}

	results, err := LoadResults(coldDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].MatchID != "NA1_9" {
		t.Errorf("cold results = %+v, want the one compressed result", results)
	}
}

func TestLoadResultsMissingDir(t *testing.T) {
	if _, err := LoadResults(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
