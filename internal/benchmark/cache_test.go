package benchmark

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeBenchmarkFile(t *testing.T, file File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benchmarks.json")
	data, err := json.Marshal(file)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCacheMissingFileFallsBack(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "nope.json"), 0)
	if err := cache.Load(); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if !cache.IsStale() {
		t.Error("unloaded cache should report stale")
	}

	v, ok := cache.GetBenchmark(StatCSPerMin, "MIDDLE", "GOLD_II")
	if !ok || v != 6.0 {
		t.Errorf("GetBenchmark = %.1f/%v, want 6.0 from the fallback table", v, ok)
	}
}

func TestCacheFreshFile(t *testing.T) {
	path := writeBenchmarkFile(t, File{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Benchmarks: map[string]map[string]map[string]float64{
			"GOLD": {
				"MIDDLE": {StatCSPerMin: 6.5, StatKDA: 2.4},
				"TOP":    {StatKDA: 2.6},
			},
		},
	})

	cache := NewCache(path, 0)
	if err := cache.Load(); err != nil {
		t.Fatal(err)
	}
	if cache.IsStale() {
		t.Error("freshly generated file should not be stale")
	}

	if v, ok := cache.GetBenchmark(StatCSPerMin, "MIDDLE", "GOLD_IV"); !ok || v != 6.5 {
		t.Errorf("GetBenchmark = %.1f/%v, want 6.5 from the file", v, ok)
	}

	// KDA with an unknown role averages the tier's roles: (2.4 + 2.6) / 2.
	if v, ok := cache.GetBenchmark(StatKDA, "BOTTOM", "GOLD_I"); !ok || v != 2.5 {
		t.Errorf("role-averaged KDA = %.2f/%v, want 2.5", v, ok)
	}

	// A tier missing from the file uses the fallback tables.
	if v, ok := cache.GetBenchmark(StatCSPerMin, "MIDDLE", "SILVER_I"); !ok || v != 5.5 {
		t.Errorf("off-file tier = %.1f/%v, want 5.5 from fallback", v, ok)
	}
}

func TestCacheStaleFileFallsBack(t *testing.T) {
	path := writeBenchmarkFile(t, File{
		GeneratedAt: time.Now().UTC().Add(-40 * 24 * time.Hour).Format(time.RFC3339),
		Benchmarks: map[string]map[string]map[string]float64{
			"GOLD": {"MIDDLE": {StatCSPerMin: 9.9}},
		},
	})

	cache := NewCache(path, 30)
	if err := cache.Load(); err != nil {
		t.Fatal(err)
	}
	if !cache.IsStale() {
		t.Error("40-day-old file should be stale at a 30-day limit")
	}

	if v, _ := cache.GetBenchmark(StatCSPerMin, "MIDDLE", "GOLD_II"); v != 6.0 {
		t.Errorf("stale file should fall back, got %.1f", v)
	}
}

func TestCacheInvalidate(t *testing.T) {
	path := writeBenchmarkFile(t, File{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Benchmarks: map[string]map[string]map[string]float64{
			"GOLD": {"MIDDLE": {StatCSPerMin: 6.5}},
		},
	})

	cache := NewCache(path, 0)
	if err := cache.Load(); err != nil {
		t.Fatal(err)
	}
	cache.Invalidate()

	if v, _ := cache.GetBenchmark(StatCSPerMin, "MIDDLE", "GOLD_II"); v != 6.0 {
		t.Errorf("invalidated cache should fall back, got %.1f", v)
	}
}

func TestTierFromRank(t *testing.T) {
	tests := []struct {
		rank string
		want string
	}{
		{"GOLD_II", "GOLD"},
		{"CHALLENGER_I", "CHALLENGER"},
		{"MASTER", "MASTER"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := tierFromRank(tt.rank); got != tt.want {
			t.Errorf("tierFromRank(%q) = %q, want %q", tt.rank, got, tt.want)
		}
	}
}

func TestPercentile(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "nope.json"), 0)

	tests := []struct {
		name   string
		stat   string
		value  float64
		wantP  int
		wantOK bool
	}{
		// Fallback cs_per_min for MIDDLE GOLD is 6.0.
		{"at benchmark", StatCSPerMin, 6.0, 50, true},
		{"quarter above", StatCSPerMin, 7.5, 75, true},
		{"quarter below", StatCSPerMin, 4.5, 25, true},
		{"far above clamps", StatCSPerMin, 12.0, 99, true},
		{"far below clamps", StatCSPerMin, 1.0, 1, true},
		{"unknown stat", "gold_hoarded", 5.0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := cache.Percentile(tt.stat, "MIDDLE", "GOLD_II", tt.value)
			if ok != tt.wantOK || p != tt.wantP {
				t.Errorf("Percentile = %d/%v, want %d/%v", p, ok, tt.wantP, tt.wantOK)
			}
		})
	}
}

func TestFallbackBenchmark(t *testing.T) {
	if v, ok := fallbackBenchmark(StatKDA, "", "GOLD"); !ok || v != 2.4 {
		t.Errorf("kda fallback = %.1f/%v, want 2.4", v, ok)
	}
	if _, ok := fallbackBenchmark(StatCSPerMin, "MIDDLE", "WOOD"); ok {
		t.Error("unknown tier should have no fallback")
	}
	if _, ok := fallbackBenchmark(StatDamagePerMin, "MIDDLE", "GOLD"); ok {
		t.Error("stats without a table should have no fallback")
	}
}
