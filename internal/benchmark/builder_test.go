package benchmark

import (
	"sync"
	"testing"
)

func TestStatAccumulatorAdd(t *testing.T) {
	acc := &statAccumulator{values: make(map[string]map[string]map[string][]float64)}

	acc.add("GOLD", "MIDDLE", map[string]float64{StatCSPerMin: 6.0, StatKDA: 2.5})
	acc.add("GOLD", "MIDDLE", map[string]float64{StatCSPerMin: 7.0})
	acc.add("GOLD", "TOP", map[string]float64{StatCSPerMin: 5.5})

	if acc.count != 3 {
		t.Errorf("count = %d, want 3", acc.count)
	}
	if got := acc.values["GOLD"]["MIDDLE"][StatCSPerMin]; len(got) != 2 {
		t.Errorf("mid cs samples = %v, want 2 values", got)
	}
	if got := acc.values["GOLD"]["MIDDLE"][StatKDA]; len(got) != 1 {
		t.Errorf("mid kda samples = %v, want 1 value", got)
	}
	if got := acc.values["GOLD"]["TOP"][StatCSPerMin]; len(got) != 1 || got[0] != 5.5 {
		t.Errorf("top cs samples = %v, want [5.5]", got)
	}
}

func TestStatAccumulatorConcurrent(t *testing.T) {
	acc := &statAccumulator{values: make(map[string]map[string]map[string][]float64)}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc.add("SILVER", "BOTTOM", map[string]float64{StatCSPerMin: 5.0})
		}()
	}
	wg.Wait()

	if acc.count != 50 {
		t.Errorf("count = %d, want 50", acc.count)
	}
	if got := len(acc.values["SILVER"]["BOTTOM"][StatCSPerMin]); got != 50 {
		t.Errorf("samples = %d, want 50", got)
	}
}

func TestDefaultBuildConfig(t *testing.T) {
	if DefaultBuildConfig.Workers <= 0 {
		t.Error("default worker count must be positive")
	}
	if DefaultBuildConfig.OutputPath == "" {
		t.Error("default output path must be set")
	}
}
