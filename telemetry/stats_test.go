package telemetry

import (
	"math"
	"testing"
)

func TestComputeSpeedStats(t *testing.T) {
	mean, std, p50, p90 := ComputeSpeedStats([]float64{4, 1, 3, 2})

	if math.Abs(mean-2.5) > 1e-9 {
		t.Errorf("mean = %v, want 2.5", mean)
	}
	// Sample standard deviation of {1,2,3,4}.
	wantStd := math.Sqrt(5.0 / 3.0)
	if math.Abs(std-wantStd) > 1e-9 {
		t.Errorf("std = %v, want %v", std, wantStd)
	}
	if p50 != 2 {
		t.Errorf("p50 = %v, want 2", p50)
	}
	if p90 != 4 {
		t.Errorf("p90 = %v, want 4", p90)
	}
}

func TestComputeSpeedStatsEmpty(t *testing.T) {
	mean, std, p50, p90 := ComputeSpeedStats(nil)
	if mean != 0 || std != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty input should return all zeros")
	}
}

func TestComputeSpeedStatsSingle(t *testing.T) {
	mean, std, p50, p90 := ComputeSpeedStats([]float64{7})
	if mean != 7 || p50 != 7 || p90 != 7 {
		t.Errorf("single sample: mean=%v p50=%v p90=%v, want all 7", mean, p50, p90)
	}
	if std != 0 {
		t.Errorf("std = %v, want 0 for a single sample", std)
	}
}

func TestComputeSpeedStatsSortsInput(t *testing.T) {
	speeds := []float64{5, 1, 4, 2, 3}
	ComputeSpeedStats(speeds)
	for i := 1; i < len(speeds); i++ {
		if speeds[i-1] > speeds[i] {
			t.Fatalf("input not sorted in place: %v", speeds)
		}
	}
}
