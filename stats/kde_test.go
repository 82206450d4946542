package stats

import (
	"math"
	"math/rand"
	"testing"
)

func TestKDEIntegratesToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sample := make([]float64, 2000)
	for i := range sample {
		sample[i] = rng.NormFloat64()
	}

	res, err := KDE(sample, 400)
	if err != nil {
		t.Fatalf("KDE() error = %v", err)
	}

	// trapezoidal integral over the evaluation grid
	integral := 0.0
	for i := 1; i < len(res.X); i++ {
		integral += 0.5 * (res.Density[i] + res.Density[i-1]) * (res.X[i] - res.X[i-1])
	}
	if math.Abs(integral-1.0) > 0.02 {
		t.Errorf("density integral = %v, want ~1.0", integral)
	}

	for i, d := range res.Density {
		if d < 0 || math.IsNaN(d) {
			t.Fatalf("density[%d] = %v, must be non-negative and finite", i, d)
		}
	}
	if res.Bandwidth <= 0 {
		t.Errorf("bandwidth = %v, must be positive", res.Bandwidth)
	}
}

func TestKDEPeakNearMode(t *testing.T) {
	// tight cluster around 5.0
	sample := []float64{4.8, 4.9, 5.0, 5.0, 5.1, 5.2}
	res, err := KDE(sample, 200)
	if err != nil {
		t.Fatalf("KDE() error = %v", err)
	}

	peak := 0
	for i, d := range res.Density {
		if d > res.Density[peak] {
			peak = i
		}
	}
	if math.Abs(res.X[peak]-5.0) > 0.2 {
		t.Errorf("density peak at %v, want near 5.0", res.X[peak])
	}
}

func TestKDEConstantSample(t *testing.T) {
	res, err := KDE([]float64{2, 2, 2, 2}, 50)
	if err != nil {
		t.Fatalf("KDE() on a constant sample should not fail, got %v", err)
	}
	for _, d := range res.Density {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatal("constant sample must not produce NaN/Inf densities")
		}
	}
}

func TestKDEInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		sample   []float64
		gridSize int
	}{
		{name: "empty sample", sample: nil, gridSize: 10},
		{name: "all NaN", sample: []float64{math.NaN()}, gridSize: 10},
		{name: "grid too small", sample: []float64{1, 2}, gridSize: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := KDE(tt.sample, tt.gridSize); err == nil {
				t.Error("KDE() should fail")
			}
		})
	}
}

func TestVariances(t *testing.T) {
	table := newTable(t, []string{"small", "big"}, 4, []float64{
		1, 100,
		2, 200,
		3, 300,
		4, 400,
	})

	ranked, err := Variances(table)
	if err != nil {
		t.Fatalf("Variances() error = %v", err)
	}
	if ranked[0].Name != "big" {
		t.Errorf("highest variance column = %q, want big", ranked[0].Name)
	}
	// sample variance of 1..4 is 5/3... actually ((1.5^2+0.5^2)*2)/3 = 5/3
	if math.Abs(ranked[1].Value-5.0/3.0) > 1e-12 {
		t.Errorf("variance of small = %v, want %v", ranked[1].Value, 5.0/3.0)
	}

	top, err := TopVariances(table, 1)
	if err != nil {
		t.Fatalf("TopVariances() error = %v", err)
	}
	if len(top) != 1 || top[0].Name != "big" {
		t.Errorf("TopVariances(1) = %v, want [big]", top)
	}
}
