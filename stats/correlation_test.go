package stats

import (
	"math"
	"testing"
)

func TestCorrelationMatrix(t *testing.T) {
	// y = 2x (perfect positive), z = -x (perfect negative)
	table := newTable(t, []string{"x", "y", "z"}, 5, []float64{
		1, 2, -1,
		2, 4, -2,
		3, 6, -3,
		4, 8, -4,
		5, 10, -5,
	})

	corr, err := CorrelationMatrix(table)
	if err != nil {
		t.Fatalf("CorrelationMatrix() error = %v", err)
	}

	tests := []struct {
		name      string
		i, j      int
		want      float64
		tolerance float64
	}{
		{name: "diagonal", i: 0, j: 0, want: 1.0, tolerance: 1e-12},
		{name: "perfect positive", i: 0, j: 1, want: 1.0, tolerance: 1e-12},
		{name: "perfect negative", i: 0, j: 2, want: -1.0, tolerance: 1e-12},
		{name: "symmetric", i: 1, j: 0, want: 1.0, tolerance: 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := corr.At(tt.i, tt.j); math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("At(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
			}
		})
	}
}

func TestCorrelationMatrixPairwiseNaN(t *testing.T) {
	nan := math.NaN()
	// The NaN row must be dropped pairwise; the remaining points are y = 2x.
	table := newTable(t, []string{"x", "y"}, 4, []float64{
		1, 2,
		2, nan,
		3, 6,
		4, 8,
	})

	corr, err := CorrelationMatrix(table)
	if err != nil {
		t.Fatalf("CorrelationMatrix() error = %v", err)
	}
	if got := corr.At(0, 1); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("At(0, 1) = %v, want 1.0 after pairwise NaN removal", got)
	}
}

func TestCorrelationWithTarget(t *testing.T) {
	// label correlates perfectly with up, negatively with down
	table := newTable(t, []string{"label", "up", "down"}, 4, []float64{
		0, 1, 4,
		0, 2, 3,
		1, 3, 2,
		1, 4, 1,
	})

	corr, err := CorrelationMatrix(table)
	if err != nil {
		t.Fatalf("CorrelationMatrix() error = %v", err)
	}
	ranked, err := CorrelationWithTarget(corr)
	if err != nil {
		t.Fatalf("CorrelationWithTarget() error = %v", err)
	}

	if len(ranked) != 2 {
		t.Fatalf("ranked length = %d, want 2 (label excluded)", len(ranked))
	}
	if ranked[0].Name != "up" || ranked[1].Name != "down" {
		t.Errorf("ranking = [%s %s], want [up down]", ranked[0].Name, ranked[1].Name)
	}
	if ranked[0].Value <= ranked[1].Value {
		t.Errorf("ranking not descending: %v then %v", ranked[0].Value, ranked[1].Value)
	}
}

func TestCorrelationWithTargetMissingLabel(t *testing.T) {
	table := newTable(t, []string{"x", "y"}, 2, []float64{1, 2, 3, 4})
	corr, err := CorrelationMatrix(table)
	if err != nil {
		t.Fatalf("CorrelationMatrix() error = %v", err)
	}
	if _, err := CorrelationWithTarget(corr); err == nil {
		t.Error("CorrelationWithTarget() without a label column should fail")
	}
}
