package stats

import (
	"math"
	"testing"
)

func TestQuartiles(t *testing.T) {
	xs := []float64{5, 1, 3, 2, 4}
	q1, q2, q3, err := Quartiles(xs)
	if err != nil {
		t.Fatalf("Quartiles() error = %v", err)
	}
	if math.Abs(q1-2.0) > 1e-12 || math.Abs(q2-3.0) > 1e-12 || math.Abs(q3-4.0) > 1e-12 {
		t.Errorf("Quartiles() = %v %v %v, want 2 3 4", q1, q2, q3)
	}
}

func TestQuartilesAllNaN(t *testing.T) {
	if _, _, _, err := Quartiles([]float64{math.NaN(), math.NaN()}); err == nil {
		t.Error("Quartiles() of all-NaN input should fail")
	}
}

func TestIQROutliers(t *testing.T) {
	// 1..9 plus one extreme value
	data := make([]float64, 0, 20)
	for i := 1; i <= 9; i++ {
		data = append(data, float64(i), 0) // second column is the label
	}
	data = append(data, 100, 1)
	table := newTable(t, []string{"x", "label"}, 10, data)

	counts, err := IQROutliers(table, []string{"x"})
	if err != nil {
		t.Fatalf("IQROutliers() error = %v", err)
	}
	if len(counts) != 1 {
		t.Fatalf("IQROutliers() returned %d columns, want 1", len(counts))
	}
	c := counts[0]
	if c.Column != "x" {
		t.Errorf("Column = %q, want x", c.Column)
	}
	// sorted x: 1..9,100 -> Q1=3.25, Q3=7.75, IQR=4.5, fences [-3.5, 14.5]
	if math.Abs(c.Lower-(-3.5)) > 1e-12 || math.Abs(c.Upper-14.5) > 1e-12 {
		t.Errorf("fences = [%v, %v], want [-3.5, 14.5]", c.Lower, c.Upper)
	}
	if c.Count != 1 {
		t.Errorf("Count = %d, want 1 (only the value 100)", c.Count)
	}
}

func TestIQROutliersDefaultColumns(t *testing.T) {
	table := newTable(t, []string{"label", "a", "b"}, 4, []float64{
		0, 1, 10,
		0, 2, 20,
		1, 3, 30,
		1, 4, 40,
	})

	counts, err := IQROutliers(table, nil)
	if err != nil {
		t.Fatalf("IQROutliers() error = %v", err)
	}
	// label must be excluded
	if len(counts) != 2 {
		t.Fatalf("IQROutliers() returned %d columns, want 2", len(counts))
	}
	for _, c := range counts {
		if c.Column == "label" {
			t.Error("label column must not be scanned for outliers")
		}
		if c.Count != 0 {
			t.Errorf("column %s count = %d, want 0", c.Column, c.Count)
		}
	}
}
