package plots

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/stats"
)

// newPlotTable builds a table with a binary label and three noisy features.
func newPlotTable(t *testing.T, rows int) *dataset.Table {
	t.Helper()
	rng := rand.New(rand.NewSource(3))
	data := make([]float64, 0, rows*4)
	for i := 0; i < rows; i++ {
		label := float64(i % 2)
		data = append(data,
			label,
			rng.NormFloat64()+label,
			rng.NormFloat64()*2,
			rng.Float64()*10,
		)
	}
	table, err := dataset.NewTable([]string{"label", "f1", "f2", "f3"}, mat.NewDense(rows, 4, data))
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

// assertPNG fails the test unless path holds a non-empty PNG file.
func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected plot file %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("plot file %s is empty", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if len(b) < 8 || string(b[1:4]) != "PNG" {
		t.Errorf("%s does not look like a PNG file", path)
	}
}

func TestTargetDistribution(t *testing.T) {
	table := newPlotTable(t, 40)
	labels, _ := table.Label()
	path := filepath.Join(t.TempDir(), "target.png")

	if err := TargetDistribution(labels, path); err != nil {
		t.Fatalf("TargetDistribution() error = %v", err)
	}
	assertPNG(t, path)
}

func TestFeatureHistograms(t *testing.T) {
	table := newPlotTable(t, 60)
	path := filepath.Join(t.TempDir(), "hist.png")

	if err := FeatureHistograms(table, []string{"f1", "f2", "f3"}, path); err != nil {
		t.Fatalf("FeatureHistograms() error = %v", err)
	}
	assertPNG(t, path)
}

func TestFeatureHistogramsUnknownColumn(t *testing.T) {
	table := newPlotTable(t, 10)
	path := filepath.Join(t.TempDir(), "hist.png")
	if err := FeatureHistograms(table, []string{"missing"}, path); err == nil {
		t.Error("FeatureHistograms() with an unknown column should fail")
	}
}

func TestCorrelationHeatMap(t *testing.T) {
	table := newPlotTable(t, 50)
	corr, err := stats.CorrelationMatrix(table)
	if err != nil {
		t.Fatalf("CorrelationMatrix() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "corr.png")

	if err := CorrelationHeatMap(corr, path); err != nil {
		t.Fatalf("CorrelationHeatMap() error = %v", err)
	}
	assertPNG(t, path)
}

func TestMissingValueHeatMap(t *testing.T) {
	table := newPlotTable(t, 20)
	mask := stats.MissingMask(table, 0)
	path := filepath.Join(t.TempDir(), "missing.png")

	if err := MissingValueHeatMap(mask, table.Columns(), path); err != nil {
		t.Fatalf("MissingValueHeatMap() error = %v", err)
	}
	assertPNG(t, path)
}

func TestHorizontalBars(t *testing.T) {
	values := []stats.NamedValue{
		{Name: "f1", Value: 0.7},
		{Name: "f2", Value: 0.2},
		{Name: "f3", Value: -0.4},
	}
	path := filepath.Join(t.TempDir(), "bars.png")

	if err := HorizontalBars(values, "Correlation with Target Label", path); err != nil {
		t.Fatalf("HorizontalBars() error = %v", err)
	}
	assertPNG(t, path)

	if err := HorizontalBars(nil, "empty", path); err == nil {
		t.Error("HorizontalBars() with no values should fail")
	}
}

func TestKDEGrid(t *testing.T) {
	table := newPlotTable(t, 80)
	path := filepath.Join(t.TempDir(), "kde.png")

	if err := KDEGrid(table, []string{"f1", "f2"}, path); err != nil {
		t.Fatalf("KDEGrid() error = %v", err)
	}
	assertPNG(t, path)
}

func TestBoxplotsByLabel(t *testing.T) {
	table := newPlotTable(t, 60)
	path := filepath.Join(t.TempDir(), "box.png")

	if err := BoxplotsByLabel(table, []string{"f1", "f2", "f3"}, path); err != nil {
		t.Fatalf("BoxplotsByLabel() error = %v", err)
	}
	assertPNG(t, path)
}

func TestOutlierBoxplots(t *testing.T) {
	table := newPlotTable(t, 60)
	path := filepath.Join(t.TempDir(), "outliers.png")

	if err := OutlierBoxplots(table, []string{"f1", "f2"}, path); err != nil {
		t.Fatalf("OutlierBoxplots() error = %v", err)
	}
	assertPNG(t, path)
}

func TestLabeledScatter(t *testing.T) {
	table := newPlotTable(t, 100)
	labels, _ := table.Label()
	x, _ := table.Column("f1")
	y, _ := table.Column("f2")
	path := filepath.Join(t.TempDir(), "scatter.png")

	if err := LabeledScatter(x, y, labels, "f1", "f2", path); err != nil {
		t.Fatalf("LabeledScatter() error = %v", err)
	}
	assertPNG(t, path)

	if err := LabeledScatter(x[:10], y, labels, "f1", "f2", path); err == nil {
		t.Error("LabeledScatter() with mismatched lengths should fail")
	}
}

func TestCornerPairplot(t *testing.T) {
	table := newPlotTable(t, 80)
	path := filepath.Join(t.TempDir(), "pairplot.png")

	if err := CornerPairplot(table, []string{"f1", "f2", "f3"}, path); err != nil {
		t.Fatalf("CornerPairplot() error = %v", err)
	}
	assertPNG(t, path)

	if err := CornerPairplot(table, nil, path); err == nil {
		t.Error("CornerPairplot() with no features should fail")
	}
}
