package plots

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/pkg/errors"
)

const histBins = 40

// FeatureHistograms writes a grid of per-feature histograms, one panel per
// feature, with density-normalized histograms overlaid for each label class.
func FeatureHistograms(t *dataset.Table, features []string, path string) error {
	labels, err := t.Label()
	if err != nil {
		return err
	}

	cols := 3
	rows := gridShape(len(features), cols)
	grid := make([][]*plot.Plot, rows)
	for i := range grid {
		grid[i] = make([]*plot.Plot, cols)
	}

	for k, feature := range features {
		values, err := t.Column(feature)
		if err != nil {
			return err
		}
		p := plot.New()
		p.Title.Text = feature
		p.Y.Label.Text = "density"
		if err := addClassHistograms(p, values, labels); err != nil {
			return errors.Wrapf(err, "histogram %s", feature)
		}
		grid[k/cols][k%cols] = p
	}
	return saveGrid(grid, path)
}

// addClassHistograms overlays one density histogram per label class.
func addClassHistograms(p *plot.Plot, values, labels []float64) error {
	class0, class1 := splitByClass(values, labels)
	for class, vals := range [][]float64{class0, class1} {
		if len(vals) == 0 {
			continue
		}
		h, err := plotter.NewHist(plotter.Values(vals), histBins)
		if err != nil {
			return err
		}
		h.Normalize(1)
		h.FillColor = classFills[class]
		h.LineStyle.Color = classColors[class]
		p.Add(h)
	}
	return nil
}
