package plots

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/pkg/errors"
)

// BoxplotsByLabel writes a grid with one panel per feature, each holding a
// pair of boxplots grouped by label class.
func BoxplotsByLabel(t *dataset.Table, features []string, path string) error {
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
		p.Title.Text = "Boxplot: " + feature
		p.X.Label.Text = "label"

		class0, class1 := splitByClass(values, labels)
		for class, vals := range [][]float64{class0, class1} {
			if len(vals) == 0 {
				continue
			}
			b, boxErr := plotter.NewBoxPlot(vg.Points(25), float64(class), plotter.Values(vals))
			if boxErr != nil {
				return errors.Wrapf(boxErr, "boxplot %s class %d", feature, class)
			}
			p.Add(b)
		}
		p.NominalX("0", "1")
		grid[k/cols][k%cols] = p
	}
	return saveGrid(grid, path)
}

// OutlierBoxplots writes a grid of single boxplots, one panel per column,
// for eyeballing outliers outside the IQR fences.
func OutlierBoxplots(t *dataset.Table, columns []string, path string) error {
	cols := 3
	rows := gridShape(len(columns), cols)
	grid := make([][]*plot.Plot, rows)
	for i := range grid {
		grid[i] = make([]*plot.Plot, cols)
	}

	for k, column := range columns {
		values, err := t.Column(column)
		if err != nil {
			return err
		}
		p := plot.New()
		p.Title.Text = "Outliers: " + column

		b, boxErr := plotter.NewBoxPlot(vg.Points(35), 0, plotter.Values(finite(values)))
		if boxErr != nil {
			return errors.Wrapf(boxErr, "boxplot %s", column)
		}
		p.Add(b)
		p.NominalX(column)
		grid[k/cols][k%cols] = p
	}
	return saveGrid(grid, path)
}
