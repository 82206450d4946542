package plots

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/pkg/errors"
	"github.com/hepworks/higgs-eda/stats"
)

const kdeGridSize = 200

// KDEGrid writes a grid of kernel density estimates, one panel per feature,
// with a filled density curve per label class. The table is expected to be a
// pre-drawn sample of the full dataset.
func KDEGrid(t *dataset.Table, features []string, path string) error {
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
		p.Title.Text = "KDE: " + feature
		p.Y.Label.Text = "density"

		class0, class1 := splitByClass(values, labels)
		for class, vals := range [][]float64{class0, class1} {
			if len(vals) == 0 {
				continue
			}
			res, kdeErr := stats.KDE(vals, kdeGridSize)
			if kdeErr != nil {
				return errors.Wrapf(kdeErr, "kde %s", feature)
			}
			line, lineErr := plotter.NewLine(kdeXYs(res))
			if lineErr != nil {
				return errors.Wrapf(lineErr, "kde line %s", feature)
			}
			line.LineStyle.Color = classColors[class]
			line.FillColor = classFills[class]
			p.Add(line)
			p.Legend.Add(ClassName(class), line)
		}
		grid[k/cols][k%cols] = p
	}
	return saveGrid(grid, path)
}

func kdeXYs(res *stats.KDEResult) plotter.XYs {
	xys := make(plotter.XYs, len(res.X))
	for i := range res.X {
		xys[i].X = res.X[i]
		xys[i].Y = res.Density[i]
	}
	return xys
}
