package plots

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/pkg/errors"
)

// CornerPairplot writes a corner pairplot over the given feature columns:
// class-split histograms on the diagonal, label-colored scatter panels below
// it, and blank tiles above. The table is expected to be a pre-drawn sample.
func CornerPairplot(t *dataset.Table, features []string, path string) error {
	labels, err := t.Label()
	if err != nil {
		return err
	}

	n := len(features)
	if n == 0 {
		return errors.NewValueError("CornerPairplot", "no features")
	}

	columns := make([][]float64, n)
	for i, f := range features {
		col, colErr := t.Column(f)
		if colErr != nil {
			return colErr
		}
		columns[i] = col
	}

	grid := make([][]*plot.Plot, n)
	for i := range grid {
		grid[i] = make([]*plot.Plot, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			p := plot.New()
			if i == n-1 {
				p.X.Label.Text = features[j]
			}
			if j == 0 {
				p.Y.Label.Text = features[i]
			}
			if i == j {
				if err := addClassHistograms(p, columns[i], labels); err != nil {
					return errors.Wrapf(err, "pairplot diagonal %s", features[i])
				}
			} else {
				if err := addPairScatter(p, columns[j], columns[i], labels); err != nil {
					return errors.Wrapf(err, "pairplot %s vs %s", features[j], features[i])
				}
			}
			grid[i][j] = p
		}
	}
	return saveGrid(grid, path)
}

func addPairScatter(p *plot.Plot, x, y, labels []float64) error {
	for class := 0; class < 2; class++ {
		xys := make(plotter.XYs, 0, len(x))
		for k := range x {
			if labels[k] != float64(class) {
				continue
			}
			if math.IsNaN(x[k]) || math.IsNaN(y[k]) {
				continue
			}
			xys = append(xys, plotter.XY{X: x[k], Y: y[k]})
		}
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  classFills[class],
			Radius: vg.Points(1),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(s)
	}
	return nil
}
