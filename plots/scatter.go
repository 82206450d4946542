package plots

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hepworks/higgs-eda/pkg/errors"
)

// LabeledScatter writes a scatter plot of y against x, colored by the binary
// label. Points with NaN in either coordinate are dropped.
func LabeledScatter(x, y, labels []float64, xName, yName, path string) error {
	if len(x) != len(y) || len(x) != len(labels) {
		return errors.NewDimensionError("LabeledScatter", len(x), len(y), 0)
	}

	p := plot.New()
	p.Title.Text = xName + " vs " + yName
	p.X.Label.Text = xName
	p.Y.Label.Text = yName

	for class := 0; class < 2; class++ {
		xys := make(plotter.XYs, 0, len(x))
		for i := range x {
			if labels[i] != float64(class) {
				continue
			}
			if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
				continue
			}
			xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
		}
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return errors.Wrapf(err, "scatter class %d", class)
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  classFills[class],
			Radius: vg.Points(1.5),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(s)
		p.Legend.Add(ClassName(class), s)
	}
	p.Legend.Top = true

	return save(p, 7*vg.Inch, 7*vg.Inch, path)
}
