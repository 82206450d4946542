package plots

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hepworks/higgs-eda/pkg/errors"
	"github.com/hepworks/higgs-eda/stats"
)

// TargetDistribution writes a count bar chart of the binary label.
func TargetDistribution(labels []float64, path string) error {
	var counts [2]float64
	for _, l := range labels {
		switch l {
		case 0:
			counts[0]++
		case 1:
			counts[1]++
		}
	}

	p := plot.New()
	p.Title.Text = "Target Label Distribution"
	p.Y.Label.Text = "count"

	bars, err := plotter.NewBarChart(plotter.Values(counts[:]), vg.Points(40))
	if err != nil {
		return errors.Wrap(err, "target distribution bars")
	}
	bars.Color = classColors[0]
	p.Add(bars)
	p.NominalX("0", "1")

	return save(p, 5*vg.Inch, 4*vg.Inch, path)
}

// HorizontalBars writes a horizontal bar chart of named values, drawn top to
// bottom in the order given (first entry at the top).
func HorizontalBars(values []stats.NamedValue, title, path string) error {
	if len(values) == 0 {
		return errors.NewValueError("HorizontalBars", "no values")
	}

	// reverse: gonum draws nominal Y entries bottom-up
	vs := make(plotter.Values, len(values))
	names := make([]string, len(values))
	for i, nv := range values {
		j := len(values) - 1 - i
		vs[j] = nv.Value
		names[j] = nv.Name
	}

	p := plot.New()
	p.Title.Text = title

	bars, err := plotter.NewBarChart(vs, vg.Points(12))
	if err != nil {
		return errors.Wrap(err, "horizontal bars")
	}
	bars.Horizontal = true
	bars.Color = classColors[0]
	p.Add(bars)
	p.NominalY(names...)

	height := vg.Length(len(values))*0.3*vg.Inch + 1.5*vg.Inch
	if height < 4*vg.Inch {
		height = 4 * vg.Inch
	}
	return save(p, 7*vg.Inch, height, path)
}
