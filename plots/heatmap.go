package plots

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hepworks/higgs-eda/pkg/errors"
	"github.com/hepworks/higgs-eda/stats"
)

// symGrid adapts a correlation matrix to plotter.GridXYZ.
// Row 0 of the matrix is drawn at the top, matching the usual matrix view.
type symGrid struct {
	m *stats.CorrMatrix
}

func (g symGrid) Dims() (c, r int) {
	n := len(g.m.Columns)
	return n, n
}

func (g symGrid) Z(c, r int) float64 {
	n := len(g.m.Columns)
	return g.m.At(n-1-r, c)
}

func (g symGrid) X(c int) float64 { return float64(c) }
func (g symGrid) Y(r int) float64 { return float64(r) }

// CorrelationHeatMap writes the correlation matrix as a diverging heat map
// centered on zero.
func CorrelationHeatMap(corr *stats.CorrMatrix, path string) error {
	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(symGrid{m: corr}, pal)
	hm.Min = -1
	hm.Max = 1

	p := plot.New()
	p.Title.Text = "Correlation Matrix"
	p.Add(hm)
	p.NominalX(corr.Columns...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = -0.5
	p.X.Tick.Label.YAlign = -1
	reversed := make([]string, len(corr.Columns))
	for i, name := range corr.Columns {
		reversed[len(corr.Columns)-1-i] = name
	}
	p.NominalY(reversed...)

	return save(p, 10*vg.Inch, 9*vg.Inch, path)
}

// maskGrid adapts a missing-value mask (1 = NaN) to plotter.GridXYZ.
type maskGrid struct {
	mask [][]float64
}

func (g maskGrid) Dims() (c, r int) {
	if len(g.mask) == 0 {
		return 0, 0
	}
	return len(g.mask[0]), len(g.mask)
}

func (g maskGrid) Z(c, r int) float64 {
	// first sampled row at the top
	return g.mask[len(g.mask)-1-r][c]
}

func (g maskGrid) X(c int) float64 { return float64(c) }
func (g maskGrid) Y(r int) float64 { return float64(r) }

// MissingValueHeatMap writes the NaN mask as a heat map. Rows are a sampled
// subset of the table; columns carry the schema names.
func MissingValueHeatMap(mask [][]float64, columns []string, path string) error {
	if len(mask) == 0 {
		return errors.NewValueError("MissingValueHeatMap", "empty mask")
	}

	pal := moreland.ExtendedBlackBody().Palette(255)
	hm := plotter.NewHeatMap(maskGrid{mask: mask}, pal)
	hm.Min = 0
	hm.Max = 1

	p := plot.New()
	p.Title.Text = "Missing Value Heatmap"
	p.Y.Label.Text = "sampled rows"
	p.Add(hm)
	p.NominalX(columns...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = -0.5
	p.X.Tick.Label.YAlign = -1

	return save(p, 10*vg.Inch, 5*vg.Inch, path)
}
