// Package plots renders the EDA figures with gonum/plot.
//
// Every function takes prepared data plus an output path and writes a single
// PNG. Multi-panel figures are laid out with draw.Tiles and plot.Align on a
// vgimg canvas.
package plots

import (
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/hepworks/higgs-eda/pkg/errors"
)

// Class colors for the binary label (background = 0, signal = 1).
var (
	classColors = []color.Color{
		color.RGBA{R: 31, G: 119, B: 180, A: 255},
		color.RGBA{R: 255, G: 127, B: 14, A: 255},
	}
	classFills = []color.Color{
		color.RGBA{R: 31, G: 119, B: 180, A: 96},
		color.RGBA{R: 255, G: 127, B: 14, A: 96},
	}
)

// ClassName returns the legend label for a class index.
func ClassName(class int) string {
	if class == 0 {
		return "label=0"
	}
	return "label=1"
}

const (
	panelWidth  = 4 * vg.Inch
	panelHeight = 3 * vg.Inch
)

// save writes a single plot as a PNG.
func save(p *plot.Plot, w, h vg.Length, path string) error {
	if err := p.Save(w, h, path); err != nil {
		return errors.Wrapf(err, "save plot %s", path)
	}
	return nil
}

// saveGrid lays out a matrix of plots on one canvas and writes it as a PNG.
// Nil entries leave their tile blank.
func saveGrid(grid [][]*plot.Plot, path string) error {
	rows := len(grid)
	if rows == 0 {
		return errors.NewValueError("saveGrid", "no panels")
	}
	cols := len(grid[0])

	img := vgimg.New(vg.Length(cols)*panelWidth, vg.Length(rows)*panelHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 3,
		PadY: vg.Millimeter * 3,
	}
	canvases := plot.Align(grid, tiles, dc)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if grid[i][j] != nil {
				grid[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return errors.Wrapf(err, "write png %s", path)
	}
	return nil
}

// gridShape returns the row count for n panels laid out in the given columns.
func gridShape(n, cols int) int {
	return (n + cols - 1) / cols
}

// splitByClass partitions values into the two label classes.
// NaN values and values whose label is neither 0 nor 1 are dropped.
func splitByClass(values, labels []float64) (class0, class1 []float64) {
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		switch labels[i] {
		case 0:
			class0 = append(class0, v)
		case 1:
			class1 = append(class1, v)
		}
	}
	return class0, class1
}

// finite drops NaN and infinite values, which gonum plotters reject.
func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}
