package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/pkg/errors"
)

// CorrMatrix は列名付きのピアソン相関行列
type CorrMatrix struct {
	Columns []string
	Values  *mat.SymDense
}

// At は列i, jの相関係数を返す
func (c *CorrMatrix) At(i, j int) float64 {
	return c.Values.At(i, j)
}

// CorrelationMatrix は全列間のピアソン相関行列を計算する
//
// NaNを含む列はペアごとに完全な観測値のみで計算する（pandasのdf.corr()と同じ振る舞い）。
// NaNが存在しない場合はgonumのstat.CorrelationMatrixに一括で委譲する。
func CorrelationMatrix(t *dataset.Table) (*CorrMatrix, error) {
	rows, cols := t.Rows(), t.Cols()
	if rows == 0 || cols == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "CorrelationMatrix")
	}

	names := t.Columns()
	sym := mat.NewSymDense(cols, nil)

	if !hasNaN(t) {
		stat.CorrelationMatrix(sym, t.Data(), nil)
		return &CorrMatrix{Columns: names, Values: sym}, nil
	}

	// ペアワイズ計算
	columns := make([][]float64, cols)
	for j, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		columns[j] = col
	}
	for i := 0; i < cols; i++ {
		sym.SetSym(i, i, 1)
		for j := i + 1; j < cols; j++ {
			xi, xj := pairwiseComplete(columns[i], columns[j])
			if len(xi) < 2 {
				sym.SetSym(i, j, math.NaN())
				continue
			}
			sym.SetSym(i, j, stat.Correlation(xi, xj, nil))
		}
	}
	return &CorrMatrix{Columns: names, Values: sym}, nil
}

// CorrelationWithTarget はラベル列と各特徴量の相関を降順で返す
func CorrelationWithTarget(corr *CorrMatrix) ([]NamedValue, error) {
	labelIdx := -1
	for j, name := range corr.Columns {
		if name == dataset.LabelColumn {
			labelIdx = j
			break
		}
	}
	if labelIdx < 0 {
		return nil, errors.NewColumnNotFoundError(dataset.LabelColumn, corr.Columns)
	}

	out := make([]NamedValue, 0, len(corr.Columns)-1)
	for j, name := range corr.Columns {
		if j == labelIdx {
			continue
		}
		out = append(out, NamedValue{Name: name, Value: corr.At(labelIdx, j)})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Value > out[b].Value })
	return out, nil
}

func hasNaN(t *dataset.Table) bool {
	rows := t.Rows()
	for _, n := range t.NonNullCounts() {
		if n != rows {
			return true
		}
	}
	return false
}

// pairwiseComplete は両方がNaNでない位置の値のみを抜き出す
func pairwiseComplete(a, b []float64) ([]float64, []float64) {
	oa := make([]float64, 0, len(a))
	ob := make([]float64, 0, len(b))
	for k := range a {
		if math.IsNaN(a[k]) || math.IsNaN(b[k]) {
			continue
		}
		oa = append(oa, a[k])
		ob = append(ob, b[k])
	}
	return oa, ob
}
