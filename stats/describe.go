// Package stats はテーブルに対する記述統計量の計算を提供します。
// 数値計算はgonum/statに委譲し、NaNは各列で除外してから集計します。
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/pkg/errors"
)

// ColumnSummary は1列分の記述統計量（pandasのdescribeに対応）
type ColumnSummary struct {
	Name  string
	Count int // NaNを除いた値の個数
	Mean  float64
	Std   float64 // 標本標準偏差（分母 n-1）
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// NamedValue は列名と値のペア
type NamedValue struct {
	Name  string
	Value float64
}

// Describe は全列の記述統計量を計算する
//
// 戻り値:
//   - []ColumnSummary: 列順の統計量
//   - error: テーブルが空の場合
func Describe(t *dataset.Table) ([]ColumnSummary, error) {
	if t.Rows() == 0 || t.Cols() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Describe")
	}

	names := t.Columns()
	summaries := make([]ColumnSummary, 0, len(names))
	for _, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		vals := dropNaN(col)
		s := ColumnSummary{Name: name, Count: len(vals)}
		if len(vals) > 0 {
			sort.Float64s(vals)
			s.Mean = stat.Mean(vals, nil)
			s.Std = math.Sqrt(stat.Variance(vals, nil))
			s.Min = vals[0]
			s.Max = vals[len(vals)-1]
			s.Q25 = stat.Quantile(0.25, stat.LinInterp, vals, nil)
			s.Q50 = stat.Quantile(0.50, stat.LinInterp, vals, nil)
			s.Q75 = stat.Quantile(0.75, stat.LinInterp, vals, nil)
		} else {
			s.Mean = math.NaN()
			s.Std = math.NaN()
			s.Min = math.NaN()
			s.Max = math.NaN()
			s.Q25 = math.NaN()
			s.Q50 = math.NaN()
			s.Q75 = math.NaN()
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// MissingCounts は各列のNaNの個数を列順に返す
func MissingCounts(t *dataset.Table) []NamedValue {
	names := t.Columns()
	nonNull := t.NonNullCounts()
	rows := t.Rows()
	out := make([]NamedValue, len(names))
	for j, name := range names {
		out[j] = NamedValue{Name: name, Value: float64(rows - nonNull[j])}
	}
	return out
}

// MissingMask は欠損値ヒートマップ用に、最大maxRows行のNaNマスクを返す
// 行数がmaxRowsを超える場合は等間隔に行を間引く
// マスクの値はNaNなら1、そうでなければ0
func MissingMask(t *dataset.Table, maxRows int) [][]float64 {
	rows := t.Rows()
	cols := t.Cols()
	n := rows
	if maxRows > 0 && n > maxRows {
		n = maxRows
	}
	mask := make([][]float64, n)
	for i := 0; i < n; i++ {
		// 等間隔サンプリング
		src := i * rows / n
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			if math.IsNaN(t.At(src, j)) {
				row[j] = 1
			}
		}
		mask[i] = row
	}
	return mask
}

// dropNaN はNaNを除いた値のコピーを返す
func dropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}
