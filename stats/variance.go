package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/pkg/errors"
)

// Variances は各列の標本分散（分母 n-1）を分散の降順で返す
func Variances(t *dataset.Table) ([]NamedValue, error) {
	if t.Rows() == 0 || t.Cols() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Variances")
	}
	out := make([]NamedValue, 0, t.Cols())
	for _, name := range t.Columns() {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		vals := dropNaN(col)
		v := math.NaN()
		if len(vals) > 1 {
			v = stat.Variance(vals, nil)
		}
		out = append(out, NamedValue{Name: name, Value: v})
	}
	sort.SliceStable(out, func(a, b int) bool {
		// NaNは末尾へ
		if math.IsNaN(out[b].Value) {
			return !math.IsNaN(out[a].Value)
		}
		if math.IsNaN(out[a].Value) {
			return false
		}
		return out[a].Value > out[b].Value
	})
	return out, nil
}

// TopVariances は分散の大きい順に最大k件を返す
func TopVariances(t *dataset.Table, k int) ([]NamedValue, error) {
	all, err := Variances(t)
	if err != nil {
		return nil, err
	}
	if k < len(all) {
		all = all[:k]
	}
	return all, nil
}
