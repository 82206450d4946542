package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/pkg/errors"
)

// OutlierCount はIQR法による1列分の外れ値集計
type OutlierCount struct {
	Column string
	Lower  float64 // Q1 - 1.5*IQR
	Upper  float64 // Q3 + 1.5*IQR
	Count  int     // フェンスの外側にある値の個数
}

// Quartiles はソート済みでない値列の四分位数を返す（NaNは除外、線形補間）
func Quartiles(xs []float64) (q1, q2, q3 float64, err error) {
	vals := dropNaN(xs)
	if len(vals) == 0 {
		return 0, 0, 0, errors.NewValueError("Quartiles", "no non-NaN values")
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	q1 = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	q2 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	q3 = stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	return q1, q2, q3, nil
}

// IQROutliers は指定列についてIQR法（1.5倍フェンス）の外れ値を数える
// columnsが空の場合はラベルを除く全特徴量列を対象にする
func IQROutliers(t *dataset.Table, columns []string) ([]OutlierCount, error) {
	if len(columns) == 0 {
		for _, name := range t.Columns() {
			if name == dataset.LabelColumn {
				continue
			}
			columns = append(columns, name)
		}
	}

	out := make([]OutlierCount, 0, len(columns))
	for _, name := range columns {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		q1, _, q3, err := Quartiles(col)
		if err != nil {
			return nil, errors.Wrapf(err, "IQROutliers %s", name)
		}
		iqr := q3 - q1
		lower := q1 - 1.5*iqr
		upper := q3 + 1.5*iqr
		count := 0
		for _, v := range dropNaN(col) {
			if v < lower || v > upper {
				count++
			}
		}
		out = append(out, OutlierCount{Column: name, Lower: lower, Upper: upper, Count: count})
	}
	return out, nil
}
