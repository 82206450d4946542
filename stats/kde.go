package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/hepworks/higgs-eda/pkg/errors"
)

// KDEResult はカーネル密度推定の評価結果
type KDEResult struct {
	X         []float64 // 評価点
	Density   []float64 // 各評価点での密度
	Bandwidth float64
}

// KDE はガウスカーネルによる1次元のカーネル密度推定を行う
//
// バンド幅はSilvermanの経験則
// h = 0.9 * min(σ, IQR/1.34) * n^(-1/5)
// で選択し、[min-3h, max+3h] の範囲をgridSize点で評価する。
//
// パラメータ:
//   - sample: 入力値（NaNは除外される）
//   - gridSize: 評価点の数（2以上）
func KDE(sample []float64, gridSize int) (*KDEResult, error) {
	if gridSize < 2 {
		return nil, errors.NewValidationError("gridSize", "must be at least 2", gridSize)
	}
	vals := dropNaN(sample)
	n := len(vals)
	if n == 0 {
		return nil, errors.NewValueError("KDE", "empty sample")
	}

	sorted := make([]float64, n)
	copy(sorted, vals)
	sort.Float64s(sorted)

	sigma := math.Sqrt(stat.Variance(sorted, nil))
	iqr := stat.Quantile(0.75, stat.LinInterp, sorted, nil) - stat.Quantile(0.25, stat.LinInterp, sorted, nil)

	spread := sigma
	if robust := iqr / 1.34; robust > 0 && robust < spread {
		spread = robust
	}
	if spread <= 0 || math.IsNaN(spread) {
		// 定数サンプルでもゼロ割を避ける
		spread = 1.0
	}
	h := 0.9 * spread * math.Pow(float64(n), -0.2)

	lo := sorted[0] - 3*h
	hi := sorted[n-1] + 3*h
	step := (hi - lo) / float64(gridSize-1)

	xs := make([]float64, gridSize)
	density := make([]float64, gridSize)
	norm := 1.0 / (float64(n) * h * math.Sqrt(2*math.Pi))
	for i := 0; i < gridSize; i++ {
		x := lo + float64(i)*step
		xs[i] = x
		sum := 0.0
		for _, v := range sorted {
			u := (x - v) / h
			sum += math.Exp(-0.5 * u * u)
		}
		density[i] = norm * sum
	}
	return &KDEResult{X: xs, Density: density, Bandwidth: h}, nil
}
