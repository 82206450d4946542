// Package dataset はHIGGSデータセットの読み込みと列名付きテーブル表現を提供します。
package dataset

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"

	"github.com/hepworks/higgs-eda/pkg/errors"
)

// Table は列名付きの数値テーブル
// 全ての列はfloat64で、ラベル列が先頭に置かれる
type Table struct {
	names []string
	index map[string]int
	data  *mat.Dense
}

// NewTable は列名と行列からテーブルを作成する
//
// パラメータ:
//   - names: 列名（行列の列数と一致すること）
//   - data: 数値データ (n_rows × n_cols の行列)
//
// 戻り値:
//   - *Table: 新しいテーブル
//   - error: 列数が一致しない場合
func NewTable(names []string, data *mat.Dense) (*Table, error) {
	_, c := data.Dims()
	if c != len(names) {
		return nil, errors.NewDimensionError("NewTable", len(names), c, 1)
	}
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}
	return &Table{names: names, index: index, data: data}, nil
}

// Rows は行数を返す
func (t *Table) Rows() int {
	r, _ := t.data.Dims()
	return r
}

// Cols は列数を返す
func (t *Table) Cols() int {
	_, c := t.data.Dims()
	return c
}

// Columns は列名のコピーを返す
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// HasColumn は指定した列が存在するかを返す
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex は列名から列番号を返す
func (t *Table) ColumnIndex(name string) (int, error) {
	j, ok := t.index[name]
	if !ok {
		return 0, errors.NewColumnNotFoundError(name, t.names)
	}
	return j, nil
}

// At は(i, j)の値を返す
func (t *Table) At(i, j int) float64 {
	return t.data.At(i, j)
}

// Column は列の値のコピーを返す
func (t *Table) Column(name string) ([]float64, error) {
	j, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	r := t.Rows()
	out := make([]float64, r)
	mat.Col(out, j, t.data)
	return out, nil
}

// Label はラベル列の値を返す
func (t *Table) Label() ([]float64, error) {
	return t.Column(LabelColumn)
}

// Data はテーブルを裏付ける行列を返す
// 統計計算はこの行列を読み取り専用で参照する
func (t *Table) Data() *mat.Dense {
	return t.data
}

// Head は先頭n行からなる新しいテーブルを返す（nは1以上であること）
func (t *Table) Head(n int) *Table {
	r := t.Rows()
	if n > r {
		n = r
	}
	if n < 1 {
		n = 1
	}
	out := mat.NewDense(n, t.Cols(), nil)
	out.Copy(t.data.Slice(0, n, 0, t.Cols()))
	head, _ := NewTable(t.Columns(), out)
	return head
}

// Sample はシード付き乱数で非復元抽出したn行のテーブルを返す
// n >= 行数の場合は全行のコピーを、n < 1 の場合は1行を返す
// 行の並びは元のテーブルの順序を保つため、同じシードなら結果は常に同一になる
func (t *Table) Sample(n int, seed int64) *Table {
	r := t.Rows()
	if n >= r {
		return t.Head(r)
	}
	if n < 1 {
		n = 1
	}
	rng := rand.New(rand.NewSource(seed))
	idx := rng.Perm(r)[:n]
	sort.Ints(idx)

	c := t.Cols()
	out := mat.NewDense(n, c, nil)
	for i, src := range idx {
		for j := 0; j < c; j++ {
			out.Set(i, j, t.data.At(src, j))
		}
	}
	sampled, _ := NewTable(t.Columns(), out)
	return sampled
}

// Select は指定した列のみからなる新しいテーブルを返す
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]int, len(names))
	for i, name := range names {
		j, err := t.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		cols[i] = j
	}
	r := t.Rows()
	out := mat.NewDense(r, len(names), nil)
	for i := 0; i < r; i++ {
		for k, j := range cols {
			out.Set(i, k, t.data.At(i, j))
		}
	}
	selected := make([]string, len(names))
	copy(selected, names)
	return NewTable(selected, out)
}

// DTypes は各列の型名を返す（全列float64）
func (t *Table) DTypes() []string {
	dtypes := make([]string, t.Cols())
	for i := range dtypes {
		dtypes[i] = "float64"
	}
	return dtypes
}

// NonNullCounts は各列のNaNでない値の個数を返す
func (t *Table) NonNullCounts() []int {
	r, c := t.data.Dims()
	counts := make([]int, c)
	for j := 0; j < c; j++ {
		n := 0
		for i := 0; i < r; i++ {
			if !math.IsNaN(t.data.At(i, j)) {
				n++
			}
		}
		counts[j] = n
	}
	return counts
}

// Info はpandasのdf.info()に相当するテーブル概要をwに書き出す
func (t *Table) Info(w io.Writer) error {
	r, c := t.data.Dims()
	if _, err := fmt.Fprintf(w, "<higgs-eda Table>\nRangeIndex: %d entries, 0 to %d\nData columns (total %d columns):\n", r, r-1, c); err != nil {
		return errors.Wrap(err, "write info header")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " #\tColumn\tNon-Null Count\tDtype")
	fmt.Fprintln(tw, "---\t------\t--------------\t-----")
	nonNull := t.NonNullCounts()
	dtypes := t.DTypes()
	for j, name := range t.names {
		fmt.Fprintf(tw, " %d\t%s\t%d non-null\t%s\n", j, name, nonNull[j], dtypes[j])
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flush info columns")
	}

	if _, err := fmt.Fprintf(w, "dtypes: float64(%d)\nmemory usage: %s\n", c, formatBytes(int64(r)*int64(c)*8)); err != nil {
		return errors.Wrap(err, "write info footer")
	}
	return nil
}

// WriteHead は先頭n行をタブ区切りでwに書き出す（inspectコマンド用）
func (t *Table) WriteHead(w io.Writer, n int) error {
	head := t.Head(n)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, joinTabs(t.names))
	for i := 0; i < head.Rows(); i++ {
		row := make([]string, head.Cols())
		for j := range row {
			row[j] = fmt.Sprintf("%.6g", head.At(i, j))
		}
		fmt.Fprintln(tw, joinTabs(row))
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flush head rows")
	}
	return nil
}

func joinTabs(fields []string) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += "\t"
		}
		out += f
	}
	return out
}

func formatBytes(n int64) string {
	const kb = 1024.0
	f := float64(n)
	switch {
	case f >= kb*kb*kb:
		return fmt.Sprintf("%.1f GB", f/(kb*kb*kb))
	case f >= kb*kb:
		return fmt.Sprintf("%.1f MB", f/(kb*kb))
	case f >= kb:
		return fmt.Sprintf("%.1f KB", f/kb)
	}
	return fmt.Sprintf("%d bytes", n)
}
