package dataset

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/hepworks/higgs-eda/pkg/errors"
	"github.com/hepworks/higgs-eda/pkg/log"
)

// loaderConfig はLoadの動作設定
type loaderConfig struct {
	nrows int
}

// Option is a function that configures Load
type Option func(*loaderConfig)

// WithNRows limits the number of rows read from the file.
// 0 means the whole file.
func WithNRows(n int) Option {
	return func(c *loaderConfig) {
		c.nrows = n
	}
}

// Load はHIGGS CSVファイルを読み込み、29列の名前付きテーブルを返す
//
// 入力ファイルにヘッダ行はなく、列名はUCIのデータセット記述に従って
// ColumnNames()の順に割り当てられる。拡張子が.gzの場合はgzipとして展開する。
// 数値として解釈できないフィールドはNaNとして読み込まれ、
// 欠損値ステップで集計される。
//
// パラメータ:
//   - path: CSVファイルのパス（.gz可）
//   - opts: WithNRowsなどのオプション
//
// 戻り値:
//   - *Table: 読み込まれたテーブル（行数 = min(指定行数, ファイル行数)）
//   - error: ファイルが存在しない、または列数がスキーマと一致しない場合
func Load(path string, opts ...Option) (*Table, error) {
	cfg := loaderConfig{nrows: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nrows < 0 {
		return nil, errors.NewValidationError("nrows", "must be non-negative", cfg.nrows)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", path)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, gzErr := gzip.NewReader(f)
		if gzErr != nil {
			return nil, errors.Wrapf(gzErr, "open gzip stream %s", path)
		}
		defer gz.Close()
		reader = gz
	}

	slog.Info("loading dataset",
		log.DatasetPathKey, path,
		log.RequestedRowsKey, cfg.nrows,
	)

	names := ColumnNames()
	r := csv.NewReader(reader)
	r.ReuseRecord = true
	r.FieldsPerRecord = NumColumns

	buf := make([]float64, 0, initialCap(cfg.nrows)*NumColumns)
	rows := 0
	line := 0
	for cfg.nrows == 0 || rows < cfg.nrows {
		record, readErr := r.Read()
		line++
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			if len(record) != 0 && len(record) != NumColumns {
				return nil, errors.NewSchemaError(path, line, NumColumns, len(record))
			}
			return nil, errors.Wrapf(readErr, "read %s line %d", path, line)
		}
		for _, field := range record {
			v, parseErr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if parseErr != nil {
				v = math.NaN()
			}
			buf = append(buf, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "load dataset %s", path)
	}

	table, err := NewTable(names, mat.NewDense(rows, NumColumns, buf))
	if err != nil {
		return nil, err
	}

	slog.Info("dataset loaded",
		log.DatasetPathKey, path,
		log.RowsKey, table.Rows(),
		log.ColumnsKey, table.Cols(),
	)
	return table, nil
}

func initialCap(nrows int) int {
	if nrows > 0 {
		return nrows
	}
	return 1024
}
