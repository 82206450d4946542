package eda

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hepworks/higgs-eda/pkg/errors"
	"github.com/hepworks/higgs-eda/stats"
)

// formatFloat renders a value the same way on every run so that CSV outputs
// are byte-idempotent. NaN renders as an empty field, pandas style.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// writeDescribeCSV writes the transposed describe table: one row per column.
func writeDescribeCSV(path string, summaries []stats.ColumnSummary) error {
	records := [][]string{{"", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}}
	for _, s := range summaries {
		records = append(records, []string{
			s.Name,
			strconv.Itoa(s.Count),
			formatFloat(s.Mean),
			formatFloat(s.Std),
			formatFloat(s.Min),
			formatFloat(s.Q25),
			formatFloat(s.Q50),
			formatFloat(s.Q75),
			formatFloat(s.Max),
		})
	}
	return writeCSV(path, records)
}

// writeNamedValuesCSV writes a two-column CSV of (column, value) pairs.
func writeNamedValuesCSV(path, valueHeader string, values []stats.NamedValue) error {
	records := [][]string{{"", valueHeader}}
	for _, nv := range values {
		records = append(records, []string{nv.Name, formatFloat(nv.Value)})
	}
	return writeCSV(path, records)
}

// writeCorrMatrixCSV writes the full correlation matrix with row and column
// headers.
func writeCorrMatrixCSV(path string, corr *stats.CorrMatrix) error {
	header := append([]string{""}, corr.Columns...)
	records := [][]string{header}
	for i, name := range corr.Columns {
		row := make([]string, 0, len(corr.Columns)+1)
		row = append(row, name)
		for j := range corr.Columns {
			row = append(row, formatFloat(corr.At(i, j)))
		}
		records = append(records, row)
	}
	return writeCSV(path, records)
}

func writeOutliersCSV(path string, counts []stats.OutlierCount) error {
	records := [][]string{{"column", "lower_fence", "upper_fence", "outliers"}}
	for _, c := range counts {
		records = append(records, []string{
			c.Column,
			formatFloat(c.Lower),
			formatFloat(c.Upper),
			strconv.Itoa(c.Count),
		})
	}
	return writeCSV(path, records)
}

func writeSummaryCSV(path string, rows, cols, positive, negative int) error {
	return writeCSV(path, [][]string{
		{"rows", "columns", "positive_labels", "negative_labels"},
		{strconv.Itoa(rows), strconv.Itoa(cols), strconv.Itoa(positive), strconv.Itoa(negative)},
	})
}

// Manifest records the run parameters and every artifact a run produced.
// It deliberately carries no timestamps so identical runs stay byte-identical.
type Manifest struct {
	Input     string   `yaml:"input"`
	NRows     int      `yaml:"nrows_requested"`
	Rows      int      `yaml:"rows"`
	Columns   int      `yaml:"columns"`
	Seed      int64    `yaml:"seed"`
	Features  []string `yaml:"features"`
	Artifacts []string `yaml:"artifacts"`
}

func writeManifest(path string, m *Manifest) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "marshal manifest")
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrapf(err, "write manifest %s", path)
	}
	return nil
}
