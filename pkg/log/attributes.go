// Package log defines standard attribute keys for EDA operations.
//
// Using these keys keeps log records uniform across the loader, the
// statistics code and the analysis driver, which makes runs easy to
// filter and compare.

package log

// Dataset context.
// These attributes describe the table being analyzed.
const (
	// DatasetPathKey is the input file the table was loaded from.
	DatasetPathKey = "dataset.path"

	// RowsKey is the number of rows held in memory.
	RowsKey = "dataset.rows"

	// ColumnsKey is the number of columns in the table.
	ColumnsKey = "dataset.columns"

	// RequestedRowsKey is the row limit requested on the command line.
	// 0 means the whole file.
	RequestedRowsKey = "dataset.requested_rows"
)

// Analysis context.
const (
	// StepKey names the EDA step being executed.
	// Examples: "describe", "correlation_matrix", "kde_plots"
	StepKey = "eda.step"

	// OutputPathKey is the artifact path a step wrote.
	OutputPathKey = "output.path"

	// OutDirKey is the directory all artifacts are written under.
	OutDirKey = "output.dir"

	// SampleSizeKey is the number of rows a sampled step operated on.
	SampleSizeKey = "eda.sample_size"

	// FeaturesKey lists the feature columns selected for plotting.
	FeaturesKey = "eda.features"
)

// Performance metrics.
const (
	// DurationMsKey records the execution time of a step in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
