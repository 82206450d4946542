// Package eda drives the full exploratory analysis pass: load the table,
// compute descriptive statistics and write every plot and summary artifact
// into the output directory.
package eda

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hepworks/higgs-eda/config"
	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/pkg/errors"
	"github.com/hepworks/higgs-eda/pkg/log"
	"github.com/hepworks/higgs-eda/plots"
	"github.com/hepworks/higgs-eda/stats"
)

// Artifact file names, in the order they are produced.
const (
	fileInfo           = "0_info.txt"
	fileDescribe       = "1_describe.csv"
	fileTargetDist     = "1_target_distribution.png"
	fileMissing        = "2_missing_values.csv"
	fileHistograms     = "2_feature_histograms.png"
	fileCorrMatrixPNG  = "3_correlation_matrix.png"
	fileCorrMatrixCSV  = "3_correlation_matrix.csv"
	fileMissingHeatmap = "4_missing_value_heatmap.png"
	fileCorrTargetPNG  = "5_corr_with_target.png"
	fileCorrTargetCSV  = "5_corr_with_target.csv"
	fileKDE            = "6_kde_plots.png"
	fileBoxplots       = "7_boxplots_by_label.png"
	filePairplot       = "8_pairplot_sample.png"
	fileVariancePNG    = "9_feature_variance.png"
	fileVarianceCSV    = "9_feature_variance.csv"
	fileScatter        = "10_jointplot_scatter.png"
	fileOutliersPNG    = "11_outlier_iqr.png"
	fileOutliersCSV    = "11_outlier_iqr.csv"
	fileSummary        = "12_summary_overview.csv"
	fileManifest       = "manifest.yaml"
)

// scatter axes of the jointplot step
const (
	scatterX = "lepton_pT"
	scatterY = "missing_energy_magnitude"
)

const (
	maxKDEFeatures     = 6
	maxPairFeatures    = 4
	topVarianceCount   = 15
	outlierPanelCount  = 6
	missingMaskMaxRows = 1000
)

// Runner executes the analysis steps for one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Runner. A nil logger falls back to slog.Default().
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run loads the dataset and executes every analysis step in order.
//
// Statistics and summary outputs are mandatory: a failure aborts the run.
// Plot steps are best effort: a failure is logged and the run continues,
// matching the tool's long-standing behavior of never letting a rendering
// problem kill an hour-long pass over the full file.
func (r *Runner) Run() error {
	cfg := r.cfg

	table, err := dataset.Load(cfg.Input, dataset.WithNRows(cfg.NRows))
	if err != nil {
		return errors.Wrap(err, "load dataset")
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return errors.Wrapf(err, "create output dir %s", cfg.OutDir)
	}

	rows := table.Rows()
	features := resolveFeatures(table, cfg.Features)
	r.logger.Info("starting eda",
		log.RowsKey, rows,
		log.ColumnsKey, table.Cols(),
		log.OutDirKey, cfg.OutDir,
		log.FeaturesKey, features,
	)

	kdeN := min(20000, max(2000, rows/50))
	pairN := min(5000, kdeN)
	scatterN := min(15000, kdeN)

	var artifacts []string

	// Dataset info, describe and missing values are mandatory.
	if err := r.step("info", &artifacts, true, func() ([]string, error) {
		return r.writeInfo(table)
	}); err != nil {
		return err
	}
	if err := r.step("describe", &artifacts, true, func() ([]string, error) {
		summaries, descErr := stats.Describe(table)
		if descErr != nil {
			return nil, descErr
		}
		return artifactList(fileDescribe), writeDescribeCSV(r.path(fileDescribe), summaries)
	}); err != nil {
		return err
	}
	if err := r.step("missing_values", &artifacts, true, func() ([]string, error) {
		return artifactList(fileMissing), writeNamedValuesCSV(r.path(fileMissing), "missing", stats.MissingCounts(table))
	}); err != nil {
		return err
	}

	labels, err := table.Label()
	if err != nil {
		return err
	}

	// Plot steps are best effort from here on.
	_ = r.step("target_distribution", &artifacts, false, func() ([]string, error) {
		return artifactList(fileTargetDist), plots.TargetDistribution(labels, r.path(fileTargetDist))
	})
	_ = r.step("feature_histograms", &artifacts, false, func() ([]string, error) {
		return artifactList(fileHistograms), plots.FeatureHistograms(table, features, r.path(fileHistograms))
	})

	var corr *stats.CorrMatrix
	_ = r.step("correlation_matrix", &artifacts, false, func() ([]string, error) {
		c, corrErr := stats.CorrelationMatrix(table)
		if corrErr != nil {
			return nil, corrErr
		}
		corr = c
		if plotErr := plots.CorrelationHeatMap(corr, r.path(fileCorrMatrixPNG)); plotErr != nil {
			return nil, plotErr
		}
		return artifactList(fileCorrMatrixPNG, fileCorrMatrixCSV), writeCorrMatrixCSV(r.path(fileCorrMatrixCSV), corr)
	})

	_ = r.step("missing_value_heatmap", &artifacts, false, func() ([]string, error) {
		mask := stats.MissingMask(table, missingMaskMaxRows)
		return artifactList(fileMissingHeatmap), plots.MissingValueHeatMap(mask, table.Columns(), r.path(fileMissingHeatmap))
	})

	if corr != nil {
		_ = r.step("corr_with_target", &artifacts, false, func() ([]string, error) {
			ranked, rankErr := stats.CorrelationWithTarget(corr)
			if rankErr != nil {
				return nil, rankErr
			}
			if plotErr := plots.HorizontalBars(ranked, "Correlation with Target Label", r.path(fileCorrTargetPNG)); plotErr != nil {
				return nil, plotErr
			}
			return artifactList(fileCorrTargetPNG, fileCorrTargetCSV), writeNamedValuesCSV(r.path(fileCorrTargetCSV), "corr", ranked)
		})
	}

	_ = r.step("kde_plots", &artifacts, false, func() ([]string, error) {
		kdeSample := table.Sample(kdeN, cfg.Seed)
		kdeFeatures := features[:min(maxKDEFeatures, len(features))]
		r.logger.Debug("kde sample drawn", log.SampleSizeKey, kdeSample.Rows())
		return artifactList(fileKDE), plots.KDEGrid(kdeSample, kdeFeatures, r.path(fileKDE))
	})

	_ = r.step("boxplots_by_label", &artifacts, false, func() ([]string, error) {
		return artifactList(fileBoxplots), plots.BoxplotsByLabel(table, features, r.path(fileBoxplots))
	})

	_ = r.step("pairplot_sample", &artifacts, false, func() ([]string, error) {
		pairFeatures := features[:min(maxPairFeatures, len(features))]
		pairTable, selErr := table.Select(append([]string{dataset.LabelColumn}, pairFeatures...)...)
		if selErr != nil {
			return nil, selErr
		}
		pairSample := pairTable.Sample(pairN, cfg.Seed)
		return artifactList(filePairplot), plots.CornerPairplot(pairSample, pairFeatures, r.path(filePairplot))
	})

	_ = r.step("feature_variance", &artifacts, false, func() ([]string, error) {
		top, varErr := stats.TopVariances(table, topVarianceCount)
		if varErr != nil {
			return nil, varErr
		}
		if plotErr := plots.HorizontalBars(top, "Top 15 Most Variable Features", r.path(fileVariancePNG)); plotErr != nil {
			return nil, plotErr
		}
		return artifactList(fileVariancePNG, fileVarianceCSV), writeNamedValuesCSV(r.path(fileVarianceCSV), "variance", top)
	})

	if table.HasColumn(scatterX) && table.HasColumn(scatterY) {
		_ = r.step("jointplot_scatter", &artifacts, false, func() ([]string, error) {
			scatterSample := table.Sample(scatterN, cfg.Seed)
			x, xErr := scatterSample.Column(scatterX)
			if xErr != nil {
				return nil, xErr
			}
			y, yErr := scatterSample.Column(scatterY)
			if yErr != nil {
				return nil, yErr
			}
			l, lErr := scatterSample.Label()
			if lErr != nil {
				return nil, lErr
			}
			return artifactList(fileScatter), plots.LabeledScatter(x, y, l, scatterX, scatterY, r.path(fileScatter))
		})
	}

	_ = r.step("outlier_iqr", &artifacts, false, func() ([]string, error) {
		featureCols := table.Columns()[1:]
		panelCols := featureCols[:min(outlierPanelCount, len(featureCols))]
		if plotErr := plots.OutlierBoxplots(table, panelCols, r.path(fileOutliersPNG)); plotErr != nil {
			return nil, plotErr
		}
		counts, iqrErr := stats.IQROutliers(table, featureCols)
		if iqrErr != nil {
			return nil, iqrErr
		}
		return artifactList(fileOutliersPNG, fileOutliersCSV), writeOutliersCSV(r.path(fileOutliersCSV), counts)
	})

	if err := r.step("summary_overview", &artifacts, true, func() ([]string, error) {
		positive, negative := 0, 0
		for _, l := range labels {
			switch l {
			case 1:
				positive++
			case 0:
				negative++
			}
		}
		return artifactList(fileSummary), writeSummaryCSV(r.path(fileSummary), rows, table.Cols(), positive, negative)
	}); err != nil {
		return err
	}

	manifest := &Manifest{
		Input:     cfg.Input,
		NRows:     cfg.NRows,
		Rows:      rows,
		Columns:   table.Cols(),
		Seed:      cfg.Seed,
		Features:  features,
		Artifacts: artifacts,
	}
	if err := writeManifest(r.path(fileManifest), manifest); err != nil {
		return err
	}

	r.logger.Info("eda complete",
		log.OutDirKey, cfg.OutDir,
		"artifacts", len(artifacts)+1,
	)
	return nil
}

// step runs one analysis step, records its artifacts and logs the outcome.
// Fatal steps propagate their error; best-effort steps only log it.
func (r *Runner) step(name string, artifacts *[]string, fatal bool, fn func() ([]string, error)) error {
	start := time.Now()
	paths, err := fn()
	if err != nil {
		r.logger.Error("eda step failed", log.ErrAttr(err), log.StepKey, name)
		if fatal {
			return errors.Wrapf(err, "step %s", name)
		}
		return nil
	}
	*artifacts = append(*artifacts, paths...)
	r.logger.Info("eda step completed",
		log.StepKey, name,
		log.DurationMsKey, time.Since(start).Milliseconds(),
		log.OutputPathKey, paths,
	)
	return nil
}

func (r *Runner) path(name string) string {
	return filepath.Join(r.cfg.OutDir, name)
}

// artifactList returns the artifact names a successful step contributes.
func artifactList(names ...string) []string {
	return names
}

// resolveFeatures keeps the configured features that exist in the table.
// When none survive it falls back to the first seven non-label columns.
func resolveFeatures(t *dataset.Table, requested []string) []string {
	features := make([]string, 0, len(requested))
	for _, name := range requested {
		if t.HasColumn(name) && name != dataset.LabelColumn {
			features = append(features, name)
		}
	}
	if len(features) > 0 {
		return features
	}
	for _, name := range t.Columns() {
		if name == dataset.LabelColumn {
			continue
		}
		features = append(features, name)
		if len(features) == 7 {
			break
		}
	}
	return features
}

func (r *Runner) writeInfo(t *dataset.Table) ([]string, error) {
	f, err := os.Create(r.path(fileInfo))
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", fileInfo)
	}
	defer f.Close()
	if err := t.Info(f); err != nil {
		return nil, err
	}
	return artifactList(fileInfo), nil
}
