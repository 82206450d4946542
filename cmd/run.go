package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hepworks/higgs-eda/eda"
)

var (
	runInput    string
	runNRows    int
	runOutDir   string
	runFeatures []string
	runSeed     int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full analysis and write every artifact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		if f.Changed("input") {
			cfg.Input = runInput
		}
		if f.Changed("nrows") {
			cfg.NRows = runNRows
		}
		if f.Changed("outdir") {
			cfg.OutDir = runOutDir
		}
		if f.Changed("features") {
			cfg.Features = runFeatures
		}
		if f.Changed("seed") {
			cfg.Seed = runSeed
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return eda.New(cfg, slog.Default()).Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "path to the HIGGS CSV file (.gz supported)")
	runCmd.Flags().IntVarP(&runNRows, "nrows", "n", 0, "number of rows to read (0 = whole file)")
	runCmd.Flags().StringVarP(&runOutDir, "outdir", "o", "", "directory to write artifacts into")
	runCmd.Flags().StringSliceVar(&runFeatures, "features", nil, "comma-separated feature columns to plot")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed for sampling")
}
