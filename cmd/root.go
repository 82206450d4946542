package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hepworks/higgs-eda/config"
	"github.com/hepworks/higgs-eda/pkg/log"
)

var (
	// Persistent flags
	cfgFile      string
	flagLogLevel string

	// Loaded configuration
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "higgs-eda",
	Short: "Exploratory data analysis for the UCI HIGGS dataset",
	Long: `higgs-eda reads the UCI HIGGS CSV file (plain or gzip), computes
descriptive statistics and writes a fixed set of plots and summary
tables into an output directory.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(initConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./higgs-eda.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
}

func initConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: load config:", err)
		os.Exit(1)
	}
	cfg = c

	if rootCmd.PersistentFlags().Changed("log-level") {
		if !log.ValidLevel(flagLogLevel) {
			fmt.Fprintf(os.Stderr, "Error: invalid --log-level %q\n", flagLogLevel)
			os.Exit(1)
		}
		cfg.LogLevel = flagLogLevel
	}
	log.SetupLogger(cfg.LogLevel)
}
