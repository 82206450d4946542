package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hepworks/higgs-eda/dataset"
)

var (
	inspectInput string
	inspectNRows int
	inspectHead  int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load a slice of the dataset and print schema, dtypes and head rows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := cfg.Input
		if cmd.Flags().Changed("input") {
			input = inspectInput
		}

		table, err := dataset.Load(input, dataset.WithNRows(inspectNRows))
		if err != nil {
			return err
		}

		if err := table.Info(os.Stdout); err != nil {
			return err
		}
		fmt.Println()
		return table.WriteHead(os.Stdout, inspectHead)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectInput, "input", "i", "", "path to the HIGGS CSV file (.gz supported)")
	inspectCmd.Flags().IntVarP(&inspectNRows, "nrows", "n", 1000, "number of rows to read (0 = whole file)")
	inspectCmd.Flags().IntVar(&inspectHead, "head", 10, "number of head rows to print")
}
