package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hepworks/higgs-eda/config"
)

var initPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to a yaml file",
	Long: `init writes the current effective configuration (defaults, config
file and environment applied) to a yaml file that later runs pick up.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Refuse to overwrite an existing config file.
		if _, err := os.Stat(initPath); err == nil {
			return fmt.Errorf("config file already exists at %s", initPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", initPath, err)
		}
		if err := config.Save(cfg, initPath); err != nil {
			return err
		}
		fmt.Printf("Wrote config to %s\n", initPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initPath, "path", "p", "higgs-eda.yaml", "where to write the config file")
}
