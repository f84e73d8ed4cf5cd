package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "edascope/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the active configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		fmt.Printf("separator: %q\n", c.Separator)
		fmt.Printf("encoding: %s\n", c.Encoding)
		fmt.Printf("out_dir: %s\n", c.OutDir)
		fmt.Printf("max_hist_columns: %d\n", c.MaxHistColumns)
		fmt.Printf("top_k_categories: %d\n", c.TopKCategories)
		fmt.Printf("title: %s\n", c.Title)
		fmt.Printf("json_summary: %t\n", c.JSONSummary)
		fmt.Printf("xlsx_summary: %t\n", c.XLSXSummary)
		fmt.Printf("plots: %t\n", c.Plots)
		fmt.Printf("min_quality_score: %g\n", c.MinQualityScore)
		fmt.Printf("fail_on_low_quality: %t\n", c.FailOnLowQuality)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the active configuration to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("✓ Config written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
