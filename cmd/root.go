package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "edascope/internal/config"
	"edascope/internal/report"
)

var (
	cfgFile string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "edascope",
	Short: "edascope: exploratory data analysis for delimited text files",
	Long:  `edascope profiles a CSV/TSV dataset and produces summary tables, a quality score, a textual report, and plots.`,
}

// Execute is the entry point called by main.main(). Exit codes: 0 success,
// 1 error, 2 quality gate.
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		var gate *report.GateError
		if errors.As(err, &gate) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.edascope/config.yaml)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: defaults still apply
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// activeConfig returns the loaded config, falling back to defaults when the
// config could not be read.
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	c, _ := cfgpkg.Load("")
	if c == nil {
		c = &cfgpkg.Global{
			Separator:       ",",
			Encoding:        "utf-8",
			OutDir:          "reports",
			MaxHistColumns:  6,
			TopKCategories:  5,
			Title:           "EDA report",
			Plots:           true,
			MinQualityScore: 0.5,
		}
	}
	return c
}

// parseSeparator maps the --sep flag value to a rune.
func parseSeparator(s string) (rune, error) {
	switch s {
	case ",", "":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	case "|":
		return '|', nil
	default:
		return 0, fmt.Errorf("unsupported separator: %q (use ','|';'|'tab'|'|')", s)
	}
}
