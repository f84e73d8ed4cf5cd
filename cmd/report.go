package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "edascope/internal/config"
	"edascope/internal/dataset"
	"edascope/internal/report"
)

var (
	repSep        string
	repEncoding   string
	repOutDir     string
	repMaxHist    int
	repTopK       int
	repTitle      string
	repJSON       bool
	repXLSX       bool
	repNoPlots    bool
	repMinQuality float64
	repFailOnLow  bool
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Generate a full EDA report into a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, loadOpts, err := reportOptions(cmd, activeConfig())
		if err != nil {
			return err
		}
		ds, err := dataset.Load(args[0], loadOpts)
		if err != nil {
			return err
		}
		res, err := report.Generate(ds, opts)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Report saved to %s (quality score %.3f, %d files)\n",
			res.OutDir, res.Flags.Score, len(res.Artifacts))
		return nil
	},
}

// reportOptions merges config defaults with explicitly set flags.
func reportOptions(cmd *cobra.Command, c *cfgpkg.Global) (report.Options, dataset.LoadOptions, error) {
	opts := report.Options{
		OutDir:           c.OutDir,
		Title:            c.Title,
		TopK:             c.TopKCategories,
		MaxHistColumns:   c.MaxHistColumns,
		JSONSummary:      c.JSONSummary,
		XLSX:             c.XLSXSummary,
		Plots:            c.Plots,
		MinQualityScore:  c.MinQualityScore,
		FailOnLowQuality: c.FailOnLowQuality,
	}
	sepFlag := c.Separator
	enc := c.Encoding

	f := cmd.Flags()
	if f.Changed("sep") {
		sepFlag = repSep
	}
	if f.Changed("encoding") {
		enc = repEncoding
	}
	if f.Changed("out-dir") {
		opts.OutDir = repOutDir
	}
	if f.Changed("max-hist-columns") {
		opts.MaxHistColumns = repMaxHist
	}
	if f.Changed("top-k") {
		opts.TopK = repTopK
	}
	if f.Changed("title") {
		opts.Title = repTitle
	}
	if f.Changed("json-summary") {
		opts.JSONSummary = repJSON
	}
	if f.Changed("xlsx") {
		opts.XLSX = repXLSX
	}
	if f.Changed("no-plots") {
		opts.Plots = !repNoPlots
	}
	if f.Changed("min-quality-score") {
		opts.MinQualityScore = repMinQuality
	}
	if f.Changed("fail-on-low-quality") {
		opts.FailOnLowQuality = repFailOnLow
	}

	sep, err := parseSeparator(sepFlag)
	if err != nil {
		return report.Options{}, dataset.LoadOptions{}, err
	}
	return opts, dataset.LoadOptions{Separator: sep, Encoding: enc}, nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&repSep, "sep", ",", "field separator: ','|';'|'tab'|'|'")
	reportCmd.Flags().StringVar(&repEncoding, "encoding", "utf-8", "text encoding (IANA name)")
	reportCmd.Flags().StringVarP(&repOutDir, "out-dir", "o", "reports", "output directory")
	reportCmd.Flags().IntVar(&repMaxHist, "max-hist-columns", 6, "max number of histogram plots")
	reportCmd.Flags().IntVar(&repTopK, "top-k", 5, "top-K categories per categorical column")
	reportCmd.Flags().StringVar(&repTitle, "title", "EDA report", "report title")
	reportCmd.Flags().BoolVar(&repJSON, "json-summary", false, "also write summary.json")
	reportCmd.Flags().BoolVar(&repXLSX, "xlsx", false, "also write summary.xlsx workbook")
	reportCmd.Flags().BoolVar(&repNoPlots, "no-plots", false, "skip histogram/heatmap images")
	reportCmd.Flags().Float64Var(&repMinQuality, "min-quality-score", 0.5, "minimum acceptable quality score")
	reportCmd.Flags().BoolVar(&repFailOnLow, "fail-on-low-quality", false, "abort with a distinct exit code when quality is below the threshold")
}
