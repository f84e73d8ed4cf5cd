package report

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"edascope/internal/analysis"
	"edascope/internal/dataset"
	"edascope/internal/render"
	"edascope/internal/utils"
	"edascope/internal/viz"
)

// Options enumerates everything report generation can be configured with.
// No ambient state: the caller passes a Dataset plus this struct.
type Options struct {
	OutDir           string
	Title            string
	TopK             int
	MaxHistColumns   int
	JSONSummary      bool
	XLSX             bool
	Plots            bool
	MinQualityScore  float64
	FailOnLowQuality bool
}

// DefaultOptions mirrors the CLI defaults.
func DefaultOptions() Options {
	return Options{
		OutDir:          "reports",
		Title:           "EDA report",
		TopK:            5,
		MaxHistColumns:  6,
		Plots:           true,
		MinQualityScore: 0.5,
	}
}

// GateError is the distinct terminal condition for a dataset whose quality
// score falls below the configured threshold. Nothing has been written when
// it is returned.
type GateError struct {
	Score     float64
	Threshold float64
}

func (e *GateError) Error() string {
	return fmt.Sprintf("quality score %.3f below threshold %.3f", e.Score, e.Threshold)
}

// Result describes a completed report run.
type Result struct {
	RunID     string
	OutDir    string
	Flags     analysis.QualityFlags
	Artifacts []string
}

// Generate runs the full analysis pipeline over ds and writes the report
// artifacts under opts.OutDir. All analyses are computed and the quality
// gate is evaluated before anything touches the filesystem.
func Generate(ds *dataset.Dataset, opts Options) (*Result, error) {
	summary := analysis.Summarize(ds)
	missing := analysis.MissingProfile(ds)
	corr := analysis.Correlations(ds)
	cats, err := analysis.TopCategories(ds, opts.TopK)
	if err != nil {
		return nil, err
	}
	flags := analysis.ComputeQualityFlags(summary, missing)

	if opts.FailOnLowQuality && flags.Score < opts.MinQualityScore {
		return nil, &GateError{Score: flags.Score, Threshold: opts.MinQualityScore}
	}

	if err := utils.EnsureDir(opts.OutDir); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", opts.OutDir, err)
	}
	res := &Result{
		RunID:  uuid.NewString(),
		OutDir: opts.OutDir,
		Flags:  flags,
	}

	summaryPath := filepath.Join(opts.OutDir, "summary.csv")
	if err := render.WriteSummaryCSV(summaryPath, summary); err != nil {
		return nil, err
	}
	res.Artifacts = append(res.Artifacts, summaryPath)

	if len(missing) > 0 {
		p := filepath.Join(opts.OutDir, "missing.csv")
		if err := render.WriteMissingCSV(p, missing); err != nil {
			return nil, err
		}
		res.Artifacts = append(res.Artifacts, p)
	}
	if !corr.Empty() {
		p := filepath.Join(opts.OutDir, "correlation.csv")
		if err := render.WriteCorrelationCSV(p, corr); err != nil {
			return nil, err
		}
		res.Artifacts = append(res.Artifacts, p)
	}
	catPaths, err := render.WriteTopCategoryTables(filepath.Join(opts.OutDir, "top_categories"), cats)
	if err != nil {
		return nil, err
	}
	res.Artifacts = append(res.Artifacts, catPaths...)

	reportPath := filepath.Join(opts.OutDir, "report.md")
	if err := render.WriteReport(reportPath, opts.Title, summary, flags, res.RunID); err != nil {
		return nil, err
	}
	res.Artifacts = append(res.Artifacts, reportPath)

	if opts.JSONSummary {
		p := filepath.Join(opts.OutDir, "summary.json")
		if err := render.WriteJSONSummary(p, summary, flags); err != nil {
			return nil, err
		}
		res.Artifacts = append(res.Artifacts, p)
	}
	if opts.XLSX {
		p := filepath.Join(opts.OutDir, "summary.xlsx")
		if err := render.WriteWorkbook(p, summary, missing, corr, cats); err != nil {
			return nil, err
		}
		res.Artifacts = append(res.Artifacts, p)
	}

	if opts.Plots {
		histPaths, err := viz.Histograms(ds, opts.OutDir, opts.MaxHistColumns)
		if err != nil {
			return nil, err
		}
		res.Artifacts = append(res.Artifacts, histPaths...)
		missPath := filepath.Join(opts.OutDir, "missing_matrix.png")
		if err := viz.MissingMatrix(ds, missPath); err != nil {
			return nil, err
		}
		if ds.NRows() > 0 && ds.NCols() > 0 {
			res.Artifacts = append(res.Artifacts, missPath)
		}
		if !corr.Empty() {
			heatPath := filepath.Join(opts.OutDir, "correlation_heatmap.png")
			if err := viz.CorrelationHeatmap(corr, heatPath); err != nil {
				return nil, err
			}
			res.Artifacts = append(res.Artifacts, heatPath)
		}
	}
	return res, nil
}
