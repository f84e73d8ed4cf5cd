package render

import (
	"fmt"
	"strings"

	"edascope/internal/analysis"
	"edascope/internal/utils"
)

// ReportMarkdown renders the textual report: title, shape, and the quality
// verdict.
func ReportMarkdown(title string, sum analysis.DatasetSummary, flags analysis.QualityFlags, runID string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s\n\n", title))
	b.WriteString(fmt.Sprintf("Rows: **%d**, columns: **%d**\n\n", sum.NRows, sum.NCols))

	b.WriteString("## Data quality\n\n")
	b.WriteString(fmt.Sprintf("- quality_score: **%.3f**\n", flags.Score))
	b.WriteString(fmt.Sprintf("- problem_columns: **%d**\n", flags.ProblemCount))
	b.WriteString(fmt.Sprintf("- has_missing: **%t**\n", flags.HasMissing))
	if len(flags.ProblemColumns) > 0 {
		b.WriteString("\nProblem columns:\n\n")
		for _, name := range flags.ProblemColumns {
			b.WriteString(fmt.Sprintf("- %s\n", name))
		}
	}
	b.WriteString(fmt.Sprintf("\n---\nReport ID: %s\n", runID))
	return b.String()
}

// WriteReport writes the markdown report to path.
func WriteReport(path, title string, sum analysis.DatasetSummary, flags analysis.QualityFlags, runID string) error {
	return utils.SafeWriteFile(path, []byte(ReportMarkdown(title, sum, flags, runID)))
}

// OverviewTable renders the flattened per-column summary as a markdown pipe
// table for terminal output.
func OverviewTable(sum analysis.DatasetSummary) string {
	var b strings.Builder
	b.WriteString("| name | dtype | missing | missing_share | unique | min | max | mean | std |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, c := range sum.Columns {
		b.WriteString(fmt.Sprintf("| %s | %s | %d | %s | %d | %s | %s | %s | %s |\n",
			c.Name, c.Kind, c.MissingCount, formatFloat(c.MissingShare), c.Unique,
			formatFloat(c.Min), formatFloat(c.Max), formatFloat(c.Mean), formatFloat(c.Std)))
	}
	return b.String()
}
