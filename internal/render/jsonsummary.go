package render

import (
	"edascope/internal/analysis"
	"edascope/internal/utils"
)

// JSONSummary is the optional structured summary file payload.
type JSONSummary struct {
	NRows          int      `json:"n_rows"`
	NCols          int      `json:"n_cols"`
	QualityScore   float64  `json:"quality_score"`
	ProblemColumns []string `json:"problem_columns"`
}

// WriteJSONSummary writes summary.json. Problem columns come from the same
// predicate the quality scorer uses.
func WriteJSONSummary(path string, sum analysis.DatasetSummary, flags analysis.QualityFlags) error {
	payload := JSONSummary{
		NRows:          sum.NRows,
		NCols:          sum.NCols,
		QualityScore:   flags.Score,
		ProblemColumns: append([]string{}, flags.ProblemColumns...),
	}
	b, err := utils.PrettyJSON(payload)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(path, b)
}
