package analysis

// QualityFlags is the derived data-quality verdict for a dataset. Ephemeral:
// computed once per report and consumed by rendering and the quality gate.
type QualityFlags struct {
	Score          float64
	ProblemCount   int
	ProblemColumns []string
	HasMissing     bool
}

// IsProblem reports whether a column is low-value for analysis: more than
// half missing, or degenerate (at most one distinct value, counting the
// all-missing case where Unique is 0).
func IsProblem(c ColumnSummary) bool {
	return c.MissingShare > 0.5 || c.Unique <= 1
}

// ComputeQualityFlags scores the dataset in [0,1]: 1 minus the share of
// problem columns. An empty dataset (no columns) scores 1.
func ComputeQualityFlags(summary DatasetSummary, missing MissingTable) QualityFlags {
	flags := QualityFlags{
		Score:      1.0,
		HasMissing: len(missing) > 0,
	}
	for _, c := range summary.Columns {
		if IsProblem(c) {
			flags.ProblemCount++
			flags.ProblemColumns = append(flags.ProblemColumns, c.Name)
		}
	}
	if summary.NCols > 0 {
		flags.Score = 1.0 - float64(flags.ProblemCount)/float64(summary.NCols)
	}
	return flags
}
