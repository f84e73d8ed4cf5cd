package analysis

import "edascope/internal/dataset"

// DatasetSummary is the dataset-level summary: row/column counts plus one
// ColumnSummary per column, in declaration order.
type DatasetSummary struct {
	NRows   int
	NCols   int
	Columns []ColumnSummary
}

// Summarize profiles every column of the dataset. Deterministic: the same
// dataset always yields an identical summary.
func Summarize(ds *dataset.Dataset) DatasetSummary {
	sum := DatasetSummary{
		NRows:   ds.NRows(),
		NCols:   ds.NCols(),
		Columns: make([]ColumnSummary, 0, ds.NCols()),
	}
	for _, col := range ds.Columns {
		sum.Columns = append(sum.Columns, ProfileColumn(col, ds.NRows()))
	}
	return sum
}
