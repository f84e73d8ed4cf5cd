package analysis

import "edascope/internal/dataset"

// MissingEntry records missingness for one column.
type MissingEntry struct {
	Name  string
	Count int
	Share float64
}

// MissingTable lists columns that have at least one missing cell, in
// declaration order. Columns without missing values are omitted.
type MissingTable []MissingEntry

// Get returns the entry for a column name, if present.
func (t MissingTable) Get(name string) (MissingEntry, bool) {
	for _, e := range t {
		if e.Name == name {
			return e, true
		}
	}
	return MissingEntry{}, false
}

// MissingProfile computes the per-column missing-value table.
func MissingProfile(ds *dataset.Dataset) MissingTable {
	n := ds.NRows()
	var table MissingTable
	for _, col := range ds.Columns {
		count := 0
		for _, cell := range col.Cells {
			if dataset.IsMissing(cell) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		share := 0.0
		if n > 0 {
			share = float64(count) / float64(n)
		}
		table = append(table, MissingEntry{Name: col.Name, Count: count, Share: share})
	}
	return table
}

// RowMissingCounts returns, per row, how many cells are missing.
func RowMissingCounts(ds *dataset.Dataset) []int {
	counts := make([]int, ds.NRows())
	for _, col := range ds.Columns {
		for i, cell := range col.Cells {
			if dataset.IsMissing(cell) {
				counts[i]++
			}
		}
	}
	return counts
}
