package dataset

import (
	"fmt"
	"strings"
)

// Column is an ordered sequence of raw cell values under a header name.
type Column struct {
	Name  string
	Cells []string
}

// Dataset is an immutable tabular dataset: ordered named columns of equal
// length. Build one via New or Load and treat it as read-only afterwards.
type Dataset struct {
	Columns []Column
	nRows   int
}

// New assembles a Dataset from columns. All columns must have the same
// number of cells.
func New(columns []Column) (*Dataset, error) {
	n := 0
	if len(columns) > 0 {
		n = len(columns[0].Cells)
	}
	for _, c := range columns {
		if len(c.Cells) != n {
			return nil, fmt.Errorf("column %q has %d cells, want %d", c.Name, len(c.Cells), n)
		}
	}
	return &Dataset{Columns: columns, nRows: n}, nil
}

// NRows returns the number of data rows.
func (d *Dataset) NRows() int { return d.nRows }

// NCols returns the number of columns.
func (d *Dataset) NCols() int { return len(d.Columns) }

// ColumnNames returns header names in declaration order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// missingTokens are the cell values treated as missing markers, compared
// case-insensitively after trimming surrounding whitespace.
var missingTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
}

// IsMissing reports whether a raw cell value is a missing marker.
func IsMissing(cell string) bool {
	_, ok := missingTokens[strings.ToLower(strings.TrimSpace(cell))]
	return ok
}

// NonMissing returns the column's non-missing cells in row order, trimmed.
func (c Column) NonMissing() []string {
	out := make([]string, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !IsMissing(cell) {
			out = append(out, strings.TrimSpace(cell))
		}
	}
	return out
}
