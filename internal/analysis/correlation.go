package analysis

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"edascope/internal/dataset"
)

// CorrelationMatrix is a symmetric Pearson correlation matrix across numeric
// columns. Values[i][j] is NaN when the pair has fewer than two complete
// observations or a zero-variance side; the diagonal is fixed at 1.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// Empty reports whether the matrix has no content (fewer than two numeric
// columns in the dataset).
func (m CorrelationMatrix) Empty() bool { return len(m.Columns) == 0 }

// NumericSeries returns the columns the profiler classifies as numeric,
// parsed into row-aligned float slices with NaN for missing cells.
func NumericSeries(ds *dataset.Dataset) ([]string, [][]float64) {
	var names []string
	var series [][]float64
	for _, col := range ds.Columns {
		if classify(col.NonMissing()) != KindNumeric {
			continue
		}
		names = append(names, col.Name)
		series = append(series, numericCells(col))
	}
	return names, series
}

// Correlations computes pairwise Pearson correlations among all columns the
// profiler classifies as numeric, using pairwise-complete observations.
func Correlations(ds *dataset.Dataset) CorrelationMatrix {
	names, series := NumericSeries(ds)
	if len(names) < 2 {
		return CorrelationMatrix{}
	}

	n := len(names)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pairwisePearson(series[i], series[j])
			values[i][j] = r
			values[j][i] = r
		}
	}
	return CorrelationMatrix{Columns: names, Values: values}
}

// numericCells parses a column into floats with NaN for missing or
// unparseable cells, preserving row alignment.
func numericCells(col dataset.Column) []float64 {
	out := make([]float64, len(col.Cells))
	for i, cell := range col.Cells {
		if dataset.IsMissing(cell) {
			out[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = x
	}
	return out
}

// pairwisePearson correlates two aligned series over rows where both sides
// are present. NaN when fewer than two complete pairs or zero variance.
func pairwisePearson(a, b []float64) float64 {
	xs := make([]float64, 0, len(a))
	ys := make([]float64, 0, len(b))
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		xs = append(xs, a[i])
		ys = append(ys, b[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsInf(r, 0) {
		return math.NaN()
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
