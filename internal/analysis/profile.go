package analysis

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"edascope/internal/dataset"
)

// DtypeKind is the closed set of inferred column types.
type DtypeKind string

const (
	KindNumeric     DtypeKind = "numeric"
	KindCategorical DtypeKind = "categorical"
	KindBoolean     DtypeKind = "boolean"
	KindDatetime    DtypeKind = "datetime"
	KindUnknown     DtypeKind = "unknown"
)

// ColumnSummary describes one column: inferred kind, missingness, distinct
// count, and kind-specific descriptive statistics. Numeric fields are NaN
// when undefined (non-numeric column, or too few observations).
type ColumnSummary struct {
	Name         string
	Kind         DtypeKind
	MissingCount int
	MissingShare float64
	Unique       int

	// Numeric stats (sample std uses the n-1 denominator; quartiles use
	// linear interpolation between order statistics).
	Min    float64
	Max    float64
	Mean   float64
	Std    float64
	Q25    float64
	Median float64
	Q75    float64

	// Categorical stats.
	Mode      string
	ModeCount int
}

var dateLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
	"2006-01-02 15:04", "2006-01-02 15:04:05",
}

var boolTokens = map[string]struct{}{
	"true": {}, "false": {}, "t": {}, "f": {},
	"yes": {}, "no": {}, "y": {}, "n": {},
}

// classify infers the column kind from its non-missing values.
// Precedence: no values -> unknown; all parse as floats -> numeric; exactly
// two distinct truthy/falsy tokens -> boolean; all parse under the fixed
// date layouts -> datetime; otherwise categorical.
func classify(nonMissing []string) DtypeKind {
	if len(nonMissing) == 0 {
		return KindUnknown
	}
	if allNumeric(nonMissing) {
		return KindNumeric
	}
	if isBoolean(nonMissing) {
		return KindBoolean
	}
	if allDatetime(nonMissing) {
		return KindDatetime
	}
	return KindCategorical
}

func allNumeric(values []string) bool {
	for _, v := range values {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return true
}

func isBoolean(values []string) bool {
	distinct := map[string]struct{}{}
	for _, v := range values {
		distinct[strings.ToLower(v)] = struct{}{}
		if len(distinct) > 2 {
			return false
		}
	}
	if len(distinct) != 2 {
		return false
	}
	for v := range distinct {
		if _, ok := boolTokens[v]; !ok {
			return false
		}
	}
	return true
}

func allDatetime(values []string) bool {
	for _, v := range values {
		if !parsesAsDate(v) {
			return false
		}
	}
	return true
}

func parsesAsDate(v string) bool {
	for _, l := range dateLayouts {
		if _, err := time.Parse(l, v); err == nil {
			return true
		}
	}
	return false
}

// ProfileColumn summarizes a single column against the dataset row count.
// It never fails: degenerate columns come back with zero counts and NaN
// stats.
func ProfileColumn(col dataset.Column, nRows int) ColumnSummary {
	nonMissing := col.NonMissing()
	s := ColumnSummary{
		Name:         col.Name,
		Kind:         classify(nonMissing),
		MissingCount: nRows - len(nonMissing),
		Min:          math.NaN(),
		Max:          math.NaN(),
		Mean:         math.NaN(),
		Std:          math.NaN(),
		Q25:          math.NaN(),
		Median:       math.NaN(),
		Q75:          math.NaN(),
	}
	if nRows > 0 {
		s.MissingShare = float64(s.MissingCount) / float64(nRows)
	}
	distinct := map[string]struct{}{}
	for _, v := range nonMissing {
		distinct[v] = struct{}{}
	}
	s.Unique = len(distinct)

	switch s.Kind {
	case KindNumeric:
		fillNumericStats(&s, nonMissing)
	case KindCategorical:
		s.Mode, s.ModeCount = modeOf(nonMissing)
	}
	return s
}

func fillNumericStats(s *ColumnSummary, nonMissing []string) {
	vals := make([]float64, 0, len(nonMissing))
	for _, v := range nonMissing {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		vals = append(vals, x)
	}
	if len(vals) == 0 {
		return
	}
	if v, err := stats.Min(vals); err == nil {
		s.Min = v
	}
	if v, err := stats.Max(vals); err == nil {
		s.Max = v
	}
	if v, err := stats.Mean(vals); err == nil {
		s.Mean = v
	}
	if len(vals) >= 2 {
		if v, err := stats.StandardDeviationSample(vals); err == nil {
			s.Std = v
		}
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	s.Q25 = quantile(sorted, 0.25)
	s.Median = quantile(sorted, 0.5)
	s.Q75 = quantile(sorted, 0.75)
}

// quantile interpolates linearly between order statistics of a sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// modeOf returns the most frequent value, ties broken by first appearance.
func modeOf(values []string) (string, int) {
	counts := map[string]int{}
	order := []string{}
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	mode, best := "", 0
	for _, v := range order {
		if counts[v] > best {
			mode, best = v, counts[v]
		}
	}
	return mode, best
}
