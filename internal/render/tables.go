package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"edascope/internal/analysis"
	"edascope/internal/utils"
)

// formatFloat renders a stat value for tabular output; NaN becomes an empty
// cell.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeCSV(path string, records [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

// WriteSummaryCSV writes the flattened per-column summary table.
func WriteSummaryCSV(path string, sum analysis.DatasetSummary) error {
	records := [][]string{{
		"name", "dtype", "missing_count", "missing_share", "unique",
		"min", "max", "mean", "std", "q25", "median", "q75",
		"mode", "mode_count",
	}}
	for _, c := range sum.Columns {
		modeCount := ""
		if c.Kind == analysis.KindCategorical {
			modeCount = strconv.Itoa(c.ModeCount)
		}
		records = append(records, []string{
			c.Name,
			string(c.Kind),
			strconv.Itoa(c.MissingCount),
			formatFloat(c.MissingShare),
			strconv.Itoa(c.Unique),
			formatFloat(c.Min),
			formatFloat(c.Max),
			formatFloat(c.Mean),
			formatFloat(c.Std),
			formatFloat(c.Q25),
			formatFloat(c.Median),
			formatFloat(c.Q75),
			c.Mode,
			modeCount,
		})
	}
	return writeCSV(path, records)
}

// WriteMissingCSV writes the missing-value table.
func WriteMissingCSV(path string, table analysis.MissingTable) error {
	records := [][]string{{"column", "missing_count", "missing_share"}}
	for _, e := range table {
		records = append(records, []string{
			e.Name, strconv.Itoa(e.Count), formatFloat(e.Share),
		})
	}
	return writeCSV(path, records)
}

// WriteCorrelationCSV writes the correlation matrix with column headers on
// both axes.
func WriteCorrelationCSV(path string, m analysis.CorrelationMatrix) error {
	header := append([]string{""}, m.Columns...)
	records := [][]string{header}
	for i, name := range m.Columns {
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, name)
		for j := range m.Columns {
			row = append(row, formatFloat(m.Values[i][j]))
		}
		records = append(records, row)
	}
	return writeCSV(path, records)
}

// WriteTopCategoryTables writes one value/count table per categorical column
// into dir and returns the written paths.
func WriteTopCategoryTables(dir string, table analysis.CategoryTable) ([]string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	var paths []string
	for _, name := range names {
		records := [][]string{{"value", "count"}}
		for _, cc := range table[name] {
			records = append(records, []string{cc.Value, strconv.Itoa(cc.Count)})
		}
		path := filepath.Join(dir, safeFileName(name)+".csv")
		if err := writeCSV(path, records); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// safeFileName replaces path-hostile characters in a column name.
func safeFileName(name string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_")
	out := r.Replace(strings.TrimSpace(name))
	if out == "" {
		return "column"
	}
	return out
}
