package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/xuri/excelize/v2"

	"edascope/internal/analysis"
)

// WriteWorkbook writes the analysis tables into a single XLSX workbook with
// one sheet per table.
func WriteWorkbook(path string, sum analysis.DatasetSummary, missing analysis.MissingTable, corr analysis.CorrelationMatrix, cats analysis.CategoryTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := fillSheet(f, "Summary", summaryRows(sum)); err != nil {
		return err
	}
	if err := addSheet(f, "Missing", missingRows(missing)); err != nil {
		return err
	}
	if err := addSheet(f, "Correlation", correlationRows(corr)); err != nil {
		return err
	}
	if err := addSheet(f, "Top Categories", categoryRows(cats)); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}
	return fillSheet(f, name, rows)
}

func fillSheet(f *excelize.File, name string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell coords: %w", err)
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("set cell %s!%s: %w", name, cell, err)
			}
		}
	}
	return nil
}

// cellValue maps NaN stats to empty cells the same way the CSV tables do.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) {
		return ""
	}
	return v
}

func summaryRows(sum analysis.DatasetSummary) [][]interface{} {
	rows := [][]interface{}{{
		"name", "dtype", "missing_count", "missing_share", "unique",
		"min", "max", "mean", "std", "q25", "median", "q75", "mode", "mode_count",
	}}
	for _, c := range sum.Columns {
		modeCount := interface{}("")
		if c.Kind == analysis.KindCategorical {
			modeCount = c.ModeCount
		}
		rows = append(rows, []interface{}{
			c.Name, string(c.Kind), c.MissingCount, cellValue(c.MissingShare), c.Unique,
			cellValue(c.Min), cellValue(c.Max), cellValue(c.Mean), cellValue(c.Std),
			cellValue(c.Q25), cellValue(c.Median), cellValue(c.Q75), c.Mode, modeCount,
		})
	}
	return rows
}

func missingRows(table analysis.MissingTable) [][]interface{} {
	rows := [][]interface{}{{"column", "missing_count", "missing_share"}}
	for _, e := range table {
		rows = append(rows, []interface{}{e.Name, e.Count, e.Share})
	}
	return rows
}

func correlationRows(m analysis.CorrelationMatrix) [][]interface{} {
	header := []interface{}{""}
	for _, name := range m.Columns {
		header = append(header, name)
	}
	rows := [][]interface{}{header}
	for i, name := range m.Columns {
		row := []interface{}{name}
		for j := range m.Columns {
			row = append(row, cellValue(m.Values[i][j]))
		}
		rows = append(rows, row)
	}
	return rows
}

func categoryRows(cats analysis.CategoryTable) [][]interface{} {
	rows := [][]interface{}{{"column", "rank", "value", "count"}}
	names := make([]string, 0, len(cats))
	for name := range cats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for i, cc := range cats[name] {
			rows = append(rows, []interface{}{name, i + 1, cc.Value, cc.Count})
		}
	}
	return rows
}
