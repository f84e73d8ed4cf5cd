package render

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"edascope/internal/analysis"
	"edascope/internal/dataset"
)

func fixtureSummary(t *testing.T) (analysis.DatasetSummary, analysis.MissingTable, analysis.CorrelationMatrix, analysis.CategoryTable) {
	t.Helper()
	ds, err := dataset.New([]dataset.Column{
		{Name: "x", Cells: []string{"1", "2", "3"}},
		{Name: "y", Cells: []string{"2", "4", "6"}},
		{Name: "cat", Cells: []string{"a", "a", ""}},
	})
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	cats, err := analysis.TopCategories(ds, 5)
	if err != nil {
		t.Fatalf("TopCategories: %v", err)
	}
	return analysis.Summarize(ds), analysis.MissingProfile(ds), analysis.Correlations(ds), cats
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func TestWriteSummaryCSV(t *testing.T) {
	sum, _, _, _ := fixtureSummary(t)
	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := WriteSummaryCSV(path, sum); err != nil {
		t.Fatalf("WriteSummaryCSV: %v", err)
	}
	records := readCSV(t, path)
	if len(records) != 4 {
		t.Fatalf("rows = %d, want header + 3", len(records))
	}
	if records[0][0] != "name" || records[0][1] != "dtype" {
		t.Fatalf("header = %#v", records[0])
	}
	if records[1][0] != "x" || records[1][1] != "numeric" {
		t.Fatalf("x row = %#v", records[1])
	}
	// Categorical column carries no numeric stats: NaN cells are empty.
	catRow := records[3]
	if catRow[1] != "categorical" || catRow[5] != "" || catRow[7] != "" {
		t.Fatalf("cat row = %#v", catRow)
	}
	if catRow[12] != "a" || catRow[13] != "2" {
		t.Fatalf("mode cells = %#v", catRow)
	}
}

func TestWriteMissingCSV(t *testing.T) {
	_, missing, _, _ := fixtureSummary(t)
	path := filepath.Join(t.TempDir(), "missing.csv")
	if err := WriteMissingCSV(path, missing); err != nil {
		t.Fatalf("WriteMissingCSV: %v", err)
	}
	records := readCSV(t, path)
	if len(records) != 2 || records[1][0] != "cat" || records[1][1] != "1" {
		t.Fatalf("records = %#v", records)
	}
}

func TestWriteCorrelationCSV(t *testing.T) {
	_, _, corr, _ := fixtureSummary(t)
	path := filepath.Join(t.TempDir(), "correlation.csv")
	if err := WriteCorrelationCSV(path, corr); err != nil {
		t.Fatalf("WriteCorrelationCSV: %v", err)
	}
	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("rows = %d, want 3", len(records))
	}
	if records[0][1] != "x" || records[0][2] != "y" {
		t.Fatalf("header = %#v", records[0])
	}
	if records[1][1] != "1" {
		t.Fatalf("diagonal = %q, want 1", records[1][1])
	}
}

func TestWriteTopCategoryTables(t *testing.T) {
	_, _, _, cats := fixtureSummary(t)
	dir := filepath.Join(t.TempDir(), "top_categories")
	paths, err := WriteTopCategoryTables(dir, cats)
	if err != nil {
		t.Fatalf("WriteTopCategoryTables: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "cat.csv" {
		t.Fatalf("paths = %#v", paths)
	}
	records := readCSV(t, paths[0])
	if len(records) != 2 || records[1][0] != "a" || records[1][1] != "2" {
		t.Fatalf("records = %#v", records)
	}
}

func TestReportMarkdown(t *testing.T) {
	sum, missing, _, _ := fixtureSummary(t)
	flags := analysis.ComputeQualityFlags(sum, missing)
	md := ReportMarkdown("My report", sum, flags, "run-123")
	for _, want := range []string{
		"# My report",
		"Rows: **3**, columns: **3**",
		"## Data quality",
		"quality_score",
		"Report ID: run-123",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestOverviewTable(t *testing.T) {
	sum, _, _, _ := fixtureSummary(t)
	table := OverviewTable(sum)
	if !strings.Contains(table, "| x | numeric |") {
		t.Fatalf("overview missing x row:\n%s", table)
	}
	if !strings.Contains(table, "| cat | categorical |") {
		t.Fatalf("overview missing cat row:\n%s", table)
	}
}

func TestWriteJSONSummary(t *testing.T) {
	sum, missing, _, _ := fixtureSummary(t)
	flags := analysis.ComputeQualityFlags(sum, missing)
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := WriteJSONSummary(path, sum, flags); err != nil {
		t.Fatalf("WriteJSONSummary: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var got JSONSummary
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.NRows != 3 || got.NCols != 3 {
		t.Fatalf("shape = %dx%d, want 3x3", got.NRows, got.NCols)
	}
	if !(got.QualityScore >= 0 && got.QualityScore <= 1) {
		t.Fatalf("score out of range: %f", got.QualityScore)
	}
	if got.ProblemColumns == nil {
		t.Fatalf("problem_columns should be an array, not null")
	}
}

func TestWriteWorkbook(t *testing.T) {
	sum, missing, corr, cats := fixtureSummary(t)
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	if err := WriteWorkbook(path, sum, missing, corr, cats); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat workbook: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("workbook is empty")
	}
}

func TestFormatFloat(t *testing.T) {
	if got := formatFloat(math.NaN()); got != "" {
		t.Fatalf("NaN = %q, want empty", got)
	}
	if got := formatFloat(0.5); got != "0.5" {
		t.Fatalf("0.5 = %q", got)
	}
}
