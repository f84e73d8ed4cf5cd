package analysis

import (
	"fmt"
	"testing"

	"edascope/internal/dataset"
)

func mustDataset(t *testing.T, cols ...dataset.Column) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(cols)
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	return ds
}

func scenarioA(t *testing.T) *dataset.Dataset {
	t.Helper()
	return mustDataset(t,
		dataset.Column{Name: "x", Cells: []string{"1", "2", "3"}},
		dataset.Column{Name: "y", Cells: []string{"a", "a", "b"}},
	)
}

func TestSummarizeShapeAndOrder(t *testing.T) {
	ds := scenarioA(t)
	sum := Summarize(ds)
	if sum.NRows != 3 || sum.NCols != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", sum.NRows, sum.NCols)
	}
	if len(sum.Columns) != sum.NCols {
		t.Fatalf("len(columns) = %d, want %d", len(sum.Columns), sum.NCols)
	}
	if sum.Columns[0].Name != "x" || sum.Columns[1].Name != "y" {
		t.Fatalf("column order = %s, %s", sum.Columns[0].Name, sum.Columns[1].Name)
	}
	if sum.Columns[0].Unique != 3 {
		t.Fatalf("x.unique = %d, want 3", sum.Columns[0].Unique)
	}
	if sum.Columns[1].Unique != 2 {
		t.Fatalf("y.unique = %d, want 2", sum.Columns[1].Unique)
	}
	if sum.Columns[1].Kind != KindCategorical {
		t.Fatalf("y.kind = %s, want categorical", sum.Columns[1].Kind)
	}
}

func TestSummarizeMissingInvariant(t *testing.T) {
	ds := mustDataset(t,
		dataset.Column{Name: "a", Cells: []string{"1", "", "NA", "4"}},
		dataset.Column{Name: "b", Cells: []string{"u", "v", "w", ""}},
	)
	sum := Summarize(ds)
	for _, c := range sum.Columns {
		nonMissing := sum.NRows - c.MissingCount
		if c.MissingCount+nonMissing != sum.NRows {
			t.Fatalf("%s: missing invariant broken", c.Name)
		}
		want := float64(c.MissingCount) / float64(sum.NRows)
		if !almostEqual(c.MissingShare, want, 1e-12) {
			t.Fatalf("%s: share = %f, want %f", c.Name, c.MissingShare, want)
		}
		if c.Unique > nonMissing {
			t.Fatalf("%s: unique %d > non-missing %d", c.Name, c.Unique, nonMissing)
		}
	}
}

func TestSummarizeEmptyDataset(t *testing.T) {
	ds := mustDataset(t)
	sum := Summarize(ds)
	if sum.NRows != 0 || sum.NCols != 0 || len(sum.Columns) != 0 {
		t.Fatalf("summary = %#v, want empty", sum)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	ds := mustDataset(t,
		dataset.Column{Name: "x", Cells: []string{"1", "", "3"}},
		dataset.Column{Name: "y", Cells: []string{"a", "b", "a"}},
	)
	first := fmt.Sprintf("%#v", Summarize(ds))
	second := fmt.Sprintf("%#v", Summarize(ds))
	if first != second {
		t.Fatalf("summaries differ:\n%s\n%s", first, second)
	}
}
