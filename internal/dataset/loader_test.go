package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadSemicolonSeparated(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("a;b\n1;x\n2;y\n"))
	ds, err := Load(path, LoadOptions{Separator: ';'})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.NRows() != 2 || ds.NCols() != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", ds.NRows(), ds.NCols())
	}
	if ds.Columns[1].Cells[1] != "y" {
		t.Fatalf("cell = %q, want %q", ds.Columns[1].Cells[1], "y")
	}
}

func TestLoadPadsShortRows(t *testing.T) {
	path := writeFile(t, "ragged.csv", []byte("a,b,c\n1,2\n3,4,5\n"))
	ds, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.NRows() != 2 {
		t.Fatalf("rows = %d, want 2", ds.NRows())
	}
	if got := ds.Columns[2].Cells[0]; got != "" {
		t.Fatalf("padded cell = %q, want empty", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), LoadOptions{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadEncoding(t *testing.T) {
	// "José" in ISO-8859-1: 0xE9 for é.
	raw := []byte("name\nJos\xe9\n")
	path := writeFile(t, "latin.csv", raw)
	ds, err := Load(path, LoadOptions{Encoding: "ISO-8859-1"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.Columns[0].Cells[0]; got != "José" {
		t.Fatalf("decoded cell = %q, want %q", got, "José")
	}
}

func TestLoadUnknownEncoding(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("a\n1\n"))
	if _, err := Load(path, LoadOptions{Encoding: "no-such-charset"}); err == nil {
		t.Fatalf("expected error for unknown encoding")
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", []byte("a,b\n"))
	ds, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.NRows() != 0 || ds.NCols() != 2 {
		t.Fatalf("shape = %dx%d, want 0x2", ds.NRows(), ds.NCols())
	}
}
