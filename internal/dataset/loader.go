package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrNotFound indicates the source file does not exist.
var ErrNotFound = errors.New("source not found")

// LoadOptions controls how a delimited text file is read.
type LoadOptions struct {
	// Separator between fields. 0 means ','.
	Separator rune
	// Encoding is an IANA charset name ("utf-8", "iso-8859-1", ...).
	// Empty means UTF-8.
	Encoding string
}

// Load reads a delimited text file into a Dataset. The first record names
// the columns. Short rows are padded with empty cells.
func Load(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var src io.Reader = f
	if opts.Encoding != "" && !strings.EqualFold(opts.Encoding, "utf-8") {
		enc, err := ianaindex.IANA.Encoding(opts.Encoding)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("unknown encoding %q", opts.Encoding)
		}
		src = transform.NewReader(f, enc.NewDecoder())
	}

	sep := opts.Separator
	if sep == 0 {
		sep = ','
	}
	r := csv.NewReader(src)
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return New(nil)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make([]Column, len(header))
	for i, name := range header {
		cols[i] = Column{Name: strings.TrimSpace(name)}
	}
	row := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		for i := range cols {
			if i < len(rec) {
				cols[i].Cells = append(cols[i].Cells, rec[i])
			} else {
				cols[i].Cells = append(cols[i].Cells, "")
			}
		}
	}
	return New(cols)
}
