// Package metadata selects the rows of a PCAWG sample metadata release that
// belong to one cancer type.
package metadata

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pcawgmaf"
	"github.com/carbocation/pfx"
)

// ProjectCodeColumn holds the cohort label, e.g., BRCA-US.
const ProjectCodeColumn = "dcc_project_code"

var ErrMissingColumn = errors.New("column not found")

// Table is a header plus immutable rows. Filtering produces a new Table that
// shares row storage with its parent.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t *Table) Column(name string) (int, error) {
	for i, v := range t.Header {
		if v == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%q: %w", name, ErrMissingColumn)
}

// Load reads a delimited table whose first row is the header.
func Load(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("metadata table is empty")
	} else if err != nil {
		return nil, pfx.Err(fmt.Errorf("Header parsing error: %v", err))
	}

	t := &Table{Header: header, Rows: make([][]string, 0)}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// LoadFile reads a (possibly compressed, possibly gs://) metadata table,
// detecting whether it is tab- or comma-delimited.
func LoadFile(ctx context.Context, path string, client *storage.Client) (*Table, error) {
	f, err := pcawgmaf.OpenDecompressed(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dat, err := io.ReadAll(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := pcawgmaf.DetermineDelimiter(bytes.NewReader(dat))

	t, err := Load(bytes.NewReader(dat), delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Filter keeps the rows whose column contains token as a case-sensitive
// substring. A token that is part of another project code matches it too.
func (t *Table) Filter(column, token string) (*Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	out := &Table{Header: t.Header, Rows: make([][]string, 0)}
	for _, row := range t.Rows {
		if col >= len(row) {
			continue
		}
		if strings.Contains(row[col], token) {
			out.Rows = append(out.Rows, row)
		}
	}

	return out, nil
}

// WriteCSV writes the header and rows comma-separated, without a row index.
// Short rows are padded to the header width.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Header); err != nil {
		return pfx.Err(err)
	}

	for _, row := range t.Rows {
		if len(row) < len(t.Header) {
			padded := make([]string, len(t.Header))
			copy(padded, row)
			row = padded
		}
		if err := cw.Write(row); err != nil {
			return pfx.Err(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// WriteCSVFile always replaces dest, even when the table has no rows.
func (t *Table) WriteCSVFile(dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return pfx.Err(err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return pfx.Err(err)
	}

	bw := bufio.NewWriter(f)
	if err := t.WriteCSV(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// FilterFile loads the metadata at src, keeps the rows for cancerType and
// persists them to dest. The filtered table is returned for the caller.
func FilterFile(ctx context.Context, src, cancerType, dest string, client *storage.Client) (*Table, error) {
	t, err := LoadFile(ctx, src, client)
	if err != nil {
		return nil, err
	}

	filtered, err := t.Filter(ProjectCodeColumn, cancerType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	if err := filtered.WriteCSVFile(dest); err != nil {
		return nil, err
	}

	return filtered, nil
}
