package maf

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

const (
	StatusWritten = "written"
	StatusSkipped = "skipped"
)

// ManifestEntry records the fate of one (patient, tumour) output file.
// Records is null when the file already existed and was left untouched.
type ManifestEntry struct {
	CancerType string   `csv:"cancer_type"`
	Patient    string   `csv:"patient"`
	Tumour     string   `csv:"tumour"`
	Path       string   `csv:"path"`
	Status     string   `csv:"status"`
	Records    null.Int `csv:"records"`
}

func WriteManifest(w io.Writer, entries []ManifestEntry) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := gocsv.MarshalCSV(&entries, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// WriteManifestFile replaces path with a tab-delimited manifest.
func WriteManifestFile(path string, entries []ManifestEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := WriteManifest(f, entries); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func ReadManifest(r io.Reader) ([]ManifestEntry, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'

	entries := make([]ManifestEntry, 0)
	if err := gocsv.UnmarshalCSV(cr, &entries); err != nil {
		return nil, pfx.Err(err)
	}

	return entries, nil
}
