package maf

import (
	"errors"
	"fmt"
)

// Record is one MAF line along with the identifiers parsed out of it. The line
// is retained verbatim, without its trailing newline.
type Record struct {
	Patient string
	Tumour  string
	Line    string
}

// Label is the per-sample name used in file names and progress output.
func (r Record) Label() string {
	return SampleLabel(r.Patient, r.Tumour)
}

func SampleLabel(patient, tumour string) string {
	return fmt.Sprintf("%s.%s", patient, tumour)
}

type MalformedRecordError struct {
	Line   int
	Fields int
	Want   int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("MAF line %d had %d fields, expected at least %d", e.Line, e.Fields, e.Want)
}

// ErrPhase is returned when Scan, Summarize and Flush are not called exactly
// once each, in that order.
var ErrPhase = errors.New("partitioner phase out of order")
