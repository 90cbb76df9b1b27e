package maf

import (
	"fmt"
	"sort"
	"strings"
)

// Layout names the columns of a MAF that the partitioner relies upon. Column
// indices are 0-based; a negative index counts back from the last field, so
// -1 is the final column.
type Layout struct {
	Delimiter  string
	ColTumour  int
	ColPatient int

	// MinFields is the fewest fields a line may have and still be usable.
	MinFields int
}

var Layouts = map[string]Layout{
	// PCAWG consensus SNV/indel MAFs carry Tumor_Sample_Barcode at column 12
	// and the donor ID as the final column.
	"PCAWG": {
		Delimiter:  "\t",
		ColTumour:  12,
		ColPatient: -1,
		MinFields:  13,
	},
}

const DefaultLayout = "PCAWG"

func LayoutNames() string {
	names := make([]string, 0, len(Layouts))
	for m := range Layouts {
		names = append(names, m)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

func LookupLayout(name string) (Layout, error) {
	l, exists := Layouts[name]
	if !exists {
		return Layout{}, fmt.Errorf("Layout %s is not found. Valid layout names include: %s", name, LayoutNames())
	}

	return l, nil
}

func (l Layout) field(fields []string, col int) (string, bool) {
	if col < 0 {
		col = len(fields) + col
	}
	if col < 0 || col >= len(fields) {
		return "", false
	}

	return fields[col], true
}

// minFieldsFor is the field count needed for col to exist.
func minFieldsFor(col int) int {
	if col < 0 {
		return -col
	}
	return col + 1
}

// Parse extracts the load-bearing identifiers from one MAF line. lineNumber
// is 1-based and only used for error reporting.
func (l Layout) Parse(line string, lineNumber int) (Record, error) {
	fields := strings.Split(line, l.Delimiter)
	if len(fields) < l.MinFields {
		return Record{}, &MalformedRecordError{Line: lineNumber, Fields: len(fields), Want: l.MinFields}
	}

	tumour, ok := l.field(fields, l.ColTumour)
	if !ok {
		return Record{}, &MalformedRecordError{Line: lineNumber, Fields: len(fields), Want: minFieldsFor(l.ColTumour)}
	}

	patient, ok := l.field(fields, l.ColPatient)
	if !ok {
		return Record{}, &MalformedRecordError{Line: lineNumber, Fields: len(fields), Want: minFieldsFor(l.ColPatient)}
	}

	return Record{Patient: patient, Tumour: tumour, Line: line}, nil
}
