package pcawgmaf

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file. When several candidates are
// detected, tab wins over comma, which wins over anything else. Metadata
// releases are tab-delimited, so that is also the fallback.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	best := rune(0)
	for _, v := range delimiters {
		if v == "" {
			continue
		}
		switch c := rune(v[0]); {
		case c == '\t':
			return c
		case c == ',':
			best = c
		case best == 0:
			best = c
		}
	}

	if best == 0 {
		return '\t'
	}

	return best
}
