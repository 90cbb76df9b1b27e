package maf

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

// Summary describes a scanned MAF. It is produced by Partitioner.Summarize.
type Summary struct {
	Name      string
	Patients  int
	Tumours   int
	Pairs     int
	Records   int
	Malformed int

	// MultiSampleApprox is tumours minus patients, as historically reported.
	// MultiSamplePatients is the exact count of patients with >1 sample.
	MultiSampleApprox   int
	MultiSamplePatients int

	MeanRecordsPerTumour   float64
	MedianRecordsPerTumour float64
	MaxRecordsPerTumour    float64

	recordsPerTumour []float64
}

func newSummary(name string, idx *Index, buckets Buckets, malformed int) (Summary, error) {
	s := Summary{
		Name:                name,
		Patients:            idx.PatientCount(),
		Tumours:             idx.TumourCount(),
		Pairs:               idx.Pairs(),
		Records:             buckets.Records(),
		Malformed:           malformed,
		MultiSampleApprox:   idx.MultiSampleApprox(),
		MultiSamplePatients: idx.MultiSamplePatients(),
	}

	counts := buckets.Counts()
	s.recordsPerTumour = make([]float64, 0, len(counts))
	for _, n := range counts {
		s.recordsPerTumour = append(s.recordsPerTumour, float64(n))
	}
	sort.Float64s(s.recordsPerTumour)

	if len(s.recordsPerTumour) == 0 {
		return s, nil
	}

	var err error
	data := stats.Float64Data(s.recordsPerTumour)
	if s.MeanRecordsPerTumour, err = stats.Mean(data); err != nil {
		return s, pfx.Err(err)
	}
	if s.MedianRecordsPerTumour, err = stats.Median(data); err != nil {
		return s, pfx.Err(err)
	}
	if s.MaxRecordsPerTumour, err = stats.Max(data); err != nil {
		return s, pfx.Err(err)
	}

	return s, nil
}

// Log prints the summary with the standard logger.
func (s Summary) Log() {
	log.Printf("INFO: %s Patients: %d\n", s.Name, s.Patients)
	log.Printf("INFO: %s Tumours: %d\n", s.Name, s.Tumours)
	log.Printf("INFO: Multiple samples found for an individual patient: %d (tumours minus patients)\n", s.MultiSampleApprox)
	log.Printf("INFO: %s Patients with more than one tumour sample: %d\n", s.Name, s.MultiSamplePatients)
	log.Printf("INFO: %s Mutations: %d (mean %.1f, median %.1f, max %.0f per tumour)\n", s.Name, s.Records, s.MeanRecordsPerTumour, s.MedianRecordsPerTumour, s.MaxRecordsPerTumour)
	if s.Malformed > 0 {
		log.Printf("WARNING: %s Skipped %d malformed MAF lines\n", s.Name, s.Malformed)
	}
}

// FprintHistogram draws a text histogram of mutations per tumour sample.
func (s Summary) FprintHistogram(w io.Writer, bins int) error {
	if len(s.recordsPerTumour) == 0 {
		return nil
	}

	fmt.Fprintf(w, "%s mutations per tumour sample:\n", s.Name)
	hist := histogram.Hist(bins, s.recordsPerTumour)
	if err := histogram.Fprint(w, hist, histogram.Linear(40)); err != nil {
		return pfx.Err(err)
	}

	return nil
}
