// Package maf splits a cohort-level mutation annotation file into one
// gzipped MAF per (patient, tumour sample) pair.
//
// A Partitioner is used in three phases, each exactly once and in order:
// Scan reads every line into per-tumour buckets, Summarize reports counts,
// and Flush writes the per-sample files and releases the buckets.
package maf

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pcawgmaf"
	"github.com/carbocation/pfx"
)

type phase int

const (
	phaseNew phase = iota
	phaseScanned
	phaseSummarized
	phaseFlushed
)

var scanProgressInterval = 100000

type Options struct {
	// Name labels log lines and manifest entries, typically the cancer type.
	Name string

	// Strict makes a malformed line fatal. Otherwise it is logged and skipped.
	Strict bool

	// Progress receives the overwritten progress line. Nil disables it.
	Progress io.Writer
}

type Partitioner struct {
	layout  Layout
	opts    Options
	phase   phase
	index   *Index
	buckets Buckets

	malformed int
	summary   Summary
}

func New(layout Layout, opts Options) *Partitioner {
	return &Partitioner{
		layout:  layout,
		opts:    opts,
		index:   NewIndex(),
		buckets: make(Buckets),
	}
}

func (p *Partitioner) Index() *Index {
	return p.index
}

func (p *Partitioner) Malformed() int {
	return p.malformed
}

// ScanFile opens path (local or gs://, decompressed by suffix) and scans it.
// The source is closed before ScanFile returns.
func (p *Partitioner) ScanFile(ctx context.Context, path string, client *storage.Client) error {
	f, err := pcawgmaf.OpenDecompressed(ctx, path, client)
	if err != nil {
		return err
	}

	if err := p.scanAndClose(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// scanAndClose closes rc whether or not the scan succeeds.
func (p *Partitioner) scanAndClose(rc io.ReadCloser) error {
	defer rc.Close()

	return p.Scan(rc)
}

// Scan reads every line of r. There is no header: all lines are records.
func (p *Partitioner) Scan(r io.Reader) error {
	if p.phase != phaseNew {
		return fmt.Errorf("Scan: %w", ErrPhase)
	}

	br := bufio.NewReaderSize(r, 4096*32)

	var line string
	var err error
	i := 0
	for {
		line, err = br.ReadString('\n')
		if err == io.EOF && line == "" {
			break
		} else if err != nil && err != io.EOF {
			return pfx.Err(fmt.Errorf("MAF 1-based line %d: %s", i+1, err))
		}
		i++

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		record, parseErr := p.layout.Parse(line, i)
		if parseErr != nil {
			if p.opts.Strict {
				return parseErr
			}
			log.Printf("WARNING: %s: skipping %s\n", p.opts.Name, parseErr)
			p.malformed++
		} else {
			p.index.Add(record.Patient, record.Tumour)
			p.buckets.Append(record)
		}

		if p.opts.Progress != nil && i%scanProgressInterval == 0 {
			fmt.Fprintf(p.opts.Progress, "\rParsed %d lines from %s", i, p.opts.Name)
		}

		if err == io.EOF {
			break
		}
	}

	if p.opts.Progress != nil && i >= scanProgressInterval {
		fmt.Fprintf(p.opts.Progress, "\rParsed %d lines from %s\n", i, p.opts.Name)
	}

	p.phase = phaseScanned

	return nil
}

// Summarize computes and logs the patient, tumour and mutation counts.
func (p *Partitioner) Summarize() (Summary, error) {
	if p.phase != phaseScanned {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrPhase)
	}

	s, err := newSummary(p.opts.Name, p.index, p.buckets, p.malformed)
	if err != nil {
		return s, err
	}
	s.Log()

	p.summary = s
	p.phase = phaseSummarized

	return s, nil
}

// Flush writes <dir>/<patient>.<tumour>.maf.gz for every pair in the index.
// Files that already exist are assumed complete and are not rewritten. The
// buckets are released afterwards, whether or not an error occurred.
func (p *Partitioner) Flush(dir string) ([]ManifestEntry, error) {
	if p.phase != phaseSummarized {
		return nil, fmt.Errorf("Flush: %w", ErrPhase)
	}
	defer func() {
		p.buckets = nil
		p.phase = phaseFlushed
	}()

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, pfx.Err(err)
	}

	progress := pcawgmaf.NewProgress(p.opts.Progress, p.index.Pairs())
	defer progress.Done()

	entries := make([]ManifestEntry, 0, p.index.Pairs())
	for _, patient := range p.index.Patients() {
		for _, tumour := range p.index.TumoursFor(patient) {
			entry, err := p.flushOne(dir, patient, tumour)
			if err != nil {
				return entries, err
			}
			entries = append(entries, entry)

			progress.Step(SampleLabel(patient, tumour) + ".maf")
		}
	}

	return entries, nil
}

func (p *Partitioner) flushOne(dir, patient, tumour string) (ManifestEntry, error) {
	entry := ManifestEntry{
		CancerType: p.opts.Name,
		Patient:    patient,
		Tumour:     tumour,
		Path:       filepath.Join(dir, FileName(patient, tumour)),
	}

	present, err := exists(entry.Path)
	if err != nil {
		return entry, err
	}
	if present {
		entry.Status = StatusSkipped
		return entry, nil
	}

	lines := p.buckets[tumour]
	if len(lines) == 0 {
		// Every indexed tumour was appended to its bucket during Scan.
		return entry, errors.New("no buffered records for tumour " + tumour)
	}

	if err := writeSampleMAF(entry.Path, lines); err != nil {
		return entry, fmt.Errorf("%s: %w", entry.Path, err)
	}

	entry.Status = StatusWritten
	entry.Records.SetValid(int64(len(lines)))

	return entry, nil
}
