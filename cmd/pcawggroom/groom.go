package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pcawgmaf"
	"github.com/carbocation/pcawgmaf/maf"
	"github.com/carbocation/pcawgmaf/metadata"
)

type Config struct {
	Layout    pcawgmaf.Layout
	MAFLayout maf.Layout

	SkipMAF   bool
	Strict    bool
	Manifest  bool
	Histogram bool

	// Progress receives progress bars and histograms. Nil silences them.
	Progress io.Writer
}

// CancerData is everything produced for one cancer type. Each is built and
// discarded independently of the others.
type CancerData struct {
	CancerType string
	Metadata   *metadata.Table
	Summary    maf.Summary
	Entries    []maf.ManifestEntry
}

// PrepareCancerClasses processes each cancer type listed in the layout's
// cancer type file, in order, stopping at the first error.
func PrepareCancerClasses(ctx context.Context, cfg Config, client *storage.Client) error {
	defer pcawgmaf.Timer("PrepareCancerClasses")()

	cancerTypes, err := pcawgmaf.ReadCancerTypes(ctx, cfg.Layout.CancerTypes(), client)
	if err != nil {
		return err
	}

	for _, cancer := range cancerTypes {
		log.Printf("INFO: Processing %s\n", cancer)
		if _, err := ProcessCancerType(ctx, cfg, client, cancer); err != nil {
			return fmt.Errorf("%s: %w", cancer, err)
		}
	}

	return nil
}

func ProcessCancerType(ctx context.Context, cfg Config, client *storage.Client, cancer string) (*CancerData, error) {
	out := &CancerData{CancerType: cancer}

	var err error
	out.Metadata, err = metadata.FilterFile(ctx, cfg.Layout.Metadata(), cancer, cfg.Layout.FilteredMetadata(cancer), client)
	if err != nil {
		return nil, err
	}
	log.Printf("INFO: %s Metadata rows: %d\n", cancer, len(out.Metadata.Rows))

	if cfg.SkipMAF {
		return out, nil
	}

	p := maf.New(cfg.MAFLayout, maf.Options{
		Name:     cancer,
		Strict:   cfg.Strict,
		Progress: cfg.Progress,
	})

	if err := p.ScanFile(ctx, cfg.Layout.Source(cancer), client); err != nil {
		return nil, err
	}

	if out.Summary, err = p.Summarize(); err != nil {
		return nil, err
	}

	if cfg.Histogram && cfg.Progress != nil {
		if err := out.Summary.FprintHistogram(cfg.Progress, 20); err != nil {
			return nil, err
		}
	}

	if out.Entries, err = p.Flush(cfg.Layout.OutputDir(cancer)); err != nil {
		return nil, err
	}

	written := 0
	for _, e := range out.Entries {
		if e.Status == maf.StatusWritten {
			written++
		}
	}
	log.Printf("INFO: %s Wrote %d per-sample MAF files, %d already existed\n", cancer, written, len(out.Entries)-written)

	if cfg.Manifest {
		if err := maf.WriteManifestFile(cfg.Layout.Manifest(cancer), out.Entries); err != nil {
			return nil, err
		}
	}

	return out, nil
}
