// pcawggroom splits the PCAWG consensus SNV/indel MAF of each cancer type
// into one gzipped MAF per (patient, tumour sample), and writes the subset of
// the sample metadata release that belongs to each cancer type.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pcawgmaf"
	_ "github.com/carbocation/pcawgmaf/compileinfoprint"
	"github.com/carbocation/pcawgmaf/maf"
)

func main() {
	var root, outRoot, metadataPath, cancerTypesPath, layoutName string
	var skipMAF, strict, manifest, hist bool

	flag.BoolVar(&skipMAF, "skipmafstep", false, "Skip over maf parsing (only if completed already). Only the metadata is filtered.")
	flag.StringVar(&root, "root", "..", "Directory (or gs:// prefix) that contains "+pcawgmaf.DataDirName+".")
	flag.StringVar(&outRoot, "out", "", "Local directory under which outputs are written. Defaults to -root.")
	flag.StringVar(&metadataPath, "metadata", "", "Override the path to the sample metadata release.")
	flag.StringVar(&cancerTypesPath, "cancertypes", "", "Override the path to the list of cancer types, one per line.")
	flag.StringVar(&layoutName, "layout", maf.DefaultLayout, "MAF column layout. One of: "+maf.LayoutNames())
	flag.BoolVar(&strict, "strict", false, "Abort on MAF lines with too few fields, instead of skipping them.")
	flag.BoolVar(&manifest, "manifest", true, "Write a <cancer>.samples.tsv manifest of per-sample MAF files.")
	flag.BoolVar(&hist, "histogram", false, "Print a histogram of mutations per tumour sample.")
	flag.Parse()

	var err error
	cfg := Config{
		SkipMAF:   skipMAF,
		Strict:    strict,
		Manifest:  manifest,
		Histogram: hist,
		Progress:  os.Stdout,
	}

	if cfg.MAFLayout, err = maf.LookupLayout(layoutName); err != nil {
		log.Fatalln(err)
	}

	cfg.Layout = pcawgmaf.Layout{
		OutputRoot:      outRoot,
		MetadataPath:    metadataPath,
		CancerTypesPath: cancerTypesPath,
	}
	if cfg.Layout.Root, err = pcawgmaf.ExpandHome(root); err != nil {
		log.Fatalln(err)
	}
	if cfg.Layout.OutputRoot, err = pcawgmaf.ExpandHome(outRoot); err != nil {
		log.Fatalln(err)
	}
	if err := cfg.Layout.Validate(); err != nil {
		flag.PrintDefaults()
		log.Fatalln(err)
	}

	ctx := context.Background()

	var client *storage.Client
	if needsGoogleStorage(cfg.Layout) {
		client, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	if err := PrepareCancerClasses(ctx, cfg, client); err != nil {
		log.Fatalln(err)
	}
}

func needsGoogleStorage(l pcawgmaf.Layout) bool {
	for _, path := range []string{l.Root, l.MetadataPath, l.CancerTypesPath} {
		if pcawgmaf.IsGoogleStoragePath(path) {
			return true
		}
	}

	return false
}
