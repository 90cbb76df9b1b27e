package pcawgmaf

import (
	"fmt"
	"path"
	"path/filepath"
)

const (
	DataDirName         = "PCAWGData"
	MetadataRelease     = "release_may2016.v1.4.tsv"
	CancerTypesFileName = "CancerTypes.txt"
)

// Layout describes where a PCAWG data tree keeps its inputs and where
// per-cancer outputs are written. Root may be a gs:// prefix for inputs, but
// outputs are always written to the local filesystem under OutputRoot.
type Layout struct {
	Root string

	// Optional overrides. If empty, the conventional paths are used.
	OutputRoot      string
	MetadataPath    string
	CancerTypesPath string
}

// Validate fails if outputs would have to be written to Google Storage.
func (l Layout) Validate() error {
	if l.Root == "" {
		return fmt.Errorf("no data root was set")
	}
	if IsGoogleStoragePath(l.outputRoot()) {
		return fmt.Errorf("outputs cannot be written to %s; set a local output root", l.outputRoot())
	}

	return nil
}

func (l Layout) outputRoot() string {
	if l.OutputRoot != "" {
		return l.OutputRoot
	}
	return l.Root
}

func (l Layout) join(elem ...string) string {
	if IsGoogleStoragePath(l.Root) {
		return "gs://" + path.Join(append([]string{l.Root[len("gs://"):]}, elem...)...)
	}

	return filepath.Join(append([]string{l.Root}, elem...)...)
}

func (l Layout) Metadata() string {
	if l.MetadataPath != "" {
		return l.MetadataPath
	}
	return l.join(DataDirName, "metadata", MetadataRelease)
}

func (l Layout) CancerTypes() string {
	if l.CancerTypesPath != "" {
		return l.CancerTypesPath
	}
	return l.join(DataDirName, CancerTypesFileName)
}

// OutputDir mirrors the directory holding a cancer type's source MAF. Filtered
// metadata and per-sample MAFs are written there.
func (l Layout) OutputDir(cancerType string) string {
	return filepath.Join(l.outputRoot(), DataDirName, "Cancers", cancerType)
}

// Source is the cohort-level MAF for a cancer type, e.g.,
// PCAWGData/Cancers/BRCA/BRCA-.snvs.indels.maf.gz
func (l Layout) Source(cancerType string) string {
	return l.join(DataDirName, "Cancers", cancerType, fmt.Sprintf("%s-.snvs.indels.maf.gz", cancerType))
}

func (l Layout) FilteredMetadata(cancerType string) string {
	return filepath.Join(l.OutputDir(cancerType), cancerType+".metadata.csv")
}

func (l Layout) Manifest(cancerType string) string {
	return filepath.Join(l.OutputDir(cancerType), cancerType+".samples.tsv")
}
