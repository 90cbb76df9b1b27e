package maf

import (
	"bufio"
	"errors"
	"os"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

// FileName is the per-sample output name, <patient>.<tumour>.maf.gz
func FileName(patient, tumour string) string {
	return SampleLabel(patient, tumour) + ".maf.gz"
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, pfx.Err(err)
}

// writeSampleMAF gzips lines, one per line, to path. The data is staged in a
// sibling .tmp file and renamed into place, so a file at path is always
// complete.
func writeSampleMAF(path string, lines []string) (err error) {
	tmpPath := path + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return pfx.Err(err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpPath)
		}
	}()

	gz := gzip.NewWriter(f)
	bw := bufio.NewWriter(gz)
	for _, line := range lines {
		if _, err = bw.WriteString(line); err != nil {
			return pfx.Err(err)
		}
		if err = bw.WriteByte('\n'); err != nil {
			return pfx.Err(err)
		}
	}

	if err = bw.Flush(); err != nil {
		return pfx.Err(err)
	}
	if err = gz.Close(); err != nil {
		return pfx.Err(err)
	}
	if err = f.Close(); err != nil {
		return pfx.Err(err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return pfx.Err(err)
	}

	return nil
}
