package pcawgmaf

import (
	"bytes"
	"compress/zlib"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeFromPath(t *testing.T) {
	cases := map[string]DataType{
		"BRCA-.snvs.indels.maf.gz": DataTypeGzip,
		"x.maf.bgz":                DataTypeGzip,
		"x.maf":                    DataTypeNoCompression,
		"x.maf.xz":                 DataTypeXZ,
		"x.maf.bz2":                DataTypeBZip2,
		"x.zip":                    DataTypeZip,
		"x.maf.Z":                  DataTypeZ,
		"x.maf.z":                  DataTypeNoCompression,
	}

	for path, want := range cases {
		assert.Equal(t, want, DataTypeFromPath(path), path)
	}
}

func readAllDecompressed(t *testing.T, path string, raw []byte) string {
	t.Helper()

	rc, err := MaybeDecompressReadCloser(path, io.NopCloser(bytes.NewReader(raw)))
	require.NoError(t, err)
	defer rc.Close()

	out, err := io.ReadAll(rc)
	require.NoError(t, err)

	return string(out)
}

func TestMaybeDecompressGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("a\tb\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	assert.Equal(t, "a\tb\n", readAllDecompressed(t, "x.maf.gz", buf.Bytes()))
}

func TestMaybeDecompressZlib(t *testing.T) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	assert.Equal(t, "line\n", readAllDecompressed(t, "x.maf.Z", buf.Bytes()))
}

func TestMaybeDecompressPlain(t *testing.T) {
	assert.Equal(t, "plain\n", readAllDecompressed(t, "x.maf", []byte("plain\n")))
}

func TestMaybeDecompressBadGzip(t *testing.T) {
	_, err := MaybeDecompressReadCloser("x.gz", io.NopCloser(bytes.NewReader([]byte("not gzip"))))
	assert.Error(t, err)
}

func TestOpenDecompressedMissing(t *testing.T) {
	_, err := OpenDecompressed(context.Background(), filepath.Join(t.TempDir(), "absent.maf.gz"), nil)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestOpenDecompressedLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.maf")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

	rc, err := OpenDecompressed(context.Background(), path, nil)
	require.NoError(t, err)
	defer rc.Close()

	dat, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(dat))
}

// closeCounter records how often the underlying source is closed.
type closeCounter struct {
	io.Reader
	closes int
}

func (c *closeCounter) Close() error {
	c.closes++
	return nil
}

func TestDecompressedCloseReleasesSource(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("a\tb\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	for path, raw := range map[string][]byte{
		"x.maf.gz": buf.Bytes(),
		"x.maf":    []byte("a\tb\n"),
	} {
		src := &closeCounter{Reader: bytes.NewReader(raw)}

		rc, err := MaybeDecompressReadCloser(path, src)
		require.NoError(t, err, path)

		dat, err := io.ReadAll(rc)
		require.NoError(t, err, path)
		assert.Equal(t, "a\tb\n", string(dat), path)

		require.NoError(t, rc.Close(), path)
		assert.Equal(t, 1, src.closes, path)
	}
}
