package pcawgmaf

import (
	"compress/bzip2"
	"compress/zlib"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

func (dt DataType) String() string {
	switch dt {
	case DataTypeNoCompression:
		return "plain"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZ:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	}

	return "invalid"
}

// Suffixes are matched case-sensitively; ".Z" is the compress(1) convention.
var suffixes = []struct {
	suffix string
	dt     DataType
}{
	{".gz", DataTypeGzip},
	{".bgz", DataTypeGzip},
	{".zip", DataTypeZip},
	{".xz", DataTypeXZ},
	{".bz2", DataTypeBZip2},
	{".Z", DataTypeZ},
}

// DataTypeFromPath infers the compression of a file from its name. Anything
// without a recognized suffix is treated as plain text.
func DataTypeFromPath(path string) DataType {
	for _, s := range suffixes {
		if strings.HasSuffix(path, s.suffix) {
			return s.dt
		}
	}

	return DataTypeNoCompression
}

// MaybeDecompressReadCloser wraps rc in the decompressor implied by path.
// Closing the returned ReadCloser also closes rc.
func MaybeDecompressReadCloser(path string, rc io.ReadCloser) (io.ReadCloser, error) {
	var r io.Reader

	switch DataTypeFromPath(path) {
	case DataTypeGzip:
		gz, err := gzip.NewReader(rc)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return &stackedReadCloser{Reader: gz, closers: []io.Closer{gz, rc}}, nil
	case DataTypeZ:
		zr, err := zlib.NewReader(rc)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return &stackedReadCloser{Reader: zr, closers: []io.Closer{zr, rc}}, nil
	case DataTypeZip:
		zs := zipstream.NewReader(rc)
		// Only the first member of an archive is read.
		if _, err := zs.Next(); err != nil {
			return nil, pfx.Err(err)
		}
		r = zs
	case DataTypeBZip2:
		r = bzip2.NewReader(rc)
	case DataTypeXZ:
		xr, err := xz.NewReader(rc, 0)
		if err != nil {
			return nil, pfx.Err(err)
		}
		r = xr
	default:
		return rc, nil
	}

	return &stackedReadCloser{Reader: r, closers: []io.Closer{rc}}, nil
}

// stackedReadCloser closes the decompressor and then the underlying source.
type stackedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReadCloser) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
