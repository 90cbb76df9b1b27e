package pcawgmaf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// ErrFileNotFound is returned (wrapped) whenever an input file or object does
// not exist. It is fatal for a run.
var ErrFileNotFound = errors.New("file not found")

// IsGoogleStoragePath reports whether path names a gs:// object.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// SplitGoogleStoragePath returns the bucket and object names of a gs:// path.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// MaybeOpenFromGoogleStorage opens a local file, or, if the path begins with
// gs:// and a client was provided, a Google Storage object. Missing inputs are
// reported as ErrFileNotFound.
func MaybeOpenFromGoogleStorage(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if IsGoogleStoragePath(path) {
		if client == nil {
			return nil, pfx.Err(fmt.Errorf("%s: no google storage client was configured", path))
		}

		bucketName, pathName, err := SplitGoogleStoragePath(path)
		if err != nil {
			return nil, pfx.Err(err)
		}

		// Open the bucket with default credentials
		rdr, err := client.Bucket(bucketName).Object(pathName).NewReader(ctx)
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
		} else if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return rdr, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// OpenDecompressed opens path (local or gs://) and transparently decompresses
// it according to its filename suffix.
func OpenDecompressed(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	rc, err := MaybeOpenFromGoogleStorage(ctx, path, client)
	if err != nil {
		return nil, err
	}

	out, err := MaybeDecompressReadCloser(path, rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}
