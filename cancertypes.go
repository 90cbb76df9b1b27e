package pcawgmaf

import (
	"bufio"
	"context"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// ReadCancerTypes loads the list of cancer type tokens, one per line. Hyphens
// are stripped, so "BRCA-US" becomes "BRCAUS", and blank lines are ignored.
func ReadCancerTypes(ctx context.Context, path string, client *storage.Client) ([]string, error) {
	f, err := MaybeOpenFromGoogleStorage(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseCancerTypes(f)
}

func ParseCancerTypes(r io.Reader) ([]string, error) {
	out := make([]string, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		token := strings.TrimSpace(strings.ReplaceAll(scanner.Text(), "-", ""))
		if token == "" {
			continue
		}
		out = append(out, token)
	}

	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
