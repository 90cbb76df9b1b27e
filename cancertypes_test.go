package pcawgmaf

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCancerTypes(t *testing.T) {
	types, err := ParseCancerTypes(strings.NewReader("Breast-AdenoCA\nLung-SCC\n\nBRCA\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"BreastAdenoCA", "LungSCC", "BRCA"}, types)
}

func TestReadCancerTypesMissing(t *testing.T) {
	_, err := ReadCancerTypes(context.Background(), filepath.Join(t.TempDir(), "CancerTypes.txt"), nil)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestReadCancerTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CancerTypes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Liver-HCC\r\n"), 0644))

	types, err := ReadCancerTypes(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"LiverHCC"}, types)
}
