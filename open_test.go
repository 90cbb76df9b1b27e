package pcawgmaf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitGoogleStoragePath(t *testing.T) {
	bucket, object, err := SplitGoogleStoragePath("gs://pcawg/PCAWGData/CancerTypes.txt")
	require.NoError(t, err)
	assert.Equal(t, "pcawg", bucket)
	assert.Equal(t, "PCAWGData/CancerTypes.txt", object)

	_, _, err = SplitGoogleStoragePath("gs://pcawg")
	assert.Error(t, err)
}

func TestGoogleStorageWithoutClient(t *testing.T) {
	_, err := MaybeOpenFromGoogleStorage(context.Background(), "gs://pcawg/x.tsv", nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}
