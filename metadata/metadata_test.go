package metadata

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/pcawgmaf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const release = "donor_unique_id\tdcc_project_code\twgs_exclusion_white_gray\n" +
	"BRCA-US::DO1\tBRCA-US\tWhitelist\n" +
	"LUAD-US::DO2\tLUAD-US\tWhitelist\n" +
	"BRCA-EU::DO3\tBRCA-EU\tGraylist\n"

func TestFilterSubstring(t *testing.T) {
	table, err := Load(strings.NewReader(release), '\t')
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)

	filtered, err := table.Filter(ProjectCodeColumn, "BRCA")
	require.NoError(t, err)

	col, err := filtered.Column(ProjectCodeColumn)
	require.NoError(t, err)

	assert.Len(t, filtered.Rows, 2)
	for _, row := range filtered.Rows {
		assert.Contains(t, row[col], "BRCA")
	}
	// The parent table is untouched
	assert.Len(t, table.Rows, 3)
}

func TestFilterIsCaseSensitive(t *testing.T) {
	table, err := Load(strings.NewReader(release), '\t')
	require.NoError(t, err)

	filtered, err := table.Filter(ProjectCodeColumn, "brca")
	require.NoError(t, err)
	assert.Empty(t, filtered.Rows)
}

func TestFilterMissingColumn(t *testing.T) {
	table, err := Load(strings.NewReader("donor\tproject\nDO1\tBRCA-US\n"), '\t')
	require.NoError(t, err)

	_, err = table.Filter(ProjectCodeColumn, "BRCA")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestWriteCSV(t *testing.T) {
	table, err := Load(strings.NewReader("a\tb\tc\n1\t2\t3\n4\n"), '\t')
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))
	assert.Equal(t, "a,b,c\n1,2,3\n4,,\n", buf.String())
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader(""), '\t')
	assert.Error(t, err)
}

func TestFilterFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "release.tsv")
	dest := filepath.Join(dir, "BRCA", "BRCA.metadata.csv")
	require.NoError(t, os.WriteFile(src, []byte("donor_unique_id\tdcc_project_code\nDO1\tBRCA-US\nDO2\tLUAD-US\n"), 0644))

	filtered, err := FilterFile(context.Background(), src, "BRCA", dest, nil)
	require.NoError(t, err)
	assert.Len(t, filtered.Rows, 1)

	dat, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "donor_unique_id,dcc_project_code\nDO1,BRCA-US\n", string(dat))
}

func TestFilterFileOverwritesWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "release.tsv")
	dest := filepath.Join(dir, "PRAD.metadata.csv")
	require.NoError(t, os.WriteFile(src, []byte("donor_unique_id\tdcc_project_code\nDO1\tBRCA-US\nDO2\tLUAD-US\n"), 0644))
	require.NoError(t, os.WriteFile(dest, []byte("stale contents\n"), 0644))

	filtered, err := FilterFile(context.Background(), src, "PRAD", dest, nil)
	require.NoError(t, err)
	assert.Empty(t, filtered.Rows)

	dat, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "donor_unique_id,dcc_project_code\n", string(dat))
}

func TestFilterFileMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := FilterFile(context.Background(), filepath.Join(dir, "absent.tsv"), "BRCA", filepath.Join(dir, "out.csv"), nil)
	assert.ErrorIs(t, err, pcawgmaf.ErrFileNotFound)

	_, statErr := os.Stat(filepath.Join(dir, "out.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFilterFileMissingColumn(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "release.tsv")
	dest := filepath.Join(dir, "BRCA.metadata.csv")
	require.NoError(t, os.WriteFile(src, []byte("donor_unique_id\tproject\nDO1\tBRCA-US\n"), 0644))

	_, err := FilterFile(context.Background(), src, "BRCA", dest, nil)
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}
