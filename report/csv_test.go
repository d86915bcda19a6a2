package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteCSV(sampleReport(), dir, "sample_report")
	require.NoError(t, err)
	require.Len(t, paths, 4)

	wantFiles := []string{
		"sample_report_requests.csv",
		"sample_report_page_timing.csv",
		"sample_report_summary.csv",
		"sample_report_bottlenecks.csv",
	}
	for i, want := range wantFiles {
		assert.Equal(t, filepath.Join(dir, want), paths[i])
	}

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// header plus two records
	require.Len(t, rows, 3)
	assert.Equal(t, "#", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "https://example.com/", rows[1][1])
}

func TestWriteCSV_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")

	_, err := WriteCSV(sampleReport(), dir, "out")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
