package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafsense/leafsense-cli/internal/spectral"
)

func TestCreateSummaryCSV(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "index_summary.csv")
	summary := spectral.Summarize([][]float64{{0.2, 0.4, 0.6}})

	rows := []IndexSummaryRow{
		SummaryRow("ndvi", summary),
		SummaryRow("ndwi", summary),
	}
	err := CreateSummaryCSV(rows, outputPath)

	require.NoError(t, err)
	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "index,min,max,mean,std,median,valid_count,valid_pct")
	assert.Contains(t, string(content), "ndvi,0.2,0.6,")
}

func TestSummaryRowCarriesAllFields(t *testing.T) {
	summary := spectral.Summarize([][]float64{{1, 2, 3, 4}})

	row := SummaryRow("psri", summary)

	assert.Equal(t, "psri", row.Index)
	assert.Equal(t, summary.Min, row.Min)
	assert.Equal(t, summary.Max, row.Max)
	assert.Equal(t, summary.Mean, row.Mean)
	assert.Equal(t, summary.Median, row.Median)
	assert.Equal(t, 4, row.ValidCount)
	assert.Equal(t, 100.0, row.ValidPct)
}
