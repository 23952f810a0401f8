package output

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/leafsense/leafsense-cli/internal/spectral"
)

// IndexSummaryRow is one line of the per-index statistics export.
type IndexSummaryRow struct {
	Index      string  `csv:"index"`
	Min        float64 `csv:"min"`
	Max        float64 `csv:"max"`
	Mean       float64 `csv:"mean"`
	Std        float64 `csv:"std"`
	Median     float64 `csv:"median"`
	ValidCount int     `csv:"valid_count"`
	ValidPct   float64 `csv:"valid_pct"`
}

// SummaryRow flattens a statistics summary into a CSV row.
func SummaryRow(index string, summary spectral.Summary) IndexSummaryRow {
	return IndexSummaryRow{
		Index:      index,
		Min:        summary.Min,
		Max:        summary.Max,
		Mean:       summary.Mean,
		Std:        summary.Std,
		Median:     summary.Median,
		ValidCount: summary.ValidCount,
		ValidPct:   summary.ValidPct,
	}
}

// CreateSummaryCSV writes one row per index to outputPath.
func CreateSummaryCSV(rows []IndexSummaryRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create summary csv: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write summary csv: %w", err)
	}

	fmt.Println("Index summary written to", outputPath)
	return nil
}
