package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/leafsense/leafsense-cli/internal/spectral"
)

// PairResult is the NDVI outcome of one ordered (red, nir) band pair.
type PairResult struct {
	RedBand    int
	NIRBand    int
	Summary    spectral.Summary
	InRangePct float64 // finite values inside [-1, 1]
}

// ScanPairs computes NDVI for every ordered band pair of src and reports
// which combinations produce plausible values. Useful when a file's band
// order is unknown. Bands that fail to read are skipped.
func ScanPairs(src Source, w io.Writer) []PairResult {
	bands := make(map[int][][]float64)
	for band := 1; band <= src.BandCount(); band++ {
		grid, err := src.ReadBand(band)
		if err != nil {
			fmt.Fprintf(w, "  Band %d: ERROR reading - %v\n", band, err)
			continue
		}
		bands[band] = spectral.Mask(grid, spectral.SaturationThreshold)
	}

	fmt.Fprintln(w, "Testing NDVI calculations with different band combinations:")
	fmt.Fprintln(w, "(Looking for reasonable NDVI values between -1 and 1)")
	fmt.Fprintln(w, strings.Repeat("-", 50))

	total := len(bands) * (len(bands) - 1)
	progressBar := progressbar.Default(int64(total), "Scanning band pairs")

	var results []PairResult
	for red := 1; red <= src.BandCount(); red++ {
		for nir := 1; nir <= src.BandCount(); nir++ {
			if red == nir {
				continue
			}
			redGrid, okRed := bands[red]
			nirGrid, okNIR := bands[nir]
			if !okRed || !okNIR {
				continue
			}
			progressBar.Add(1)

			ndvi := spectral.NDVI(nirGrid, redGrid)
			summary := spectral.Summarize(ndvi)
			if !summary.Valid() {
				continue
			}
			results = append(results, PairResult{
				RedBand:    red,
				NIRBand:    nir,
				Summary:    summary,
				InRangePct: inRangePct(ndvi),
			})
		}
	}
	fmt.Fprintln(w)

	for _, result := range results {
		fmt.Fprintf(w, "  Red=Band%d, NIR=Band%d:\n", result.RedBand, result.NIRBand)
		fmt.Fprintf(w, "    NDVI range: %.3f to %.3f\n", result.Summary.Min, result.Summary.Max)
		fmt.Fprintf(w, "    NDVI mean: %.3f\n", result.Summary.Mean)
		fmt.Fprintf(w, "    Values in [-1,1]: %.1f%%\n\n", result.InRangePct)
	}
	return results
}

func inRangePct(grid [][]float64) float64 {
	values := spectral.FiniteValues(grid)
	if len(values) == 0 {
		return 0
	}
	inRange := 0
	for _, value := range values {
		if value >= -1 && value <= 1 {
			inRange++
		}
	}
	return float64(inRange) / float64(len(values)) * 100
}
