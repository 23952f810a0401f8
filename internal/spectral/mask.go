package spectral

import "math"

// SaturationThreshold is the sensor ceiling for 16-bit imagery. Readings at
// or above it are clipped values, not reflectance, and must not enter any
// index arithmetic.
const SaturationThreshold = 65535

// Mask returns a copy of grid where every value at or above threshold is
// replaced with NaN. All other values pass through unchanged.
func Mask(grid [][]float64, threshold float64) [][]float64 {
	masked := make([][]float64, len(grid))
	for i, row := range grid {
		masked[i] = make([]float64, len(row))
		for j, value := range row {
			if value >= threshold {
				masked[i][j] = math.NaN()
			} else {
				masked[i][j] = value
			}
		}
	}
	return masked
}

// MaskValue replaces every occurrence of nodata in grid with NaN, so that
// downstream statistics skip declared missing pixels the same way they skip
// saturated ones.
func MaskValue(grid [][]float64, nodata float64) [][]float64 {
	masked := make([][]float64, len(grid))
	for i, row := range grid {
		masked[i] = make([]float64, len(row))
		for j, value := range row {
			if value == nodata {
				masked[i][j] = math.NaN()
			} else {
				masked[i][j] = value
			}
		}
	}
	return masked
}
