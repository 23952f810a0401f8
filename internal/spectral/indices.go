package spectral

import "math"

// NDVI computes the Normalized Difference Vegetation Index,
// (NIR - Red) / (NIR + Red), elementwise over same-shape grids.
func NDVI(nir, red [][]float64) [][]float64 {
	return normalizedDifference(nir, red)
}

// NDWI computes the Normalized Difference Water Index,
// (Green - NIR) / (Green + NIR), elementwise over same-shape grids.
func NDWI(green, nir [][]float64) [][]float64 {
	return normalizedDifference(green, nir)
}

// PSRI computes the Plant Senescence Reflectance Index,
// (Red - Green) / Blue, elementwise over same-shape grids.
func PSRI(red, green, blue [][]float64) [][]float64 {
	result := make([][]float64, len(red))
	for i := range red {
		result[i] = make([]float64, len(red[i]))
		for j := range red[i] {
			result[i][j] = safeDivide(red[i][j]-green[i][j], blue[i][j])
		}
	}
	return result
}

func normalizedDifference(band1, band2 [][]float64) [][]float64 {
	result := make([][]float64, len(band1))
	for i := range band1 {
		result[i] = make([]float64, len(band1[i]))
		for j := range band1[i] {
			result[i][j] = safeDivide(band1[i][j]-band2[i][j], band1[i][j]+band2[i][j])
		}
	}
	return result
}

// safeDivide keeps missing data uniform: a division that would produce an
// infinity collapses to NaN, and NaN operands already propagate on their own.
func safeDivide(num, den float64) float64 {
	value := num / den
	if math.IsInf(value, 0) {
		return math.NaN()
	}
	return value
}
