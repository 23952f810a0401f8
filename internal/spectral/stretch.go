package spectral

import "math"

// Stretch linearly rescales the finite values of grid to [0,1] and returns
// the result as a new grid; the caller's grid is never touched. Grids with
// no finite values, or whose finite range has zero width, come back as a
// plain copy so a constant image never divides by zero.
func Stretch(grid [][]float64) [][]float64 {
	out := Clone(grid)

	min, max := math.Inf(1), math.Inf(-1)
	for _, row := range out {
		for _, value := range row {
			if !isFinite(value) {
				continue
			}
			if value < min {
				min = value
			}
			if value > max {
				max = value
			}
		}
	}
	if min > max || min == max {
		return out
	}

	span := max - min
	for i, row := range out {
		for j, value := range row {
			if isFinite(value) {
				out[i][j] = (value - min) / span
			}
		}
	}
	return out
}

// Clone deep-copies a grid.
func Clone(grid [][]float64) [][]float64 {
	out := make([][]float64, len(grid))
	for i, row := range grid {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
