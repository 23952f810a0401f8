package spectral

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the finite values of a band or index grid. A grid with
// no finite values at all yields the zero Summary; check Valid before using
// the numeric fields.
type Summary struct {
	Min        float64
	Max        float64
	Mean       float64
	Std        float64
	Median     float64
	ValidCount int
	ValidPct   float64
}

// Valid reports whether the summarized grid had at least one finite pixel.
func (s Summary) Valid() bool {
	return s.ValidCount > 0
}

// Summarize computes Summary over the finite elements of grid. NaN and
// infinite values are excluded from every aggregate and only lower ValidPct.
func Summarize(grid [][]float64) Summary {
	total := 0
	for _, row := range grid {
		total += len(row)
	}

	values := FiniteValues(grid)
	if len(values) == 0 {
		return Summary{}
	}
	sort.Float64s(values)

	summary := Summary{
		Min:        values[0],
		Max:        values[len(values)-1],
		Mean:       stat.Mean(values, nil),
		Median:     stat.Quantile(0.5, stat.Empirical, values, nil),
		ValidCount: len(values),
	}
	// Population std, matching how the inspector reports sensor bands.
	summary.Std = math.Sqrt(stat.PopVariance(values, nil))
	if total > 0 {
		summary.ValidPct = float64(len(values)) / float64(total) * 100
	}
	return summary
}

// FiniteValues flattens grid into a slice of its finite elements.
func FiniteValues(grid [][]float64) []float64 {
	values := make([]float64, 0, len(grid)*cols(grid))
	for _, row := range grid {
		for _, value := range row {
			if isFinite(value) {
				values = append(values, value)
			}
		}
	}
	return values
}

// Percentile returns the p-th percentile (0-100) of the finite values of
// grid, or NaN when the grid has none.
func Percentile(grid [][]float64, p float64) float64 {
	values := FiniteValues(grid)
	if len(values) == 0 {
		return math.NaN()
	}
	sort.Float64s(values)
	return stat.Quantile(p/100, stat.Empirical, values, nil)
}

func cols(grid [][]float64) int {
	if len(grid) == 0 {
		return 0
	}
	return len(grid[0])
}
