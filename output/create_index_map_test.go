package output

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid() [][]float64 {
	return [][]float64{
		{0.1, 0.5, math.NaN()},
		{-0.1, 0.8, 0.3},
	}
}

func TestCreateIndexMap(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "ndvi_map.png")

	err := CreateIndexMap(testGrid(), "NDVI", outputPath)

	require.NoError(t, err)
	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCreateIndexMapAllMissing(t *testing.T) {
	grid := [][]float64{{math.NaN(), math.NaN()}}
	outputPath := filepath.Join(t.TempDir(), "empty_map.png")

	err := CreateIndexMap(grid, "NDWI", outputPath)

	require.NoError(t, err)
}

func TestCreateIndexMapEmptyGrid(t *testing.T) {
	err := CreateIndexMap(nil, "NDVI", filepath.Join(t.TempDir(), "x.png"))

	require.Error(t, err)
}

func TestCreateCombinedImage(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "combined_indices.png")

	err := CreateCombinedImage([]IndexGrid{
		{Index: "NDVI", Grid: testGrid()},
		{Index: "NDWI", Grid: testGrid()},
		{Index: "PSRI", Grid: testGrid()},
	}, outputPath)

	require.NoError(t, err)
	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCreateCombinedImageNoGrids(t *testing.T) {
	err := CreateCombinedImage(nil, filepath.Join(t.TempDir(), "x.png"))

	require.Error(t, err)
}
