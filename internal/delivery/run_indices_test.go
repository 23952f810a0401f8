package delivery

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/airbusgeo/godal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafsense/leafsense-cli/internal/raster"
)

func TestMain(m *testing.M) {
	godal.RegisterInternalDrivers()
	os.Exit(m.Run())
}

const (
	testWidth  = 8
	testHeight = 6
)

// writeSyntheticRaster creates a 5-band UInt16 GeoTIFF with a constant value
// per band: blue=100, green=200, red=400, red-edge=500, nir=800.
func writeSyntheticRaster(t *testing.T, path string) {
	t.Helper()

	ds, err := godal.Create(godal.GTiff, path, 5, godal.UInt16, testWidth, testHeight)
	require.NoError(t, err)
	require.NoError(t, ds.SetGeoTransform([6]float64{100, 10, 0, 200, 0, -10}))

	values := []float64{100, 200, 400, 500, 800}
	for i, band := range ds.Bands() {
		data := make([]float64, testWidth*testHeight)
		for j := range data {
			data[j] = values[i]
		}
		require.NoError(t, band.Write(0, 0, data, testWidth, testHeight))
	}
	require.NoError(t, ds.Close())
}

func readSingleBand(t *testing.T, path string) [][]float64 {
	t.Helper()

	src, err := raster.Open(path)
	require.NoError(t, err)
	defer src.Close()

	require.Equal(t, 1, src.BandCount())
	grid, err := src.ReadBand(1)
	require.NoError(t, err)
	return grid
}

func TestRunIndicesEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.tif")
	writeSyntheticRaster(t, input)

	prefix := filepath.Join(dir, "out_")
	err := RunIndices(input, Options{
		RedBand:   3,
		NIRBand:   5,
		GreenBand: 2,
		BlueBand:  1,
		OutPrefix: prefix,
	})
	require.NoError(t, err)

	// ndvi = (800-400)/1200, ndwi = (200-800)/1000, psri = (400-200)/100
	expected := map[string]float64{
		"ndvi": 400.0 / 1200.0,
		"ndwi": -0.6,
		"psri": 2.0,
	}
	for name, want := range expected {
		grid := readSingleBand(t, prefix+name+".tif")
		require.Len(t, grid, testHeight)
		for _, row := range grid {
			require.Len(t, row, testWidth)
			for _, value := range row {
				assert.InDelta(t, want, value, 1e-6, name)
			}
		}
	}

	csvContent, err := os.ReadFile(prefix + "index_summary.csv")
	require.NoError(t, err)
	assert.Contains(t, string(csvContent), "ndvi")

	geojsonContent, err := os.ReadFile(prefix + "footprint.geojson")
	require.NoError(t, err)
	assert.Contains(t, string(geojsonContent), "FeatureCollection")
}

func TestRunIndicesMasksSaturatedPixels(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.tif")
	writeSyntheticRaster(t, input)

	// Saturate one NIR pixel.
	ds, err := godal.Open(input, godal.Update())
	require.NoError(t, err)
	require.NoError(t, ds.Bands()[4].Write(0, 0, []float64{65535}, 1, 1))
	require.NoError(t, ds.Close())

	prefix := filepath.Join(dir, "sat_")
	err = RunIndices(input, Options{
		RedBand:   3,
		NIRBand:   5,
		GreenBand: 2,
		BlueBand:  1,
		OutPrefix: prefix,
	})
	require.NoError(t, err)

	grid := readSingleBand(t, prefix+"ndvi.tif")
	assert.True(t, math.IsNaN(grid[0][0]))
	assert.InDelta(t, 400.0/1200.0, grid[0][1], 1e-6)
}

func TestRunIndicesStretchedOutputSpansUnitRange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.tif")
	writeSyntheticRaster(t, input)

	// Vary one red pixel so the NDVI range has nonzero width.
	ds, err := godal.Open(input, godal.Update())
	require.NoError(t, err)
	require.NoError(t, ds.Bands()[2].Write(0, 0, []float64{100}, 1, 1))
	require.NoError(t, ds.Close())

	prefix := filepath.Join(dir, "stretch_")
	err = RunIndices(input, Options{
		RedBand:   3,
		NIRBand:   5,
		GreenBand: 2,
		BlueBand:  1,
		OutPrefix: prefix,
		Stretch:   true,
	})
	require.NoError(t, err)

	grid := readSingleBand(t, prefix+"ndvi.tif")
	assert.InDelta(t, 1.0, grid[0][0], 1e-6)
	assert.InDelta(t, 0.0, grid[0][1], 1e-6)
}

func TestRunIndicesVisualize(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.tif")
	writeSyntheticRaster(t, input)

	prefix := filepath.Join(dir, "vis_")
	err := RunIndices(input, Options{
		RedBand:   3,
		NIRBand:   5,
		GreenBand: 2,
		BlueBand:  1,
		OutPrefix: prefix,
		Visualize: true,
	})
	require.NoError(t, err)

	for _, name := range []string{"ndvi_map.png", "ndwi_map.png", "psri_map.png", "combined_indices.png"} {
		info, err := os.Stat(prefix + name)
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestRunIndicesMissingBand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.tif")
	writeSyntheticRaster(t, input)

	err := RunIndices(input, Options{
		RedBand:   3,
		NIRBand:   9,
		GreenBand: 2,
		BlueBand:  1,
		OutPrefix: filepath.Join(dir, "x_"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "band 9 out of range")
}

func TestRunIndicesOpenFailure(t *testing.T) {
	err := RunIndices(filepath.Join(t.TempDir(), "nope.tif"), Options{
		RedBand: 3, NIRBand: 5, GreenBand: 2, BlueBand: 1,
	})
	require.Error(t, err)
}

func TestRunInspectionEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.tif")
	writeSyntheticRaster(t, input)

	err := RunInspection(input, InspectionOptions{SampleSize: 10})
	require.NoError(t, err)
}
