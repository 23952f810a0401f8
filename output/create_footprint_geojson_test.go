package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafsense/leafsense-cli/internal/raster"
)

func TestCreateFootprintGeoJSON(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "footprint.geojson")
	meta := raster.Meta{
		Width:           4,
		Height:          3,
		Bands:           5,
		GeoTransform:    [6]float64{100, 10, 0, 200, 0, -10},
		HasGeoTransform: true,
	}

	centroid, err := CreateFootprintGeoJSON(meta, outputPath)

	require.NoError(t, err)
	assert.InDelta(t, 120.0, centroid.X(), 1e-9)
	assert.InDelta(t, 185.0, centroid.Y(), 1e-9)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "FeatureCollection")
	assert.Contains(t, string(content), "\"bands\": 5")
}

func TestCreateFootprintGeoJSONWithoutGeoTransform(t *testing.T) {
	_, err := CreateFootprintGeoJSON(raster.Meta{Width: 4, Height: 3}, filepath.Join(t.TempDir(), "x.geojson"))

	require.Error(t, err)
}
