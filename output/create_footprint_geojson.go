package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/leafsense/leafsense-cli/internal/raster"
)

// CreateFootprintGeoJSON writes the raster extent as a one-feature
// FeatureCollection and returns the footprint centroid.
func CreateFootprintGeoJSON(meta raster.Meta, outputPath string) (orb.Point, error) {
	minX, minY, maxX, maxY, err := raster.BoundsFromMeta(meta)
	if err != nil {
		return orb.Point{}, err
	}

	footprint := orb.Polygon{orb.Ring{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
		{minX, minY},
	}}

	centroid, area := planar.CentroidArea(footprint)
	if area == 0 {
		return orb.Point{}, fmt.Errorf("raster footprint has zero area")
	}

	feature := geojson.NewFeature(footprint)
	feature.Properties = geojson.Properties{
		"width":  meta.Width,
		"height": meta.Height,
		"bands":  meta.Bands,
	}
	collection := geojson.NewFeatureCollection()
	collection.Append(feature)

	file, err := os.Create(outputPath)
	if err != nil {
		return orb.Point{}, fmt.Errorf("failed to create GeoJSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(collection); err != nil {
		return orb.Point{}, fmt.Errorf("failed to encode GeoJSON: %w", err)
	}

	fmt.Println("Footprint written to", outputPath)
	return centroid, nil
}
