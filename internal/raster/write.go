package raster

import (
	"fmt"
	"math"

	"github.com/airbusgeo/godal"
)

// WriteIndex writes grid as a single-band Float32 GeoTIFF with DEFLATE
// compression and NaN as the missing-value marker, carrying over the
// georeferencing in meta.
func WriteIndex(path string, grid [][]float64, meta Meta) error {
	height := len(grid)
	if height == 0 {
		return fmt.Errorf("refusing to write empty grid to %s", path)
	}
	width := len(grid[0])

	out, err := godal.Create(godal.GTiff, path, 1, godal.Float32, width, height,
		godal.CreationOption("COMPRESS=DEFLATE"))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if meta.HasGeoTransform {
		if err := out.SetGeoTransform(meta.GeoTransform); err != nil {
			out.Close()
			return fmt.Errorf("failed to set GeoTransform on %s: %w", path, err)
		}
	}
	if meta.Projection != "" {
		if err := out.SetProjection(meta.Projection); err != nil {
			out.Close()
			return fmt.Errorf("failed to set projection on %s: %w", path, err)
		}
	}

	band := out.Bands()[0]
	if err := band.SetNoData(math.NaN()); err != nil {
		out.Close()
		return fmt.Errorf("failed to set nodata on %s: %w", path, err)
	}

	data := make([]float64, width*height)
	for i, row := range grid {
		copy(data[i*width:(i+1)*width], row)
	}
	if err := band.Write(0, 0, data, width, height); err != nil {
		out.Close()
		return fmt.Errorf("failed to write raster data to %s: %w", path, err)
	}

	return out.Close()
}
