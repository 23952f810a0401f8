package raster

import (
	"fmt"

	"github.com/airbusgeo/godal"
)

// Meta carries the georeferencing of an opened raster so outputs can be
// written after the source handle is closed.
type Meta struct {
	Width           int
	Height          int
	Bands           int
	GeoTransform    [6]float64
	HasGeoTransform bool
	Projection      string
}

// Dataset wraps an opened godal dataset. Callers own the handle and must
// Close it; reads after Close are invalid.
type Dataset struct {
	Path string

	ds *godal.Dataset
}

// Open opens a georeferenced raster read-only.
func Open(path string) (*Dataset, error) {
	ds, err := godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("%s", msg)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to open raster %s: %w", path, err)
	}
	return &Dataset{Path: path, ds: ds}, nil
}

func (d *Dataset) Close() error {
	return d.ds.Close()
}

func (d *Dataset) Width() int  { return d.ds.Structure().SizeX }
func (d *Dataset) Height() int { return d.ds.Structure().SizeY }

// BandCount returns the number of raster bands in the file.
func (d *Dataset) BandCount() int { return d.ds.Structure().NBands }

// DataType returns the name of the pixel data type of the file.
func (d *Dataset) DataType() string { return d.ds.Structure().DataType.String() }

// Projection returns the projection reference as WKT, empty when the file
// carries none.
func (d *Dataset) Projection() string { return d.ds.Projection() }

// GeoTransform returns the affine transform mapping pixel to georeferenced
// coordinates.
func (d *Dataset) GeoTransform() ([6]float64, error) {
	return d.ds.GeoTransform()
}

// Meta snapshots the georeferencing of the dataset.
func (d *Dataset) Meta() Meta {
	meta := Meta{
		Width:      d.Width(),
		Height:     d.Height(),
		Bands:      d.BandCount(),
		Projection: d.Projection(),
	}
	if gt, err := d.GeoTransform(); err == nil {
		meta.GeoTransform = gt
		meta.HasGeoTransform = true
	}
	return meta
}

// BandName returns the color interpretation name of the 1-based band, the
// closest thing GDAL reliably exposes to a band description.
func (d *Dataset) BandName(index int) string {
	if index < 1 || index > d.BandCount() {
		return ""
	}
	return d.ds.Bands()[index-1].ColorInterp().Name()
}

// NoData returns the declared missing-value marker of the 1-based band, if
// any.
func (d *Dataset) NoData(index int) (float64, bool) {
	if index < 1 || index > d.BandCount() {
		return 0, false
	}
	return d.ds.Bands()[index-1].NoData()
}

// Tags returns the default-domain metadata items of the file.
func (d *Dataset) Tags() map[string]string {
	return d.ds.Metadatas()
}

// ReadBand reads the full 1-based band into a row-major grid.
func (d *Dataset) ReadBand(index int) ([][]float64, error) {
	if index < 1 || index > d.BandCount() {
		return nil, fmt.Errorf("band %d out of range: file has %d bands", index, d.BandCount())
	}
	band := d.ds.Bands()[index-1]

	xSize := d.Width()
	ySize := d.Height()
	data := make([]float64, xSize*ySize)
	if err := band.Read(0, 0, data, xSize, ySize); err != nil {
		return nil, fmt.Errorf("failed to read band %d: %w", index, err)
	}

	grid := make([][]float64, ySize)
	for i := range grid {
		grid[i] = data[i*xSize : (i+1)*xSize]
	}
	return grid, nil
}

// BoundsFromMeta computes the georeferenced extent from a snapshot taken
// before the dataset was closed.
func BoundsFromMeta(meta Meta) (minX, minY, maxX, maxY float64, err error) {
	if !meta.HasGeoTransform {
		return 0, 0, 0, 0, fmt.Errorf("raster has no GeoTransform")
	}
	gt := meta.GeoTransform
	minX = gt[0]
	maxY = gt[3]
	maxX = minX + gt[1]*float64(meta.Width)
	minY = maxY + gt[5]*float64(meta.Height)
	return minX, minY, maxX, maxY, nil
}
