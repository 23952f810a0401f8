package delivery

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/leafsense/leafsense-cli/internal/properties"
	"github.com/leafsense/leafsense-cli/internal/raster"
	"github.com/leafsense/leafsense-cli/internal/spectral"
	"github.com/leafsense/leafsense-cli/output"
)

// Options selects the input bands and outputs of an index pipeline run.
type Options struct {
	RedBand   int
	NIRBand   int
	GreenBand int
	BlueBand  int
	OutPrefix string
	Stretch   bool
	Visualize bool
}

type bandSet struct {
	red   [][]float64
	nir   [][]float64
	green [][]float64
	blue  [][]float64
}

// RunIndices computes NDVI, NDWI and PSRI for inputPath: reads and masks the
// four requested bands, prints band and index statistics, writes the three
// index GeoTIFFs plus a CSV summary and a footprint GeoJSON, and renders the
// PNG maps when asked to.
func RunIndices(inputPath string, opts Options) error {
	bands, meta, err := readMaskedBands(inputPath, opts)
	if err != nil {
		return err
	}

	fmt.Println("Band Statistics (after masking saturated pixels):")
	printBandStat("Red", opts.RedBand, bands.red)
	printBandStat("NIR", opts.NIRBand, bands.nir)
	printBandStat("Green", opts.GreenBand, bands.green)
	printBandStat("Blue", opts.BlueBand, bands.blue)
	fmt.Println()

	indexes := []output.IndexGrid{
		{Index: "NDVI", Grid: spectral.NDVI(bands.nir, bands.red)},
		{Index: "NDWI", Grid: spectral.NDWI(bands.green, bands.nir)},
		{Index: "PSRI", Grid: spectral.PSRI(bands.red, bands.green, bands.blue)},
	}

	fmt.Println("Index Statistics (before stretching):")
	summaries := make([]spectral.Summary, len(indexes))
	for i, index := range indexes {
		summaries[i] = spectral.Summarize(index.Grid)
		printIndexStat(index.Index, summaries[i])
	}

	fmt.Println("Single summary values for entire image:")
	for i, index := range indexes {
		if summaries[i].Valid() {
			fmt.Printf("%s Summary: Mean=%.3f, Median=%.3f\n", index.Index, summaries[i].Mean, summaries[i].Median)
		}
	}
	fmt.Println()

	for i, index := range indexes {
		grid := index.Grid
		if opts.Stretch {
			grid = spectral.Stretch(grid)
		}
		path := outputFile(opts.OutPrefix + strings.ToLower(index.Index) + ".tif")
		if err := raster.WriteIndex(path, grid, meta); err != nil {
			return err
		}
	}
	if opts.Stretch {
		fmt.Println("Applied contrast stretching for GeoTIFF outputs.")
	}
	fmt.Printf("GeoTIFF indices written: %sndvi.tif, %sndwi.tif, %spsri.tif\n",
		opts.OutPrefix, opts.OutPrefix, opts.OutPrefix)

	rows := make([]output.IndexSummaryRow, len(indexes))
	for i, index := range indexes {
		rows[i] = output.SummaryRow(strings.ToLower(index.Index), summaries[i])
	}
	if err := output.CreateSummaryCSV(rows, outputFile(opts.OutPrefix+"index_summary.csv")); err != nil {
		return err
	}

	if meta.HasGeoTransform {
		centroid, err := output.CreateFootprintGeoJSON(meta, outputFile(opts.OutPrefix+"footprint.geojson"))
		if err != nil {
			return err
		}
		fmt.Printf("Footprint centroid: %.6f, %.6f\n", centroid.X(), centroid.Y())
	} else {
		fmt.Println("Input has no GeoTransform, skipping footprint output.")
	}

	if opts.Visualize {
		fmt.Println("\nCreating visualizations...")
		// Maps always use the unstretched arrays so interpretation stays
		// consistent with the fixed color domains.
		for _, index := range indexes {
			path := outputFile(opts.OutPrefix + strings.ToLower(index.Index) + "_map.png")
			if err := output.CreateIndexMap(index.Grid, index.Index, path); err != nil {
				return err
			}
		}
		if err := output.CreateCombinedImage(indexes, outputFile(opts.OutPrefix+"combined_indices.png")); err != nil {
			return err
		}
	}

	return nil
}

// readMaskedBands opens the raster, reads the four requested bands with
// saturated pixels masked, and releases the file handle before returning.
func readMaskedBands(inputPath string, opts Options) (bandSet, raster.Meta, error) {
	src, err := raster.Open(inputPath)
	if err != nil {
		return bandSet{}, raster.Meta{}, err
	}
	defer src.Close()

	fmt.Printf("Processing: %s\n", inputPath)
	fmt.Printf("Dimensions: %d x %d\n", src.Width(), src.Height())
	fmt.Printf("Bands: %d\n\n", src.BandCount())

	read := func(index int) ([][]float64, error) {
		grid, err := src.ReadBand(index)
		if err != nil {
			return nil, err
		}
		return spectral.Mask(grid, spectral.SaturationThreshold), nil
	}

	var bands bandSet
	if bands.red, err = read(opts.RedBand); err != nil {
		return bandSet{}, raster.Meta{}, err
	}
	if bands.nir, err = read(opts.NIRBand); err != nil {
		return bandSet{}, raster.Meta{}, err
	}
	if bands.green, err = read(opts.GreenBand); err != nil {
		return bandSet{}, raster.Meta{}, err
	}
	if bands.blue, err = read(opts.BlueBand); err != nil {
		return bandSet{}, raster.Meta{}, err
	}
	return bands, src.Meta(), nil
}

func printBandStat(name string, band int, grid [][]float64) {
	summary := spectral.Summarize(grid)
	if !summary.Valid() {
		fmt.Printf("%s (Band %d): no valid pixels\n", name, band)
		return
	}
	fmt.Printf("%s (Band %d): %.0f +/- %.0f\n", name, band, summary.Mean, summary.Std)
}

func printIndexStat(name string, summary spectral.Summary) {
	if !summary.Valid() {
		fmt.Printf("%s: No valid pixels!\n\n", name)
		return
	}
	fmt.Printf("%s:\n", name)
	fmt.Printf("  Range: %.3f to %.3f\n", summary.Min, summary.Max)
	fmt.Printf("  Mean: %.3f\n", summary.Mean)
	fmt.Printf("  Valid pixels: %d (%.1f%%)\n\n", summary.ValidCount, summary.ValidPct)
}

// outputFile prefixes relative outputs with the configured output directory.
func outputFile(name string) string {
	if root := properties.OutputPath(); root != "" && !filepath.IsAbs(name) {
		return filepath.Join(root, name)
	}
	return name
}
