package output

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/leafsense/leafsense-cli/internal/spectral"
)

const (
	titleMargin    = 40
	footerMargin   = 50
	colorbarMargin = 70
	legendBox      = 15
	legendSpacing  = 20
)

// CreateIndexMap renders grid as a colored PNG map with a title, a
// descriptive legend, a colorbar and a statistics readout.
func CreateIndexMap(grid [][]float64, index, outputPath string) error {
	mapHeight := len(grid)
	if mapHeight == 0 || len(grid[0]) == 0 {
		return fmt.Errorf("no data to visualize for %s", index)
	}
	mapWidth := len(grid[0])

	colormap := ColormapFor(index)
	legend := LegendFor(index)
	vmin, vmax := Domain(index, grid)

	img := renderGrid(grid, colormap, vmin, vmax)

	totalWidth := mapWidth + colorbarMargin
	totalHeight := mapHeight + titleMargin + footerMargin
	dc := gg.NewContext(totalWidth, totalHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.DrawImage(img, 0, titleMargin)

	// Title
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%s - %s", index, legend.Title), float64(totalWidth)/2, titleMargin/2, 0.5, 0.5)

	drawColorbar(dc, colormap, vmin, vmax, mapWidth, mapHeight)
	drawLegend(dc, colormap, legend)

	// Description, bottom left
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.DrawStringAnchored(legend.Description, 10, float64(titleMargin+mapHeight)+15, 0, 0.5)

	// Statistics readout, bottom right
	summary := spectral.Summarize(grid)
	if summary.Valid() {
		stats := fmt.Sprintf("Mean: %.3f  Std: %.3f  Range: %.3f to %.3f",
			summary.Mean, summary.Std, summary.Min, summary.Max)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(stats, float64(totalWidth)-10, float64(titleMargin+mapHeight)+35, 1, 0.5)
	} else {
		dc.SetRGB(0.8, 0, 0)
		dc.DrawStringAnchored("No valid pixels", float64(totalWidth)-10, float64(titleMargin+mapHeight)+35, 1, 0.5)
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	fmt.Printf("Visualization saved: %s\n", outputPath)
	return nil
}

// renderGrid maps grid values through the colormap over [vmin, vmax].
// Missing pixels come out neutral gray.
func renderGrid(grid [][]float64, colormap Colormap, vmin, vmax float64) *image.RGBA {
	height := len(grid)
	width := len(grid[0])

	// Degenerate domain; every valid pixel lands mid-ramp.
	span := vmax - vmin
	degenerate := math.IsNaN(span) || span <= 0

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, row := range grid {
		for x, value := range row {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				img.Set(x, y, missingColor)
				continue
			}
			t := 0.5
			if !degenerate {
				t = (value - vmin) / span
			}
			img.Set(x, y, colormap.At(t))
		}
	}
	return img
}

func drawColorbar(dc *gg.Context, colormap Colormap, vmin, vmax float64, mapWidth, mapHeight int) {
	barX := float64(mapWidth) + 20
	barWidth := 14.0

	for y := 0; y < mapHeight; y++ {
		t := 1 - float64(y)/float64(mapHeight-1)
		if mapHeight == 1 {
			t = 0.5
		}
		stop := colormap.At(t)
		dc.SetRGB(stop.R, stop.G, stop.B)
		dc.DrawRectangle(barX, float64(titleMargin+y), barWidth, 1)
		dc.Fill()
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(barX, titleMargin, barWidth, float64(mapHeight))
	dc.SetLineWidth(1)
	dc.Stroke()

	dc.DrawStringAnchored(fmt.Sprintf("%.2f", vmax), barX+barWidth+4, titleMargin+6, 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f", vmin), barX+barWidth+4, float64(titleMargin+mapHeight)-6, 0, 0.5)
}

func drawLegend(dc *gg.Context, colormap Colormap, legend Legend) {
	legendX := 10.0
	legendY := float64(titleMargin) + 10

	for i, label := range legend.Labels {
		y := legendY + float64(i*legendSpacing)
		t := float64(i) / float64(len(legend.Labels)-1)
		stop := colormap.At(t)

		dc.SetRGB(stop.R, stop.G, stop.B)
		dc.DrawRectangle(legendX, y, legendBox, legendBox)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawRectangle(legendX, y, legendBox, legendBox)
		dc.SetLineWidth(1)
		dc.Stroke()

		dc.DrawStringAnchored(label, legendX+legendBox+5, y+legendBox/2, 0, 0.5)
	}
}
