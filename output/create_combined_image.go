package output

import (
	"fmt"

	"github.com/fogleman/gg"
)

// IndexGrid pairs an index name with its computed grid.
type IndexGrid struct {
	Index string
	Grid  [][]float64
}

// CreateCombinedImage renders the index maps side by side in one PNG, each
// panel with its own color scale and title.
func CreateCombinedImage(grids []IndexGrid, outputPath string) error {
	if len(grids) == 0 {
		return fmt.Errorf("no index grids to combine")
	}

	panelWidth := 0
	panelHeight := 0
	for _, panel := range grids {
		if len(panel.Grid) == 0 || len(panel.Grid[0]) == 0 {
			return fmt.Errorf("no data to visualize for %s", panel.Index)
		}
		if len(panel.Grid) > panelHeight {
			panelHeight = len(panel.Grid)
		}
		if len(panel.Grid[0]) > panelWidth {
			panelWidth = len(panel.Grid[0])
		}
	}

	const gap = 10
	totalWidth := len(grids)*(panelWidth+gap) + gap
	totalHeight := panelHeight + titleMargin + gap

	dc := gg.NewContext(totalWidth, totalHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i, panel := range grids {
		colormap := ColormapFor(panel.Index)
		legend := LegendFor(panel.Index)
		vmin, vmax := Domain(panel.Index, panel.Grid)

		x := gap + i*(panelWidth+gap)
		dc.DrawImage(renderGrid(panel.Grid, colormap, vmin, vmax), x, titleMargin)

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(fmt.Sprintf("%s - %s", panel.Index, legend.Title),
			float64(x)+float64(panelWidth)/2, titleMargin/2, 0.5, 0.5)
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	fmt.Printf("Combined visualization saved: %s\n", outputPath)
	return nil
}
