package output

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/leafsense/leafsense-cli/internal/spectral"
)

// Color ramps per index, brown-to-green for vigor, brown-to-blue for water,
// green-to-red for senescence. Unknown indices fall back to viridis.
var (
	ndviColormap = mustColormap("#8B4513", "#D2691E", "#DAA520", "#FFFF00", "#ADFF2F", "#32CD32", "#228B22", "#006400")
	ndwiColormap = mustColormap("#8B4513", "#D2691E", "#F4A460", "#FFFF99", "#87CEEB", "#4682B4", "#0000CD", "#000080")
	psriColormap = mustColormap("#006400", "#32CD32", "#ADFF2F", "#FFFF00", "#FFD700", "#FFA500", "#FF4500", "#DC143C")

	viridisColormap = mustColormap("#440154", "#482878", "#3E4989", "#31688E", "#26828E", "#1F9E89", "#35B779", "#6DCE59", "#B4DE2C", "#FDE725")
)

// missingColor marks NaN pixels on the rendered maps.
var missingColor = color.RGBA{R: 204, G: 204, B: 204, A: 255}

// Colormap linearly interpolates between fixed color stops.
type Colormap struct {
	stops []colorful.Color
}

// NewColormap builds a colormap from hex color stops.
func NewColormap(hexStops ...string) (Colormap, error) {
	stops := make([]colorful.Color, len(hexStops))
	for i, hex := range hexStops {
		stop, err := colorful.Hex(hex)
		if err != nil {
			return Colormap{}, fmt.Errorf("invalid color stop %s: %w", hex, err)
		}
		stops[i] = stop
	}
	return Colormap{stops: stops}, nil
}

func mustColormap(hexStops ...string) Colormap {
	colormap, err := NewColormap(hexStops...)
	if err != nil {
		panic(err)
	}
	return colormap
}

// At maps t in [0,1] onto the ramp; out-of-range values clamp to the ends.
func (cm Colormap) At(t float64) colorful.Color {
	if math.IsNaN(t) || t <= 0 {
		return cm.stops[0]
	}
	if t >= 1 || len(cm.stops) == 1 {
		return cm.stops[len(cm.stops)-1]
	}
	scaled := t * float64(len(cm.stops)-1)
	i := int(scaled)
	return cm.stops[i].BlendRgb(cm.stops[i+1], scaled-float64(i))
}

// ColormapFor returns the ramp used for the given index name.
func ColormapFor(index string) Colormap {
	switch index {
	case "NDVI":
		return ndviColormap
	case "NDWI":
		return ndwiColormap
	case "PSRI":
		return psriColormap
	}
	return viridisColormap
}

// Domain returns the color-scale range for an index map. The three known
// indices use fixed ranges so maps from different scenes stay comparable;
// anything else spans the 2nd to 98th percentile of its own finite values.
func Domain(index string, grid [][]float64) (vmin, vmax float64) {
	switch index {
	case "NDVI":
		return -0.2, 0.8
	case "NDWI":
		return -0.5, 0.3
	case "PSRI":
		return -0.1, 0.2
	}
	return spectral.Percentile(grid, 2), spectral.Percentile(grid, 98)
}

// Legend carries the descriptive annotations of an index map.
type Legend struct {
	Title       string
	Labels      []string
	Description string
}

// LegendFor returns the annotation set for the given index name.
func LegendFor(index string) Legend {
	switch index {
	case "NDVI":
		return Legend{
			Title:       "Vegetation Vigor",
			Labels:      []string{"Bare Soil/Rock", "Sparse Vegetation", "Moderate Vegetation", "Dense Vegetation"},
			Description: "Green indicates healthy, vigorous vegetation",
		}
	case "NDWI":
		return Legend{
			Title:       "Water Content/Stress",
			Labels:      []string{"Very Dry", "Dry", "Moderate", "Wet/High Water Content"},
			Description: "Blue indicates high water content, brown indicates water stress",
		}
	case "PSRI":
		return Legend{
			Title:       "Plant Senescence/Stress",
			Labels:      []string{"Healthy/Young", "Slightly Stressed", "Moderately Stressed", "Highly Stressed/Senescent"},
			Description: "Green indicates healthy plants, yellow/red indicates stress or aging",
		}
	}
	return Legend{
		Title:       "Index Value",
		Labels:      []string{"Low", "Medium-Low", "Medium-High", "High"},
		Description: "Values span the 2nd to 98th percentile of the data",
	}
}
