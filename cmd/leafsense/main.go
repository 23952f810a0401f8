package main

import (
	"fmt"
	"os"

	"github.com/airbusgeo/godal"
	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/leafsense/leafsense-cli/internal/delivery"
	"github.com/leafsense/leafsense-cli/internal/inspect"
	"github.com/leafsense/leafsense-cli/internal/properties"
)

func printBanner() {
	banner := figure.NewFigure("LeafSense", "isometric1", true)
	bannercolor.Green(banner.String())
	fmt.Println()
}

func newIndicesCommand() *cobra.Command {
	opts := delivery.Options{}

	cmd := &cobra.Command{
		Use:   "indices <input.tif>",
		Short: "Compute and visualize NDVI, NDWI and PSRI from a GeoTIFF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return delivery.RunIndices(args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.RedBand, "red", properties.RedBand(), "1-based band # for Red")
	cmd.Flags().IntVar(&opts.NIRBand, "nir", properties.NIRBand(), "1-based band # for NIR")
	cmd.Flags().IntVar(&opts.GreenBand, "green", properties.GreenBand(), "1-based band # for Green")
	cmd.Flags().IntVar(&opts.BlueBand, "blue", properties.BlueBand(), "1-based band # for Blue")
	cmd.Flags().StringVar(&opts.OutPrefix, "out-prefix", "", "Prefix for output files")
	cmd.Flags().BoolVar(&opts.Stretch, "stretch", false, "Contrast-stretch GeoTIFF output (0-1) for easy viewing")
	cmd.Flags().BoolVar(&opts.Visualize, "visualize", true, "Create visualization maps with legends")

	return cmd
}

func newInspectCommand() *cobra.Command {
	opts := delivery.InspectionOptions{}
	var samples bool

	cmd := &cobra.Command{
		Use:   "inspect <input.tif>",
		Short: "Inspect the band structure of a raster file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Mapping = []inspect.BandSlot{
				{Name: "Blue", Index: properties.BlueBand()},
				{Name: "Green", Index: properties.GreenBand()},
				{Name: "Red", Index: properties.RedBand()},
				{Name: "NIR", Index: properties.NIRBand()},
			}
			if samples {
				opts.SampleSize = 10
			}
			return delivery.RunInspection(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&samples, "samples", false, "Print sample pixel values per band")
	cmd.Flags().BoolVar(&opts.ScanPairs, "scan-pairs", false, "Compute NDVI for every band pair to find the right band order")

	return cmd
}

func main() {
	// Optional; band indices and output dir can come from a .env file.
	godotenv.Load()

	godal.RegisterInternalDrivers()
	printBanner()

	root := &cobra.Command{
		Use:           "leafsense",
		Short:         "Spectral index toolkit for multiband GeoTIFF imagery",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newIndicesCommand())
	root.AddCommand(newInspectCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError: %s\033[0m\n", err.Error())
		os.Exit(1)
	}
}
