package delivery

import (
	"os"

	"github.com/leafsense/leafsense-cli/internal/inspect"
	"github.com/leafsense/leafsense-cli/internal/raster"
)

// InspectionOptions tunes the band inspection diagnostics.
type InspectionOptions struct {
	Mapping    []inspect.BandSlot
	SampleSize int
	ScanPairs  bool
}

// RunInspection opens inputPath and prints the full band diagnostic report.
// Only the file open can fail; per-band problems are reported inline and do
// not abort the inspection.
func RunInspection(inputPath string, opts InspectionOptions) error {
	src, err := raster.Open(inputPath)
	if err != nil {
		return err
	}
	defer src.Close()

	ins := inspect.Inspector{
		Out:        os.Stdout,
		Mapping:    opts.Mapping,
		SampleSize: opts.SampleSize,
	}
	ins.Run(src)

	if opts.ScanPairs {
		inspect.ScanPairs(src, os.Stdout)
	}
	return nil
}
