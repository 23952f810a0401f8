package properties

import (
	"os"
	"strconv"
)

// Default 1-based band indices for the 5-band sensor layout the pipeline
// assumes. Band 4 is the red-edge channel, unused by the indices here.
const (
	DefaultBlueBand  = 1
	DefaultGreenBand = 2
	DefaultRedBand   = 3
	DefaultNIRBand   = 5
)

// OutputPath returns the directory relative output files are written under,
// empty for the working directory.
func OutputPath() string {
	return os.Getenv("LEAFSENSE_OUTPUT_PATH")
}

func RedBand() int   { return bandFromEnv("LEAFSENSE_RED_BAND", DefaultRedBand) }
func NIRBand() int   { return bandFromEnv("LEAFSENSE_NIR_BAND", DefaultNIRBand) }
func GreenBand() int { return bandFromEnv("LEAFSENSE_GREEN_BAND", DefaultGreenBand) }
func BlueBand() int  { return bandFromEnv("LEAFSENSE_BLUE_BAND", DefaultBlueBand) }

func bandFromEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	band, err := strconv.Atoi(value)
	if err != nil || band < 1 {
		return fallback
	}
	return band
}
