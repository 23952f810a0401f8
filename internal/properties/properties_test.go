package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandDefaults(t *testing.T) {
	assert.Equal(t, 3, RedBand())
	assert.Equal(t, 5, NIRBand())
	assert.Equal(t, 2, GreenBand())
	assert.Equal(t, 1, BlueBand())
}

func TestBandOverrideFromEnv(t *testing.T) {
	t.Setenv("LEAFSENSE_RED_BAND", "4")

	assert.Equal(t, 4, RedBand())
}

func TestBandOverrideIgnoresGarbage(t *testing.T) {
	t.Setenv("LEAFSENSE_NIR_BAND", "zero")
	assert.Equal(t, 5, NIRBand())

	t.Setenv("LEAFSENSE_NIR_BAND", "-2")
	assert.Equal(t, 5, NIRBand())
}
