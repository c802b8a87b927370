package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-light-bridge/pkg/core"
)

func TestIntensity(t *testing.T) {
	const tolerance = 1e-9

	tests := []struct {
		name     string
		units    IntensityUnits
		area     float64
		expected float64
	}{
		{"Watts divide by area and scale by efficacy", UnitsWatts, 10, 5},
		{"Lumen divide by area", UnitsLumen, 10, 10},
		{"Radiance scales by efficacy", UnitsRadiance, 10, 50},
		{"Radiance ignores area", UnitsRadiance, 1000, 50},
		{"Luminance is unchanged", UnitsLuminance, 10, 100},
		{"Luminance ignores area", UnitsLuminance, 0.001, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{Intensity: 100, Efficacy: 342, Units: tt.units}
			assert.InDelta(t, tt.expected, Intensity(snap, tt.area), tolerance)
		})
	}
}

func TestIntensity_LuminanceIgnoresEfficacy(t *testing.T) {
	for _, eff := range []float64{1, 342, MaxEfficacy} {
		snap := Snapshot{Intensity: 42, Efficacy: eff, Units: UnitsLuminance}
		assert.Equal(t, 42.0, Intensity(snap, 7))
	}
}

func TestNeedsArea(t *testing.T) {
	assert.True(t, NeedsArea(UnitsWatts))
	assert.True(t, NeedsArea(UnitsLumen))
	assert.False(t, NeedsArea(UnitsLuminance))
	assert.False(t, NeedsArea(UnitsRadiance))
}

func TestLightColor(t *testing.T) {
	snap := Snapshot{ColourMode: ColourModeColour, Colour: core.NewVec3(0.2, 0.4, 0.6), Temperature: 1000}
	assert.Equal(t, core.NewVec3(0.2, 0.4, 0.6), LightColor(snap))

	snap.ColourMode = ColourModeTemperature
	assert.Equal(t, KelvinToColor(1000), LightColor(snap))
}

func TestRadiantColor(t *testing.T) {
	snap := Snapshot{
		Units:      UnitsLumen,
		Intensity:  100,
		ColourMode: ColourModeColour,
		Colour:     core.NewVec3(1, 0.5, 0),
	}
	got := RadiantColor(snap, 4)
	assert.InDelta(t, 25, got.X, 1e-9)
	assert.InDelta(t, 12.5, got.Y, 1e-9)
	assert.Zero(t, got.Z)
}

func TestIntensity_UnknownUnitsPanics(t *testing.T) {
	assert.Panics(t, func() {
		Intensity(Snapshot{Units: IntensityUnits(12)}, 1)
	})
}
