package lights

import "github.com/df07/go-light-bridge/pkg/core"

// MaxEfficacy is the luminous efficacy of monochromatic 555nm light (lm/W),
// used to normalize the stored efficacy
const MaxEfficacy = 684.0

// NeedsArea reports whether converting from units divides by the source area
func NeedsArea(units IntensityUnits) bool {
	return units == UnitsWatts || units == UnitsLumen
}

// Intensity converts the stored intensity to the renderer's radiance scale.
// area is only used for Watts and Lumen.
func Intensity(s Snapshot, area float64) float64 {
	efficacy := s.Efficacy / MaxEfficacy

	switch s.Units {
	case UnitsWatts:
		return s.Intensity * efficacy / area
	case UnitsLuminance:
		return s.Intensity
	case UnitsRadiance:
		return s.Intensity * efficacy
	case UnitsLumen:
		return s.Intensity / area
	default:
		panic("lights: unknown intensity units " + s.Units.String())
	}
}

// LightColor returns the stored colour, or the black-body colour of the
// stored temperature in Temperature mode
func LightColor(s Snapshot) core.Vec3 {
	switch s.ColourMode {
	case ColourModeColour:
		return s.Colour
	case ColourModeTemperature:
		return KelvinToColor(s.Temperature)
	default:
		panic("lights: unknown colour mode " + s.ColourMode.String())
	}
}

// RadiantColor is the final emission: light colour scaled by intensity
func RadiantColor(s Snapshot, area float64) core.Vec3 {
	return LightColor(s).Multiply(Intensity(s, area))
}
