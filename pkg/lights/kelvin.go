package lights

import (
	"math"

	"github.com/df07/go-light-bridge/pkg/core"
)

// Color temperature range accepted by KelvinToColor
const (
	MinKelvin = 1000.0
	MaxKelvin = 40000.0
)

// KelvinToColor approximates the RGB colour of a black body at the given
// temperature. The input is clamped to [MinKelvin, MaxKelvin]; every channel
// is in [0,1]. Curves are fitted per channel in units of 100K.
func KelvinToColor(kelvin float64) core.Vec3 {
	k := math.Max(MinKelvin, math.Min(MaxKelvin, kelvin)) * 0.01

	var r, g, b float64

	if k <= 66 {
		r = 1
	} else {
		r = 329.698727446 * math.Pow(k-60, -0.1332047592) / 255
	}

	if k <= 66 {
		g = (99.4708025861*math.Log(k) - 161.1195681661) / 255
	} else {
		g = 288.1221695283 * math.Pow(k-60, -0.0755148492) / 255
	}

	switch {
	case k >= 66:
		b = 1
	case k <= 19:
		b = 0
	default:
		b = (138.5177312231*math.Log(k-10) - 305.0447927307) / 255
	}

	return core.NewVec3(r, g, b).Clamp(0, 1)
}
