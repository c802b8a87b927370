package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-light-bridge/pkg/core"
)

func TestKelvinToColor_NeutralWhite(t *testing.T) {
	c := KelvinToColor(6600)
	assert.InDelta(t, 1, c.X, 0.01)
	assert.InDelta(t, 1, c.Y, 0.01)
	assert.InDelta(t, 1, c.Z, 0.01)
}

func TestKelvinToColor_InRange(t *testing.T) {
	for k := 0.0; k <= 60000; k += 250 {
		c := KelvinToColor(k)
		for _, v := range []float64{c.X, c.Y, c.Z} {
			assert.GreaterOrEqual(t, v, 0.0, "%vK", k)
			assert.LessOrEqual(t, v, 1.0, "%vK", k)
		}
	}
}

func TestKelvinToColor_Clamped(t *testing.T) {
	assert.Equal(t, KelvinToColor(MinKelvin), KelvinToColor(-50))
	assert.Equal(t, KelvinToColor(MinKelvin), KelvinToColor(500))
	assert.Equal(t, KelvinToColor(MaxKelvin), KelvinToColor(1e6))
}

func TestKelvinToColor_Extremes(t *testing.T) {
	tests := []struct {
		name     string
		kelvin   float64
		expected core.Vec3
	}{
		// warm: full red, no blue
		{"Candle", 1000, core.NewVec3(1, 0.2664, 0)},
		// cool: blue dominates
		{"Blue sky", 40000, core.NewVec3(0.5948, 0.7276, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KelvinToColor(tt.kelvin)
			assert.InDelta(t, tt.expected.X, got.X, 1e-3)
			assert.InDelta(t, tt.expected.Y, got.Y, 1e-3)
			assert.InDelta(t, tt.expected.Z, got.Z, 1e-3)
		})
	}
}

func TestKelvinToColor_WarmerIsRedder(t *testing.T) {
	warm := KelvinToColor(2700)
	cool := KelvinToColor(9000)
	assert.Greater(t, warm.X/warm.Z, cool.X/cool.Z)
}
