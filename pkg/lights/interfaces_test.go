package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	lt, err := ParseLightType(" Spot ")
	require.NoError(t, err)
	assert.Equal(t, LightTypeSpot, lt)

	sm, err := ParseShapeMode("cylinder")
	require.NoError(t, err)
	assert.Equal(t, ShapeCylinder, sm)

	iu, err := ParseIntensityUnits("LUMEN")
	require.NoError(t, err)
	assert.Equal(t, UnitsLumen, iu)

	cm, err := ParseColourMode("color")
	require.NoError(t, err)
	assert.Equal(t, ColourModeColour, cm)
	cm, err = ParseColourMode("temperature")
	require.NoError(t, err)
	assert.Equal(t, ColourModeTemperature, cm)

	_, err = ParseLightType("ambient")
	assert.ErrorContains(t, err, "area, spot, point, directional")
	_, err = ParseShapeMode("")
	assert.Error(t, err)
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Light type", LightTypeDirectional.String(), "directional"},
		{"Shape", ShapeRectangle.String(), "rectangle"},
		{"Units", UnitsRadiance.String(), "radiance"},
		{"Colour mode", ColourModeTemperature.String(), "temperature"},
		{"Out of range", LightType(9).String(), "LightType(9)"},
		{"Negative", ShapeMode(-1).String(), "ShapeMode(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}

	// Every name parses back to its value
	for i := range lightTypeNames {
		lt, err := ParseLightType(LightType(i).String())
		require.NoError(t, err)
		assert.Equal(t, LightType(i), lt)
	}
	for i := range shapeModeNames {
		sm, err := ParseShapeMode(ShapeMode(i).String())
		require.NoError(t, err)
		assert.Equal(t, ShapeMode(i), sm)
	}
}

func TestKindTypes(t *testing.T) {
	assert.Equal(t, LightTypeArea, Area{Shape: Disc{}}.Type())
	assert.Equal(t, LightTypeSpot, Spot{}.Type())
	assert.Equal(t, LightTypePoint, Point{}.Type())
	assert.Equal(t, LightTypeDirectional, Directional{}.Type())

	assert.Equal(t, ShapeDisc, Disc{}.Mode())
	assert.Equal(t, ShapeCylinder, Cylinder{}.Mode())
	assert.Equal(t, ShapeSphere, Sphere{}.Mode())
	assert.Equal(t, ShapeRectangle, Rectangle{}.Mode())
	assert.Equal(t, ShapeMesh, MeshShape{}.Mode())
}
