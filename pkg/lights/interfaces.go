package lights

import (
	"fmt"
	"strings"
)

// LightType selects the export path of a physical light
type LightType int

const (
	LightTypeArea LightType = iota
	LightTypeSpot
	LightTypePoint
	LightTypeDirectional
)

// ShapeMode selects the emitter geometry of an area light
type ShapeMode int

const (
	ShapeDisc ShapeMode = iota
	ShapeCylinder
	ShapeSphere
	ShapeRectangle
	ShapeMesh
)

// IntensityUnits selects how the stored intensity is converted to radiant power
type IntensityUnits int

const (
	UnitsWatts IntensityUnits = iota
	UnitsLuminance
	UnitsRadiance
	UnitsLumen
)

// ColourMode selects where the light color comes from
type ColourMode int

const (
	ColourModeColour ColourMode = iota
	ColourModeTemperature
)

var (
	lightTypeNames  = []string{"area", "spot", "point", "directional"}
	shapeModeNames  = []string{"disc", "cylinder", "sphere", "rectangle", "mesh"}
	unitsNames      = []string{"watts", "luminance", "radiance", "lumen"}
	colourModeNames = []string{"colour", "temperature"}
)

func (lt LightType) String() string      { return enumName("LightType", lightTypeNames, int(lt)) }
func (sm ShapeMode) String() string      { return enumName("ShapeMode", shapeModeNames, int(sm)) }
func (iu IntensityUnits) String() string { return enumName("IntensityUnits", unitsNames, int(iu)) }
func (cm ColourMode) String() string     { return enumName("ColourMode", colourModeNames, int(cm)) }

// Valid reports whether lt is a known light type
func (lt LightType) Valid() bool { return int(lt) >= 0 && int(lt) < len(lightTypeNames) }

// Valid reports whether sm is a known shape
func (sm ShapeMode) Valid() bool { return int(sm) >= 0 && int(sm) < len(shapeModeNames) }

// Valid reports whether iu is a known unit
func (iu IntensityUnits) Valid() bool { return int(iu) >= 0 && int(iu) < len(unitsNames) }

// Valid reports whether cm is a known colour mode
func (cm ColourMode) Valid() bool { return int(cm) >= 0 && int(cm) < len(colourModeNames) }

// ParseLightType parses a light type name ("area", "spot", "point", "directional")
func ParseLightType(s string) (LightType, error) {
	i, err := parseEnum("light type", lightTypeNames, s)
	return LightType(i), err
}

// ParseShapeMode parses an area shape name ("disc", "cylinder", "sphere", "rectangle", "mesh")
func ParseShapeMode(s string) (ShapeMode, error) {
	i, err := parseEnum("area shape", shapeModeNames, s)
	return ShapeMode(i), err
}

// ParseIntensityUnits parses a unit name ("watts", "luminance", "radiance", "lumen")
func ParseIntensityUnits(s string) (IntensityUnits, error) {
	i, err := parseEnum("intensity units", unitsNames, s)
	return IntensityUnits(i), err
}

// ParseColourMode parses "colour" (or "color") and "temperature"
func ParseColourMode(s string) (ColourMode, error) {
	if strings.EqualFold(strings.TrimSpace(s), "color") {
		return ColourModeColour, nil
	}
	i, err := parseEnum("colour mode", colourModeNames, s)
	return ColourMode(i), err
}

func enumName(typ string, names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, i)
	}
	return names[i]
}

func parseEnum(what string, names []string, s string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", what, s, strings.Join(names, ", "))
}
