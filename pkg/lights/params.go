package lights

import (
	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/host"
)

// Physical light parameter ids
const (
	ParamEnabled host.ParamID = iota
	ParamLightType
	ParamAreaShape
	ParamIntensity
	ParamIntensityUnits
	ParamColourMode
	ParamColour
	ParamTemperature
	ParamEfficacy
	ParamWidth
	ParamLength
	ParamUpright
	ParamVisible
	ParamDoubleSided
	ParamLightMesh
	ParamInnerCone
	ParamOuterCone
)

// PhysicalLightDesc declares the physical light parameter block
var PhysicalLightDesc = host.NewParamBlockDesc("physical_light",
	host.ParamDef{ID: ParamEnabled, Name: "enabled", Type: host.TypeBool, Default: true},
	host.ParamDef{ID: ParamLightType, Name: "light_type", Type: host.TypeInt, Default: int(LightTypeArea)},
	host.ParamDef{ID: ParamAreaShape, Name: "area_shape", Type: host.TypeInt, Default: int(ShapeRectangle)},
	host.ParamDef{ID: ParamIntensity, Name: "intensity", Type: host.TypeFloat, Default: 100.0},
	host.ParamDef{ID: ParamIntensityUnits, Name: "intensity_units", Type: host.TypeInt, Default: int(UnitsWatts)},
	host.ParamDef{ID: ParamColourMode, Name: "colour_mode", Type: host.TypeInt, Default: int(ColourModeColour)},
	host.ParamDef{ID: ParamColour, Name: "colour", Type: host.TypeColor, Default: core.NewVec3(1, 1, 1)},
	host.ParamDef{ID: ParamTemperature, Name: "temperature", Type: host.TypeFloat, Default: 6500.0},
	host.ParamDef{ID: ParamEfficacy, Name: "efficacy", Type: host.TypeFloat, Default: 17.0},
	host.ParamDef{ID: ParamWidth, Name: "width", Type: host.TypeFloat, Default: 1.0},
	host.ParamDef{ID: ParamLength, Name: "length", Type: host.TypeFloat, Default: 1.0},
	host.ParamDef{ID: ParamUpright, Name: "upright", Type: host.TypeBool, Default: false},
	host.ParamDef{ID: ParamVisible, Name: "visible", Type: host.TypeBool, Default: true},
	host.ParamDef{ID: ParamDoubleSided, Name: "double_sided", Type: host.TypeBool, Default: false},
	host.ParamDef{ID: ParamLightMesh, Name: "light_mesh", Type: host.TypeRef, Default: host.MeshRef("")},
	host.ParamDef{ID: ParamInnerCone, Name: "inner_cone", Type: host.TypeFloat, Default: 43.0},
	host.ParamDef{ID: ParamOuterCone, Name: "outer_cone", Type: host.TypeFloat, Default: 45.0},
)

// NewParams creates a physical light parameter block holding the defaults
func NewParams() *host.ParamBlock {
	return host.NewParamBlock(PhysicalLightDesc)
}
