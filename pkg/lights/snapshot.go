package lights

import (
	"fmt"

	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/host"
)

// Snapshot is the set of parameter values one export call works from.
// It is captured once, at the export time, and never re-read.
type Snapshot struct {
	Enabled     bool
	Kind        LightKind
	Intensity   float64
	Units       IntensityUnits
	ColourMode  ColourMode
	Colour      core.Vec3
	Temperature float64 // Kelvin
	Efficacy    float64 // lm/W
	Visible     bool
	// DoubleSided is captured for completeness; the renderer binding has no
	// double-sided emission so exporting ignores it.
	DoubleSided bool
}

// Capture reads a physical light parameter block at time t.
// A disabled light captures only Enabled. Enum values outside their range
// are reported as errors.
func Capture(pb *host.ParamBlock, t host.TimeValue) (Snapshot, error) {
	if pb.Desc() != PhysicalLightDesc {
		return Snapshot{}, fmt.Errorf("param block %q is not a physical light", pb.Desc().Name)
	}

	if !pb.Bool(ParamEnabled, t) {
		return Snapshot{}, nil
	}

	kind, err := captureKind(pb, t)
	if err != nil {
		return Snapshot{}, err
	}

	units := IntensityUnits(pb.Int(ParamIntensityUnits, t))
	if !units.Valid() {
		return Snapshot{}, fmt.Errorf("invalid intensity units %d", int(units))
	}
	mode := ColourMode(pb.Int(ParamColourMode, t))
	if !mode.Valid() {
		return Snapshot{}, fmt.Errorf("invalid colour mode %d", int(mode))
	}

	return Snapshot{
		Enabled:     true,
		Kind:        kind,
		Intensity:   pb.Float(ParamIntensity, t),
		Units:       units,
		ColourMode:  mode,
		Colour:      pb.Color(ParamColour, t),
		Temperature: pb.Float(ParamTemperature, t),
		Efficacy:    pb.Float(ParamEfficacy, t),
		Visible:     pb.Bool(ParamVisible, t),
		DoubleSided: pb.Bool(ParamDoubleSided, t),
	}, nil
}

func captureKind(pb *host.ParamBlock, t host.TimeValue) (LightKind, error) {
	switch lt := LightType(pb.Int(ParamLightType, t)); lt {
	case LightTypeArea:
		shape, err := captureShape(pb, t)
		if err != nil {
			return nil, err
		}
		return Area{Shape: shape}, nil
	case LightTypeSpot:
		return Spot{
			InnerCone: pb.Float(ParamInnerCone, t),
			OuterCone: pb.Float(ParamOuterCone, t),
		}, nil
	case LightTypePoint:
		return Point{}, nil
	case LightTypeDirectional:
		return Directional{}, nil
	default:
		return nil, fmt.Errorf("invalid light type %d", int(lt))
	}
}

func captureShape(pb *host.ParamBlock, t host.TimeValue) (AreaShape, error) {
	width := pb.Float(ParamWidth, t)
	length := pb.Float(ParamLength, t)

	switch sm := ShapeMode(pb.Int(ParamAreaShape, t)); sm {
	case ShapeDisc:
		return Disc{Width: width}, nil
	case ShapeCylinder:
		return Cylinder{Width: width, Length: length, Upright: pb.Bool(ParamUpright, t)}, nil
	case ShapeSphere:
		return Sphere{Width: width}, nil
	case ShapeRectangle:
		return Rectangle{Width: width, Length: length}, nil
	case ShapeMesh:
		return MeshShape{Ref: pb.Ref(ParamLightMesh, t)}, nil
	default:
		return nil, fmt.Errorf("invalid area shape %d", int(sm))
	}
}
