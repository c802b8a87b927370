package lights

import (
	"fmt"

	"github.com/df07/go-light-bridge/pkg/host"
)

// LightKind is the export path of a light: Area, Spot, Point or Directional.
// The set is closed; switches over it panic on anything else.
type LightKind interface {
	Type() LightType
	isLightKind()
}

// Area is a mesh emitter with an emissive shader
type Area struct {
	Shape AreaShape
}

// Spot is a native spot light. Cone angles are full angles in degrees.
type Spot struct {
	InnerCone float64
	OuterCone float64
}

// Point is a native point light
type Point struct{}

// Directional is a native directional light
type Directional struct{}

func (Area) Type() LightType        { return LightTypeArea }
func (Spot) Type() LightType        { return LightTypeSpot }
func (Point) Type() LightType       { return LightTypePoint }
func (Directional) Type() LightType { return LightTypeDirectional }

func (Area) isLightKind()        {}
func (Spot) isLightKind()        {}
func (Point) isLightKind()       {}
func (Directional) isLightKind() {}

// AreaShape is the emitter geometry of an Area light.
// Dimensions are in scene units, before unit scaling.
type AreaShape interface {
	Mode() ShapeMode
	isAreaShape()
}

// Disc is a flat disc of diameter Width
type Disc struct {
	Width float64
}

// Cylinder is a closed cylinder of diameter Width and height Length.
// Upright reverses the height direction.
type Cylinder struct {
	Width   float64
	Length  float64
	Upright bool
}

// Sphere is a sphere of diameter Width
type Sphere struct {
	Width float64
}

// Rectangle is a centered Length x Width rectangle (Length along x)
type Rectangle struct {
	Width  float64
	Length float64
}

// MeshShape emits from an arbitrary host mesh
type MeshShape struct {
	Ref host.MeshRef
}

func (Disc) Mode() ShapeMode      { return ShapeDisc }
func (Cylinder) Mode() ShapeMode  { return ShapeCylinder }
func (Sphere) Mode() ShapeMode    { return ShapeSphere }
func (Rectangle) Mode() ShapeMode { return ShapeRectangle }
func (MeshShape) Mode() ShapeMode { return ShapeMesh }

func (Disc) isAreaShape()      {}
func (Cylinder) isAreaShape()  {}
func (Sphere) isAreaShape()    {}
func (Rectangle) isAreaShape() {}
func (MeshShape) isAreaShape() {}

func unknownKind(k LightKind) string {
	return fmt.Sprintf("lights: unknown light kind %T", k)
}

func unknownShape(s AreaShape) string {
	return fmt.Sprintf("lights: unknown area shape %T", s)
}
