package memory

import (
	"github.com/df07/go-light-bridge/pkg/core"
	"github.com/df07/go-light-bridge/pkg/rpr"
)

// Native light kinds
const (
	LightPoint       = "Point"
	LightDirectional = "Directional"
	LightSpot        = "Spot"
)

var identity = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Shape is a recorded mesh instance
type Shape struct {
	scope *Scope

	ID          string
	Name        string
	Mesh        rpr.MeshData
	Transform   [16]float32 // row-major
	Shader      rpr.Shader
	CastShadows bool
	Visible     bool
}

func (sh *Shape) SetTransform(m [16]float32, transpose bool) {
	sh.Transform = toRowMajor(m, transpose)
	sh.scope.record("%s.SetTransform", sh.ID)
}

func (sh *Shape) SetName(name string) {
	sh.Name = name
	sh.scope.record("%s.SetName(%q)", sh.ID, name)
}

func (sh *Shape) SetShader(s rpr.Shader) {
	sh.Shader = s
	sh.scope.record("%s.SetShader(%s)", sh.ID, s.Type())
}

func (sh *Shape) SetShadowFlag(castShadows bool) {
	sh.CastShadows = castShadows
	sh.scope.record("%s.SetShadowFlag(%v)", sh.ID, castShadows)
}

func (sh *Shape) SetPrimaryVisibility(visible bool) {
	sh.Visible = visible
	sh.scope.record("%s.SetPrimaryVisibility(%v)", sh.ID, visible)
}

// Light is a recorded native light. Spot lights use the cone fields.
type Light struct {
	scope *Scope

	ID        string
	Kind      string
	Name      string
	Transform [16]float32 // row-major
	Power     [3]float32
	Inner     float32
	Outer     float32
}

func (l *Light) SetTransform(m [16]float32, transpose bool) {
	l.Transform = toRowMajor(m, transpose)
	l.scope.record("%s.SetTransform", l.ID)
}

func (l *Light) SetName(name string) {
	l.Name = name
	l.scope.record("%s.SetName(%q)", l.ID, name)
}

func (l *Light) SetRadiantPower(r, g, b float32) {
	l.Power = [3]float32{r, g, b}
	l.scope.record("%s.SetRadiantPower(%g, %g, %g)", l.ID, r, g, b)
}

func (l *Light) SetConeShape(inner, outer float32) {
	l.Inner, l.Outer = inner, outer
	l.scope.record("%s.SetConeShape(%g, %g)", l.ID, inner, outer)
}

// Position returns the translation part of the transform
func (l *Light) Position() [3]float32 {
	return [3]float32{l.Transform[3], l.Transform[7], l.Transform[11]}
}

// Position returns the translation part of the transform
func (sh *Shape) Position() [3]float32 {
	return [3]float32{sh.Transform[3], sh.Transform[7], sh.Transform[11]}
}

// Bounds returns the object-space bounding box of the recorded vertices
func (sh *Shape) Bounds() core.AABB {
	step := sh.Mesh.VertexStride / 4
	if step < 3 {
		return core.AABB{}
	}
	points := make([]core.Vec3, 0, sh.Mesh.NumVertices)
	for i := 0; i < sh.Mesh.NumVertices && i*step+2 < len(sh.Mesh.Vertices); i++ {
		v := sh.Mesh.Vertices[i*step:]
		points = append(points, core.NewVec3(float64(v[0]), float64(v[1]), float64(v[2])))
	}
	return core.NewAABBFromPoints(points...)
}

func toRowMajor(m [16]float32, transpose bool) [16]float32 {
	if !transpose {
		return m
	}
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}
