package lights

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-light-bridge/pkg/host"
)

// SourceArea returns the emitting surface area of a light, multiplied by the
// unit scale. Non-area lights have a fixed area of 1.
//
// A mesh shape whose reference does not resolve keeps the fallback area of 1
// (still unit scaled); the export itself skips such lights.
func SourceArea(kind LightKind, unitScale float64, resolver host.MeshResolver, t host.TimeValue) float64 {
	area, ok := kind.(Area)
	if !ok {
		return 1.0
	}

	a := 1.0
	switch s := area.Shape.(type) {
	case Disc:
		r := s.Width / 2
		a = math.Pi * r * r
	case Cylinder:
		r := s.Width / 2
		a = 2*math.Pi*r*r + s.Length*2*math.Pi*r
	case Sphere:
		r := s.Width / 2
		a = 4 * math.Pi * r * r
	case Rectangle:
		a = s.Length * s.Width
	case MeshShape:
		if m, ok := resolveMesh(resolver, s.Ref, t); ok {
			a = MeshArea(m)
		}
	default:
		panic(unknownShape(area.Shape))
	}

	return a * unitScale
}

// MeshArea returns the total surface area of a triangle mesh
func MeshArea(m *host.Mesh) float64 {
	var area float64
	for _, f := range m.Faces {
		v0 := toR3(m.Verts[f.V[0]])
		e1 := r3.Sub(toR3(m.Verts[f.V[1]]), v0)
		e2 := r3.Sub(toR3(m.Verts[f.V[2]]), v0)
		area += r3.Norm(r3.Cross(e1, e2)) / 2
	}
	return area
}

func resolveMesh(resolver host.MeshResolver, ref host.MeshRef, t host.TimeValue) (*host.Mesh, bool) {
	if resolver == nil || ref == "" {
		return nil, false
	}
	m, ok := resolver.ResolveMesh(ref, t)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

func toR3(v mgl32.Vec3) r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
