package lights

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/df07/go-light-bridge/pkg/host"
)

func unitSquare() *host.Mesh {
	return &host.Mesh{
		Verts: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Faces: []host.Face{{V: [3]int32{0, 1, 2}}, {V: [3]int32{0, 2, 3}}},
	}
}

func TestSourceArea(t *testing.T) {
	const tolerance = 1e-9

	square := host.MeshResolverFunc(func(ref host.MeshRef, _ host.TimeValue) (*host.Mesh, bool) {
		if ref == "square" {
			return unitSquare(), true
		}
		return nil, false
	})

	tests := []struct {
		name      string
		kind      LightKind
		unitScale float64
		expected  float64
	}{
		{"Rectangle", Area{Shape: Rectangle{Length: 2, Width: 3}}, 1, 6},
		{"Disc", Area{Shape: Disc{Width: 4}}, 1, 4 * math.Pi},
		{"Sphere", Area{Shape: Sphere{Width: 2}}, 1, 4 * math.Pi},
		{"Cylinder", Area{Shape: Cylinder{Width: 2, Length: 3}}, 1, 8 * math.Pi},
		{"Upright cylinder has the same area", Area{Shape: Cylinder{Width: 2, Length: 3, Upright: true}}, 1, 8 * math.Pi},
		{"Mesh", Area{Shape: MeshShape{Ref: "square"}}, 1, 1},
		{"Unresolved mesh falls back to one", Area{Shape: MeshShape{Ref: "missing"}}, 1, 1},
		{"Unit scale is linear", Area{Shape: Rectangle{Length: 2, Width: 3}}, 2, 12},
		{"Unresolved mesh is still scaled", Area{Shape: MeshShape{Ref: "missing"}}, 0.5, 0.5},
		{"Spot", Spot{InnerCone: 10, OuterCone: 20}, 3, 1},
		{"Point", Point{}, 3, 1},
		{"Directional", Directional{}, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SourceArea(tt.kind, tt.unitScale, square, 0)
			assert.InDelta(t, tt.expected, got, tolerance)
		})
	}
}

func TestSourceArea_NilResolver(t *testing.T) {
	got := SourceArea(Area{Shape: MeshShape{Ref: "anything"}}, 1, nil, 0)
	assert.Equal(t, 1.0, got)
}

func TestMeshArea(t *testing.T) {
	// Right triangle with legs 3 and 4, tilted out of the xy plane
	m := &host.Mesh{
		Verts: []mgl32.Vec3{{0, 0, 0}, {3, 0, 0}, {0, 0, 4}},
		Faces: []host.Face{{V: [3]int32{0, 1, 2}}},
	}
	assert.InDelta(t, 6, MeshArea(m), 1e-9)

	// Winding does not matter
	m.Faces[0].V = [3]int32{0, 2, 1}
	assert.InDelta(t, 6, MeshArea(m), 1e-9)

	assert.Zero(t, MeshArea(&host.Mesh{}))
}
