package geometry

import "github.com/go-gl/mathgl/mgl32"

// Rectangle builds the axis-aligned rectangle spanned by two corners in the
// z=0 plane. All corners share the single normal (0,0,-1).
func Rectangle(corner1, corner2 mgl32.Vec2) *Mesh {
	return &Mesh{
		Points: []mgl32.Vec3{
			{corner1.X(), corner1.Y(), 0},
			{corner2.X(), corner1.Y(), 0},
			{corner1.X(), corner2.Y(), 0},
			{corner2.X(), corner2.Y(), 0},
		},
		Normals:       []mgl32.Vec3{{0, 0, -1}},
		Indices:       []int32{0, 1, 3, 0, 3, 2},
		NormalIndices: []int32{0, 0, 0, 0, 0, 0},
		FaceCounts:    []int32{3, 3},
	}
}
