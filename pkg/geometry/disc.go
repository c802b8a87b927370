package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// arcStep is the angle between consecutive points on a tessellated circle
const arcStep = 2 * math32.Pi / PointsPerArc

// circle returns PointsPerArc points of a circle of the given radius in the plane z
func circle(radius, z float32) []mgl32.Vec3 {
	points := make([]mgl32.Vec3, PointsPerArc)
	for i := range points {
		a := float32(i) * arcStep
		points[i] = mgl32.Vec3{radius * math32.Cos(a), radius * math32.Sin(a), z}
	}
	return points
}

// Disc builds a triangle fan in the z=0 plane: the center point followed by
// PointsPerArc rim points. Normals are left to the renderer.
func Disc(radius float32) *Mesh {
	points := make([]mgl32.Vec3, 0, PointsPerArc+1)
	points = append(points, mgl32.Vec3{0, 0, 0})
	points = append(points, circle(radius, 0)...)

	indices := make([]int32, 0, PointsPerArc*3)
	for i := int32(0); i < PointsPerArc-1; i++ {
		indices = append(indices, i+1, 0, i+2)
	}
	indices = append(indices, PointsPerArc, 0, 1)

	return &Mesh{
		Points:     points,
		Indices:    indices,
		FaceCounts: triangleFaces(PointsPerArc),
	}
}
