package geometry

import "github.com/go-gl/mathgl/mgl32"

// Cylinder builds a closed cylinder: a cap ring at z=0 and one at z=-height,
// each led by its center point, plus the side wall joining them.
//
// Point layout: 0 is the z=0 center, 1..P the z=0 rim, P+1 the z=-height
// center and P+2..2P+1 the z=-height rim (P = PointsPerArc).
//
// The index order depends on the sign of height. A non-positive height places
// the second ring above the first, so every triangle is emitted with the
// mirrored winding to keep the faces pointing outward. Normals are left to
// the renderer.
func Cylinder(radius, height float32) *Mesh {
	const p = int32(PointsPerArc)

	points := make([]mgl32.Vec3, 0, 2*(PointsPerArc+1))
	points = append(points, mgl32.Vec3{0, 0, 0})
	points = append(points, circle(radius, 0)...)
	points = append(points, mgl32.Vec3{0, 0, -height})
	points = append(points, circle(radius, -height)...)

	indices := make([]int32, 0, PointsPerArc*12)
	if height > 0 {
		// caps
		for i := int32(0); i < p-1; i++ {
			indices = append(indices, i+1, i+2, 0)
		}
		indices = append(indices, p, 1, 0)
		for i := p + 1; i < 2*p; i++ {
			indices = append(indices, i+1, p+1, i+2)
		}
		indices = append(indices, 2*p+1, p+1, p+2)

		// side wall
		for i := int32(0); i < p-1; i++ {
			indices = append(indices,
				i+1, p+i+2, p+i+3,
				i+1, p+i+3, i+2,
			)
		}
		indices = append(indices,
			p, 2*p+1, p+2,
			p, p+2, 1,
		)
	} else {
		// caps
		for i := int32(0); i < p-1; i++ {
			indices = append(indices, i+1, 0, i+2)
		}
		indices = append(indices, p, 0, 1)
		for i := p + 1; i < 2*p; i++ {
			indices = append(indices, i+1, i+2, p+1)
		}
		indices = append(indices, p+1, 2*p+1, p+2)

		// side wall
		for i := int32(0); i < p-1; i++ {
			indices = append(indices,
				i+1, p+i+3, p+i+2,
				i+1, i+2, p+i+3,
			)
		}
		indices = append(indices,
			p, p+2, 2*p+1,
			p, 1, p+2,
		)
	}

	return &Mesh{
		Points:     points,
		Indices:    indices,
		FaceCounts: triangleFaces(len(indices) / 3),
	}
}
