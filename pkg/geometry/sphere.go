package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere tessellation resolution
const (
	SphereLongitudes = 16
	SphereLatitudes  = 16
)

// Sphere builds a UV sphere centered at the origin with the poles on the Y axis.
// Point 0 is the north pole (0,r,0), the last point the south pole (0,-r,0);
// between them SphereLatitudes rings of SphereLongitudes+1 points, the last
// point of each ring duplicating the first to close the seam. Normals are the
// unit radial directions and share the vertex indices.
func Sphere(radius float32) *Mesh {
	const (
		nbLong = SphereLongitudes
		nbLat  = SphereLatitudes
	)

	points := make([]mgl32.Vec3, (nbLong+1)*nbLat+2)
	up := mgl32.Vec3{0, 1, 0}

	points[0] = up.Mul(radius)
	for lat := 0; lat < nbLat; lat++ {
		a1 := math32.Pi * float32(lat+1) / float32(nbLat+1)
		sin1, cos1 := math32.Sin(a1), math32.Cos(a1)

		for lon := 0; lon <= nbLong; lon++ {
			seam := lon
			if lon == nbLong {
				seam = 0
			}
			a2 := 2 * math32.Pi * float32(seam) / float32(nbLong)
			sin2, cos2 := math32.Sin(a2), math32.Cos(a2)
			points[lon+lat*(nbLong+1)+1] = mgl32.Vec3{sin1 * cos2, cos1, sin1 * sin2}.Mul(radius)
		}
	}
	points[len(points)-1] = up.Mul(-radius)

	normals := make([]mgl32.Vec3, len(points))
	for i, p := range points {
		normals[i] = p.Normalize()
	}

	nbTriangles := nbLong*2 + (nbLat-1)*nbLong*2
	indices := make([]int32, 0, nbTriangles*3)

	// top cap
	for lon := int32(0); lon < nbLong; lon++ {
		indices = append(indices, lon+2, lon+1, 0)
	}

	// middle
	for lat := int32(0); lat < nbLat-1; lat++ {
		for lon := int32(0); lon < nbLong; lon++ {
			current := lon + lat*(nbLong+1) + 1
			next := current + nbLong + 1

			indices = append(indices,
				current, current+1, next+1,
				current, next+1, next,
			)
		}
	}

	// bottom cap
	last := int32(len(points) - 1)
	for lon := int32(0); lon < nbLong; lon++ {
		indices = append(indices, last, last-(lon+2), last-(lon+1))
	}

	return &Mesh{
		Points:        points,
		Normals:       normals,
		Indices:       indices,
		NormalIndices: indices,
		FaceCounts:    triangleFaces(nbTriangles),
	}
}
