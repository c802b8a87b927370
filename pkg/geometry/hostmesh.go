package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-light-bridge/pkg/host"
)

// FromHostMesh reuses a host mesh as emitter geometry: vertices are scaled by
// unitScale and faces copied verbatim. The host mesh must already be triangulated.
func FromHostMesh(mesh *host.Mesh, unitScale float32) *Mesh {
	points := make([]mgl32.Vec3, len(mesh.Verts))
	for i, v := range mesh.Verts {
		points[i] = v.Mul(unitScale)
	}

	indices := make([]int32, 0, len(mesh.Faces)*3)
	for _, f := range mesh.Faces {
		indices = append(indices, f.V[0], f.V[1], f.V[2])
	}

	return &Mesh{
		Points:     points,
		Indices:    indices,
		FaceCounts: triangleFaces(len(mesh.Faces)),
	}
}
