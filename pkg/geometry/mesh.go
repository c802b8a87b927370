// Package geometry builds the triangle meshes used as light emitters.
// Generators are pure: they take already unit-scaled dimensions and return a
// Mesh description that CreateShape hands to the renderer.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-light-bridge/pkg/rpr"
)

// PointsPerArc is the number of segments used to tessellate a full circle
const PointsPerArc = 16

// Mesh is an indexed triangle mesh description.
// Normals are optional; when present NormalIndices runs parallel to Indices.
type Mesh struct {
	Points        []mgl32.Vec3
	Normals       []mgl32.Vec3
	Indices       []int32
	NormalIndices []int32
	FaceCounts    []int32
}

// FaceCount returns the number of faces
func (m *Mesh) FaceCount() int {
	return len(m.FaceCounts)
}

// Validate checks the structural invariants of the mesh:
// the face counts add up to the index count and every index is in range.
func (m *Mesh) Validate() error {
	total := 0
	for _, c := range m.FaceCounts {
		total += int(c)
	}
	if total != len(m.Indices) {
		return fmt.Errorf("face counts sum to %d, have %d indices", total, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx < 0 || int(idx) >= len(m.Points) {
			return fmt.Errorf("index %d at %d out of range [0,%d)", idx, i, len(m.Points))
		}
	}
	if m.Normals == nil {
		return nil
	}
	if len(m.NormalIndices) != len(m.Indices) {
		return fmt.Errorf("have %d normal indices for %d indices", len(m.NormalIndices), len(m.Indices))
	}
	for i, idx := range m.NormalIndices {
		if idx < 0 || int(idx) >= len(m.Normals) {
			return fmt.Errorf("normal index %d at %d out of range [0,%d)", idx, i, len(m.Normals))
		}
	}
	return nil
}

// Triangle returns the corner positions of face i
func (m *Mesh) Triangle(i int) (a, b, c mgl32.Vec3) {
	return m.Points[m.Indices[3*i]], m.Points[m.Indices[3*i+1]], m.Points[m.Indices[3*i+2]]
}

// FaceNormal returns the geometric normal of face i implied by its winding
// (counter-clockwise front faces). Degenerate faces return the zero vector.
func (m *Mesh) FaceNormal(i int) mgl32.Vec3 {
	a, b, c := m.Triangle(i)
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

// Data packs the mesh into renderer buffers
func (m *Mesh) Data() rpr.MeshData {
	data := rpr.MeshData{
		Vertices:          flatten(m.Points),
		NumVertices:       len(m.Points),
		VertexStride:      rpr.Float3Stride,
		VertexIndices:     m.Indices,
		VertexIndexStride: rpr.IntStride,
		FaceVertexCounts:  m.FaceCounts,
	}
	if m.Normals != nil {
		data.Normals = flatten(m.Normals)
		data.NumNormals = len(m.Normals)
		data.NormalStride = rpr.Float3Stride
		data.NormalIndices = m.NormalIndices
		data.NormalIndexStride = rpr.IntStride
	}
	return data
}

// CreateShape issues the renderer mesh creation call for m
func CreateShape(ctx rpr.Context, m *Mesh) (rpr.Shape, error) {
	shape, err := ctx.CreateMesh(m.Data())
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh: %w", err)
	}
	return shape, nil
}

func flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, 3*len(vs))
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// triangleFaces returns n face counts of 3
func triangleFaces(n int) []int32 {
	faces := make([]int32, n)
	for i := range faces {
		faces[i] = 3
	}
	return faces
}
